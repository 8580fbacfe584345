package system

import (
	"log"

	"github.com/younwookim/arena/internal/domain/entity"
)

// AIState is the behaviour state of an AI-driven agent
type AIState int

const (
	AIIdle AIState = iota
	AIApproaching
	AIHolding
	AIAttacking
	AIDead
)

// String returns the string representation of the AI state
func (s AIState) String() string {
	switch s {
	case AIIdle:
		return "Idle"
	case AIApproaching:
		return "Approaching"
	case AIHolding:
		return "Holding"
	case AIAttacking:
		return "Attacking"
	case AIDead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// AIController drives one enemy or boss agent
type AIController struct {
	env   *Env
	agent *entity.Agent

	state        AIState
	target       entity.EntityID
	attackTimer  float64
	moving       bool
	attacking    bool
	warnedNoBody bool
}

// NewAIController creates a controller for agent
func NewAIController(env *Env, agent *entity.Agent) *AIController {
	return &AIController{env: env, agent: agent}
}

// State returns the current AI state
func (c *AIController) State() AIState { return c.state }

// Target returns the tracked target (0 = none)
func (c *AIController) Target() entity.EntityID { return c.target }

// Update runs one tick of the state machine
func (c *AIController) Update(dt float64) {
	a := c.agent
	if !a.Alive() {
		if c.state != AIDead {
			c.state = AIDead
			c.setMoving(false)
			c.setAttacking(false)
		}
		return
	}

	a.Cooldown.Advance(dt)

	// Facing follows the tracked target in every state, attack pose included
	c.faceTracked()

	if c.attackTimer > 0 {
		c.attackTimer -= dt
		if c.attackTimer > 0 {
			c.state = AIAttacking
			return
		}
		c.attackTimer = 0
		c.setAttacking(false)
	}

	if a.Body == nil {
		c.warnMissingBody(a.ID)
		return
	}

	target, ok := c.acquireTarget()
	if !ok {
		c.state = AIIdle
		c.setMoving(false)
		return
	}
	if target.Body == nil {
		c.warnMissingBody(target.ID)
		return
	}

	pos := a.Position()
	targetPos := target.Position()
	c.face(targetPos.X - pos.X)

	policy := a.Policy
	dist := pos.Dist(targetPos)
	switch {
	case dist > policy.DetectionRange:
		c.state = AIIdle
		c.setMoving(false)
		if policy.ClearTargetOnLoss {
			c.target = 0
		}
	case dist > policy.AttackRange:
		c.state = AIApproaching
		if a.Knockback.Active() {
			c.setMoving(false)
			return
		}
		c.setMoving(true)
		a.Body.SetPosition(entity.MoveTowards(pos, targetPos, policy.MoveSpeed*dt))
	case !a.Cooldown.Ready():
		c.state = AIHolding
		c.setMoving(false)
	default:
		c.attack(pos, targetPos)
	}
}

// faceTracked turns toward the current target if it is live and has a body
func (c *AIController) faceTracked() {
	if c.target == 0 || c.agent.Body == nil {
		return
	}
	t, ok := c.env.World.LiveAgent(c.target)
	if !ok || t.Body == nil {
		return
	}
	c.face(t.Position().X - c.agent.Position().X)
}

// acquireTarget keeps a live tracked target or finds the nearest one
func (c *AIController) acquireTarget() (*entity.Agent, bool) {
	if c.target != 0 {
		if t, ok := c.env.World.LiveAgent(c.target); ok {
			return t, true
		}
		c.target = 0
	}

	a := c.agent
	t, ok := c.env.nearestLive(a.Position(), a.Policy.DetectionRange, a.Faction.Hostile()...)
	if !ok {
		return nil, false
	}
	c.target = t.ID
	return t, true
}

func (c *AIController) attack(pos, targetPos entity.Vec2) {
	a := c.agent
	policy := a.Policy

	a.Cooldown.Trigger()
	c.state = AIAttacking
	c.attackTimer = entity.AttackWindow
	c.setMoving(false)
	c.setAttacking(true)

	switch policy.Variant {
	case entity.VariantMelee:
		hits := c.env.Space.QueryRadius(pos, policy.AttackRange, a.Faction.Hostile()...)
		if len(hits) == 0 {
			return
		}
		damage := policy.AttackDamage
		c.env.Scheduler.After(policy.DamageDelay, a.ID, func() {
			if !a.Alive() {
				return
			}
			for _, id := range hits {
				c.env.Damage.Damage(id, damage, pos)
			}
		})
	default:
		spec, ok := c.env.Projectiles[policy.Projectile]
		if !ok {
			log.Printf("ai: agent %d (%s) has unknown projectile %q", a.ID, a.Kind, policy.Projectile)
			return
		}
		dir := targetPos.Sub(pos).Normalized()
		if dir.IsZero() {
			dir = facingDir(a.FacingRight)
		}
		speed := policy.ProjectileSpeed
		if speed <= 0 {
			speed = spec.Speed
		}
		c.env.Launcher.Launch(spec, a.Faction, pos, dir.Scale(speed))
	}
}

func (c *AIController) face(dx float64) {
	if dx == 0 {
		return
	}
	right := dx > 0
	if right == c.agent.FacingRight {
		return
	}
	c.agent.FacingRight = right
	c.env.present(FacingIntent{EntityID: c.agent.ID, Right: right})
}

func (c *AIController) setMoving(v bool) {
	if c.moving == v {
		return
	}
	c.moving = v
	c.env.present(AnimationFlagIntent{EntityID: c.agent.ID, Flag: FlagMoving, Value: v})
}

func (c *AIController) setAttacking(v bool) {
	if c.attacking == v {
		return
	}
	c.attacking = v
	c.env.present(AnimationFlagIntent{EntityID: c.agent.ID, Flag: FlagAttacking, Value: v})
}

func (c *AIController) warnMissingBody(id entity.EntityID) {
	if c.warnedNoBody {
		return
	}
	c.warnedNoBody = true
	log.Printf("ai: agent %d has no body for entity %d, skipping", c.agent.ID, id)
}

func facingDir(right bool) entity.Vec2 {
	if right {
		return entity.Vec2{X: 1}
	}
	return entity.Vec2{X: -1}
}
