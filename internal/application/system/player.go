package system

import (
	"github.com/younwookim/arena/internal/domain/entity"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

// PlayerInput holds the player's commands for one tick
type PlayerInput struct {
	MoveX, MoveY float64 // -1..1 per axis
	Attack       bool    // melee, edge-triggered
	Fire         bool    // projectile, edge-triggered
	Dash         bool    // edge-triggered
}

// PlayerController applies input to the player agent
type PlayerController struct {
	env   *Env
	agent *entity.Agent
	cfg   config.PlayerConfig
	combo *MeleeCombo

	stamina      *entity.Stamina
	dashCooldown *entity.AttackCooldown
	fireCooldown *entity.AttackCooldown

	dashing   bool
	dashTimer float64
	moving    bool
}

// NewPlayerController creates a controller for the player agent
func NewPlayerController(env *Env, agent *entity.Agent, cfg config.PlayerConfig, combo config.ComboConfig) *PlayerController {
	return &PlayerController{
		env:          env,
		agent:        agent,
		cfg:          cfg,
		combo:        NewMeleeCombo(env, agent, combo),
		stamina:      entity.NewStamina(cfg.Stamina.Max, cfg.Stamina.RegenRate),
		dashCooldown: entity.NewAttackCooldown(cfg.Dash.Cooldown),
		fireCooldown: entity.NewAttackCooldown(cfg.Fire.Cooldown),
	}
}

// Agent returns the controlled agent
func (c *PlayerController) Agent() *entity.Agent { return c.agent }

// Combo returns the player's melee combo
func (c *PlayerController) Combo() *MeleeCombo { return c.combo }

// Stamina returns the player's stamina
func (c *PlayerController) Stamina() *entity.Stamina { return c.stamina }

// Dashing returns true during a dash
func (c *PlayerController) Dashing() bool { return c.dashing }

// Update applies one tick of input
func (c *PlayerController) Update(input PlayerInput, dt float64) {
	a := c.agent
	if !a.Alive() {
		c.setMoving(false)
		return
	}
	if a.Body == nil {
		return
	}

	c.dashCooldown.Advance(dt)
	c.fireCooldown.Advance(dt)
	c.combo.Update()

	if c.dashing {
		c.dashTimer -= dt
		if c.dashTimer <= 0 {
			c.dashing = false
			if !a.Knockback.Active() {
				a.Body.SetVelocity(entity.Vec2{})
			}
		}
	} else {
		c.stamina.Regen(dt)
	}

	dir := entity.Vec2{X: input.MoveX, Y: input.MoveY}
	if dir.Len() > 1 {
		dir = dir.Normalized()
	}
	c.face(dir.X)

	if input.Attack {
		c.combo.Attack()
	}
	if input.Fire {
		c.fire()
	}
	if input.Dash {
		c.dash(dir)
	}

	// Knockback owns the velocity while active
	switch {
	case a.Knockback.Active():
		c.setMoving(false)
	case c.dashing:
		c.setMoving(true)
	case c.combo.Suspended():
		a.Body.SetVelocity(entity.Vec2{})
		c.setMoving(false)
	default:
		a.Body.SetVelocity(dir.Scale(a.Policy.MoveSpeed))
		c.setMoving(!dir.IsZero())
	}
}

// fire launches the player's projectile along the facing direction
func (c *PlayerController) fire() bool {
	if !c.fireCooldown.Ready() {
		return false
	}
	spec, ok := c.env.Projectiles[c.cfg.Fire.Projectile]
	if !ok {
		return false
	}
	if !c.stamina.Spend(c.cfg.Stamina.FireCost) {
		return false
	}

	c.fireCooldown.Trigger()
	a := c.agent
	c.env.present(AnimationTriggerIntent{EntityID: a.ID, Trigger: TriggerProjectile})
	c.env.present(OneShotIntent{EntityID: a.ID, Clip: "shoot"})
	c.env.Launcher.Launch(spec, a.Faction, a.Position(), facingDir(a.FacingRight).Scale(c.cfg.Fire.Speed))
	return true
}

// dash starts a dash along dir, or along the facing direction when idle
func (c *PlayerController) dash(dir entity.Vec2) bool {
	a := c.agent
	if c.dashing || a.Knockback.Active() || !c.dashCooldown.Ready() {
		return false
	}
	if !c.stamina.Spend(c.cfg.Stamina.DashCost) {
		return false
	}

	if dir.IsZero() {
		dir = facingDir(a.FacingRight)
	}
	c.dashing = true
	c.dashTimer = c.cfg.Dash.Duration
	c.dashCooldown.Trigger()
	a.Body.SetVelocity(dir.Normalized().Scale(c.cfg.Dash.Speed))
	c.env.present(AnimationTriggerIntent{EntityID: a.ID, Trigger: TriggerDash})
	return true
}

func (c *PlayerController) face(dx float64) {
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

func (c *PlayerController) setMoving(v bool) {
	if c.moving == v {
		return
	}
	c.moving = v
	c.env.present(AnimationFlagIntent{EntityID: c.agent.ID, Flag: FlagMoving, Value: v})
}
