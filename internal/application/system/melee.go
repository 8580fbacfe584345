package system

import (
	"github.com/younwookim/arena/internal/domain/entity"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

// MeleeCombo is the player's three-step melee chain
type MeleeCombo struct {
	env   *Env
	owner *entity.Agent
	cfg   config.ComboConfig

	state     entity.ComboState
	suspended bool
	finisher  TaskID // pending finisher reset, 0 if none
}

// NewMeleeCombo creates a combo for owner
func NewMeleeCombo(env *Env, owner *entity.Agent, cfg config.ComboConfig) *MeleeCombo {
	return &MeleeCombo{env: env, owner: owner, cfg: cfg}
}

// Step returns the current combo step (0 = idle)
func (m *MeleeCombo) Step() int { return m.state.Step }

// Suspended returns true while the combo holds the player in place
func (m *MeleeCombo) Suspended() bool { return m.suspended }

// AttackPoint returns the centre of the melee hit area
func (m *MeleeCombo) AttackPoint() entity.Vec2 {
	return m.owner.Position().Add(facingDir(m.owner.FacingRight).Scale(m.cfg.Offset))
}

// Attack handles one attack input. Returns false if the input was ignored.
func (m *MeleeCombo) Attack() bool {
	owner := m.owner
	if !owner.Alive() {
		return false
	}
	if !m.state.Accept(m.env.Clock.Now(), m.cfg.AntiSpam) {
		return false
	}

	step := m.state.Step
	m.env.present(AnimationTriggerIntent{EntityID: owner.ID, Trigger: ComboTrigger(step)})
	m.env.present(OneShotIntent{EntityID: owner.ID, Clip: "swing"})
	m.suspended = true

	// The hit set is fixed here; targets that leave the area still take the hit
	point := m.AttackPoint()
	hits := m.env.Space.QueryRadius(point, m.cfg.Radius, owner.Faction.Hostile()...)
	if len(hits) > 0 {
		damage := m.cfg.Damage
		m.env.Scheduler.After(m.cfg.HitDelay, owner.ID, func() {
			if !owner.Alive() {
				return
			}
			for _, id := range hits {
				m.env.Damage.Damage(id, damage, point)
			}
		})
	}

	// Repeated finishers keep the first reset; a reset never outlives its chain
	if m.state.Finished() && m.finisher == 0 {
		m.finisher = m.env.Scheduler.After(m.cfg.FinisherReset, owner.ID, m.reset)
	}
	return true
}

// Update resets the chain once no input has arrived for ResetTime
func (m *MeleeCombo) Update() {
	if m.state.Expired(m.env.Clock.Now(), m.cfg.ResetTime) {
		m.reset()
	}
}

func (m *MeleeCombo) reset() {
	if m.finisher != 0 {
		m.env.Scheduler.Cancel(m.finisher)
		m.finisher = 0
	}
	m.state.Reset()
	m.suspended = false
}
