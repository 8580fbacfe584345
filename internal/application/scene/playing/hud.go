package playing

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/younwookim/arena/internal/application/system"
	"github.com/younwookim/arena/internal/domain/entity"
)

// hud keeps the numbers shown on screen
type hud struct {
	health    map[entity.EntityID][2]int // current, max
	wave      int
	waveTotal int
	remaining int
}

func newHUD() *hud {
	return &hud{health: make(map[entity.EntityID][2]int)}
}

func (h *hud) HealthChanged(id entity.EntityID, current, max int) {
	h.health[id] = [2]int{current, max}
}

func (h *hud) WaveChanged(current, total int) {
	h.wave, h.waveTotal = current, total
}

func (h *hud) EnemiesRemainingChanged(n int) {
	h.remaining = n
}

// effect is a fading hit spark
type effect struct {
	name  string
	pos   entity.Vec2
	alpha float32
	fade  *gween.Tween
}

// effects collects visual effect intents and fades them out
type effects struct {
	active []*effect
}

func (e *effects) Present(i system.Intent) {
	v, ok := i.(system.VisualEffectIntent)
	if !ok || v.TTL <= 0 {
		return
	}
	e.active = append(e.active, &effect{
		name:  v.Effect,
		pos:   v.Position,
		alpha: 1,
		fade:  gween.New(1, 0, float32(v.TTL), ease.InQuad),
	})
}

// Advance fades every effect and drops finished ones
func (e *effects) Advance(dt float64) {
	kept := e.active[:0]
	for _, fx := range e.active {
		alpha, done := fx.fade.Update(float32(dt))
		if done {
			continue
		}
		fx.alpha = alpha
		kept = append(kept, fx)
	}
	e.active = kept
}
