package entity

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DamageFlashController fades a hit flash from full to zero intensity
type DamageFlashController struct {
	duration  float64
	tween     *gween.Tween
	intensity float32
}

// NewDamageFlashController creates a flash lasting duration seconds
func NewDamageFlashController(duration float64) *DamageFlashController {
	return &DamageFlashController{duration: duration}
}

// Trigger (re)starts the flash at full intensity
func (f *DamageFlashController) Trigger() {
	if f.duration <= 0 {
		return
	}
	f.tween = gween.New(1, 0, float32(f.duration), ease.OutQuad)
	f.intensity = 1
}

// Advance steps the fade by dt seconds
func (f *DamageFlashController) Advance(dt float64) {
	if f.tween == nil {
		return
	}
	current, finished := f.tween.Update(float32(dt))
	f.intensity = current
	if finished {
		f.tween = nil
		f.intensity = 0
	}
}

// Active returns true while the flash is visible
func (f *DamageFlashController) Active() bool { return f.tween != nil }

// Intensity returns the flash strength (0.0 ~ 1.0) for rendering
func (f *DamageFlashController) Intensity() float32 { return f.intensity }
