// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/arena/internal/application/replay"
	"github.com/younwookim/arena/internal/application/scene"
	"github.com/younwookim/arena/internal/application/state"
	"github.com/younwookim/arena/internal/application/system"
	"github.com/younwookim/arena/internal/domain/entity"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG         = color.RGBA{26, 26, 46, 255}
	colorFloor      = color.RGBA{40, 40, 60, 255}
	colorWall       = color.RGBA{80, 80, 100, 255}
	colorPlayer     = color.RGBA{100, 200, 100, 255}
	colorEnemy      = color.RGBA{200, 100, 100, 255}
	colorBoss       = color.RGBA{180, 80, 200, 255}
	colorCorpse     = color.RGBA{90, 90, 90, 255}
	colorProjectile = color.RGBA{255, 200, 100, 255}
	colorEffect     = color.RGBA{255, 255, 200, 255}
	colorHealthBG   = color.RGBA{60, 60, 60, 255}
	colorHealthFG   = color.RGBA{100, 200, 100, 255}
	colorStamina    = color.RGBA{100, 160, 240, 255}
)

// Playing is the main gameplay scene
type Playing struct {
	config    *config.GameConfig
	arenaName string
	state     state.GameState
	combat    *system.CombatSystem
	input     *system.InputSystem
	hud       *hud
	effects   *effects
	screenW   int
	screenH   int
	unit      float64 // pixels per world unit
	dt        float64

	// Deterministic RNG
	rng  *rand.Rand
	seed int64

	// Input recording and playback
	recorder       *Recorder
	recordFilename string
	replayer       *replay.Replayer
}

// New creates a new Playing scene. A zero seed picks one from the clock.
// If recordPath is not empty, gameplay will be recorded.
func New(cfg *config.GameConfig, seed int64, recordPath string) *Playing {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	display := cfg.Arena.Display
	tickRate := display.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	unit := float64(cfg.Map.TileSize)
	if unit <= 0 {
		unit = 1
	}

	p := &Playing{
		config:         cfg,
		arenaName:      cfg.Map.Name,
		input:          system.NewInputSystem(),
		screenW:        display.ScreenWidth,
		screenH:        display.ScreenHeight,
		unit:           unit,
		dt:             1.0 / float64(tickRate),
		seed:           seed,
		recordFilename: recordPath,
	}
	p.start()

	if recordPath != "" {
		p.recorder = NewRecorder(seed, p.arenaName, tickRate)
		log.Printf("Recording enabled: %s (seed: %d)", recordPath, seed)
	}

	return p
}

// NewReplay creates a Playing scene that plays back recorded input
func NewReplay(cfg *config.GameConfig, data replay.ReplayData) *Playing {
	p := New(cfg, data.Seed, "")
	p.replayer = replay.NewReplayer(data)
	log.Printf("Replaying %d frames on %s (seed: %d)", p.replayer.TotalFrames(), data.Arena, data.Seed)
	return p
}

// start builds a fresh match from the current seed
func (p *Playing) start() {
	p.rng = rand.New(rand.NewSource(p.seed))
	p.hud = newHUD()
	p.effects = &effects{}
	p.combat = system.NewCombatSystem(p.config, p.effects, p.hud, p.rng)
	p.combat.Start()
	p.state = state.StatePlaying
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	switch p.state {
	case state.StatePlaying:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.state = state.StatePaused
			return nil, nil
		}
		// F5: Save recording manually
		if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
			p.saveRecording()
		}
		p.step(p.nextInput())
	case state.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.state = state.StatePlaying
		}
	case state.StateGameOver, state.StateVictory:
		if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			p.restart()
		}
	}

	return nil, nil // nil = stay on this scene
}

// nextInput reads the devices, or the next recorded frame during playback
func (p *Playing) nextInput() system.InputState {
	if p.replayer == nil {
		return p.input.GetInput()
	}
	in, ok := p.replayer.GetInput()
	if !ok {
		return system.InputState{}
	}
	return in.InputState()
}

// step runs one simulation tick with input
func (p *Playing) step(input system.InputState) {
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	p.combat.Update(input.PlayerInput(), p.dt)
	p.effects.Advance(p.dt)

	if outcome := p.combat.Outcome(); outcome.Finished() {
		p.state = outcome
		// Auto-save recording when the match is decided
		if p.recorder != nil {
			p.saveRecording()
			p.recorder.Stop()
		}
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

func (p *Playing) restart() {
	p.seed = time.Now().UnixNano()
	p.replayer = nil
	p.start()

	if p.recordFilename != "" {
		p.recorder = NewRecorder(p.seed, p.arenaName, p.TickRate())
		log.Printf("Recording restarted (seed: %d)", p.seed)
	}
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	arena := p.combat.Arena()
	w, h := float32(arena.Width*p.unit), float32(arena.Height*p.unit)
	vector.FillRect(screen, 0, 0, w, h, colorFloor, false)
	vector.StrokeRect(screen, 0, 0, w, h, 2, colorWall, false)

	p.drawAgents(screen)
	p.drawProjectiles(screen)
	p.drawEffects(screen)
	p.drawUI(screen)

	switch p.state {
	case state.StatePaused:
		p.drawOverlay(screen, color.RGBA{0, 0, 0, 128}, "PAUSED\n\nPress ESC to resume")
	case state.StateGameOver:
		wave, total := p.combat.Waves().Wave()
		p.drawOverlay(screen, color.RGBA{100, 0, 0, 180},
			fmt.Sprintf("GAME OVER\n\nReached wave %d/%d\n\nPress R to restart", wave, total))
	case state.StateVictory:
		p.drawOverlay(screen, color.RGBA{0, 80, 0, 180}, "VICTORY\n\nPress R to play again")
	}
}

func (p *Playing) toScreen(v entity.Vec2) (float32, float32) {
	return float32(v.X * p.unit), float32(v.Y * p.unit)
}

func (p *Playing) drawAgents(screen *ebiten.Image) {
	world := p.combat.World()
	radius := float32(p.config.Arena.Physics.BodyRadius * p.unit)

	for _, id := range world.AgentIDs() {
		a := world.Agents[id]
		x, y := p.toScreen(a.Position())

		c := colorEnemy
		switch {
		case !a.Alive():
			c = colorCorpse
		case a.Faction == entity.FactionPlayer:
			c = colorPlayer
		case a.Faction == entity.FactionBoss:
			c = colorBoss
		}
		vector.FillCircle(screen, x, y, radius, flashColor(c, a.Flash.Intensity()), true)

		// Facing marker
		dir := radius
		if !a.FacingRight {
			dir = -dir
		}
		vector.StrokeLine(screen, x, y, x+dir, y, 1, colorWall, false)

		if end, ok := knockbackMarker(a, p.config.Arena.Physics.BodyRadius*2); ok {
			ex, ey := p.toScreen(end)
			vector.StrokeLine(screen, x, y, ex, ey, 2, colorEffect, false)
		}

		if a.Alive() && a.Faction != entity.FactionPlayer {
			p.drawHealthBar(screen, x-radius, y-radius-4, radius*2, a.Health.Fraction())
		}
	}
}

// knockbackMarker returns the tip of a line showing the active knockback push
func knockbackMarker(a *entity.Agent, length float64) (entity.Vec2, bool) {
	if !a.Knockback.Active() {
		return entity.Vec2{}, false
	}
	dir := a.Knockback.Override().Normalized()
	if dir.IsZero() {
		return entity.Vec2{}, false
	}
	return a.Position().Add(dir.Scale(length)), true
}

func (p *Playing) drawHealthBar(screen *ebiten.Image, x, y, w float32, fraction float64) {
	vector.FillRect(screen, x, y, w, 2, colorHealthBG, false)
	vector.FillRect(screen, x, y, w*float32(fraction), 2, colorHealthFG, false)
}

func (p *Playing) drawProjectiles(screen *ebiten.Image) {
	world := p.combat.World()
	for _, id := range world.ProjectileIDs() {
		proj := world.Projectiles[id]
		x, y := p.toScreen(proj.Position)
		r := float32(proj.Spec.Radius * p.unit)
		if r < 2 {
			r = 2
		}
		vector.FillCircle(screen, x, y, r, colorProjectile, true)
	}
}

func (p *Playing) drawEffects(screen *ebiten.Image) {
	for _, fx := range p.effects.active {
		x, y := p.toScreen(fx.pos)
		c := colorEffect
		c.A = uint8(255 * fx.alpha)
		vector.StrokeCircle(screen, x, y, 4+6*(1-fx.alpha), 1, c, true)
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	const barX, barY, barW, barH = 10, 20, 100, 8

	player := p.combat.Player()
	if player != nil {
		hp := p.hud.health[player.Agent().ID]
		fraction := 0.0
		if hp[1] > 0 {
			fraction = float64(hp[0]) / float64(hp[1])
		}
		vector.FillRect(screen, barX, barY, barW, barH, colorHealthBG, false)
		vector.FillRect(screen, barX, barY, barW*float32(fraction), barH, colorHealthFG, false)

		vector.FillRect(screen, barX, barY+barH+2, barW, 4, colorHealthBG, false)
		vector.FillRect(screen, barX, barY+barH+2, barW*float32(player.Stamina().Fraction()), 4, colorStamina, false)

		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("HP %d/%d  Combo %d", hp[0], hp[1], player.Combo().Step()), barX+barW+10, barY-4)
	}

	waveText := fmt.Sprintf("Wave %d/%d  Enemies %d", p.hud.wave, p.hud.waveTotal, p.hud.remaining)
	if p.combat.World().BossAlive() {
		waveText += "  Boss"
	}
	ebitenutil.DebugPrintAt(screen, waveText, 10, p.screenH-20)

	if p.replayer != nil {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("REPLAY %d/%d", p.replayer.CurrentFrame(), p.replayer.TotalFrames()), p.screenW-120, p.screenH-20)
	}

	ebitenutil.DebugPrint(screen, "WASD: Move | J/LClick: Attack | K/RClick: Fire | Space: Dash | ESC: Pause")
}

func (p *Playing) drawOverlay(screen *ebiten.Image, c color.RGBA, text string) {
	vector.FillRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), c, false)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-30)
}

// flashColor blends c toward white by intensity
func flashColor(c color.RGBA, intensity float32) color.RGBA {
	if intensity <= 0 {
		return c
	}
	if intensity > 1 {
		intensity = 1
	}
	blend := func(v uint8) uint8 {
		return v + uint8(float32(255-v)*intensity)
	}
	return color.RGBA{blend(c.R), blend(c.G), blend(c.B), c.A}
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}

// TickRate returns the simulation ticks per second
func (p *Playing) TickRate() int {
	return int(1/p.dt + 0.5)
}
