package system

import (
	"log"
	"math/rand"

	"github.com/younwookim/arena/internal/domain/entity"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

// WaveState is the phase of the wave director
type WaveState int

const (
	WaveAwaitingStart WaveState = iota
	WaveSpawning
	WaveActive
	WaveAllComplete
)

// String returns the string representation of the wave state
func (s WaveState) String() string {
	switch s {
	case WaveAwaitingStart:
		return "AwaitingStart"
	case WaveSpawning:
		return "Spawning"
	case WaveActive:
		return "Active"
	case WaveAllComplete:
		return "AllComplete"
	default:
		return "Unknown"
	}
}

// WaveDirector spawns enemy waves and advances when each is cleared
type WaveDirector struct {
	cfg       config.WaveConfig
	spawns    []entity.SpawnPoint
	spawner   Spawner
	scheduler *Scheduler
	hud       HUD
	rng       *rand.Rand

	counter entity.WaveCounter
	state   WaveState
	started bool
	tracked map[entity.EntityID]struct{}
}

// NewWaveDirector creates a director. Only enemies it spawns count toward
// a wave; subscribe OnDeath to the event bus.
func NewWaveDirector(cfg config.WaveConfig, spawns []entity.SpawnPoint, spawner Spawner, scheduler *Scheduler, hud HUD, rng *rand.Rand) *WaveDirector {
	if hud == nil {
		hud = NopHUD{}
	}
	return &WaveDirector{
		cfg:       cfg,
		spawns:    spawns,
		spawner:   spawner,
		scheduler: scheduler,
		hud:       hud,
		rng:       rng,
		counter:   entity.WaveCounter{Total: cfg.Total},
		tracked:   make(map[entity.EntityID]struct{}),
	}
}

// State returns the director state
func (d *WaveDirector) State() WaveState { return d.state }

// Wave returns the current wave index (1-based) and the total
func (d *WaveDirector) Wave() (int, int) { return d.counter.Index, d.counter.Total }

// Remaining returns the enemies left in the current wave
func (d *WaveDirector) Remaining() int { return d.counter.Remaining }

// Complete returns true once every wave has been cleared
func (d *WaveDirector) Complete() bool { return d.state == WaveAllComplete }

// Start begins the first wave immediately
func (d *WaveDirector) Start() {
	if d.started {
		return
	}
	d.started = true
	d.startNext()
}

// WaveSize returns the enemy count of wave index (1-based)
func (d *WaveDirector) WaveSize(index int) int {
	return d.cfg.EnemiesPerWave + d.cfg.Scaling*index
}

func (d *WaveDirector) startNext() {
	count := d.WaveSize(d.counter.Index + 1)
	if !d.counter.Advance(count) {
		return
	}
	d.state = WaveSpawning
	log.Printf("wave: starting wave %d/%d (%d enemies)", d.counter.Index, d.counter.Total, count)
	d.hud.WaveChanged(d.counter.Index, d.counter.Total)

	for i := 0; i < count; i++ {
		sp := d.spawns[d.rng.Intn(len(d.spawns))]
		kind := d.cfg.Kinds[d.rng.Intn(len(d.cfg.Kinds))]
		id := d.spawner.Spawn(kind, sp.Pos)
		if id == 0 {
			log.Printf("wave: failed to spawn %s at %s", kind, sp.Name)
			d.counter.Defeat()
			continue
		}
		d.tracked[id] = struct{}{}
	}

	d.state = WaveActive
	d.hud.EnemiesRemainingChanged(d.counter.Remaining)
	if d.counter.Remaining == 0 {
		d.waveCleared()
	}
}

// OnDeath counts the death of a tracked enemy
func (d *WaveDirector) OnDeath(e DeathEvent) {
	if _, ok := d.tracked[e.ID]; !ok {
		return
	}
	delete(d.tracked, e.ID)

	cleared := d.counter.Defeat()
	d.hud.EnemiesRemainingChanged(d.counter.Remaining)
	if cleared {
		d.waveCleared()
	}
}

func (d *WaveDirector) waveCleared() {
	log.Printf("wave: wave %d/%d complete", d.counter.Index, d.counter.Total)
	if d.counter.Complete() {
		d.state = WaveAllComplete
		log.Printf("wave: all waves complete")
		return
	}
	d.state = WaveAwaitingStart
	d.scheduler.After(d.cfg.TimeBetweenWaves, 0, d.startNext)
}
