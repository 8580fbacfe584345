package main

import (
	"fmt"
	"math/rand"

	"github.com/younwookim/arena/internal/application/replay"
	"github.com/younwookim/arena/internal/application/state"
	"github.com/younwookim/arena/internal/application/system"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

// Summary is the state of a match after a headless replay
type Summary struct {
	Frames       int
	Time         float64
	Outcome      state.GameState
	Wave         int
	TotalWaves   int
	Remaining    int
	PlayerHealth int
}

func (s Summary) String() string {
	return fmt.Sprintf("%s after %d frames (%.2fs): wave %d/%d, %d enemies left, player health %d",
		s.Outcome, s.Frames, s.Time, s.Wave, s.TotalWaves, s.Remaining, s.PlayerHealth)
}

// simulate plays data against cfg without a window. It stops early once
// the match is decided.
func simulate(cfg *config.GameConfig, data replay.ReplayData) Summary {
	tickRate := data.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	dt := 1.0 / float64(tickRate)

	combat := system.NewCombatSystem(cfg, nil, nil, rand.New(rand.NewSource(data.Seed)))
	combat.Start()

	r := replay.NewReplayer(data)
	for combat.Outcome() == state.StatePlaying {
		in, ok := r.GetInput()
		if !ok {
			break
		}
		combat.Update(in.InputState().PlayerInput(), dt)
	}

	wave, total := combat.Waves().Wave()
	s := Summary{
		Frames:     r.CurrentFrame(),
		Time:       combat.Clock().Now(),
		Outcome:    combat.Outcome(),
		Wave:       wave,
		TotalWaves: total,
		Remaining:  combat.Waves().Remaining(),
	}
	if p := combat.Player(); p != nil {
		s.PlayerHealth = p.Agent().Health.Current()
	}
	return s
}
