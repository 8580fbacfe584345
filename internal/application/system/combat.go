package system

import (
	"log"
	"math/rand"

	"github.com/younwookim/arena/internal/application/state"
	"github.com/younwookim/arena/internal/domain/entity"
	"github.com/younwookim/arena/internal/ecs"
	"github.com/younwookim/arena/internal/infrastructure/config"
	"github.com/younwookim/arena/internal/infrastructure/physics"
)

// CombatSystem owns the match: it runs every controller in a fixed tick
// order, applies all damage, and spawns and removes agents.
type CombatSystem struct {
	config   *config.ArenaConfig
	arena    *entity.Arena
	policies map[string]*entity.AgentPolicy

	world     *ecs.World
	space     *physics.Space
	clock     *Clock
	scheduler *Scheduler
	bus       *EventBus
	hud       HUD
	env       *Env

	player      *PlayerController
	ai          map[entity.EntityID]*AIController
	projectiles *ProjectileSystem
	waves       *WaveDirector

	outcome state.GameState
}

// NewCombatSystem creates a combat system for the loaded config.
// presenter and hud may be nil.
func NewCombatSystem(cfg *config.GameConfig, presenter Presenter, hud HUD, rng *rand.Rand) *CombatSystem {
	if hud == nil {
		hud = NopHUD{}
	}

	arena := LoadArena(cfg.Map)
	clock := &Clock{}
	s := &CombatSystem{
		config:    cfg.Arena,
		arena:     arena,
		policies:  LoadPolicies(cfg.Arena, arena),
		world:     ecs.NewWorld(),
		space:     physics.NewSpace(*arena, cfg.Arena.Physics.CellSize),
		clock:     clock,
		scheduler: NewScheduler(clock),
		bus:       NewEventBus(),
		hud:       hud,
		ai:        make(map[entity.EntityID]*AIController),
		outcome:   state.StatePlaying,
	}

	s.env = &Env{
		World:       s.world,
		Space:       s.space,
		Clock:       s.clock,
		Scheduler:   s.scheduler,
		Presenter:   presenter,
		Damage:      s,
		Projectiles: LoadProjectileSpecs(cfg.Arena),
	}
	s.projectiles = NewProjectileSystem(s.env, cfg.Arena.Effects.HitEffect, cfg.Arena.Effects.HitEffectTTL)
	s.env.Launcher = s.projectiles

	s.waves = NewWaveDirector(cfg.Arena.Waves, arena.EnemySpawns, s, s.scheduler, hud, rng)
	s.bus.OnDamage(func(e DamageEvent) {
		s.hud.HealthChanged(e.Target, e.Health, e.Max)
	})
	s.bus.OnDeath(s.waves.OnDeath)

	return s
}

// Start places the player and any arena bosses, then starts the first wave
func (s *CombatSystem) Start() {
	s.SpawnPlayer()
	for _, sp := range s.arena.BossSpawns {
		s.Spawn(sp.Kind, sp.Pos)
	}
	s.waves.Start()
}

// SpawnPlayer places the player at the arena's player spawn
func (s *CombatSystem) SpawnPlayer() *PlayerController {
	id := s.Spawn("player", s.arena.PlayerSpawn)
	if id == 0 {
		return nil
	}
	return s.player
}

// Spawn creates an agent of kind at pos. Returns 0 for an unknown kind.
func (s *CombatSystem) Spawn(kind string, pos entity.Vec2) entity.EntityID {
	policy, ok := s.policies[kind]
	if !ok {
		log.Printf("combat: unknown agent kind %q", kind)
		return 0
	}

	id := s.world.NewEntity()
	body := s.space.AddBody(id, policy.Faction, s.arena.Clamp(pos), s.config.Physics.BodyRadius)
	agent := entity.NewAgent(id, kind, policy, body)
	s.world.AddAgent(agent)

	if policy.Faction == entity.FactionPlayer {
		s.player = NewPlayerController(s.env, agent, s.config.Player, s.config.Combo)
	} else {
		s.ai[id] = NewAIController(s.env, agent)
	}
	s.hud.HealthChanged(id, agent.Health.Current(), agent.Health.Max())
	return id
}

// Destroy removes an entity after delay seconds. A negative delay keeps it.
func (s *CombatSystem) Destroy(id entity.EntityID, delay float64) {
	if delay < 0 {
		return
	}
	s.scheduler.After(delay, 0, func() {
		s.remove(id)
	})
}

func (s *CombatSystem) remove(id entity.EntityID) {
	if !s.world.Exists(id) {
		return
	}
	s.scheduler.CancelOwner(id)
	s.world.DestroyEntity(id)
	s.space.RemoveBody(id)
	delete(s.ai, id)
}

// Damage applies damage to target from source. Stale IDs and dead
// targets are ignored.
func (s *CombatSystem) Damage(target entity.EntityID, amount int, source entity.Vec2) {
	a, ok := s.world.Agent(target)
	if !ok {
		return
	}

	res := a.TakeDamage(amount, source)
	if !res.Applied {
		return
	}

	s.bus.PublishDamage(DamageEvent{
		Target:  a.ID,
		Faction: a.Faction,
		Amount:  amount,
		Health:  res.NewHealth,
		Max:     a.Health.Max(),
		Source:  source,
	})
	s.env.present(AnimationTriggerIntent{EntityID: a.ID, Trigger: TriggerHurt})

	for _, th := range res.Fired {
		pos := a.Position()
		if th.At != nil {
			pos = *th.At
		}
		log.Printf("combat: %s %d below %.0f%% health, spawning %s", a.Kind, a.ID, th.Fraction*100, th.Payload)
		s.Spawn(th.Payload, pos)
	}

	if res.Died {
		s.env.present(AnimationTriggerIntent{EntityID: a.ID, Trigger: TriggerDie})
		s.bus.PublishDeath(DeathEvent{ID: a.ID, Faction: a.Faction, Kind: a.Kind, Position: a.Position()})
		s.Destroy(a.ID, a.Policy.RemovalDelay)
	}
}

// Update advances the match by one tick
func (s *CombatSystem) Update(input PlayerInput, dt float64) {
	if s.outcome.Finished() {
		return
	}

	s.clock.Advance(dt)

	if s.player != nil {
		s.player.Update(input, dt)
	}
	for _, id := range s.world.AgentIDs() {
		if c, ok := s.ai[id]; ok {
			c.Update(dt)
		}
	}
	s.projectiles.Update(dt)
	s.space.Step(dt)
	for _, id := range s.world.AgentIDs() {
		s.world.Agents[id].Advance(dt)
	}
	s.scheduler.Run()

	s.updateOutcome()
}

func (s *CombatSystem) updateOutcome() {
	if s.player != nil && !s.player.Agent().Alive() {
		wave, total := s.waves.Wave()
		s.outcome = state.StateGameOver
		log.Printf("combat: player defeated on wave %d/%d", wave, total)
		return
	}
	if s.waves.Complete() && !s.world.BossAlive() {
		s.outcome = state.StateVictory
		log.Printf("combat: victory")
	}
}

// Outcome returns StatePlaying until the match is decided
func (s *CombatSystem) Outcome() state.GameState { return s.outcome }

// World returns the entity registry
func (s *CombatSystem) World() *ecs.World { return s.world }

// Space returns the physics space
func (s *CombatSystem) Space() *physics.Space { return s.space }

// Arena returns the arena bounds and spawn points
func (s *CombatSystem) Arena() *entity.Arena { return s.arena }

// Clock returns the simulation clock
func (s *CombatSystem) Clock() *Clock { return s.clock }

// Scheduler returns the deferred callback scheduler
func (s *CombatSystem) Scheduler() *Scheduler { return s.scheduler }

// Events returns the combat event bus
func (s *CombatSystem) Events() *EventBus { return s.bus }

// Player returns the player controller, or nil before the player spawns
func (s *CombatSystem) Player() *PlayerController { return s.player }

// AI returns the controller of an AI agent
func (s *CombatSystem) AI(id entity.EntityID) (*AIController, bool) {
	c, ok := s.ai[id]
	return c, ok
}

// Waves returns the wave director
func (s *CombatSystem) Waves() *WaveDirector { return s.waves }

// Launch fires a projectile by spec name. Returns 0 for an unknown spec.
func (s *CombatSystem) Launch(spec string, owner entity.Faction, pos, velocity entity.Vec2) entity.EntityID {
	ps, ok := s.env.Projectiles[spec]
	if !ok {
		return 0
	}
	return s.projectiles.Launch(ps, owner, pos, velocity)
}
