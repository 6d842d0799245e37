// internal/app/game.go
package app

import (
	"log"

	"github.com/google/uuid"

	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/system"
	"go-path-defense/internal/utils"
	"go-path-defense/pkg/polyline"
)

// Game holds the simulation state and wires the systems together.
// Всё выполняется в одной горутине: адаптеры (ebiten, tcell, headless)
// вызывают Update и команды игрока из своего цикла.
type Game struct {
	ECS              *entity.ECS
	Clock            *system.Clock
	Rules            defs.Rules
	Rng              *utils.PRNGService
	EventDispatcher  *event.Dispatcher
	WaveSystem       *system.WaveSystem
	MovementSystem   *system.MovementSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	StateSystem      *system.StateSystem

	// RunID меняется при каждом StartRun
	RunID uuid.UUID

	progression component.Progression
	path        *polyline.Path
}

// NewGame initializes a new game instance in the Idle phase.
// seed == 0 берёт сид из текущего времени.
func NewGame(rules defs.Rules, seed int64) *Game {
	ecs := entity.NewECS()
	clock := system.NewClock()
	rng := utils.NewPRNGService(seed)
	eventDispatcher := event.NewDispatcher()

	g := &Game{
		ECS:             ecs,
		Clock:           clock,
		Rules:           rules,
		Rng:             rng,
		EventDispatcher: eventDispatcher,
		progression: component.Progression{
			Money:      rules.Economy.StartingMoney,
			Lives:      rules.Economy.StartingLives,
			Level:      1,
			Wave:       1,
			TotalWaves: rules.Waves.MinWaves,
			Phase:      component.PhaseIdle,
		},
	}
	g.path = GeneratePath(rng, rules.Path)

	g.WaveSystem = system.NewWaveSystem(ecs, clock, rng, rules, g, eventDispatcher)
	g.MovementSystem = system.NewMovementSystem(ecs, g, eventDispatcher, rules.Path.NominalLength)
	g.CombatSystem = system.NewCombatSystem(ecs, clock, rules.Tower, eventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, g, eventDispatcher)
	g.StateSystem = system.NewStateSystem(ecs, clock, g, eventDispatcher)

	return g
}

// Path — путь текущего уровня
func (g *Game) Path() *polyline.Path {
	return g.path
}

// Progression отдаёт указатель: системы меняют деньги и жизни напрямую.
func (g *Game) Progression() *component.Progression {
	return &g.progression
}

// Now — текущее время симуляции в секундах
func (g *Game) Now() float64 {
	return g.Clock.Now()
}

// Update продвигает симуляцию на deltaTime секунд.
// На паузе, после конца уровня и после поражения время стоит,
// отложенные спавны и волны не срабатывают.
func (g *Game) Update(deltaTime float64) {
	if !g.progression.Running() {
		return
	}
	if deltaTime < 0 {
		deltaTime = 0
	}

	g.Clock.Advance(deltaTime)
	g.MovementSystem.Update(deltaTime)
	g.CombatSystem.Update()
	g.ProjectileSystem.Update(deltaTime)
	g.StateSystem.CheckEndConditions()

	checkInvariants(&g.progression)
}

// StartRun начинает новый забег с первого уровня.
func (g *Game) StartRun() {
	g.RunID = uuid.New()
	g.progression.Money = g.Rules.Economy.StartingMoney
	g.progression.Lives = g.Rules.Economy.StartingLives
	g.progression.Level = 1
	log.Printf("Run %s started (seed %d)", g.RunID, g.Rng.Seed())
	g.beginLevel()
}

// AdvanceLevel подтверждает переход на следующий уровень.
// Работает только из LevelComplete, иначе возвращает false.
func (g *Game) AdvanceLevel() bool {
	if g.progression.Phase != component.PhaseLevelComplete {
		return false
	}
	g.progression.Level++
	g.progression.Money += g.Rules.Economy.LevelBonus
	g.beginLevel()
	return true
}

// ResetLevel перезапускает текущий уровень с новым путём.
// Деньги, жизни и номер уровня не трогаем.
func (g *Game) ResetLevel() {
	g.beginLevel()
}

// Cleanup останавливает уровень: выход в меню или после поражения.
func (g *Game) Cleanup() {
	g.ECS.Clear()
	g.Clock.CancelAll()
	g.progression.Wave = 1
	g.progression.Phase = component.PhaseIdle
	g.progression.Paused = false
}

// SetPaused ставит или снимает ручную паузу
func (g *Game) SetPaused(paused bool) {
	g.progression.Paused = paused
}

// TogglePause переключает ручную паузу и возвращает новое значение
func (g *Game) TogglePause() bool {
	g.progression.Paused = !g.progression.Paused
	return g.progression.Paused
}

// IsPaused — на паузе ли уровень
func (g *Game) IsPaused() bool {
	return g.progression.Paused
}

func (g *Game) beginLevel() {
	g.ECS.Clear()
	g.Clock.CancelAll()

	prog := &g.progression
	prog.Wave = 1
	prog.TotalWaves = g.Rng.Between(g.Rules.Waves.MinWaves, g.Rules.Waves.MaxWaves)
	prog.Phase = component.PhaseSpawning
	prog.Paused = false
	g.path = GeneratePath(g.Rng, g.Rules.Path)

	g.WaveSystem.ScheduleFirstWave()

	log.Printf("Level %d started: %d waves, money %d, lives %d", prog.Level, prog.TotalWaves, prog.Money, prog.Lives)
	g.EventDispatcher.Dispatch(event.Event{Type: event.LevelStarted, Data: prog.Level})
	g.EventDispatcher.Dispatch(event.Event{Type: event.StatsChanged})
}
