package main

import (
	"math/rand/v2"

	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// GameResult is the outcome of one simulated game.
type GameResult struct {
	Seed     uint64
	Score    int
	GameOver bool
	Stats    tetris.Stats
	// TickTime is the engine system's timing from the scheduler.
	TickTime loop.SystemStats
}

// PolicySystem queues a random command on roughly every other frame. Shifts
// and rotations are common, hard drops rare, so pieces spread across the
// board before they land.
type PolicySystem struct {
	Engine *tetris.Engine
	Rand   *rand.Rand
}

var policyWeights = []struct {
	cmd    tetris.Command
	weight int
}{
	{tetris.CommandMoveLeft, 6},
	{tetris.CommandMoveRight, 6},
	{tetris.CommandRotate, 4},
	{tetris.CommandSoftDrop, 3},
	{tetris.CommandHardDrop, 1},
}

func (s *PolicySystem) Execute(frame *loop.Frame) {
	if s.Rand.IntN(2) == 0 {
		return
	}

	total := 0
	for _, w := range policyWeights {
		total += w.weight
	}
	n := s.Rand.IntN(total)
	for _, w := range policyWeights {
		if n < w.weight {
			s.Engine.Commands().Push(w.cmd)
			return
		}
		n -= w.weight
	}
}

type EngineSystem struct {
	Engine *tetris.Engine
}

func (s *EngineSystem) Execute(frame *loop.Frame) {
	s.Engine.Tick()
}

// playGame runs one game until it ends or maxTicks ticks have passed. The
// seed drives both the piece sequence and the input policy.
func playGame(cfg tetris.Config, seed uint64, maxTicks int64) (GameResult, error) {
	engine, err := tetris.New(cfg, tetris.WithRandomizer(tetris.NewUniform(seed)))
	if err != nil {
		return GameResult{}, err
	}

	scheduler := loop.NewScheduler()
	scheduler.Register(&PolicySystem{
		Engine: engine,
		Rand:   rand.New(rand.NewPCG(seed, ^seed)),
	})
	scheduler.RegisterNamed("EngineSystem", &EngineSystem{Engine: engine})

	dt := 1.0 / 60
	for i := int64(0); i < maxTicks && !engine.IsGameOver(); i++ {
		scheduler.Once(dt)
	}

	result := GameResult{
		Seed:     seed,
		Score:    engine.Score(),
		GameOver: engine.IsGameOver(),
		Stats:    engine.Stats(),
	}
	for _, sys := range scheduler.Stats().Systems {
		if sys.Name == "EngineSystem" {
			result.TickTime = sys
		}
	}
	return result, nil
}
