package main

import (
	"bytes"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/ecs"
	"github.com/plus3/blockfall/game"
)

func TestPickMoveCoversTable(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	seen := map[game.Event]int{}
	for range 2000 {
		seen[pickMove(r)]++
	}

	for _, m := range moves {
		assert.Positive(t, seen[m.event], m.event.String())
	}
	assert.Greater(t, seen[game.EventMoveLeft], seen[game.EventHardDrop])
}

func TestTally(t *testing.T) {
	var tally Tally
	tally.Notify(game.Notice{Kind: game.NoticeLinesCleared, Lines: 2})
	tally.Notify(game.Notice{Kind: game.NoticeGameOver, Score: 200, Level: 1})
	tally.Notify(game.Notice{Kind: game.NoticeGameOver, Score: 100, Level: 1})

	assert.Equal(t, Tally{Games: 2, Lines: 2, BestScore: 200, BestLevel: 1}, tally)
}

func TestCheck(t *testing.T) {
	session := game.NewSession(game.WithSeed(3))
	assert.NoError(t, Check(session))

	session.Handle(game.EventStart)
	assert.NoError(t, Check(session))

	session.Timer().Disarm()
	assert.ErrorContains(t, Check(session), "timer armed=false")
}

func TestSoak(t *testing.T) {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Player](registry)
	storage := ecs.NewStorage(registry)
	violations := ecs.NewSingleton(storage, Violations{})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&AutoplaySystem{})
	scheduler.Register(&CheckSystem{})

	var tallies []*Tally
	for i := range 4 {
		p := NewPlayer(uint64(100 + i))
		tallies = append(tallies, p.Tally)
		storage.Spawn(p)
	}

	for range 20_000 {
		scheduler.Once(frameStep.Seconds())
	}

	require.Zero(t, violations.Get().Count, violations.Get().First)

	report := &Report{Sessions: 4}
	for _, tally := range tallies {
		report.Add(*tally)
	}
	assert.Positive(t, report.Games, "random play tops out")
	assert.Positive(t, report.Moves)

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))
	assert.Contains(t, buf.String(), "All sessions passed every check.")
	assert.Contains(t, buf.String(), "**Sessions:** 4")
}
