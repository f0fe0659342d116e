package game_test

import (
	"fmt"
	"time"

	"github.com/plus3/blockfall/game"
)

type printer struct{}

func (printer) Render(game.Snapshot) {}

func (printer) Notify(n game.Notice) {
	switch n.Kind {
	case game.NoticeLinesCleared:
		fmt.Printf("cleared %d, score %d\n", n.Lines, n.Score)
	case game.NoticeLevelUp:
		fmt.Printf("level %d\n", n.Level)
	}
}

// Example_session drives a session by hand. The ManualTimer stands in for a
// frame clock.
func Example_session() {
	timer := game.NewManualTimer()
	session := game.NewSession(
		game.WithTimer(timer),
		game.WithSpawner(game.SequenceSpawner(game.Standard(), game.PieceO)),
		game.WithObserver(printer{}),
	)

	session.Handle(game.EventStart)

	for _, moves := range []int{-4, -2, 0, 2, 4} {
		for ; moves < 0; moves++ {
			session.Handle(game.EventMoveLeft)
		}
		for ; moves > 0; moves-- {
			session.Handle(game.EventMoveRight)
		}
		session.Handle(game.EventHardDrop)
	}

	// let gravity pull the next piece down three rows
	timer.Advance(3*time.Second, func() { session.Handle(game.EventTick) })

	snap := session.Snapshot()
	fmt.Println(snap.Phase, snap.Score, snap.Piece.Y)

	// Output:
	// cleared 2, score 200
	// Running 200 3
}

func ExampleShape_Rotate() {
	l := game.NewShape("###", "#..")

	fmt.Println(l)
	fmt.Println(l.Rotate())
	fmt.Println(l.Rotate().Rotate())

	// Output:
	// ###/#..
	// ##/.#/.#
	// ..#/###
}

func ExampleDropInterval() {
	for _, level := range []int{1, 2, 9, 10, 15} {
		fmt.Println(level, game.DropInterval(level))
	}

	// Output:
	// 1 1s
	// 2 900ms
	// 9 200ms
	// 10 100ms
	// 15 100ms
}
