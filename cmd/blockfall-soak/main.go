package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/ecs"
)

// frameStep is the simulated time of one frame.
const frameStep = time.Second / 60

func main() {
	log.SetPrefix("blockfall-soak: ")

	duration := flag.Duration("duration", 10*time.Second, "The wall-clock time to run for.")
	sessions := flag.Int("sessions", 8, "The number of sessions played at once.")
	seed := flag.Uint64("seed", 0, "Base seed for pieces and moves. 0 picks a random one.")
	flag.Parse()

	if *sessions < 1 {
		log.Fatalf("-sessions must be at least 1, got %d", *sessions)
	}
	if *seed == 0 {
		*seed = rand.Uint64()
	}

	log.Println("Starting soak run...")

	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Player](registry)
	storage := ecs.NewStorage(registry)
	ecs.NewSingleton(storage, Violations{})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&AutoplaySystem{})
	scheduler.Register(&CheckSystem{})

	log.Printf("Spawning %d sessions with seed %d...\n", *sessions, *seed)
	var tallies []*Tally
	for i := range *sessions {
		player := NewPlayer(*seed + uint64(i))
		tallies = append(tallies, player.Tally)
		storage.Spawn(player)
	}

	report := &Report{
		Duration: *duration,
		Sessions: *sessions,
		Seed:     *seed,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			frameStart := time.Now()
			scheduler.Once(frameStep.Seconds())
			report.FrameTime.Samples = append(report.FrameTime.Samples, time.Since(frameStart))
			report.Frames++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.SimulatedTime = time.Duration(report.Frames) * frameStep
	report.FrameTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	for _, t := range tallies {
		report.Add(*t)
	}
	report.Violations = *ecs.ReadSingleton[Violations](storage)

	log.Println("Soak run finished.")

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	if report.Violations.Count > 0 {
		os.Exit(1)
	}
}
