package main

import (
	"io"
	"runtime"
	"text/template"
	"time"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Sessions int
	Seed     uint64

	// Results
	Frames        int64
	SimulatedTime time.Duration
	TotalTime     time.Duration
	FrameTime     Stats

	Games     int
	Lines     int
	Moves     int
	BestScore int
	BestLevel int

	Violations Violations

	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// Add folds one player's tally into the totals.
func (r *Report) Add(t Tally) {
	r.Games += t.Games
	r.Lines += t.Lines
	r.Moves += t.Moves
	r.BestScore = max(r.BestScore, t.BestScore)
	r.BestLevel = max(r.BestLevel, t.BestLevel)
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Soak Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Sessions:** {{.Sessions}}
- **Seed:** {{.Seed}}

## Games
- **Finished Games:** {{.Games}}
- **Lines Cleared:** {{.Lines}}
- **Moves:** {{.Moves}}
- **Best Score:** {{.BestScore}}
- **Best Level:** {{.BestLevel}}

## Performance
- **Frames:** {{.Frames}}
- **Simulated Time:** {{.SimulatedTime}}
- **Wall Time:** {{.TotalTime}}
- **Frame Time:**
  - **Avg:** {{.FrameTime.Avg}}
  - **Min:** {{.FrameTime.Min}}
  - **Max:** {{.FrameTime.Max}}

## Memory
- Heap Alloc: {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Num GC:     {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end)

## Checks
{{if .Violations.Count}}- **FAILED:** {{.Violations.Count}} violations, first at {{.Violations.First}}
{{else}}- All sessions passed every check.
{{end}}`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
