package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/ecs"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Seed     uint64
	Mode     string
	Policy   string

	// Results
	Rounds        int
	TopOuts       int
	TotalFrames   int64
	Pieces        int
	Locks         int
	LinesCleared  int
	BestLines     int
	FinalPeriod   time.Duration
	Violations    []string
	TotalTime     time.Duration
	StepTime      Stats
	Systems       []ecs.SystemStats
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

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Soak Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Seed:** {{.Seed}}
- **Gravity Mode:** {{.Mode}}
- **Rotation Policy:** {{.Policy}}

## Play
- **Rounds:** {{.Rounds}} ({{.TopOuts}} topped out)
- **Frames:** {{.TotalFrames}}
- **Pieces:** {{.Pieces}}
- **Locks:** {{.Locks}}
- **Lines Cleared:** {{.LinesCleared}} (best round: {{.BestLines}})
- **Final Period:** {{.FinalPeriod}}
- **Invariant Violations:** {{len .Violations}}
{{range .Violations}}  - {{.}}
{{end}}
## Performance
- **Total Time:** {{.TotalTime}}
- **Step Time (Frame):**
  - **Avg:** {{.StepTime.Avg}}
  - **Min:** {{.StepTime.Min}}
  - **Max:** {{.StepTime.Max}}

| System | Runs | Avg | Max |
|--------|------|-----|-----|
{{range .Systems}}| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{end}}
## Memory Usage
- Heap Alloc:  {{mb .MemStatsStart.HeapAlloc}} MB (start) -> {{mb .MemStatsEnd.HeapAlloc}} MB (end)
- Total Alloc: {{mb .MemStatsStart.TotalAlloc}} MB (start) -> {{mb .MemStatsEnd.TotalAlloc}} MB (end)
- Num GC:      {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

	fm := template.FuncMap{
		"mb": func(v uint64) string {
			return fmt.Sprintf("%.2f", float64(v)/1024/1024)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
