package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/stackfall/session"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Players  int
	Seed     uint64
	Interval time.Duration

	// Results
	TotalFrames    int64
	TotalSteps     int64
	TotalTime      time.Duration
	FrameTime      Stats
	Boards         []session.BoardStats
	Ranking        []session.Standing
	Announcement   string
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
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
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// Collect copies the session results into the report.
func (r *Report) Collect(s *session.Session) {
	stats := s.GetStats()
	r.TotalFrames = stats.Frames
	r.TotalSteps = stats.TotalSteps
	r.Boards = stats.Boards
	r.Ranking = s.Ranking()
	if len(r.Ranking) > 1 {
		r.Announcement = session.Announcement(r.Ranking)
	}
	r.FrameTime.Finalize()
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Stackfall Soak Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Players:** {{.Players}}
- **Seed:** {{.Seed}}
- **Frame Interval:** {{if .Interval}}{{.Interval}}{{else}}unthrottled{{end}}

## Performance Results
- **Total Frames:** {{.TotalFrames}}
- **Total Board Steps:** {{.TotalSteps}}
- **Total Test Time:** {{.TotalTime}}
{{- if .FrameTime.Samples}}
- **Frame Time:**
  - **Avg:** {{.FrameTime.Avg}}
  - **Min:** {{.FrameTime.Min}}
  - **Max:** {{.FrameTime.Max}}
{{- end}}

## Boards
| Board | Games | Rows Cleared | Steps | Avg Step | Max Step |
|---|---|---|---|---|---|
{{- range .Boards}}
| {{.Name}} | {{.Games}} | {{.Cleared}} | {{.StepCount}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{- end}}

## Current Games
{{- range $i, $s := .Ranking}}
{{add $i 1}}. {{$s.Name}}: {{$s.Lines}} lines
{{- end}}
{{with .Announcement}}
**{{.}}**
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Heap In Use:** {{mb .MemStatsEnd.HeapInuse}} MB
{{end}}`

	fm := template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"mb": func(v uint64) string {
			return fmt.Sprintf("%.2f", float64(v)/1024/1024)
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
