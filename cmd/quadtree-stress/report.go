package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	quadtree "github.com/bmharper/quadtree-go"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Entities int
	Width    float64
	Height   float64
	Capacity int
	MaxDepth int
	Reuse    bool
	Unique   bool
	Seed     int64

	// Results
	TotalFrames   int64
	TotalTime     time.Duration
	BuildTime     Stats
	QueryTime     Stats
	Candidates    int64
	Dropped       int64
	LastTree      quadtree.Stats
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

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Quadtree Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Entities:** {{.Entities}}
- **Field:** {{.Width}} x {{.Height}}
- **Leaf Capacity:** {{.Capacity}}
- **Max Depth:** {{.MaxDepth}}
- **Reuse Tree (Clear):** {{.Reuse}}
- **Deduplicate Results:** {{.Unique}}
- **Seed:** {{.Seed}}

## Performance Results
- **Total Frames:** {{.TotalFrames}}
- **Total Test Time:** {{.TotalTime}}
- **Build Time (Frame):**
  - **Avg:** {{.BuildTime.Avg}}
  - **Min:** {{.BuildTime.Min}}
  - **Max:** {{.BuildTime.Max}}
- **Query Time (Frame):**
  - **Avg:** {{.QueryTime.Avg}}
  - **Min:** {{.QueryTime.Min}}
  - **Max:** {{.QueryTime.Max}}
- **Candidate Pairs / Frame:** {{perFrame .Candidates .TotalFrames}}
- **Dropped Inserts:** {{.Dropped}}

## Last Tree Shape
- Nodes:      {{.LastTree.Nodes}}
- Leaves:     {{.LastTree.Leaves}}
- Depth:      {{.LastTree.MaxDepth}}
- Stored:     {{.LastTree.Stored}} ({{ratio .LastTree.Stored .Entities}} copies per entity)

## Memory Usage
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} MB (start) -> {{mb .MemStatsEnd.HeapAlloc}} MB (end)
- Total Alloc:    {{mb .MemStatsStart.TotalAlloc}} MB (start) -> {{mb .MemStatsEnd.TotalAlloc}} MB (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

	fm := template.FuncMap{
		"mb": func(v uint64) string {
			return fmt.Sprintf("%.2f", float64(v)/1024/1024)
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"perFrame": func(total, frames int64) string {
			if frames == 0 {
				return "N/A"
			}
			return fmt.Sprintf("%.1f", float64(total)/float64(frames))
		},
		"ratio": func(a, b int) string {
			if b == 0 {
				return "N/A"
			}
			return fmt.Sprintf("%.2f", float64(a)/float64(b))
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
