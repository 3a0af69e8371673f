package main

import (
	"fmt"
	"io"
	"text/template"
	"time"

	"github.com/plus3/blockfall/tetris"
)

type Report struct {
	// Configuration
	Games    int
	Seed     uint64
	MaxTicks int64
	Config   tetris.Config

	// Results
	Results   []GameResult
	TotalTime time.Duration
	Score     Stats
	Finished  int
	Lines     int
	Ticks     int64
	Spawned   [tetris.NumKinds]int
	TickTime  TickStats
}

type Stats struct {
	Min   int
	Max   int
	Avg   float64
	Total int
}

type TickStats struct {
	Min time.Duration
	Max time.Duration
	Avg time.Duration
}

// KindCount is one row of the spawn distribution.
type KindCount struct {
	Kind    tetris.Kind
	Count   int
	Percent float64
}

func (r *Report) Add(result GameResult) {
	r.Results = append(r.Results, result)
}

// Finalize aggregates the collected results.
func (r *Report) Finalize() {
	if len(r.Results) == 0 {
		return
	}

	r.Score = Stats{Min: r.Results[0].Score, Max: r.Results[0].Score}
	r.TickTime = TickStats{Min: r.Results[0].TickTime.MinDuration}
	var tickTotal time.Duration
	var tickCount int64

	for _, res := range r.Results {
		r.Score.Total += res.Score
		r.Score.Min = min(r.Score.Min, res.Score)
		r.Score.Max = max(r.Score.Max, res.Score)
		if res.GameOver {
			r.Finished++
		}
		r.Lines += res.Stats.LinesCleared
		r.Ticks += res.Stats.Ticks
		for k, n := range res.Stats.Spawned {
			r.Spawned[k] += n
		}

		r.TickTime.Min = min(r.TickTime.Min, res.TickTime.MinDuration)
		r.TickTime.Max = max(r.TickTime.Max, res.TickTime.MaxDuration)
		tickTotal += res.TickTime.TotalDuration
		tickCount += res.TickTime.ExecutionCount
	}

	r.Score.Avg = float64(r.Score.Total) / float64(len(r.Results))
	if tickCount > 0 {
		r.TickTime.Avg = tickTotal / time.Duration(tickCount)
	}
}

// Distribution lists spawn counts per kind in catalog order.
func (r *Report) Distribution() []KindCount {
	total := 0
	for _, n := range r.Spawned {
		total += n
	}

	out := make([]KindCount, 0, tetris.NumKinds)
	for k, n := range r.Spawned {
		kc := KindCount{Kind: tetris.Kind(k), Count: n}
		if total > 0 {
			kc.Percent = 100 * float64(n) / float64(total)
		}
		out = append(out, kc)
	}
	return out
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Simulation Report

## Configuration
- **Games:** {{.Games}}
- **Base Seed:** {{.Seed}}
- **Board:** {{.Config.Width}}x{{.Config.Height}}, fall every {{.Config.FallInterval}} ticks
- **Tick Limit:** {{.MaxTicks}}

## Results
- **Finished Games:** {{.Finished}} of {{len .Results}}
- **Score:** avg {{printf "%.1f" .Score.Avg}}, min {{.Score.Min}}, max {{.Score.Max}}
- **Lines Cleared:** {{.Lines}}
- **Total Ticks:** {{.Ticks}}
- **Total Time:** {{.TotalTime}}
- **Tick Time:**
  - **Avg:** {{.TickTime.Avg}}
  - **Min:** {{.TickTime.Min}}
  - **Max:** {{.TickTime.Max}}

## Spawn Distribution
| Kind | Count | Share |
|---|---|---|
{{range .Distribution}}| {{.Kind}} | {{.Count}} | {{pct .Percent}} |
{{end}}
## Games
| # | Seed | Score | Lines | Ticks | Ended |
|---|---|---|---|---|---|
{{range $i, $g := .Results}}| {{inc $i}} | {{$g.Seed}} | {{$g.Score}} | {{$g.Stats.LinesCleared}} | {{$g.Stats.Ticks}} | {{ended $g.GameOver}} |
{{end}}`

	fm := template.FuncMap{
		"pct": func(v float64) string {
			return fmt.Sprintf("%.1f%%", v)
		},
		"inc": func(i int) int {
			return i + 1
		},
		"ended": func(over bool) string {
			if over {
				return "game over"
			}
			return "tick limit"
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
