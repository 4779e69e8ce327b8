package score

import (
	"fmt"

	"git.lost.host/meutraa/affstat/internal/game"
)

type Scorer interface {
	Init() error
	Deinit()

	// Summarize computes the combo statistics of a chart
	Summarize(chart *game.Chart) Summary

	// Save records a computed summary for the chart
	Save(chart *game.Chart, summary *Summary)

	// Load up previously recorded summaries for the chart
	Load(chart *game.Chart) []Summary
}

// Summary is the combo breakdown of one chart.
type Summary struct {
	Total  int
	Tap    int
	ArcTap int
	Hold   int
	Arc    int
	Flick  int

	Start int
	End   int

	// BPMShare maps a formatted bpm value to the fraction of the
	// chart's duration spent at it.
	BPMShare map[string]float64
}

// Sexagesimal formats a millisecond time as m:ss.d notation.
func Sexagesimal(t int) string {
	return fmt.Sprintf("%d:%02d.%d", t/60000, (t%60000)/1000, (t%1000)/100)
}
