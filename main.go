package main

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"git.lost.host/meutraa/affstat/internal/config"
	"git.lost.host/meutraa/affstat/internal/game"
	"git.lost.host/meutraa/affstat/internal/parser"
	"git.lost.host/meutraa/affstat/internal/score"
	"golang.org/x/term"
)

func main() {
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

func run() error {
	// Ensure our Default implementations are used as interfaces
	var psr parser.Parser = &parser.DefaultParser{}
	var scr score.Scorer = &score.DefaultScorer{Database: *config.Database}

	chart, err := psr.Parse(*config.File)
	if nil != err {
		return fmt.Errorf("unable to parse chart: %w", err)
	}

	summary := scr.Summarize(chart)

	for _, h := range chart.Headers {
		fmt.Printf("%24v: %v\n", h.Key, h.Value)
	}
	start, end := chart.Interval()
	fmt.Printf("%24v: %v -> %v\n", "Interval", score.Sexagesimal(start), score.Sexagesimal(end))
	fmt.Printf("%24v: %v\n", "Commands", len(chart.Commands))
	fmt.Println()

	fmt.Printf("%8v: %5v\n", "Combo", summary.Total)
	fmt.Printf("%8v: %5v\n", "Tap", summary.Tap)
	fmt.Printf("%8v: %5v\n", "ArcTap", summary.ArcTap)
	fmt.Printf("%8v: %5v\n", "Hold", summary.Hold)
	fmt.Printf("%8v: %5v\n", "Arc", summary.Arc)
	if summary.Flick > 0 {
		fmt.Printf("%8v: %5v\n", "Flick", summary.Flick)
	}
	fmt.Println()

	printBPMShare(summary.BPMShare)
	printTimeline(chart, summary.Total, int(*config.Steps))

	if *config.Check {
		printCheckReport(chart)
	}

	if *config.NoSave {
		return nil
	}
	if err := scr.Init(); nil != err {
		return fmt.Errorf("unable to open summary database: %w", err)
	}
	defer scr.Deinit()
	previous := scr.Load(chart)
	scr.Save(chart, &summary)
	fmt.Printf("\n%v previously recorded summaries\n", len(previous))
	return nil
}

func printBPMShare(share map[string]float64) {
	bpms := make([]string, 0, len(share))
	for bpm := range share {
		bpms = append(bpms, bpm)
	}
	sort.Slice(bpms, func(i, j int) bool {
		a, _ := strconv.ParseFloat(bpms[i], 64)
		b, _ := strconv.ParseFloat(bpms[j], 64)
		return a < b
	})
	for _, bpm := range bpms {
		fmt.Printf("%8v bpm: %5.1f%%\n", bpm, share[bpm]*100)
	}
	fmt.Println()
}

// printTimeline samples the combo achieved before evenly spaced times
// and draws each sample as a bar scaled to the terminal width.
func printTimeline(chart *game.Chart, total, steps int) {
	if steps <= 0 || total <= 0 {
		return
	}
	cols, _, err := term.GetSize(int(os.Stdout.Fd()))
	if nil != err {
		cols = 80
	}
	width := cols - 20
	if width < 8 {
		width = 8
	}
	start, end := chart.Interval()
	for i := 1; i <= steps; i++ {
		t := start + (end-start)*i/steps
		combo := chart.TotalComboBefore(t)
		fmt.Printf("%8v %5d %v\n",
			score.Sexagesimal(t), combo, strings.Repeat("=", width*combo/total))
	}
}

func printCheckReport(chart *game.Chart) {
	fmt.Println()
	bad := 0
	for _, result := range chart.SyntaxReport() {
		if !result.OK {
			fmt.Printf("invalid: %v\n", result.Command)
			bad++
		}
		if group, ok := result.Command.(*game.TimingGroup); ok {
			for _, sub := range group.SubSyntaxCheck() {
				if !sub.OK {
					fmt.Printf("invalid: %v > %v\n", group, sub.Command)
					bad++
				}
			}
		}
	}
	if bad == 0 {
		fmt.Println("all commands pass the syntax check")
	}
}
