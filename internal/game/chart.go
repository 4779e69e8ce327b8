package game

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const densityHeader = "TimingPointDensityFactor"

// Header is one key/value pair from the section before the '-' line.
type Header struct {
	Key   string
	Value string
}

// Chart is a decoded chart. Every derived field is computed once by
// NewChart, the value is read-only afterwards and safe for concurrent
// readers.
type Chart struct {
	Headers  []Header
	Commands []Command

	EndTime         int
	SortedTimings   []*Timing
	TimingPositions []int
	TimingValues    []float64
	TimingBeats     []float64
	DensityFactor   float64

	// caches for the combo queries, this level only
	connectedArcs []*Arc
	taps          []*Tap
	holds         []*Hold
	arctaps       []*ArcTap
	flicks        []*Flick
	groups        []*TimingGroup
}

// NewChart builds a chart and eagerly derives its caches. Commands keep
// their source order.
func NewChart(headers []Header, commands []Command) *Chart {
	c := &Chart{
		Headers:       headers,
		Commands:      commands,
		DensityFactor: 1.0,
	}

	var timings []*Timing
	var arcs []*Arc
	for _, cmd := range commands {
		if _, end := cmd.Interval(); end > c.EndTime {
			c.EndTime = end
		}
		switch n := cmd.(type) {
		case *Tap:
			c.taps = append(c.taps, n)
		case *Hold:
			c.holds = append(c.holds, n)
		case *Arc:
			if n.IsSkyline() {
				c.arctaps = append(c.arctaps, n.ArcTaps...)
			} else {
				arcs = append(arcs, n)
			}
		case *Flick:
			c.flicks = append(c.flicks, n)
		case *Timing:
			timings = append(timings, n)
		case *TimingGroup:
			c.groups = append(c.groups, n)
		}
	}

	sort.SliceStable(timings, func(i, j int) bool { return timings[i].T < timings[j].T })
	c.SortedTimings = timings
	c.TimingPositions = make([]int, 0, len(timings)+1)
	c.TimingValues = make([]float64, 0, len(timings))
	c.TimingBeats = make([]float64, 0, len(timings))
	for _, t := range timings {
		c.TimingPositions = append(c.TimingPositions, t.T)
		c.TimingValues = append(c.TimingValues, t.BPM)
		c.TimingBeats = append(c.TimingBeats, t.Beats)
	}
	c.TimingPositions = append(c.TimingPositions, c.EndTime)

	if v, ok := c.Header(densityHeader); ok {
		if f, err := strconv.ParseFloat(v, 64); nil == err {
			c.DensityFactor = f
		}
	}

	c.connectedArcs = connectArcs(arcs)
	return c
}

// Header returns the value of the first header with the given key.
func (c *Chart) Header(key string) (string, bool) {
	for _, h := range c.Headers {
		if h.Key == key {
			return h.Value, true
		}
	}
	return "", false
}

// Interval returns the earliest start and latest end time over all
// commands at this level.
func (c *Chart) Interval() (int, int) {
	if len(c.Commands) == 0 {
		return 0, 0
	}
	start, end := c.Commands[0].Interval()
	for _, cmd := range c.Commands[1:] {
		s, e := cmd.Interval()
		if s < start {
			start = s
		}
		if e > end {
			end = e
		}
	}
	return start, end
}

// CommandsOfKind returns all commands of the given kind at this level,
// descending into timing groups when nested is set, and skipping
// noinput groups when excludeNoInput is set. The ArcTap kind is
// synthesized from the arctap lists of skyline arcs.
func (c *Chart) CommandsOfKind(kind Kind, nested, excludeNoInput bool) []Command {
	out := c.commandsAtLevel(kind)
	if nested {
		for _, g := range c.groups {
			out = append(out, g.boundedCommandsOfKind(kind, nested, excludeNoInput, c.EndTime)...)
		}
	}
	return out
}

func (c *Chart) commandsAtLevel(kind Kind) []Command {
	var out []Command
	if kind == KindArcTap {
		for _, cmd := range c.Commands {
			if arc, ok := cmd.(*Arc); ok && arc.IsSkyline() {
				for _, at := range arc.ArcTaps {
					out = append(out, at)
				}
			}
		}
		return out
	}
	for _, cmd := range c.Commands {
		if cmd.Kind() == kind {
			out = append(out, cmd)
		}
	}
	return out
}

// CheckResult pairs a command with its advisory check outcome.
type CheckResult struct {
	Command Command
	OK      bool
}

// SyntaxReport runs the advisory check on every command at this level.
func (c *Chart) SyntaxReport() []CheckResult {
	results := make([]CheckResult, 0, len(c.Commands))
	for _, cmd := range c.Commands {
		results = append(results, CheckResult{Command: cmd, OK: cmd.SyntaxCheck()})
	}
	return results
}

// TimingGroup is a chart region with its own timing breakpoints. It is
// a Chart without headers plus a set of type tags, and doubles as a
// Command of the enclosing chart.
type TimingGroup struct {
	Types []string
	Chart
}

// NewTimingGroup builds a group over already decoded commands.
func NewTimingGroup(types []string, commands []Command) *TimingGroup {
	return &TimingGroup{Types: types, Chart: *NewChart(nil, commands)}
}

func (g *TimingGroup) Kind() Kind { return KindTimingGroup }

// NoInput reports whether the group is tagged to not register player
// input.
func (g *TimingGroup) NoInput() bool {
	for _, t := range g.Types {
		if t == "noinput" {
			return true
		}
	}
	return false
}

// Interval returns (0, 0) for noinput groups so they never extend the
// enclosing chart's duration.
func (g *TimingGroup) Interval() (int, int) {
	if g.NoInput() {
		return 0, 0
	}
	return g.Chart.Interval()
}

func (g *TimingGroup) SyntaxCheck() bool {
	for _, t := range g.Types {
		if !GroupTypes[t] {
			return false
		}
	}
	for _, cmd := range g.Commands {
		if !cmd.SyntaxCheck() {
			return false
		}
	}
	return true
}

// SubSyntaxCheck checks each command within the group individually.
func (g *TimingGroup) SubSyntaxCheck() []CheckResult {
	return g.Chart.SyntaxReport()
}

// boundedCommandsOfKind is the group side of the recursive lookup. A
// noinput group yields nothing when the caller excludes such groups or
// when the group outlasts the enclosing chart's duration bound.
func (g *TimingGroup) boundedCommandsOfKind(kind Kind, nested, excludeNoInput bool, duration int) []Command {
	if g.NoInput() && (excludeNoInput || duration < g.EndTime) {
		return nil
	}
	return g.Chart.CommandsOfKind(kind, nested, excludeNoInput)
}

func (g *TimingGroup) String() string {
	s := fmt.Sprintf("[TimingGroup] %d commands", len(g.Commands))
	if len(g.Types) > 0 {
		s += ", type: " + strings.Join(g.Types, " ")
	}
	return s
}
