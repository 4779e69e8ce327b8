package game

import "math"

const (
	// graceMs is the fixed judgment grace subtracted from a query time
	// when counting instantaneous notes.
	graceMs = 25
	// highBPMThreshold splits the two timing-resolution tiers, faster
	// songs judge long notes at half the subdivision.
	highBPMThreshold = 255
)

// governingTiming returns the timing breakpoint in effect at start: the
// latest breakpoint at or before it, or the first one when start
// precedes all breakpoints. Nil when the chart has no timings.
func (c *Chart) governingTiming(start int) *Timing {
	if len(c.SortedTimings) == 0 {
		return nil
	}
	sel := c.SortedTimings[0]
	for _, t := range c.SortedTimings[1:] {
		if t.T > start {
			break
		}
		sel = t
	}
	return sel
}

// longNoteCombo returns the judged hit count of a single long note
// under this chart's timing and density. Notes governed by a zero bpm
// or with zero duration contribute nothing.
func (c *Chart) longNoteCombo(note LongNote) int {
	start, end := note.Interval()
	t := c.governingTiming(start)
	if t == nil || t.BPM == 0 || start == end {
		return 0
	}
	bpm := math.Abs(t.BPM)
	judge := 30000 / bpm / c.DensityFactor
	if bpm >= highBPMThreshold {
		judge = 60000 / bpm / c.DensityFactor
	}
	count := int(float64(end-start) / judge)
	switch {
	case count <= 1:
		return 1
	case note.HasHead():
		// the head judgment is absorbed by the preceding connected arc
		return count - 1
	default:
		return count
	}
}

// LongNoteCombo returns the total judged hit count of the given long
// notes.
func (c *Chart) LongNoteCombo(notes []LongNote) int {
	result := 0
	for _, note := range notes {
		result += c.longNoteCombo(note)
	}
	return result
}

// ComboOf returns the maximum combo contributed by one note kind,
// including nested groups. Control kinds contribute nothing.
func (c *Chart) ComboOf(kind Kind) int {
	var combo int
	switch kind {
	case KindTap:
		combo = len(c.taps)
	case KindArcTap:
		combo = len(c.arctaps)
	case KindFlick:
		combo = len(c.flicks)
	case KindHold:
		for _, n := range c.holds {
			combo += c.longNoteCombo(n)
		}
	case KindArc:
		for _, n := range c.connectedArcs {
			combo += c.longNoteCombo(n)
		}
	default:
		return 0
	}
	for _, g := range c.groups {
		combo += g.ComboOf(kind)
	}
	return combo
}

// TotalCombo returns the maximum combo of the chart.
func (c *Chart) TotalCombo() int {
	return c.ComboOf(KindTap) +
		c.ComboOf(KindArcTap) +
		c.ComboOf(KindFlick) +
		c.ComboOf(KindHold) +
		c.ComboOf(KindArc)
}

// TotalComboBefore returns the combo achieved strictly before t.
// Instantaneous notes count once their onset clears the grace offset,
// long notes contribute a fractional share of their combo value.
func (c *Chart) TotalComboBefore(t int) int {
	var result float64
	for _, n := range c.taps {
		if n.T <= t-graceMs {
			result++
		}
	}
	for _, n := range c.arctaps {
		if n.Tn <= t-graceMs {
			result++
		}
	}
	for _, n := range c.flicks {
		if n.T <= t-graceMs {
			result++
		}
	}
	for _, n := range c.holds {
		result += c.longNoteShare(n, n.T1, n.T2, t)
	}
	for _, n := range c.connectedArcs {
		result += c.longNoteShare(n, n.T1, n.T2, t)
	}
	for _, g := range c.groups {
		result += float64(g.TotalComboBefore(t))
	}
	return int(result)
}

func (c *Chart) longNoteShare(note LongNote, t1, t2, t int) float64 {
	if t <= t1 || t1 == t2 {
		return 0
	}
	end := t
	if t2 < end {
		end = t2
	}
	return float64(end-t1) / float64(t2-t1) * float64(c.longNoteCombo(note))
}

// BPMProportion returns, per bpm value, the fraction of the chart's
// duration spent at that bpm. Timing changes inside groups are ignored.
func (c *Chart) BPMProportion() map[float64]float64 {
	result := map[float64]float64{}
	_, duration := c.Interval()
	if duration == 0 {
		return result
	}
	for i, bpm := range c.TimingValues {
		result[bpm] += float64(c.TimingPositions[i+1]-c.TimingPositions[i]) / float64(duration)
	}
	return result
}

// TotalCombo on a noinput group is always zero.
func (g *TimingGroup) TotalCombo() int {
	if g.NoInput() {
		return 0
	}
	return g.Chart.TotalCombo()
}

// ComboOf on a noinput group is always zero.
func (g *TimingGroup) ComboOf(kind Kind) int {
	if g.NoInput() {
		return 0
	}
	return g.Chart.ComboOf(kind)
}

// TotalComboBefore on a noinput group is always zero.
func (g *TimingGroup) TotalComboBefore(t int) int {
	if g.NoInput() {
		return 0
	}
	return g.Chart.TotalComboBefore(t)
}
