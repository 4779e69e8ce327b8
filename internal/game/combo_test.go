package game

import "testing"

func timing(t int, bpm float64) *Timing {
	return &Timing{T: t, BPM: bpm, Beats: 4}
}

var longNoteTests = []struct {
	name    string
	bpm     float64
	density string
	hold    *Hold
	combo   int
}{
	// judge duration 60000/255 = 235.29ms, 1000ms -> 4 hits, head absorbed
	{name: "high bpm tier", bpm: 255, density: "1.0", hold: &Hold{T1: 0, T2: 1000, Lane: 1}, combo: 3},
	// judge duration 30000/120/0.8 = 312.5ms, 1000ms -> 3 hits
	{name: "low bpm tier with density", bpm: 120, density: "0.8", hold: &Hold{T1: 2000, T2: 3000, Lane: 1}, combo: 2},
	// reverse scroll uses the duration magnitude
	{name: "negative bpm", bpm: -120, density: "1.0", hold: &Hold{T1: 2000, T2: 3000, Lane: 1}, combo: 3},
	{name: "zero bpm skips", bpm: 0, density: "1.0", hold: &Hold{T1: 0, T2: 1000, Lane: 1}, combo: 0},
	// 100ms / 250ms -> count 0 -> still one judged hit
	{name: "short hold", bpm: 120, density: "1.0", hold: &Hold{T1: 0, T2: 100, Lane: 1}, combo: 1},
	{name: "zero duration skips", bpm: 120, density: "1.0", hold: &Hold{T1: 500, T2: 500, Lane: 1}, combo: 0},
}

func TestLongNoteCombo(t *testing.T) {
	for _, test := range longNoteTests {
		headers := []Header{{Key: "TimingPointDensityFactor", Value: test.density}}
		chart := NewChart(headers, []Command{timing(0, test.bpm), test.hold})
		if combo := chart.ComboOf(KindHold); combo != test.combo {
			t.Log("test    ", test.name)
			t.Log("combo   ", combo)
			t.Log("expected", test.combo)
			t.Fail()
		}
	}
}

func TestLongNoteComboWithoutTimings(t *testing.T) {
	chart := NewChart(nil, []Command{&Hold{T1: 0, T2: 1000, Lane: 1}})
	if combo := chart.ComboOf(KindHold); combo != 0 {
		t.Log("combo", combo)
		t.Fail()
	}
}

func TestHeadlessArcScoresInFull(t *testing.T) {
	first := arc(0, 1000, 0.00, 1.00, 0.00, 0.00)
	second := arc(1000, 2000, 1.00, 0.00, 0.00, 1.00)
	chart := NewChart(nil, []Command{timing(0, 120), first, second})
	// judge duration 250ms, both arcs 1000ms -> count 4 each;
	// first keeps its head (3), second is a continuation (4)
	if combo := chart.ComboOf(KindArc); combo != 7 {
		t.Log("combo", combo)
		t.Fail()
	}
}

func TestNoInputGroup(t *testing.T) {
	group := NewTimingGroup([]string{"noinput"}, []Command{
		&Timing{T: 0, BPM: 126, Beats: 4, InGroup: true},
		&Tap{T: 5000, Lane: 1},
	})
	chart := NewChart(nil, []Command{timing(0, 120), &Tap{T: 1000, Lane: 2}, group})

	if start, end := group.Interval(); start != 0 || end != 0 {
		t.Log("interval", start, end)
		t.Fail()
	}
	if chart.EndTime != 1000 {
		t.Log("endTime", chart.EndTime)
		t.Fail()
	}
	if combo := chart.ComboOf(KindTap); combo != 1 {
		t.Log("tap combo", combo)
		t.Fail()
	}
	if combo := chart.TotalComboBefore(99999); combo != 1 {
		t.Log("combo before", combo)
		t.Fail()
	}
	if combo := group.TotalCombo(); combo != 0 {
		t.Log("group total", combo)
		t.Fail()
	}
}

func TestTaggedGroupCountsInFull(t *testing.T) {
	group := NewTimingGroup([]string{"fadingholds"}, []Command{
		&Timing{T: 0, BPM: 252, Beats: 4, InGroup: true},
		&Tap{T: 2380, Lane: 4},
		&Hold{T1: 2856, T2: 3333, Lane: 2},
	})
	chart := NewChart(nil, []Command{timing(0, 126), group})
	if combo := chart.ComboOf(KindTap); combo != 1 {
		t.Log("tap combo", combo)
		t.Fail()
	}
	// group hold judged under the group's own 252 bpm: 477ms / 119.05ms
	// -> 4 hits, minus the head -> 3
	if combo := chart.ComboOf(KindHold); combo != 3 {
		t.Log("hold combo", combo)
		t.Fail()
	}
}

func TestTotalComboBeforeEndMatchesTotal(t *testing.T) {
	chart := NewChart(nil, []Command{
		timing(0, 120),
		&Tap{T: 1000, Lane: 2},
		&Flick{T: 1500, X: 0.5, Y: 0.5, VX: 1, VY: 0},
		&Hold{T1: 2000, T2: 5000, Lane: 1},
	})
	total := chart.TotalCombo()
	if before := chart.TotalComboBefore(chart.EndTime); before != total {
		t.Log("before  ", before)
		t.Log("total   ", total)
		t.Fail()
	}
}

func TestTotalComboBeforeFractionalShare(t *testing.T) {
	chart := NewChart(nil, []Command{
		timing(0, 120),
		&Hold{T1: 0, T2: 1000, Lane: 1}, // 4 hits, head absorbed -> 3
	})
	// halfway through the hold: 0.5 * 3 = 1.5, truncated
	if combo := chart.TotalComboBefore(500); combo != 1 {
		t.Log("combo", combo)
		t.Fail()
	}
	// grace offset: a tap 24ms before t has not been judged yet
	chart = NewChart(nil, []Command{timing(0, 120), &Tap{T: 976, Lane: 1}})
	if combo := chart.TotalComboBefore(1000); combo != 0 {
		t.Log("combo", combo)
		t.Fail()
	}
	chart = NewChart(nil, []Command{timing(0, 120), &Tap{T: 975, Lane: 1}})
	if combo := chart.TotalComboBefore(1000); combo != 1 {
		t.Log("combo", combo)
		t.Fail()
	}
}

func TestSkylineDerivation(t *testing.T) {
	// a written "false" with arctaps still resolves to skyline
	withTaps := arc(0, 1000, 0.00, 1.00, 0.00, 0.00)
	withTaps.ArcTaps = []*ArcTap{{Tn: 500, WindowStart: 0, WindowEnd: 1000, Color: ColorBlue}}
	if !withTaps.IsSkyline() {
		t.Log("arctap list must force skyline")
		t.Fail()
	}
	designant := arc(0, 1000, 0.00, 1.00, 0.00, 0.00)
	designant.Skyline = SkylineDesignant
	if !designant.IsSkyline() {
		t.Log("designant must be skyline")
		t.Fail()
	}

	chart := NewChart(nil, []Command{timing(0, 120), withTaps})
	if combo := chart.ComboOf(KindArcTap); combo != 1 {
		t.Log("arctap combo", combo)
		t.Fail()
	}
	// a skyline never joins the connected arc list
	if combo := chart.ComboOf(KindArc); combo != 0 {
		t.Log("arc combo", combo)
		t.Fail()
	}
}

func TestBPMProportion(t *testing.T) {
	chart := NewChart(nil, []Command{
		timing(0, 120),
		timing(2000, 240),
		&Tap{T: 4000, Lane: 1},
	})
	prop := chart.BPMProportion()
	if len(prop) != 2 || prop[120] != 0.5 || prop[240] != 0.5 {
		t.Log("proportion", prop)
		t.Fail()
	}
}

func TestCommandsOfKind(t *testing.T) {
	skyline := arc(2000, 3000, 0.25, 0.75, 1.00, 1.00)
	skyline.Skyline = SkylineTrue
	skyline.ArcTaps = []*ArcTap{
		{Tn: 2000, WindowStart: 2000, WindowEnd: 3000, Color: ColorBlue},
		{Tn: 2500, WindowStart: 2000, WindowEnd: 3000, Color: ColorBlue},
	}
	inRange := NewTimingGroup([]string{"noinput"}, []Command{&Tap{T: 500, Lane: 1}})
	tagged := NewTimingGroup([]string{"anglex"}, []Command{&Tap{T: 700, Lane: 2}})
	chart := NewChart(nil, []Command{
		timing(0, 120),
		&Tap{T: 1000, Lane: 2},
		skyline,
		inRange,
		tagged,
	})

	if taps := chart.CommandsOfKind(KindTap, false, false); len(taps) != 1 {
		t.Log("top level taps", len(taps))
		t.Fail()
	}
	if taps := chart.CommandsOfKind(KindTap, true, false); len(taps) != 3 {
		t.Log("nested taps", len(taps))
		t.Fail()
	}
	if taps := chart.CommandsOfKind(KindTap, true, true); len(taps) != 2 {
		t.Log("nested taps excluding noinput", len(taps))
		t.Fail()
	}
	if arctaps := chart.CommandsOfKind(KindArcTap, false, false); len(arctaps) != 2 {
		t.Log("arctaps", len(arctaps))
		t.Fail()
	}
}

func TestLateNoInputGroupIsSkipped(t *testing.T) {
	// the group outlasts the enclosing chart's duration, so even a
	// non-excluding lookup skips it
	late := NewTimingGroup([]string{"noinput"}, []Command{&Tap{T: 99999, Lane: 1}})
	chart := NewChart(nil, []Command{timing(0, 120), &Tap{T: 1000, Lane: 2}, late})
	if taps := chart.CommandsOfKind(KindTap, true, false); len(taps) != 1 {
		t.Log("nested taps", len(taps))
		t.Fail()
	}
}
