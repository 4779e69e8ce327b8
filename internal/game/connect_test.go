package game

import "testing"

func arc(t1, t2 int, x1, x2, y1, y2 float64) *Arc {
	return &Arc{
		T1: t1, T2: t2,
		X1: x1, X2: x2,
		Easing: "s",
		Y1: y1, Y2: y2,
		Color:    ColorBlue,
		HitSound: "none",
		Skyline:  SkylineFalse,
	}
}

var connectTests = []struct {
	name    string
	first   *Arc
	second  *Arc
	hasHead bool
}{
	{
		name:    "meet within window",
		first:   arc(0, 1000, 0.00, 0.30, 0.00, 0.50),
		second:  arc(1005, 2000, 0.30, 1.00, 0.50, 0.00),
		hasHead: false,
	},
	{
		name:    "too late",
		first:   arc(0, 1000, 0.00, 0.30, 0.00, 0.50),
		second:  arc(1020, 2000, 0.30, 1.00, 0.50, 0.00),
		hasHead: true,
	},
	{
		name:    "window lower bound excluded",
		first:   arc(0, 1000, 0.00, 0.30, 0.00, 0.50),
		second:  arc(1010, 2000, 0.30, 1.00, 0.50, 0.00),
		hasHead: true,
	},
	{
		name:    "x within tolerance",
		first:   arc(0, 1000, 0.00, 0.30, 0.00, 0.50),
		second:  arc(1000, 2000, 0.35, 1.00, 0.50, 0.00),
		hasHead: false,
	},
	{
		name:    "x out of tolerance",
		first:   arc(0, 1000, 0.00, 0.30, 0.00, 0.50),
		second:  arc(1000, 2000, 0.45, 1.00, 0.50, 0.00),
		hasHead: true,
	},
	{
		name:    "y mismatch",
		first:   arc(0, 1000, 0.00, 0.30, 0.00, 0.50),
		second:  arc(1000, 2000, 0.30, 1.00, 0.25, 0.00),
		hasHead: true,
	},
}

func TestArcConnectivity(t *testing.T) {
	for _, test := range connectTests {
		NewChart(nil, []Command{test.first, test.second})
		if test.second.HasHead() != test.hasHead {
			t.Log("test    ", test.name)
			t.Log("hasHead ", test.second.HasHead())
			t.Log("expected", test.hasHead)
			t.Fail()
		}
		if !test.first.HasHead() {
			t.Log("test    ", test.name)
			t.Log("first arc lost its head")
			t.Fail()
		}
		// reset for reuse, the sweep only ever clears
		test.second.noHead = false
	}
}

func TestSkylineArcsAreNotConnected(t *testing.T) {
	first := arc(0, 1000, 0.00, 0.30, 0.00, 0.50)
	second := arc(1005, 2000, 0.30, 1.00, 0.50, 0.00)
	second.Skyline = SkylineTrue
	NewChart(nil, []Command{first, second})
	if !second.HasHead() {
		t.Log("skyline arc must not join the sweep")
		t.Fail()
	}
}
