package game

import (
	"fmt"
	"strings"
)

// Kind identifies one of the nine chart command types.
type Kind int

const (
	KindTap Kind = iota
	KindHold
	KindArc
	KindArcTap
	KindFlick
	KindTiming
	KindCamera
	KindSceneControl
	KindTimingGroup
)

// Command is a single note or control statement of a chart.
type Command interface {
	Kind() Kind

	// Interval returns the start and end time of the command in ms.
	Interval() (int, int)

	// SyntaxCheck reports whether the command's own values are well
	// formed. It is advisory, the parser never calls it and a chart can
	// be built from commands that fail it.
	SyntaxCheck() bool
}

// LongNote is a durational note judged in bpm-derived subdivisions,
// either a Hold or an Arc.
type LongNote interface {
	Command
	HasHead() bool
}

// Color of an arc.
type Color int

const (
	ColorError Color = -1
	ColorBlue  Color = 0
	ColorRed   Color = 1
	ColorGreen Color = 2
	ColorAlpha Color = 3
)

// ColorOf maps a raw color index to a Color. Anything outside the
// defined range resolves to ColorError instead of failing.
func ColorOf(n int) Color {
	if n < int(ColorBlue) || n > int(ColorAlpha) {
		return ColorError
	}
	return Color(n)
}

func (c Color) String() string {
	switch c {
	case ColorBlue:
		return "Blue"
	case ColorRed:
		return "Red"
	case ColorGreen:
		return "Green"
	case ColorAlpha:
		return "Alpha"
	}
	return "Error"
}

// Skyline judgment of an arc.
type Skyline int

const (
	SkylineFalse Skyline = iota
	SkylineTrue
	SkylineDesignant
)

// Token sets the advisory checks validate against.
var (
	Easings = map[string]bool{
		"b": true, "s": true, "si": true, "so": true,
		"sisi": true, "soso": true, "siso": true, "sosi": true,
	}
	CameraEasings = map[string]bool{
		"qi": true, "qo": true, "l": true, "s": true, "reset": true,
	}
	HitSounds = map[string]bool{
		"none": true, "full": true, "incremental": true,
		"glass_wav": true, "voice_wav": true, "kick_wav": true,
	}
	SceneControlKinds = map[string]bool{
		"trackhide": true, "trackshow": true, "trackdisplay": true,
		"redline": true, "arcahvdistort": true, "arcahvdebris": true,
		"hidegroup": true, "enwidenlanes": true, "enwidencamera": true,
	}
	GroupTypes = map[string]bool{
		"noinput": true, "fadingholds": true, "anglex": true, "angley": true,
	}
)

// ValidHitSound reports whether s is a known hit sound or a custom
// *_wav sample reference.
func ValidHitSound(s string) bool {
	return HitSounds[s] || (strings.HasSuffix(s, "_wav") && len(s) > len("_wav"))
}

// Tap is a ground tap note.
type Tap struct {
	T    int
	Lane float64
}

func (n *Tap) Kind() Kind           { return KindTap }
func (n *Tap) Interval() (int, int) { return n.T, n.T }
func (n *Tap) SyntaxCheck() bool    { return true }

func (n *Tap) String() string {
	return fmt.Sprintf("[%d Tap] on lane %v", n.T, n.Lane)
}

// Hold is a ground hold note.
type Hold struct {
	T1, T2 int
	Lane   float64
}

func (n *Hold) Kind() Kind           { return KindHold }
func (n *Hold) Interval() (int, int) { return n.T1, n.T2 }
func (n *Hold) HasHead() bool        { return true }

func (n *Hold) SyntaxCheck() bool { return n.T1 < n.T2 }

func (n *Hold) String() string {
	return fmt.Sprintf("[%d -> %d Hold] on lane %v", n.T1, n.T2, n.Lane)
}

// Arc is a curved note, either a judged arc or a skyline carrying
// arctaps.
type Arc struct {
	T1, T2   int
	X1, X2   float64
	Easing   string
	Y1, Y2   float64
	Color    Color
	HitSound string
	Skyline  Skyline
	ArcTaps  []*ArcTap

	// noHead is set by the connectivity sweep when this arc continues a
	// previous one, absorbing its head judgment. The zero value keeps
	// the head.
	noHead bool
}

func (n *Arc) Kind() Kind           { return KindArc }
func (n *Arc) Interval() (int, int) { return n.T1, n.T2 }
func (n *Arc) HasHead() bool        { return !n.noHead }

// IsSkyline reports whether the arc is a skyline. A non-empty arctap
// list forces skyline regardless of the written judgment token.
func (n *Arc) IsSkyline() bool {
	return n.Skyline != SkylineFalse || len(n.ArcTaps) > 0
}

func (n *Arc) SyntaxCheck() bool {
	ordered := n.T1 <= n.T2 || (n.T1 > n.T2 && n.IsSkyline())
	return ordered &&
		n.T1 >= 0 && n.T2 >= 0 &&
		n.Color != ColorError &&
		Easings[n.Easing] &&
		ValidHitSound(n.HitSound)
}

func (n *Arc) String() string {
	pos := fmt.Sprintf("from (%v, %v) to (%v, %v)", n.X1, n.Y1, n.X2, n.Y2)
	if n.IsSkyline() {
		s := fmt.Sprintf("[%d -> %d Skyline] %s", n.T1, n.T2, pos)
		if n.Skyline == SkylineDesignant {
			s = fmt.Sprintf("[%d -> %d Designant Skyline] %s", n.T1, n.T2, pos)
		}
		if len(n.ArcTaps) > 0 {
			s += fmt.Sprintf(", %d arctaps", len(n.ArcTaps))
		}
		return s
	}
	return fmt.Sprintf("[%d -> %d %v Arc] %s", n.T1, n.T2, n.Color, pos)
}

// ArcTap is a tap anchored to a point along its owning skyline arc.
// Only the parser constructs these, copying the owning arc's time
// window and color.
type ArcTap struct {
	Tn                     int
	WindowStart, WindowEnd int
	Color                  Color
}

func (n *ArcTap) Kind() Kind           { return KindArcTap }
func (n *ArcTap) Interval() (int, int) { return n.Tn, n.Tn }

func (n *ArcTap) SyntaxCheck() bool {
	return n.WindowStart <= n.Tn && n.Tn <= n.WindowEnd
}

func (n *ArcTap) String() string {
	return fmt.Sprintf("[%d ArcTap] on arc (%d -> %d)", n.Tn, n.WindowStart, n.WindowEnd)
}

// Flick is a directional swipe note.
type Flick struct {
	T      int
	X, Y   float64
	VX, VY float64
}

func (n *Flick) Kind() Kind           { return KindFlick }
func (n *Flick) Interval() (int, int) { return n.T, n.T }
func (n *Flick) SyntaxCheck() bool    { return true }

func (n *Flick) String() string {
	return fmt.Sprintf("[%d Flick] at (%v, %v) with velocity (%v, %v)", n.T, n.X, n.Y, n.VX, n.VY)
}

// Timing changes the bpm and beats per bar from its time onward.
type Timing struct {
	T       int
	BPM     float64
	Beats   float64
	InGroup bool
}

func (t *Timing) Kind() Kind           { return KindTiming }
func (t *Timing) Interval() (int, int) { return t.T, t.T }

// Grouped timings are exempt from both rules. The zero-time bpm rule is
// asymmetric on purpose, it mirrors the target game engine.
func (t *Timing) SyntaxCheck() bool {
	return (t.Beats != 0 || t.InGroup) &&
		(t.BPM >= 0 || t.T != 0 || t.InGroup)
}

func (t *Timing) String() string {
	return fmt.Sprintf("[%d Timing] change bpm to %v with %v beats", t.T, t.BPM, t.Beats)
}

// Camera moves the viewport over LastingTime ms.
type Camera struct {
	T           int
	Transverse  float64
	BottomZoom  float64
	LineZoom    float64
	SteadyAngle float64
	TopZoom     float64
	Angle       float64
	Easing      string
	LastingTime int
}

func (c *Camera) Kind() Kind           { return KindCamera }
func (c *Camera) Interval() (int, int) { return c.T, c.T + c.LastingTime }
func (c *Camera) SyntaxCheck() bool    { return CameraEasings[c.Easing] }

func (c *Camera) String() string {
	return fmt.Sprintf("[%d Camera] zoom: (%v, %v, %v), angle: (%v, %v, %v), lasting: %d",
		c.T, c.Transverse, c.BottomZoom, c.LineZoom, c.SteadyAngle, c.TopZoom, c.Angle, c.LastingTime)
}

// SceneControl triggers a performance effect. The parameter shape
// depends on the kind, see SyntaxCheck.
type SceneControl struct {
	T      int
	Name   string
	Param1 *float64
	Param2 *int
}

func (s *SceneControl) Kind() Kind           { return KindSceneControl }
func (s *SceneControl) Interval() (int, int) { return s.T, s.T }

func (s *SceneControl) SyntaxCheck() bool {
	switch s.Name {
	case "trackhide", "trackshow", "arcahvdistort":
		return s.Param1 == nil && s.Param2 == nil
	case "trackdisplay", "redline", "arcahvdebris":
		return s.Param1 != nil && s.Param2 != nil
	case "hidegroup", "enwidenlanes", "enwidencamera":
		return s.Param1 != nil && s.Param2 != nil && (*s.Param2 == 0 || *s.Param2 == 1)
	}
	return false
}

func (s *SceneControl) String() string {
	return fmt.Sprintf("[%d SceneControl] %s", s.T, s.Name)
}
