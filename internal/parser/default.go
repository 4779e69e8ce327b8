package parser

import (
	"fmt"
	"io/ioutil"
	"strconv"
	"strings"

	"git.lost.host/meutraa/affstat/internal/game"
)

type DefaultParser struct{}

func (p *DefaultParser) Parse(file string) (*game.Chart, error) {
	data, err := ioutil.ReadFile(file)
	if nil != err {
		return nil, err
	}
	return Parse(string(data))
}

// Parse decodes full chart text into a Chart. Lines up to and
// including the first line equal to "-" are headers, the rest is one
// command stream. There is no partial result, any grammar or decode
// error fails the whole parse.
func Parse(text string) (*game.Chart, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r", ""), "\n")

	var headers []game.Header
	body := -1
	for i, line := range lines {
		if line == "-" {
			body = i + 1
			break
		}
		k, v, err := splitHeader(line, i+1)
		if nil != err {
			return nil, err
		}
		headers = append(headers, game.Header{Key: k, Value: v})
	}
	if body < 0 {
		return nil, fmt.Errorf("missing \"-\" header terminator")
	}

	s := newScanner(strings.Join(lines[body:], "\n"), body+1)
	raw, err := s.parseSequence(0, true)
	if nil != err {
		return nil, err
	}
	commands, err := decodeAll(raw, false)
	if nil != err {
		return nil, err
	}
	return game.NewChart(headers, commands), nil
}

func splitHeader(line string, lineNo int) (string, string, error) {
	parts := strings.SplitN(line, ":", 2)
	if len(parts) != 2 || parts[0] == "" {
		return "", "", &ParseError{Line: lineNo, Col: 1, Msg: fmt.Sprintf("malformed header %q", line)}
	}
	return parts[0], parts[1], nil
}

func decodeAll(raw []rawCommand, inGroup bool) ([]game.Command, error) {
	commands := make([]game.Command, 0, len(raw))
	for _, rc := range raw {
		cmd, err := decode(rc, inGroup)
		if nil != err {
			return nil, err
		}
		commands = append(commands, cmd)
	}
	return commands, nil
}

// decode dispatches a raw command to its typed form. An unrecognized
// tag is fatal.
func decode(rc rawCommand, inGroup bool) (game.Command, error) {
	switch rc.tag {
	case tagTap:
		return decodeTap(rc)
	case tagHold:
		return decodeHold(rc)
	case tagArc:
		return decodeArc(rc)
	case tagFlick:
		return decodeFlick(rc)
	case tagTiming:
		return decodeTiming(rc, inGroup)
	case tagCamera:
		return decodeCamera(rc)
	case tagSceneControl:
		return decodeSceneControl(rc)
	case tagTimingGroup:
		inner, err := decodeAll(rc.group, true)
		if nil != err {
			return nil, err
		}
		return game.NewTimingGroup(rc.groupTags, inner), nil
	}
	return nil, fmt.Errorf("unknown command type: %q", rc.tag)
}

func decodeTap(rc rawCommand) (game.Command, error) {
	if err := rc.arity(2); nil != err {
		return nil, err
	}
	t, err := rc.intAt(0)
	if nil != err {
		return nil, err
	}
	lane, err := rc.floatAt(1)
	if nil != err {
		return nil, err
	}
	return &game.Tap{T: t, Lane: lane}, nil
}

func decodeHold(rc rawCommand) (game.Command, error) {
	if err := rc.arity(3); nil != err {
		return nil, err
	}
	t1, err := rc.intAt(0)
	if nil != err {
		return nil, err
	}
	t2, err := rc.intAt(1)
	if nil != err {
		return nil, err
	}
	lane, err := rc.floatAt(2)
	if nil != err {
		return nil, err
	}
	return &game.Hold{T1: t1, T2: t2, Lane: lane}, nil
}

// decodeArc also derives the arc's arctap children. This is the only
// place an arctap is given its color and time window, both inherited
// from the owning arc.
func decodeArc(rc rawCommand) (game.Command, error) {
	if err := rc.arity(10); nil != err {
		return nil, err
	}
	t1, err := rc.intAt(0)
	if nil != err {
		return nil, err
	}
	t2, err := rc.intAt(1)
	if nil != err {
		return nil, err
	}
	x1, err := rc.floatAt(2)
	if nil != err {
		return nil, err
	}
	x2, err := rc.floatAt(3)
	if nil != err {
		return nil, err
	}
	easing, err := rc.wordAt(4)
	if nil != err {
		return nil, err
	}
	y1, err := rc.floatAt(5)
	if nil != err {
		return nil, err
	}
	y2, err := rc.floatAt(6)
	if nil != err {
		return nil, err
	}
	colorIndex, err := rc.intAt(7)
	if nil != err {
		return nil, err
	}
	hitSound, err := rc.wordAt(8)
	if nil != err {
		return nil, err
	}
	skyword, err := rc.wordAt(9)
	if nil != err {
		return nil, err
	}
	var skyline game.Skyline
	switch skyword {
	case wordSkylineTrue:
		skyline = game.SkylineTrue
	case wordSkylineFalse:
		skyline = game.SkylineFalse
	case wordSkylineDesignant:
		skyline = game.SkylineDesignant
	default:
		return nil, fmt.Errorf("arc: unknown skyline judgment %q", skyword)
	}
	color := game.ColorOf(colorIndex)
	arctaps := make([]*game.ArcTap, 0, len(rc.arcTaps))
	for _, arg := range rc.arcTaps {
		if arg.isWord() || arg.IsFloat {
			return nil, fmt.Errorf("arctap: expected integer timestamp")
		}
		arctaps = append(arctaps, &game.ArcTap{
			Tn:          arg.Int,
			WindowStart: t1,
			WindowEnd:   t2,
			Color:       color,
		})
	}
	if len(arctaps) == 0 {
		arctaps = nil
	}
	return &game.Arc{
		T1: t1, T2: t2,
		X1: x1, X2: x2,
		Easing: easing,
		Y1: y1, Y2: y2,
		Color:    color,
		HitSound: hitSound,
		Skyline:  skyline,
		ArcTaps:  arctaps,
	}, nil
}

func decodeFlick(rc rawCommand) (game.Command, error) {
	if err := rc.arity(5); nil != err {
		return nil, err
	}
	t, err := rc.intAt(0)
	if nil != err {
		return nil, err
	}
	var f [4]float64
	for i := range f {
		if f[i], err = rc.floatAt(i + 1); nil != err {
			return nil, err
		}
	}
	return &game.Flick{T: t, X: f[0], Y: f[1], VX: f[2], VY: f[3]}, nil
}

func decodeTiming(rc rawCommand, inGroup bool) (game.Command, error) {
	if err := rc.arity(3); nil != err {
		return nil, err
	}
	t, err := rc.intAt(0)
	if nil != err {
		return nil, err
	}
	bpm, err := rc.floatAt(1)
	if nil != err {
		return nil, err
	}
	beats, err := rc.floatAt(2)
	if nil != err {
		return nil, err
	}
	return &game.Timing{T: t, BPM: bpm, Beats: beats, InGroup: inGroup}, nil
}

func decodeCamera(rc rawCommand) (game.Command, error) {
	if err := rc.arity(9); nil != err {
		return nil, err
	}
	t, err := rc.intAt(0)
	if nil != err {
		return nil, err
	}
	var f [6]float64
	for i := range f {
		if f[i], err = rc.floatAt(i + 1); nil != err {
			return nil, err
		}
	}
	easing, err := rc.wordAt(7)
	if nil != err {
		return nil, err
	}
	lasting, err := rc.intAt(8)
	if nil != err {
		return nil, err
	}
	return &game.Camera{
		T:           t,
		Transverse:  f[0],
		BottomZoom:  f[1],
		LineZoom:    f[2],
		SteadyAngle: f[3],
		TopZoom:     f[4],
		Angle:       f[5],
		Easing:      easing,
		LastingTime: lasting,
	}, nil
}

func decodeSceneControl(rc rawCommand) (game.Command, error) {
	if len(rc.args) < 2 || len(rc.args) > 4 {
		return nil, fmt.Errorf("%s: expected 2 to 4 arguments, got %d", rc.tag, len(rc.args))
	}
	t, err := rc.intAt(0)
	if nil != err {
		return nil, err
	}
	name, err := rc.wordAt(1)
	if nil != err {
		return nil, err
	}
	sc := &game.SceneControl{T: t, Name: name}
	if len(rc.args) > 2 {
		p1, err := rc.floatAt(2)
		if nil != err {
			return nil, err
		}
		sc.Param1 = &p1
	}
	if len(rc.args) > 3 {
		p2, err := rc.intAt(3)
		if nil != err {
			return nil, err
		}
		sc.Param2 = &p2
	}
	return sc, nil
}

func (rc rawCommand) arity(n int) error {
	if len(rc.args) != n {
		return fmt.Errorf("%s: expected %d arguments, got %d", rc.tag, n, len(rc.args))
	}
	return nil
}

// intAt requires an integer literal. A float literal in an integer
// slot is a decode error, the typed model has nowhere to hold it.
func (rc rawCommand) intAt(i int) (int, error) {
	arg := rc.args[i]
	if arg.isWord() || arg.IsFloat {
		return 0, fmt.Errorf("%s: argument %d: expected integer", rc.tag, i+1)
	}
	return arg.Int, nil
}

// floatAt accepts either numeric literal form.
func (rc rawCommand) floatAt(i int) (float64, error) {
	arg := rc.args[i]
	if arg.isWord() {
		return 0, fmt.Errorf("%s: argument %d: expected number", rc.tag, i+1)
	}
	return arg.num(), nil
}

func (rc rawCommand) wordAt(i int) (string, error) {
	arg := rc.args[i]
	if arg.isWord() {
		return arg.Word, nil
	}
	// a few charts write numeric hit sound slots, keep the literal text
	if arg.IsFloat {
		return strconv.FormatFloat(arg.Float, 'f', -1, 64), nil
	}
	return strconv.Itoa(arg.Int), nil
}
