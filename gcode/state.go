package gcode

import "regexp"

// Epsilon is the tolerance used when comparing an axis value against
// the last known position for that axis.
const Epsilon = 1e-4

type Motion int

const (
	MotionUnset Motion = iota
	MotionRapid
	MotionLinear
	MotionArcCW
	MotionArcCCW
)

func (m Motion) Mnemonic() string {
	switch m {
	case MotionRapid:
		return "G00"
	case MotionLinear:
		return "G01"
	case MotionArcCW:
		return "G02"
	case MotionArcCCW:
		return "G03"
	}
	return ""
}

type Plane int

const (
	PlaneXY Plane = iota
	PlaneZX
	PlaneYZ
)

type Units int

const (
	UnitsMM Units = iota
	UnitsInch
)

type DistanceMode int

const (
	DistanceAbsolute DistanceMode = iota
	DistanceIncremental
)

type FeedMode int

const (
	FeedUnitsPerMinute FeedMode = iota
	FeedInverseTime
)

// Position tracks the last known value per axis. An axis stays unknown
// until a line carries an explicit coordinate for it.
type Position struct {
	known [3]bool
	value [3]float64
}

func (p Position) Known(axis byte) bool {
	i := axisIndex(upperAxis(axis))
	return i >= 0 && p.known[i]
}

func (p Position) Value(axis byte) (float64, bool) {
	i := axisIndex(upperAxis(axis))
	if i < 0 || !p.known[i] {
		return 0, false
	}
	return p.value[i], true
}

func (p *Position) Set(axis byte, v float64) {
	i := axisIndex(upperAxis(axis))
	if i < 0 {
		return
	}
	p.known[i] = true
	p.value[i] = v
}

// Reset forgets all axes. Called on tool change.
func (p *Position) Reset() {
	*p = Position{}
}

// Redundant reports whether v matches the last known position for the
// axis within Epsilon. Unknown axes are never redundant.
func (p Position) Redundant(axis byte, v float64) bool {
	last, ok := p.Value(axis)
	if !ok {
		return false
	}
	d := v - last
	if d < 0 {
		d = -d
	}
	return d < Epsilon
}

// State is the modal machine state carried between lines. The zero
// value is the power-on default: no motion mode, XY plane, millimeters,
// absolute positioning, units-per-minute feed, position unknown.
type State struct {
	Motion   Motion
	Plane    Plane
	Units    Units
	Distance DistanceMode
	Feed     FeedMode
	Pos      Position
}

func NewState() State { return State{} }

var planeRules = []struct {
	p  Plane
	rx *regexp.Regexp
}{
	{PlaneXY, regexp.MustCompile(`G0*17([^0-9]|$)`)},
	{PlaneZX, regexp.MustCompile(`G0*18([^0-9]|$)`)},
	{PlaneYZ, regexp.MustCompile(`G0*19([^0-9]|$)`)},
}

var unitsRules = []struct {
	u  Units
	rx *regexp.Regexp
}{
	{UnitsInch, regexp.MustCompile(`G0*20([^0-9]|$)`)},
	{UnitsMM, regexp.MustCompile(`G0*21([^0-9]|$)`)},
}

var distanceRules = []struct {
	d  DistanceMode
	rx *regexp.Regexp
}{
	{DistanceAbsolute, regexp.MustCompile(`G0*90([^0-9]|$)`)},
	{DistanceIncremental, regexp.MustCompile(`G0*91([^0-9]|$)`)},
}

var feedRules = []struct {
	f  FeedMode
	rx *regexp.Regexp
}{
	{FeedInverseTime, regexp.MustCompile(`G0*93([^0-9]|$)`)},
	{FeedUnitsPerMinute, regexp.MustCompile(`G0*94([^0-9]|$)`)},
}

// Update returns the state after applying any mode-setting tokens on
// the line. A tool change resets position tracking only; the other
// modal fields keep their values.
func (s State) Update(line string) State {
	if m := matchMotion(line); m != MotionUnset {
		s.Motion = m
	}
	for _, r := range planeRules {
		if r.rx.MatchString(line) {
			s.Plane = r.p
			break
		}
	}
	for _, r := range unitsRules {
		if r.rx.MatchString(line) {
			s.Units = r.u
			break
		}
	}
	for _, r := range distanceRules {
		if r.rx.MatchString(line) {
			s.Distance = r.d
			break
		}
	}
	for _, r := range feedRules {
		if r.rx.MatchString(line) {
			s.Feed = r.f
			break
		}
	}
	if IsToolChange(line) {
		s.Pos.Reset()
	}
	return s
}
