package inmtrack

import(
	"fmt"
	"math"
	"strconv"
)

// INM describes a vector track as a list of segments; each is either a straight leg, or a
// turn of some angle at some radius. We don't try to work out the radius the operator drew;
// the format always gets the same nominal radius.
var KFixedTurnRadiusNM = 5000.0 / KMetersPerNM

// Turns smaller than this are dropped.
var KMinTurnDeg = 1.0

type Direction byte
const(
	Left  Direction = 'L'
	Right Direction = 'R'
)

func (d Direction)String() string { return string(rune(d)) }

// A Segment is one of Turn or Straight.
type Segment interface {
	SegType() string          // INM SEG_TYPE: S, L or R
	Params() (float64,float64) // INM PARAM1, PARAM2
	String() string
}

// Turn is a constant-radius turn through AngleDeg degrees.
type Turn struct {
	Direction
	AngleDeg  float64
	RadiusNM  float64
}

// Straight is a straight leg. The distance is in kilometers, even though the turn radius is in
// nautical miles; that's what the historical exports contain.
type Straight struct {
	DistanceKM float64
}

func (t Turn)SegType() string { return t.Direction.String() }
func (t Turn)Params() (float64,float64) { return t.AngleDeg, t.RadiusNM }
func (t Turn)String() string {
	return fmt.Sprintf("%s %s %s", t.Direction, jsFloat(t.AngleDeg), jsFloat(t.RadiusNM))
}

func (s Straight)SegType() string { return "S" }
func (s Straight)Params() (float64,float64) { return s.DistanceKM, 0 }
func (s Straight)String() string { return "S " + jsFloat(s.DistanceKM) }

// Shortest representation that round-trips, which is what the trk_segs text has always had.
func jsFloat(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

// {{{ turnBetween

// turnBetween figures out the turn needed to change heading from alpha to beta. The bool is
// false if the turn is too small to bother with.
func turnBetween(alpha, beta float64) (Turn, bool) {
	delta := math.Abs(alpha - beta)
	if delta < KMinTurnDeg {
		return Turn{}, false
	}

	t := Turn{
		AngleDeg: math.Mod(math.Abs(beta - alpha), 180.0),
		RadiusNM: KFixedTurnRadiusNM,
	}

	if delta < 180.0 {
		if alpha < beta { t.Direction = Right } else { t.Direction = Left }
	} else {
		// The headings straddle north, so the naive direction is backwards
		if alpha < beta { t.Direction = Left } else { t.Direction = Right }
	}

	return t, true
}

// }}}
// {{{ EncodeSegments

// EncodeSegments turns the track into INM vector segments: a turn (from the runway heading,
// for the first leg) onto each leg, followed by the leg itself. Turns and legs are paired up
// off the front of two queues, so when small turns get dropped, the trailing legs that have no
// partner are dropped too. Downstream consumers have always seen it that way.
func EncodeSegments(t Track) []Segment {
	if len(t.Points) < 2 {
		return []Segment{}
	}

	bearings := []float64{}
	straights := []Segment{}
	for i:=1; i<len(t.Points); i++ {
		bearings = append(bearings, Bearing(t.Points[i-1], t.Points[i]))
		straights = append(straights, Straight{DistanceKM: Distance(t.Points[i-1], t.Points[i]) / 1000.0})
	}

	turns := []Segment{}
	for i,beta := range bearings {
		alpha := RunwayHeading(t.RunwayId)
		if i > 0 {
			alpha = bearings[i-1]
		}
		if turn,ok := turnBetween(alpha, beta); ok {
			turns = append(turns, turn)
		}
	}

	segs := []Segment{}
	for len(turns) > 0 && len(straights) > 0 {
		segs = append(segs, turns[0], straights[0])
		turns, straights = turns[1:], straights[1:]
	}

	return segs
}

// }}}

// SegmentStrings renders segments in the INM trk_segs text form, one per line.
func SegmentStrings(segs []Segment) []string {
	ret := []string{}
	for _,s := range segs {
		ret = append(ret, s.String())
	}
	return ret
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
