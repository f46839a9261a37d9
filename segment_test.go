package inmtrack

// go test -v github.com/skypies/inmtrack

import(
	"testing"

	"github.com/skypies/geo"
)

var(
	oneDegreeKM = Distance(geo.Latlong{0,0}, geo.Latlong{0,1}) / 1000.0
	wrapEnd = Destination(geo.Latlong{0,0}, 100000, 10) // 100KM out on a heading of 10
)

func segsMatch(t *testing.T, name string, expected, actual []Segment) {
	t.Helper()
	if len(expected) != len(actual) {
		t.Errorf("%s: expected %d segs, got %d: %v", name, len(expected), len(actual),
			SegmentStrings(actual))
		return
	}
	for i := range expected {
		switch e := expected[i].(type) {
		case Turn:
			a,ok := actual[i].(Turn)
			if !ok {
				t.Errorf("%s: seg[%d] expected turn, got %s", name, i, actual[i])
			} else if a.Direction != e.Direction || !near(a.AngleDeg, e.AngleDeg, 1e-9) ||
				a.RadiusNM != KFixedTurnRadiusNM {
				t.Errorf("%s: seg[%d] expected %s, got %s", name, i, e, a)
			}
		case Straight:
			a,ok := actual[i].(Straight)
			if !ok {
				t.Errorf("%s: seg[%d] expected straight, got %s", name, i, actual[i])
			} else if !near(a.DistanceKM, e.DistanceKM, 1e-9) {
				t.Errorf("%s: seg[%d] expected %s, got %s", name, i, e, a)
			}
		}
	}
}

func TestEncodeSegments(t *testing.T) {
	r := KFixedTurnRadiusNM

	tests := []struct {
		Name      string
		Track
		Expected  []Segment
	}{
		{"empty", Track{RunwayId:"04L"}, []Segment{}},
		{"single point", Track{RunwayId:"04L", Points:[]geo.Latlong{{0,0}}}, []Segment{}},

		// Two points: one turn off the runway heading, one leg
		{"two points", Track{RunwayId:"00", Points:[]geo.Latlong{{0,0},{0,1}}},
			[]Segment{ Turn{Right, 90, r}, Straight{oneDegreeKM} },
		},

		// East, then north. Runway heading zero, so right onto east, then left onto north.
		{"east then north", Track{RunwayId:"00", Points:[]geo.Latlong{{0,0},{0,1},{1,1}}},
			[]Segment{ Turn{Right, 90, r}, Straight{oneDegreeKM}, Turn{Left, 90, r}, Straight{oneDegreeKM} },
		},

		// Straight out along the runway heading; every turn is negligible, so no turns get
		// emitted, and therefore no legs either.
		{"no turns", Track{RunwayId:"09", Points:[]geo.Latlong{{0,0},{0,1},{0,2}}},
			[]Segment{},
		},

		// First turn negligible; the remaining turn pairs up with the *first* leg, and the
		// second leg is dropped.
		{"drain shorter queue", Track{RunwayId:"09R", Points:[]geo.Latlong{{0,0},{0,1},{1,1}}},
			[]Segment{ Turn{Left, 90, r}, Straight{oneDegreeKM} },
		},

		// Runway 36 (north), turning onto 10 degrees or so; the headings straddle north, and
		// the magnitude is taken mod 180 without unwrapping.
		{"wraparound", Track{RunwayId:"36", Points:[]geo.Latlong{{0,0}, wrapEnd}},
			[]Segment{ Turn{Right, 170, r}, Straight{100.0} },
		},

		// Runway id without a numeric heading is treated as heading zero
		{"junk runway", Track{RunwayId:"X", Points:[]geo.Latlong{{0,0},{0,1}}},
			[]Segment{ Turn{Right, 90, r}, Straight{oneDegreeKM} },
		},
	}

	for _,test := range tests {
		segsMatch(t, test.Name, test.Expected, EncodeSegments(test.Track))
	}
}

func TestEncodeSegmentsTwoPointsAtMostOneTurn(t *testing.T) {
	for _,rwy := range []string{"00", "04L", "08R", "22L", "26R", "36"} {
		for _,end := range []geo.Latlong{{0,1}, {1,0}, {-1,0}, {0,-1}, {1,1}} {
			segs := EncodeSegments(Track{RunwayId:rwy, Points:[]geo.Latlong{{0,0}, end}})
			if len(segs) != 0 && len(segs) != 2 {
				t.Errorf("rwy %s, end %v: got %d segs", rwy, end, len(segs))
				continue
			}
			if len(segs) == 2 {
				if _,ok := segs[0].(Turn); !ok { t.Errorf("rwy %s: seg[0] not a turn", rwy) }
				if _,ok := segs[1].(Straight); !ok { t.Errorf("rwy %s: seg[1] not a straight", rwy) }
			}
		}
	}
}

func TestTurnBetween(t *testing.T) {
	tests := []struct {
		Alpha,Beta  float64
		Ok          bool
		Dir         Direction
		Angle       float64
	}{
		{  0,  90, true, Right,  90},
		{ 90,   0, true, Left,   90},
		{ 40,  40.5, false, 0,    0},
		{ 40,  39.01, false, 0,   0},
		{ 40,  39, true, Left,    1},
		{350,  10, true, Right, 160},
		{ 10, 350, true, Left,  160},
		{  0, 180, true, Left,    0},
		{ 90, 269, true, Right, 179},
	}

	for _,test := range tests {
		turn,ok := turnBetween(test.Alpha, test.Beta)
		if ok != test.Ok {
			t.Errorf("turnBetween(%v,%v): expected ok=%v", test.Alpha, test.Beta, test.Ok)
			continue
		}
		if !ok { continue }
		if turn.Direction != test.Dir || !near(turn.AngleDeg, test.Angle, 1e-9) {
			t.Errorf("turnBetween(%v,%v): expected %s %v, got %s", test.Alpha, test.Beta,
				test.Dir, test.Angle, turn)
		}
	}
}

func TestSegmentStrings(t *testing.T) {
	segs := []Segment{ Turn{Right, 90, KFixedTurnRadiusNM}, Straight{12.5}, Turn{Left, 33.25, KFixedTurnRadiusNM} }
	expected := []string{ "R 90 2.699784017278618", "S 12.5", "L 33.25 2.699784017278618" }

	actual := SegmentStrings(segs)
	for i := range expected {
		if actual[i] != expected[i] {
			t.Errorf("[%d] expected %q, got %q", i, expected[i], actual[i])
		}
	}

	if s,_ := segs[1].Params(); s != 12.5 {
		t.Errorf("straight PARAM1: got %v", s)
	}
	if _,p2 := segs[1].Params(); p2 != 0 {
		t.Errorf("straight PARAM2: got %v", p2)
	}
	if segs[0].SegType() != "R" || segs[1].SegType() != "S" || segs[2].SegType() != "L" {
		t.Errorf("bad seg types: %s %s %s", segs[0].SegType(), segs[1].SegType(), segs[2].SegType())
	}
}
