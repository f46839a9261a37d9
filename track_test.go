package inmtrack

// go test -v github.com/skypies/inmtrack

import(
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/skypies/geo"
)

var(
	// A departure off HNL 08R, drawn by hand, heading out west past EWABE and then north.
	tHNL = []byte(`{"Name":"", "RunwayId":"08R", "Points":[
{"Lat":21.312570, "Long":-157.9413},
{"Lat":21.305,    "Long":-158.02},
{"Lat":21.32,     "Long":-158.04},
{"Lat":21.45,     "Long":-158.05}]}`)
)

func loadTrack(t *testing.T, b []byte) Track {
	tr := Track{}
	if err := json.Unmarshal(b, &tr); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return tr
}

func TestRunwayHeading(t *testing.T) {
	tests := []struct {
		Id        string
		Expected  float64
	}{
		{"04L", 40}, {"04R", 40}, {"08R", 80}, {"22L", 220}, {"26R", 260},
		{"36", 360}, {"9", 0}, {"", 0}, {"XX", 0}, {"-1", 0},
	}
	for _,test := range tests {
		if actual := RunwayHeading(test.Id); actual != test.Expected {
			t.Errorf("RunwayHeading(%q): expected %v, got %v", test.Id, test.Expected, actual)
		}
	}
}

func TestCompass(t *testing.T) {
	tests := []struct {
		Heading   float64
		Expected  string
	}{
		{0, "N"}, {22.49, "N"}, {22.5, "NE"}, {67.5, "E"}, {112.5, "SE"}, {157.5, "S"},
		{202.5, "SW"}, {247.5, "W"}, {292.5, "NW"}, {337.49, "NW"}, {337.5, "N"}, {359.9, "N"},
	}
	for _,test := range tests {
		if actual := Compass(test.Heading); actual != test.Expected {
			t.Errorf("Compass(%v): expected %q, got %q", test.Heading, test.Expected, actual)
		}
	}
}

func TestInferName(t *testing.T) {
	tr := loadTrack(t, tHNL)
	if name := tr.InferName(); name != "N" {
		t.Errorf("expected N, got %q", name)
	}

	short := Track{Points:[]geo.Latlong{{21,-157}}}
	if name := short.InferName(); name != KUntitledTrack {
		t.Errorf("expected %q, got %q", KUntitledTrack, name)
	}

	west := Track{Points:[]geo.Latlong{{0,1},{0,0}}}
	if name := west.InferName(); name != "W" {
		t.Errorf("expected W, got %q", name)
	}
}

func TestTrackBasics(t *testing.T) {
	tr := loadTrack(t, tHNL)

	if tr.Op() != KDefaultOpType {
		t.Errorf("expected default op type, got %q", tr.Op())
	}
	tr.OpType = "A"
	if tr.Op() != "A" {
		t.Errorf("expected op type A, got %q", tr.Op())
	}

	sum := 0.0
	for i:=1; i<len(tr.Points); i++ {
		sum += Distance(tr.Points[i-1], tr.Points[i])
	}
	if !near(tr.LengthKM(), sum/1000.0, 1e-12) {
		t.Errorf("LengthKM: expected %f, got %f", sum/1000.0, tr.LengthKM())
	}

	if s := tr.String(); s == "" {
		t.Errorf("empty String()")
	}
}

func TestNearbyWaypoints(t *testing.T) {
	tr := loadTrack(t, tHNL)
	wps := []geo.NamedLatlong{
		{"EWABE", geo.Latlong{21.32, -158.04}},  // a point on the track
		{"MELLO", geo.Latlong{21.52, -157.98}},  // way off to the north east
		{"ONLEG", geo.Latlong{21.385, -158.045}}, // halfway along the final leg
		{"BEHIND", geo.Latlong{21.313, -157.80}}, // behind the runway anchor
	}

	actual := tr.NearbyWaypoints(wps, 1.0)
	expected := []string{"EWABE", "ONLEG"}
	if len(actual) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, actual)
	}
	for i := range expected {
		if actual[i] != expected[i] {
			t.Errorf("expected %v, got %v", expected, actual)
		}
	}
}

func TestDistToLeg(t *testing.T) {
	oneDegreeKM := KEarthRadiusMeters * math.Pi / 180.0 / 1000.0

	tests := []struct {
		P,A,B     geo.Latlong
		Expected  float64
	}{
		{geo.Latlong{0.5,0.5}, geo.Latlong{0,0}, geo.Latlong{0,0},  geo.Latlong{0.5,0.5}.DistKM(geo.Latlong{0,0})}, // no leg
		{geo.Latlong{1,0.5},   geo.Latlong{0,0}, geo.Latlong{0,1},  oneDegreeKM},  // east-west leg
		{geo.Latlong{0.5,1},   geo.Latlong{0,0}, geo.Latlong{1,0},  geo.Latlong{0.5,1}.DistKM(geo.Latlong{0.5,0})}, // north-south leg
		{geo.Latlong{0,-1},    geo.Latlong{0,0}, geo.Latlong{0,1},  oneDegreeKM},  // behind the start
		{geo.Latlong{0,3},     geo.Latlong{0,0}, geo.Latlong{0,1},  2*oneDegreeKM}, // beyond the end
		{geo.Latlong{0,0.25},  geo.Latlong{0,0}, geo.Latlong{0,1},  0},            // on the leg
	}

	for i,test := range tests {
		if actual := distToLegKM(test.P, test.A, test.B); !near(actual, test.Expected, 1e-6) {
			t.Errorf("[%d] distToLegKM(%v, %v->%v): expected %f, got %f", i, test.P, test.A, test.B,
				test.Expected, actual)
		}
	}
}

func TestForBigQuery(t *testing.T) {
	tr := loadTrack(t, tHNL)
	tr.Name = "W1"
	tm := time.Date(2024, 3, 4, 5, 6, 7, 0, time.UTC)

	tbq := tr.ForBigQuery("HNL", 2, tm)
	if tbq.NumPoints != 4 || len(tbq.Point) != 4 {
		t.Errorf("bad point count: %d/%d", tbq.NumPoints, len(tbq.Point))
	}
	segs := EncodeSegments(tr)
	if len(tbq.Segment) != len(segs) {
		t.Fatalf("expected %d segs, got %d", len(segs), len(tbq.Segment))
	}
	for i,s := range segs {
		if tbq.Segment[i].Num != i+1 || tbq.Segment[i].Type != s.SegType() {
			t.Errorf("seg[%d]: got %+v, expected %s", i, tbq.Segment[i], s)
		}
	}
	if tbq.SubTrack != 2 || tbq.OpType != "D" || tbq.Airport != "HNL" {
		t.Errorf("bad identity fields: %s", tbq)
	}
}
