package main

import(
	"bytes"
	"strings"
	"testing"

	"github.com/skypies/geo"

	"github.com/skypies/inmtrack/ref"
)

func TestBearingAndDistance(t *testing.T) {
	var buf bytes.Buffer
	bearingAndDistance(&buf, geo.Latlong{0,0}, geo.Latlong{0,1})
	if expected := "  >> 90.0 deg (E), 111.195 KM, 60.040 NM\n"; buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestRunways(t *testing.T) {
	var buf bytes.Buffer
	if err := runways(&buf, &ref.HNL, ""); err != nil {
		t.Fatalf("runways: %v", err)
	}
	if n := strings.Count(buf.String(), " -> "); n != 8 {
		t.Errorf("expected 8 runways, got %d:\n%s", n, buf.String())
	}

	buf.Reset()
	if err := runways(&buf, &ref.HNL, "08R"); err != nil || !strings.Contains(buf.String(), "08R") {
		t.Errorf("08R: %v\n%s", err, buf.String())
	}
	if err := runways(&buf, &ref.HNL, "99"); err == nil {
		t.Errorf("99: expected error")
	}
}
