// Package ref contains reference data about airports: where the runway ends are, and the
// named fixes nearby. INM wants runway ends as offsets (in NM) from an airport reference point,
// so that's how they're stored.
package ref

import(
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/skypies/geo"

	"github.com/skypies/inmtrack"
)

var(
	ErrUnknownRunway  = errors.New("unknown runway")
	ErrUnknownAirport = errors.New("unknown airport")
)

// A RunwayEnd is one row of an INM RWY_END table.
type RunwayEnd struct {
	Id               string  // RWY_ID
	X,Y              float64 // X_COORD,Y_COORD; NM east and north of the reference point
	Elevation        float64 // ELEVATION, feet
	TakeoffDisplace  float64 // DIS_TH_TKO, feet
	ApproachDisplace float64 // DIS_TH_APP, feet
	GlideSlope       float64 // GLIDE_SL, degrees
	CrossingHeight   float64 // TH_CR_HGT, feet
	PercentWind      float64 // PCT_WIND
	DefCoord         string  // DEF_COORD; Y means the coords are defined in X/Y
}

func (r RunwayEnd)String() string {
	return fmt.Sprintf("%-4s (%+.2f,%+.2f)NM %.1fft", r.Id, r.X, r.Y, r.Elevation)
}

// A Waypoint is a named fix, with its INM type ([F]ix, [V]OR, [N]DB, [T]ACAN).
type Waypoint struct {
	geo.NamedLatlong
	Type string
}

type Airport struct {
	Code         string
	Name         string
	geo.Latlong               // The reference point
	Runways    []RunwayEnd
	Waypoints  []Waypoint
}

func (a Airport)String() string {
	return fmt.Sprintf("%s (%s) %s, %d runway ends, %d waypoints", a.Code, a.Name, a.Latlong,
		len(a.Runways), len(a.Waypoints))
}

// {{{ a.Runway, a.RunwayAnchor, a.HeadingTens

func (a Airport)Runway(id string) (RunwayEnd, error) {
	for _,r := range a.Runways {
		if r.Id == id { return r, nil }
	}
	return RunwayEnd{}, fmt.Errorf("%s: %w %q", a.Code, ErrUnknownRunway, id)
}

// RunwayAnchor is the position of the runway end. From the reference point we go due east (or
// west) for X, and from there due north (or south) for Y.
func (a Airport)RunwayAnchor(id string) (geo.Latlong, error) {
	r,err := a.Runway(id)
	if err != nil { return geo.Latlong{}, err }

	eastWest := 90.0
	if r.X < 0 { eastWest = 270.0 }
	northSouth := 0.0
	if r.Y < 0 { northSouth = 180.0 }

	pos := inmtrack.Destination(a.Latlong, abs(r.X) * inmtrack.KMetersPerNM, eastWest)
	pos  = inmtrack.Destination(pos, abs(r.Y) * inmtrack.KMetersPerNM, northSouth)
	return pos, nil
}

// HeadingTens is the two-digit heading prefix of a known runway, e.g. 26 for "26R".
func (a Airport)HeadingTens(id string) (int, error) {
	if _,err := a.Runway(id); err != nil { return 0, err }
	if len(id) < 2 {
		return 0, fmt.Errorf("%s: runway %q has no heading", a.Code, id)
	}
	return strconv.Atoi(id[0:2])
}

func abs(f float64) float64 { if f<0 { return -f }; return f }

// }}}
// {{{ a.RunwayIds, a.NamedWaypoints

func (a Airport)RunwayIds() []string {
	ids := []string{}
	for _,r := range a.Runways {
		ids = append(ids, r.Id)
	}
	sort.Strings(ids)
	return ids
}

// NamedWaypoints is the form that inmtrack.Track.NearbyWaypoints wants.
func (a Airport)NamedWaypoints() []geo.NamedLatlong {
	ret := []geo.NamedLatlong{}
	for _,wp := range a.Waypoints {
		ret = append(ret, wp.NamedLatlong)
	}
	return ret
}

// }}}

// {{{ Lookup, Codes

var airports = map[string]*Airport{
	"HNL": &HNL,
}

// Lookup finds a built-in airport by its code; either "HNL" or "PHNL" will work.
func Lookup(code string) (*Airport, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if a,exists := airports[code]; exists {
		return a, nil
	}
	if len(code) == 4 {
		if a,exists := airports[code[1:]]; exists {
			return a, nil
		}
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownAirport, code)
}

func Codes() []string {
	codes := []string{}
	for k,_ := range airports {
		codes = append(codes, k)
	}
	sort.Strings(codes)
	return codes
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
