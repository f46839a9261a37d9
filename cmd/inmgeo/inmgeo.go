// inmgeo does the geodesy sums that come up when drawing tracks by hand.
//
//  inmgeo 21.3245, -157.9272                       # parse a lat/long
//  inmgeo -to 21.32,-158.04 21.3245,-157.9272       # bearing and distance
//  inmgeo -brg 265 -nm 6.5 21.3245,-157.9272        # where you end up
//  inmgeo -airport HNL [-runway 08R]                # runway ends
package main

import(
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/skypies/geo"

	"github.com/skypies/inmtrack"
	"github.com/skypies/inmtrack/ref"
)

var(
	fVerbosity int
	fTo string
	fBearing float64
	fNM float64
	fAirport string
	fRunway string
)

func init() {
	flag.IntVar(&fVerbosity, "v", 0, "verbosity level")
	flag.StringVar(&fTo, "to", "", "second lat/long; print the bearing and distance to it")
	flag.Float64Var(&fBearing, "brg", 0, "bearing for -nm, in degrees")
	flag.Float64Var(&fNM, "nm", 0, "print the point this many NM away, along -brg")
	flag.StringVar(&fAirport, "airport", "", "print the runway ends of this airport")
	flag.StringVar(&fRunway, "runway", "", "just this runway end (with -airport)")
}

func describe(w io.Writer, in string, pos geo.Latlong) {
	fmt.Fprintf(w, ">>>> %s\n  << (%.7f, %.7f)\n", in, pos.Lat, pos.Long)
	fmt.Fprintf(w, "  << %T{Lat:%.7f, Long:%.7f}\n", pos, pos.Lat, pos.Long)
}

func bearingAndDistance(w io.Writer, from, to geo.Latlong) {
	m := inmtrack.Distance(from, to)
	brg := inmtrack.Bearing(from, to)
	fmt.Fprintf(w, "  >> %.1f deg (%s), %.3f KM, %.3f NM\n", brg, inmtrack.Compass(brg), m/1000.0,
		m/inmtrack.KMetersPerNM)
}

func runways(w io.Writer, a *ref.Airport, id string) error {
	ids := a.RunwayIds()
	if id != "" { ids = []string{id} }

	fmt.Fprintf(w, "%s\n", a)
	for _,id := range ids {
		r,err := a.Runway(id)
		if err != nil { return err }
		pos,err := a.RunwayAnchor(id)
		if err != nil { return err }
		fmt.Fprintf(w, "  %s -> (%.7f, %.7f)\n", r, pos.Lat, pos.Long)
	}
	return nil
}

func main() {
	flag.Parse()

	if fAirport != "" {
		a,err := ref.Lookup(fAirport)
		if err != nil { log.Fatal(err) }
		if err := runways(os.Stdout, a, fRunway); err != nil { log.Fatal(err) }
		return
	}

	if len(flag.Args()) == 0 {
		log.Fatal("usage: inmgeo [-to lat,long | -brg deg -nm dist] 123.123, 123.123\n")
	}

	in := strings.Join(flag.Args(), " ")
	pos := geo.NewLatlong(in)
	describe(os.Stdout, in, pos)

	if fTo != "" {
		bearingAndDistance(os.Stdout, pos, geo.NewLatlong(fTo))
	}
	if fNM != 0 {
		dest := inmtrack.Destination(pos, fNM*inmtrack.KMetersPerNM, fBearing)
		fmt.Printf("  >> %.1f NM at %.1f deg: (%.7f, %.7f)\n", fNM, fBearing, dest.Lat, dest.Long)
	}
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
