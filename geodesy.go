package inmtrack

import(
	"math"

	"github.com/skypies/geo"
)

// Spherical-earth primitives, on top of geo.Latlong (which uses a mean earth radius of 6371km).
// https://www.movable-type.co.uk/scripts/latlong.html

const(
	KEarthRadiusMeters = 6371000.0
	KMetersPerNM = 1852.0
)

// Reduces a heading to [0,360)
func NormalizeHeading(h float64) float64 {
	h = math.Mod(h, 360.0)
	if h < 0 { h += 360.0 }
	if h >= 360.0 { h = 0 } // -tiny + 360 can round up to 360
	return h
}

// {{{ Bearing

// noBearing is true when the atan2 terms of the forward azimuth both vanish; that happens for
// coincident and antipodal points, where any heading would do.
func noBearing(a, b geo.Latlong) bool {
	phi1, phi2 := a.Lat * math.Pi / 180.0, b.Lat * math.Pi / 180.0
	dLambda := (b.Long - a.Long) * math.Pi / 180.0

	y := math.Sin(dLambda) * math.Cos(phi2)
	x := math.Cos(phi1)*math.Sin(phi2) - math.Sin(phi1)*math.Cos(phi2)*math.Cos(dLambda)
	return math.Abs(y) < 1e-12 && math.Abs(x) < 1e-12
}

// Bearing returns the initial great-circle bearing from a to b, in degrees [0,360). The
// bearing is undefined for coincident and antipodal points; both return 0.
func Bearing(a, b geo.Latlong) float64 {
	if noBearing(a, b) { return 0 }
	return NormalizeHeading(a.BearingTowards(b))
}

// }}}
// {{{ Distance, Destination

// Distance is the haversine great-circle distance between a and b, in meters.
func Distance(a, b geo.Latlong) float64 {
	return a.DistKM(b) * 1000.0
}

// Destination solves the direct problem: the point reached by travelling the given distance
// from a along a great circle with the given initial bearing.
func Destination(a geo.Latlong, meters, bearingDeg float64) geo.Latlong {
	return a.MoveKM(bearingDeg, meters / 1000.0)
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
