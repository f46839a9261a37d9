package ref

import "github.com/skypies/geo"

func wp(name, typ string, lat, long float64) Waypoint {
	return Waypoint{NamedLatlong: geo.NamedLatlong{Name:name, Latlong:geo.Latlong{lat,long}}, Type:typ}
}

// HNL is Daniel K. Inouye International, Honolulu.
var HNL = Airport{
	Code: "HNL",
	Name: "Honolulu",
	Latlong: geo.Latlong{21.3245182, -157.9272623},

	Runways: []RunwayEnd{
		{"04L", -0.05, -0.02, 10.3, 0, 0, 3.0, 50.0, 0, "Y"},
		{"04R", -0.26, -0.28,  8.6, 0, 0, 3.0, 54.0, 0, "Y"},
		{"08R", -1.31, -0.71, 10.0, 0, 0, 3.0, 50.0, 0, "Y"},
		{"22L",  0.91,  0.60,  8.6, 0, 0, 3.0, 52.0, 0, "Y"},
		{"22R",  0.86,  0.66,  9.7, 0, 0, 3.0, 50.0, 0, "Y"},
		{"26L",  0.66, -0.71, 10.0, 0, 0, 3.0, 50.0, 0, "Y"},
		{"08L", -1.16,  0.39,  0.0, 0, 0, 0.0,  0.0, 0, "Y"},  // the reef runway
		{"26R",  0.86,  0.39,  0.0, 0, 0, 0.0,  0.0, 0, "Y"},
	},

	Waypoints: []Waypoint{
		wp("ALANA", "F", 21.07, -157.93),
		wp("BAMBO", "F", 21.41, -157.51),
		wp("CKH",   "V", 21.26, -157.70),
		wp("DOPIE", "F", 21.54, -157.83),
		wp("EWABE", "F", 21.32, -158.04),
		wp("GECKO", "F", 21.19, -158.30),
		wp("GRITL", "F", 21.32, -157.62),
		wp("HAUNA", "F", 21.09, -157.71),
		wp("HHI",   "N", 21.47, -158.03),
		wp("HN",    "N", 21.32, -158.04),
		wp("HNL",   "V", 21.30, -157.93),
		wp("JULLE", "F", 20.95, -157.57),
		wp("KUCHI", "F", 20.84, -157.85),
		wp("MELLO", "F", 21.52, -157.98),
		wp("MILTI", "F", 20.87, -158.10),
		wp("NGF",   "T", 21.45, -157.76),
		wp("NORBY", "F", 21.15, -157.52),
		wp("OPACA", "F", 20.93, -158.23),
		wp("OPIHI", "F", 21.09, -158.00),
		wp("PALAY", "F", 21.10, -157.57),
		wp("SAITO", "F", 21.74, -158.04),
		wp("SAKKI", "F", 20.93, -157.48),
		wp("SECIL", "F", 21.20, -157.77),
		wp("SHIGI", "F", 21.30, -158.17),
		wp("YORKI", "F", 21.63, -158.21),
		wp("KEAHI", "F", 20.80, -157.60),
		wp("KEOLA", "F", 21.30, -158.49),
	},
}
