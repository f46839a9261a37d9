package export

import "github.com/skypies/inmtrack/dbf"

const(
	KTrackFile     = "TRACK.DBF"
	KSegmentFile   = "TRK_SEGS.DBF"
	KRunwayEndFile = "RWY_END.DBF"

	KTrackTypeVector = "V" // tracks are given as segments, not points
)

// These follow the INM 7 study layout.
var(
	TrackFields = []dbf.Field{
		dbf.CharField("OP_TYPE", 1),
		dbf.CharField("RWY_ID", 8),
		dbf.CharField("TRK_ID1", 8),
		dbf.NumericField("TRK_ID2", 1, 0),
		dbf.CharField("TRK_TYPE", 1),
	}

	SegmentFields = []dbf.Field{
		dbf.CharField("OP_TYPE", 1),
		dbf.CharField("RWY_ID", 8),
		dbf.CharField("TRK_ID1", 8),
		dbf.NumericField("TRK_ID2", 1, 0),
		dbf.NumericField("SEG_NUM", 3, 0),
		dbf.CharField("SEG_TYPE", 1),
		dbf.NumericField("PARAM1", 10, 4), // km for S, degrees for L/R
		dbf.NumericField("PARAM2", 10, 4), // turn radius in NM; zero for S
	}

	RunwayEndFields = []dbf.Field{
		dbf.CharField("RWY_ID", 8),
		dbf.NumericField("X_COORD", 10, 4),
		dbf.NumericField("Y_COORD", 10, 4),
		dbf.NumericField("ELEVATION", 8, 1),
		dbf.NumericField("DIS_TH_TKO", 8, 1),
		dbf.NumericField("DIS_TH_APP", 8, 1),
		dbf.NumericField("GLIDE_SL", 5, 2),
		dbf.NumericField("TH_CR_HGT", 6, 1),
		dbf.NumericField("PCT_WIND", 5, 1),
		dbf.CharField("DEF_COORD", 1),
	}
)
