package fpdf

import (
	"fmt"
	"math"

	"github.com/jung-kurt/gofpdf"
)

// A BaseGrid maps a rectangle of (x,y) values onto a rectangle of the PDF page, and draws
// gridlines over it. Here x and y are kilometres east and north of an airport.
type BaseGrid struct {
	*gofpdf.Fpdf        // Embed the thing we're writing to

	// The portion of the page the grid covers (labels go outside of this), in mm
	OffsetU     float64 // top-left corner
	OffsetV     float64
	W,H         float64

	// The range of values scaled onto the grid
	MinX,MinY,MaxX,MaxY float64
	Clip                bool    // only draw lines with both ends inside the grid

	GridlineEvery       float64 // in both directions, starting from Min[XY]
	TickFmt             string  // passed a float64 via fmt.Sprintf; blank==none

	LineColor []int // rgb, each [0,255]
}

// {{{ bg.U, V, UV

// The bools are whether the value is out-of-bounds for the grid.
func (bg BaseGrid)U(x float64) (float64, bool) {
	xRatio := (x - bg.MinX) / (bg.MaxX - bg.MinX)
	return bg.OffsetU + (xRatio * bg.W), xRatio<0 || xRatio>1
}

// PDF coords go down the page, so y is flipped.
func (bg BaseGrid)V(y float64) (float64, bool) {
	yRatio := (y - bg.MinY) / (bg.MaxY - bg.MinY)
	return bg.OffsetV + (bg.H - (yRatio * bg.H)), yRatio<0 || yRatio>1
}

func (bg BaseGrid)UV(x,y float64) (float64, float64, bool) {
	u,oobU := bg.U(x)
	v,oobV := bg.V(y)
	return u, v, (oobU || oobV)
}

// }}}
// {{{ bg.MoveBy, bg.MoveTo, bg.LineTo, bg.Line

func (bg BaseGrid)MoveBy(u,v float64) {
	currU,currV := bg.GetXY()
	bg.Fpdf.MoveTo(currU+u, currV+v)
}

// MoveTo and LineTo take grid coords, and report whether they were out of bounds.
func (bg BaseGrid)MoveTo(x,y float64) bool {
	u,v,oob := bg.UV(x,y)
	bg.Fpdf.MoveTo(u,v)
	return oob
}

func (bg BaseGrid)LineTo(x,y float64) bool {
	u,v,oob := bg.UV(x,y)
	bg.Fpdf.LineTo(u,v)
	return oob
}

func (bg BaseGrid)Line(x1,y1,x2,y2 float64) {
	u1,v1,oob1 := bg.UV(x1,y1)
	u2,v2,oob2 := bg.UV(x2,y2)

	if !bg.Clip || (!oob1 && !oob2) {
		bg.MaybeSetDrawColor()
		bg.Fpdf.MoveTo(u1,v1)
		bg.Fpdf.LineTo(u2,v2)
		bg.DrawPath("D")
	}
}

func (bg BaseGrid)MaybeSetDrawColor() {
	if len(bg.LineColor) == 3 {
		bg.SetDrawColor(bg.LineColor[0], bg.LineColor[1], bg.LineColor[2])
	}
}

// }}}
// {{{ bg.DrawGridlines, bg.DrawFrame

func (bg BaseGrid)gridValues(min, max float64) []float64 {
	ret := []float64{}
	if bg.GridlineEvery <= 0 { return ret }
	for i:=0; ; i++ {
		v := min + float64(i)*bg.GridlineEvery
		if v > max + 1e-9 { break }
		ret = append(ret, v)
	}
	return ret
}

func (bg BaseGrid)DrawGridlines() {
	bg.SetFont("Arial", "", 7)
	bg.SetLineWidth(0.1)
	bg.SetDrawColor(0xe0, 0xe0, 0xe0)
	bg.SetTextColor(0x60, 0x60, 0x60)

	for _,x := range bg.gridValues(bg.MinX, bg.MaxX) {
		bg.MoveTo(x, bg.MinY)
		bg.LineTo(x, bg.MaxY)
		bg.DrawPath("D")
		if bg.TickFmt != "" {
			bg.MoveTo(x, bg.MinY)
			bg.MoveBy(-5, 1)
			bg.CellFormat(10, 3, fmt.Sprintf(bg.TickFmt, zeroIfTiny(x)), "", 0, "C", false, 0, "")
		}
	}

	for _,y := range bg.gridValues(bg.MinY, bg.MaxY) {
		bg.MoveTo(bg.MinX, y)
		bg.LineTo(bg.MaxX, y)
		bg.DrawPath("D")
		if bg.TickFmt != "" {
			bg.MoveTo(bg.MinX, y)
			bg.MoveBy(-11, -1.5)
			bg.CellFormat(10, 3, fmt.Sprintf(bg.TickFmt, zeroIfTiny(y)), "", 0, "R", false, 0, "")
		}
	}
}

func (bg BaseGrid)DrawFrame() {
	bg.SetLineWidth(0.3)
	bg.SetDrawColor(0, 0, 0)
	bg.Rect(bg.OffsetU, bg.OffsetV, bg.W, bg.H, "D")
}

// Avoids "-0" tick labels.
func zeroIfTiny(f float64) float64 {
	if math.Abs(f) < 1e-9 { return 0 }
	return f
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
