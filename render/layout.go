package render

import (
	"math"

	"github.com/lixenwraith/troll-dodge/constants"
)

// Layout maps the pixel play area onto terminal cells
// Rows [0, HUDRows) hold the status lines, the last FooterRows hold the bubble and key help
type Layout struct {
	Width, Height int // terminal cells
	PlayX, PlayY  int // play area origin in cells
	PlayW, PlayH  int // play area size in cells

	pixelW, pixelH float64
}

// NewLayout computes the play area for a terminal of w×h cells
func NewLayout(w, h int, pixelW, pixelH float64) Layout {
	l := Layout{
		Width:  w,
		Height: h,
		PlayX:  0,
		PlayY:  constants.HUDRows,
		PlayW:  max(w, 1),
		PlayH:  max(h-constants.HUDRows-constants.FooterRows, 1),
		pixelW: pixelW,
		pixelH: pixelH,
	}
	return l
}

// ToCell converts a play-area pixel to a terminal cell, clamped into the play area
func (l Layout) ToCell(px, py float64) (int, int) {
	cx := int(px / l.pixelW * float64(l.PlayW))
	cy := int(py / l.pixelH * float64(l.PlayH))
	cx = max(0, min(l.PlayW-1, cx))
	cy = max(0, min(l.PlayH-1, cy))
	return l.PlayX + cx, l.PlayY + cy
}

// CellRect maps a pixel box to the half-open cell range [x0, x1)×[y0, y1) it covers,
// clipped to the play area; ok is false when nothing of the box is inside
func (l Layout) CellRect(left, top, w, h float64) (x0, y0, x1, y1 int, ok bool) {
	if left+w <= 0 || left >= l.pixelW || top+h <= 0 || top >= l.pixelH {
		return 0, 0, 0, 0, false
	}
	x0 = int(math.Floor(left / l.pixelW * float64(l.PlayW)))
	y0 = int(math.Floor(top / l.pixelH * float64(l.PlayH)))
	x1 = min(x0+l.CellSpan(w, true), l.PlayW)
	y1 = min(y0+l.CellSpan(h, false), l.PlayH)
	x0 = max(x0, 0)
	y0 = max(y0, 0)
	if x0 >= x1 || y0 >= y1 {
		return 0, 0, 0, 0, false
	}
	return l.PlayX + x0, l.PlayY + y0, l.PlayX + x1, l.PlayY + y1, true
}

// CellSpan converts a pixel extent to a cell count, at least one
func (l Layout) CellSpan(pixels float64, horizontal bool) int {
	var n int
	if horizontal {
		n = int(pixels/l.pixelW*float64(l.PlayW) + 0.5)
	} else {
		n = int(pixels/l.pixelH*float64(l.PlayH) + 0.5)
	}
	return max(n, 1)
}

// ToPixel converts a terminal cell to the pixel at the cell's top-left corner
// ok is false outside the play area
func (l Layout) ToPixel(x, y int) (float64, float64, bool) {
	if x < l.PlayX || x >= l.PlayX+l.PlayW || y < l.PlayY || y >= l.PlayY+l.PlayH {
		return 0, 0, false
	}
	px := float64(x-l.PlayX) * l.pixelW / float64(l.PlayW)
	py := float64(y-l.PlayY) * l.pixelH / float64(l.PlayH)
	return px, py, true
}

// Contains reports whether a cell lies inside the terminal
func (l Layout) Contains(x, y int) bool {
	return x >= 0 && x < l.Width && y >= 0 && y < l.Height
}
