package core

import "math"

// CellAspect is the height of a terminal cell relative to its width.
const CellAspect = 2.0

// Viewport maps a logical world surface onto a block of screen cells.
// The block is the largest one that keeps the world's aspect ratio,
// centered inside the available cells.
type Viewport struct {
	Area   Rect    // Cells covered by the world
	WorldW float64 // Logical world width
	WorldH float64 // Logical world height
}

// FitViewport computes the viewport for a cols x rows screen.
func FitViewport(cols, rows int, worldW, worldH float64) Viewport {
	vp := Viewport{WorldW: worldW, WorldH: worldH}
	if cols <= 0 || rows <= 0 || worldW <= 0 || worldH <= 0 {
		return vp
	}

	w := cols
	h := int(float64(w) * worldH / (CellAspect * worldW))
	if h > rows {
		h = rows
		w = int(float64(h) * CellAspect * worldW / worldH)
		if w > cols {
			w = cols
		}
	}
	w = Max(w, 1)
	h = Max(h, 1)

	vp.Area = NewRect((cols-w)/2, (rows-h)/2, w, h)
	return vp
}

// CellX maps a logical x coordinate to a screen column.
func (v Viewport) CellX(x float64) int {
	return v.Area.X + int(math.Floor(x*v.scaleX()))
}

// CellY maps a logical y coordinate to a screen row.
func (v Viewport) CellY(y float64) int {
	return v.Area.Y + int(math.Floor(y*v.scaleY()))
}

// ToRect maps a logical box to the cells it touches, clipped to the viewport.
// Any visible box covers at least one cell.
func (v Viewport) ToRect(b Box) Rect {
	sx, sy := v.scaleX(), v.scaleY()

	x0 := int(math.Floor(b.X * sx))
	x1 := int(math.Ceil(b.Right() * sx))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	y0 := int(math.Floor(b.Y * sy))
	y1 := int(math.Ceil(b.Bottom() * sy))
	if y1 <= y0 {
		y1 = y0 + 1
	}

	x0 = Clamp(x0, 0, v.Area.W)
	x1 = Clamp(x1, 0, v.Area.W)
	y0 = Clamp(y0, 0, v.Area.H)
	y1 = Clamp(y1, 0, v.Area.H)

	return NewRect(v.Area.X+x0, v.Area.Y+y0, x1-x0, y1-y0)
}

func (v Viewport) scaleX() float64 {
	if v.WorldW <= 0 {
		return 0
	}
	return float64(v.Area.W) / v.WorldW
}

func (v Viewport) scaleY() float64 {
	if v.WorldH <= 0 {
		return 0
	}
	return float64(v.Area.H) / v.WorldH
}
