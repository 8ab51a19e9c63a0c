// Package viewport maps device pixels to grid cells through a pannable,
// zoomable 2D camera. World space is grid space measured in pixels, so a cell
// at (x, y) covers [x*CellSize, (x+1)*CellSize) on each axis.
package viewport

import "math"

// Viewport is a camera over a bounded world. Edges do not wrap.
type Viewport struct {
	// CenterX, CenterY is the camera center in world coordinates.
	CenterX, CenterY float64

	// ScreenW, ScreenH are the device dimensions in pixels.
	ScreenW, ScreenH float64

	// WorldW, WorldH are the world dimensions used for framing.
	WorldW, WorldH float64

	// CellSize is the world size of one grid cell.
	CellSize float64

	// Zoom is the running zoom accumulator. Values below 1 magnify.
	Zoom float64

	MinZoom, MaxZoom float64

	// base is the world-units-per-pixel scale that frames the whole world at
	// zoom 1.
	base float64
}

// New creates a viewport framing the entire world at zoom 1.
func New(screenW, screenH, worldW, worldH, cellSize, minZoom, maxZoom float64) *Viewport {
	if cellSize <= 0 {
		cellSize = 1
	}
	if maxZoom < minZoom {
		maxZoom = minZoom
	}
	v := &Viewport{
		ScreenW:  screenW,
		ScreenH:  screenH,
		WorldW:   worldW,
		WorldH:   worldH,
		CellSize: cellSize,
		MinZoom:  minZoom,
		MaxZoom:  maxZoom,
	}
	v.base = frameScale(screenW, screenH, worldW, worldH)
	v.Reset()
	return v
}

// Reset recenters the camera on the world at zoom 1.
func (v *Viewport) Reset() {
	v.CenterX = v.WorldW / 2
	v.CenterY = v.WorldH / 2
	v.Zoom = 1
}

// Scale returns world units per screen pixel.
func (v *Viewport) Scale() float64 { return v.base * v.Zoom }

// ScreenToWorld converts a device pixel position to world coordinates.
func (v *Viewport) ScreenToWorld(px, py float64) (wx, wy float64) {
	s := v.Scale()
	wx = v.CenterX + (px-v.ScreenW/2)*s
	wy = v.CenterY + (py-v.ScreenH/2)*s
	return wx, wy
}

// WorldToScreen converts world coordinates to a device pixel position.
func (v *Viewport) WorldToScreen(wx, wy float64) (px, py float64) {
	s := v.Scale()
	px = (wx-v.CenterX)/s + v.ScreenW/2
	py = (wy-v.CenterY)/s + v.ScreenH/2
	return px, py
}

// PixelToCell maps a device pixel to a grid cell index. The result may lie
// outside the grid.
func (v *Viewport) PixelToCell(px, py float64) (cx, cy int) {
	wx, wy := v.ScreenToWorld(px, py)
	return int(math.Floor(wx / v.CellSize)), int(math.Floor(wy / v.CellSize))
}

// CellBounds returns the screen rectangle covered by cell (cx, cy) as its
// top-left and bottom-right corners.
func (v *Viewport) CellBounds(cx, cy int) (x0, y0, x1, y1 float64) {
	x0, y0 = v.WorldToScreen(float64(cx)*v.CellSize, float64(cy)*v.CellSize)
	x1, y1 = v.WorldToScreen(float64(cx+1)*v.CellSize, float64(cy+1)*v.CellSize)
	return x0, y0, x1, y1
}

// Pan moves the camera so the world point under from ends up under to. Both
// positions go through the same camera state.
func (v *Viewport) Pan(fromX, fromY, toX, toY float64) {
	ax, ay := v.ScreenToWorld(fromX, fromY)
	bx, by := v.ScreenToWorld(toX, toY)
	v.CenterX += ax - bx
	v.CenterY += ay - by
}

// ZoomBy multiplies the zoom accumulator by step. A step that would leave
// [MinZoom, MaxZoom] is rejected and reported as false.
func (v *Viewport) ZoomBy(step float64) bool {
	next := v.Zoom * step
	if step <= 0 || next < v.MinZoom || next > v.MaxZoom {
		return false
	}
	v.Zoom = next
	return true
}

// Resize updates the device dimensions. Center and zoom are unchanged.
func (v *Viewport) Resize(screenW, screenH float64) {
	v.ScreenW = screenW
	v.ScreenH = screenH
}

// VisibleWorldBounds returns the world rectangle currently on screen.
func (v *Viewport) VisibleWorldBounds() (minX, minY, maxX, maxY float64) {
	halfW := v.ScreenW * v.Scale() / 2
	halfH := v.ScreenH * v.Scale() / 2
	return v.CenterX - halfW, v.CenterY - halfH, v.CenterX + halfW, v.CenterY + halfH
}

// VisibleCells returns the half-open range of grid cells on screen, clipped to
// a cols*rows grid. The range is empty when the grid is out of view.
func (v *Viewport) VisibleCells(cols, rows int) (x0, y0, x1, y1 int) {
	minX, minY, maxX, maxY := v.VisibleWorldBounds()
	x0 = max(int(math.Floor(minX/v.CellSize)), 0)
	y0 = max(int(math.Floor(minY/v.CellSize)), 0)
	x1 = min(int(math.Ceil(maxX/v.CellSize)), cols)
	y1 = min(int(math.Ceil(maxY/v.CellSize)), rows)
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return x0, y0, x1, y1
}

func frameScale(screenW, screenH, worldW, worldH float64) float64 {
	if screenW <= 0 || screenH <= 0 || worldW <= 0 || worldH <= 0 {
		return 1
	}
	return max(worldW/screenW, worldH/screenH)
}
