package viewport

// Geometry is the fractional placement of a viewport within its output,
// all values in the range 0.0 to 1.0
type Geometry struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// FullGeometry covers the whole output
func FullGeometry() Geometry {
	return Geometry{X: 0, Y: 0, Width: 1, Height: 1}
}

// LeftHalf covers the left half of the output
func LeftHalf() Geometry {
	return Geometry{X: 0, Y: 0, Width: 0.5, Height: 1}
}

// RightHalf covers the right half of the output
func RightHalf() Geometry {
	return Geometry{X: 0.5, Y: 0, Width: 0.5, Height: 1}
}

// ToCells converts fractional coordinates to terminal cell coordinates
func (g Geometry) ToCells(cols, rows int) (x, y, w, h int) {
	x = int(g.X * float64(cols))
	y = int(g.Y * float64(rows))
	w = int(g.Width * float64(cols))
	h = int(g.Height * float64(rows))
	return x, y, w, h
}

// ID uniquely identifies a viewport
type ID int

// Viewport is a logical display pane with its own independent position
// in the zoom hierarchy. A split produces a second viewport; the
// navigator that drives the primary pane is never duplicated.
type Viewport struct {
	ID       ID
	Label    string
	Path     Path
	Geometry Geometry
	HasFocus bool
}
