// Package spatial provides bounding box geometry for location searches.
package spatial

// Point is a geographic coordinate.
type Point struct {
	Latitude  float64
	Longitude float64
}

// Rect is a normalized bounding box. Left/Right bound longitude,
// Bottom/Top bound latitude, all edges inclusive.
type Rect struct {
	Left   float64
	Right  float64
	Bottom float64
	Top    float64
}

// NewRect builds a normalized Rect from two opposite corners given in
// any order.
func NewRect(a, b Point) Rect {
	r := Rect{
		Left:   a.Longitude,
		Right:  b.Longitude,
		Bottom: a.Latitude,
		Top:    b.Latitude,
	}
	if r.Left > r.Right {
		r.Left, r.Right = r.Right, r.Left
	}
	if r.Bottom > r.Top {
		r.Bottom, r.Top = r.Top, r.Bottom
	}
	return r
}

// Contains reports whether p falls inside the box, edges included.
func (r Rect) Contains(p Point) bool {
	return p.Longitude >= r.Left && p.Longitude <= r.Right &&
		p.Latitude >= r.Bottom && p.Latitude <= r.Top
}
