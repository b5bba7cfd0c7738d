package packer

// Area returns w*h.
func (r Rectangle) Area() int { return r.W * r.H }

// ContainsSize reports whether a piece of size (w,h) fits inside r without
// rotation.
func (r Rectangle) ContainsSize(w, h int) bool {
	return r.W >= w && r.H >= h
}

// Overlaps reports strict interior overlap between a and b (spec.md §4.1).
// Rectangles that merely share an edge do not overlap.
func Overlaps(a, b Rectangle) bool {
	if a.X+a.W <= b.X || b.X+b.W <= a.X {
		return false
	}
	if a.Y+a.H <= b.Y || b.Y+b.H <= a.Y {
		return false
	}
	return true
}
