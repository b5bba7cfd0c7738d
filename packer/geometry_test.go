package packer

import "testing"

func TestOverlapsSharedEdgeIsNotOverlap(t *testing.T) {
	a := Rectangle{X: 0, Y: 0, W: 100, H: 100}
	b := Rectangle{X: 100, Y: 0, W: 50, H: 100}
	if Overlaps(a, b) {
		t.Fatalf("rectangles sharing only an edge must not overlap")
	}
}

func TestOverlapsInterior(t *testing.T) {
	a := Rectangle{X: 0, Y: 0, W: 100, H: 100}
	b := Rectangle{X: 50, Y: 50, W: 100, H: 100}
	if !Overlaps(a, b) {
		t.Fatalf("rectangles sharing interior area must overlap")
	}
}

func TestContainsSize(t *testing.T) {
	r := Rectangle{W: 200, H: 150}
	if !r.ContainsSize(200, 150) {
		t.Fatalf("exact fit must be contained")
	}
	if r.ContainsSize(201, 150) {
		t.Fatalf("oversized width must not be contained")
	}
}

func TestArea(t *testing.T) {
	r := Rectangle{W: 10, H: 20}
	if r.Area() != 200 {
		t.Fatalf("expected area 200, got %d", r.Area())
	}
}
