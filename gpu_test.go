package main

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestShadedTriangles(t *testing.T) {
	vs, is := shadedTriangles(orbitTransform(1024, 768, startAngle, 1), 1024, 768)
	if len(is) != 36 || len(vs) != 36 {
		t.Fatalf("got %d vertices, %d indices, want 36 each", len(vs), len(is))
	}
	for i, idx := range is {
		if int(idx) != i {
			t.Fatalf("indices not sequential at %d: %d", i, idx)
		}
	}
	for i, v := range vs {
		// The whole cube fits in the default view.
		if v.DstX < 0 || v.DstX > 1024 || v.DstY < 0 || v.DstY > 768 {
			t.Errorf("vertex %d projected off screen: (%v, %v)", i, v.DstX, v.DstY)
		}
		// Corner z is ±1, so the packed alpha is 0 or 1.
		if v.ColorA != 0 && v.ColorA != 1 {
			t.Errorf("vertex %d packed alpha %v, want 0 or 1", i, v.ColorA)
		}
		// Local x/y ride in the source coordinates.
		if v.SrcX != 1 && v.SrcX != -1 {
			t.Errorf("vertex %d SrcX %v, want ±1", i, v.SrcX)
		}
	}
}

func TestShadedTrianglesBehindEye(t *testing.T) {
	// A transform with w = -1 for every vertex puts the cube behind the eye.
	vs, is := shadedTriangles(mgl32.Diag4(mgl32.Vec4{1, 1, 1, -1}), 1024, 768)
	if len(vs) != 0 || len(is) != 0 {
		t.Fatalf("expected nothing to draw, got %d vertices", len(vs))
	}
}
