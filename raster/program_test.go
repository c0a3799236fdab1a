package raster

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestBlend(t *testing.T) {
	cases := []struct {
		dist2, want float32
	}{
		{0, 1},
		{1, 0.7},
		{2, 0.4},
		{10. / 3, 0},
		{4, 0},
		{100, 0},
	}
	for _, c := range cases {
		got := Blend(c.dist2)
		if math.Abs(float64(got-c.want)) > 1e-6 {
			t.Errorf("Blend(%v) = %v, want %v", c.dist2, got, c.want)
		}
	}
}

func TestBlendRange(t *testing.T) {
	prev := float32(2)
	for d := float32(0); d < 6; d += 0.05 {
		b := Blend(d)
		if b < 0 || b > 1 {
			t.Fatalf("Blend(%v) = %v out of [0,1]", d, b)
		}
		if b > prev {
			t.Fatalf("Blend not monotonic at %v: %v > %v", d, b, prev)
		}
		if b == 1 && d != 0 {
			t.Fatalf("Blend(%v) = 1, only dist 0 should be unattenuated", d)
		}
		prev = b
	}
}

func TestFalloffVertex(t *testing.T) {
	m := mgl32.Translate3D(1, 2, 3).Mul4(mgl32.HomogRotate3DZ(0.7))
	p := FalloffProgram{Locals{Transform: m}}

	in := Vertex{Pos: mgl32.Vec3{-1, 1, 0.5}, Color: mgl32.Vec3{0, 1, 0}}
	out := p.Vertex(in)

	want := m.Mul4x1(mgl32.Vec4{-1, 1, 0.5, 1})
	if out.ClipPos != want {
		t.Errorf("ClipPos = %v, want %v", out.ClipPos, want)
	}
	if out.Color != (mgl32.Vec4{0, 1, 0, 1}) {
		t.Errorf("Color = %v, want passthrough with alpha 1", out.Color)
	}
	if out.Local != in.Pos {
		t.Errorf("Local = %v, want untransformed %v", out.Local, in.Pos)
	}
	if out.ClipDist != 1 {
		t.Errorf("ClipDist = %v, want 1", out.ClipDist)
	}
}

func TestFalloffVertexSingularMatrix(t *testing.T) {
	var p FalloffProgram // zero transform
	out := p.Vertex(Vertex{Pos: mgl32.Vec3{3, -2, 9}})
	if out.ClipPos != (mgl32.Vec4{}) {
		t.Errorf("ClipPos = %v, want zero vector for zero transform", out.ClipPos)
	}
}

func TestFalloffFragment(t *testing.T) {
	var p FalloffProgram
	color := mgl32.Vec4{0.2, 0.4, 0.8, 1}

	cases := []struct {
		local mgl32.Vec3
		blend float32
	}{
		{mgl32.Vec3{0, 0, 0}, 1},
		{mgl32.Vec3{1, 0, 0}, 0.7},
		{mgl32.Vec3{0, 0, -1}, 0.7},
		{mgl32.Vec3{2, 0, 0}, 0},
	}
	for _, c := range cases {
		got := p.Fragment(color, c.local)
		want := color.Mul(c.blend)
		for i := 0; i < 4; i++ {
			if math.Abs(float64(got[i]-want[i])) > 1e-6 {
				t.Errorf("Fragment(%v) = %v, want %v", c.local, got, want)
				break
			}
		}
		// Input alpha is 1, so output alpha is the blend itself.
		if math.Abs(float64(got.W()-c.blend)) > 1e-6 {
			t.Errorf("Fragment(%v) alpha = %v, want %v", c.local, got.W(), c.blend)
		}
	}
}
