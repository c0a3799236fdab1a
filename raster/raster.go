// Package raster is a small software rasterizer: an RGBA color target with a
// depth attachment, and a two stage programmable pipeline run on the CPU.
package raster

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// A single input vertex: a local-space position and an RGB color.
type Vertex struct {
	Pos   mgl32.Vec3
	Color mgl32.Vec3
}

// What the vertex stage hands to the rasterizer for one vertex.
type VertexOut struct {
	// Position in clip space, before the perspective divide.
	ClipPos mgl32.Vec4

	// Color with alpha attached, interpolated across the triangle.
	Color mgl32.Vec4

	// The untransformed position, interpolated for the fragment stage.
	Local mgl32.Vec3

	// Fragments whose interpolated clip distance is negative are discarded.
	ClipDist float32
}

// Program supplies the two programmable stages run by Target.Draw. Both
// stages must be pure: Draw may call them in any order and holds no locks.
type Program interface {
	Vertex(v Vertex) VertexOut
	Fragment(color mgl32.Vec4, local mgl32.Vec3) mgl32.Vec4
}

// Mesh is an indexed triangle list. Every three indices form one triangle.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint16
}

// Target is a framebuffer: RGBA pixels plus a float depth buffer.
type Target struct {
	w, h  int
	img   *image.RGBA
	depth []float32
}

func NewTarget(w, h int) *Target {
	return &Target{
		w:     w,
		h:     h,
		img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		depth: make([]float32, w*h),
	}
}

func (t *Target) Size() (int, int) {
	return t.w, t.h
}

// The backing image. Valid until the next Clear or Draw.
func (t *Target) Image() *image.RGBA {
	return t.img
}

// Raw RGBA bytes, row major, 4 bytes per pixel.
func (t *Target) Pix() []byte {
	return t.img.Pix
}

// RGBA quantizes a color exactly the way draws and clears write it.
func RGBA(c mgl32.Vec4) color.RGBA {
	return color.RGBA{
		R: channelByte(c[0]),
		G: channelByte(c[1]),
		B: channelByte(c[2]),
		A: channelByte(c[3]),
	}
}

// Clear fills the color target and resets every depth sample to 1.
func (t *Target) Clear(c mgl32.Vec4) {
	q := RGBA(c)
	px := [4]byte{q.R, q.G, q.B, q.A}
	for i := 0; i < len(t.img.Pix); i += 4 {
		copy(t.img.Pix[i:i+4], px[:])
	}
	for i := range t.depth {
		t.depth[i] = 1
	}
}

// Draw runs p's vertex stage over every vertex of m, assembles triangles from
// the index list, and rasterizes them into the target with depth testing.
func (t *Target) Draw(m Mesh, p Program) {
	outs := make([]VertexOut, len(m.Vertices))
	for i, v := range m.Vertices {
		outs[i] = p.Vertex(v)
	}
	for i := 0; i+2 < len(m.Indices); i += 3 {
		t.triangle(outs[m.Indices[i]], outs[m.Indices[i+1]], outs[m.Indices[i+2]], p)
	}
}

// One vertex after the perspective divide and viewport map.
type screenVert struct {
	x, y float32 // window coordinates, y down
	z    float32 // NDC depth
	invW float32 // 1/clip.w, for perspective-correct interpolation
}

func (t *Target) triangle(a, b, c VertexOut, p Program) {
	// Cheap near-plane guard: the whole triangle is dropped when any vertex
	// sits at or behind the eye. Fine for scenes that keep geometry inside
	// the view frustum.
	if a.ClipPos.W() <= 0 || b.ClipPos.W() <= 0 || c.ClipPos.W() <= 0 {
		return
	}
	sv := [3]screenVert{t.toScreen(a), t.toScreen(b), t.toScreen(c)}

	area := edge(sv[0], sv[1], sv[2].x, sv[2].y)
	if area == 0 {
		return
	}

	minX, maxX := bounds(sv[0].x, sv[1].x, sv[2].x, t.w)
	minY, maxY := bounds(sv[0].y, sv[1].y, sv[2].y, t.h)

	inv := 1 / area
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5
			py := float32(y) + 0.5

			// Signed barycentric weights; all three share area's sign
			// inside the triangle, so either winding is accepted.
			l0 := edge(sv[1], sv[2], px, py) * inv
			l1 := edge(sv[2], sv[0], px, py) * inv
			l2 := edge(sv[0], sv[1], px, py) * inv
			if l0 < 0 || l1 < 0 || l2 < 0 {
				continue
			}

			// Window-space depth interpolates linearly, like GL's gl_FragCoord.z.
			z := l0*sv[0].z + l1*sv[1].z + l2*sv[2].z
			// GL clips primitives at the near and far planes; dropping the
			// fragments outside the depth range is the per-pixel equivalent.
			if z < -1 || z > 1 {
				continue
			}
			di := y*t.w + x
			if z > t.depth[di] {
				continue
			}

			// Everything else is perspective correct.
			w0 := l0 * sv[0].invW
			w1 := l1 * sv[1].invW
			w2 := l2 * sv[2].invW
			norm := 1 / (w0 + w1 + w2)

			clipDist := (w0*a.ClipDist + w1*b.ClipDist + w2*c.ClipDist) * norm
			if clipDist < 0 {
				continue
			}

			var col mgl32.Vec4
			var loc mgl32.Vec3
			for i := 0; i < 4; i++ {
				col[i] = (w0*a.Color[i] + w1*b.Color[i] + w2*c.Color[i]) * norm
			}
			for i := 0; i < 3; i++ {
				loc[i] = (w0*a.Local[i] + w1*b.Local[i] + w2*c.Local[i]) * norm
			}

			frag := p.Fragment(col, loc)
			t.depth[di] = z
			o := t.img.PixOffset(x, y)
			t.img.Pix[o+0] = channelByte(frag[0])
			t.img.Pix[o+1] = channelByte(frag[1])
			t.img.Pix[o+2] = channelByte(frag[2])
			t.img.Pix[o+3] = channelByte(frag[3])
		}
	}
}

func (t *Target) toScreen(v VertexOut) screenVert {
	invW := 1 / v.ClipPos.W()
	ndcX := v.ClipPos.X() * invW
	ndcY := v.ClipPos.Y() * invW
	ndcZ := v.ClipPos.Z() * invW
	return screenVert{
		x:    (ndcX + 1) * 0.5 * float32(t.w),
		y:    (1 - ndcY) * 0.5 * float32(t.h),
		z:    ndcZ,
		invW: invW,
	}
}

// edge is the signed doubled area of the triangle (a, b, (px, py)).
func edge(a, b screenVert, px, py float32) float32 {
	return (b.x-a.x)*(py-a.y) - (b.y-a.y)*(px-a.x)
}

// bounds clamps the pixel range covering three window coordinates to [0, n).
func bounds(a, b, c float32, n int) (int, int) {
	lo := min32(a, min32(b, c))
	hi := max32(a, max32(b, c))
	loI := int(lo)
	hiI := int(hi)
	if loI < 0 {
		loI = 0
	}
	if hiI > n-1 {
		hiI = n - 1
	}
	return loI, hiI
}

func channelByte(v float32) byte {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return byte(v*255 + 0.5)
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
