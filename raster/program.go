package raster

import "github.com/go-gl/mathgl/mgl32"

// Locals are the per-draw uniforms, shared read-only by every stage
// invocation of one Draw.
type Locals struct {
	Transform mgl32.Mat4
}

// FalloffFactor scales squared distance before the falloff clamp.
const FalloffFactor = 0.3

// Blend maps a squared distance from the local-space origin to a color
// multiplier: 1 at the origin, falling linearly to 0 at dist2 = 1/FalloffFactor
// and clamped there.
func Blend(dist2 float32) float32 {
	return 1 - min32(dist2*FalloffFactor, 1)
}

// FalloffProgram transforms positions by a single matrix and darkens
// fragments by their squared distance from the local-space origin.
type FalloffProgram struct {
	Locals
}

func (p *FalloffProgram) Vertex(v Vertex) VertexOut {
	return VertexOut{
		ClipPos:  p.Transform.Mul4x1(v.Pos.Vec4(1)),
		Color:    v.Color.Vec4(1),
		Local:    v.Pos,
		ClipDist: 1,
	}
}

func (p *FalloffProgram) Fragment(color mgl32.Vec4, local mgl32.Vec3) mgl32.Vec4 {
	return color.Mul(Blend(local.Dot(local)))
}
