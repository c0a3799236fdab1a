package main

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hherman1/gocube/raster"
)

// clearColor quantized for ebiten's Fill, matching the software backend.
var clearRGBA = raster.RGBA(clearColor)

// shadedTriangles projects the cube through transform and returns ebiten
// vertices ready for the blend shader, sorted back to front (this path has no
// depth buffer). Local x and y ride in SrcX/SrcY and local z is packed into
// the vertex alpha, which the shader unpacks to rebuild the falloff distance.
func shadedTriangles(transform mgl32.Mat4, w, h int) ([]ebiten.Vertex, []uint16) {
	prog := raster.FalloffProgram{Locals: raster.Locals{Transform: transform}}
	outs := make([]raster.VertexOut, len(cubeMesh.Vertices))
	for i, v := range cubeMesh.Vertices {
		outs[i] = prog.Vertex(v)
	}

	type tri struct {
		v     [3]ebiten.Vertex
		depth float32
	}
	tris := make([]tri, 0, len(cubeMesh.Indices)/3)
	for i := 0; i+2 < len(cubeMesh.Indices); i += 3 {
		var tr tri
		behind := false
		for j := 0; j < 3; j++ {
			out := outs[cubeMesh.Indices[i+j]]
			wClip := out.ClipPos.W()
			if wClip <= 0 {
				behind = true
				break
			}
			ndc := out.ClipPos.Mul(1 / wClip)
			tr.v[j] = ebiten.Vertex{
				DstX:   (ndc.X() + 1) * 0.5 * float32(w),
				DstY:   (1 - ndc.Y()) * 0.5 * float32(h),
				SrcX:   out.Local.X(),
				SrcY:   out.Local.Y(),
				ColorR: out.Color.X(),
				ColorG: out.Color.Y(),
				ColorB: out.Color.Z(),
				ColorA: (out.Local.Z() + 1) / 2,
			}
			tr.depth += ndc.Z() / 3
		}
		if behind {
			continue
		}
		tris = append(tris, tr)
	}
	sort.Slice(tris, func(i, j int) bool { return tris[i].depth > tris[j].depth })

	vs := make([]ebiten.Vertex, 0, len(tris)*3)
	is := make([]uint16, 0, len(tris)*3)
	for _, tr := range tris {
		for j := 0; j < 3; j++ {
			is = append(is, uint16(len(vs)))
			vs = append(vs, tr.v[j])
		}
	}
	return vs, is
}

func (g *Game) drawShaded(screen *ebiten.Image, transform mgl32.Mat4) {
	screen.Fill(clearRGBA)
	vs, is := shadedTriangles(transform, g.w, g.h)
	if len(is) == 0 {
		return
	}
	screen.DrawTrianglesShader(vs, is, blendShader, &ebiten.DrawTrianglesShaderOptions{})
}
