//go:build ignore
// +build ignore

package main

// Vertex colors carry the fragment color in rgb with the local-space z packed
// into alpha as (z+1)/2. Local x and y arrive through texCoord.
func Fragment(position vec4, texCoord vec2, color vec4) vec4 {
	local := vec3(texCoord.x, texCoord.y, color.a*2-1)
	dist := dot(local, local)
	blend := 1 - min(dist*0.3, 1)
	return vec4(color.r, color.g, color.b, 1) * blend
}
