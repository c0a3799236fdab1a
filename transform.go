package main

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera frustum. Zoom is clamped so the cube never leaves the depth range.
const (
	fovDegrees = 45
	nearPlane  = 1
	farPlane   = 10
)

// Zoom bounds: every cube corner sits within cubeRadius of the origin, so
// keeping the eye distance between nearPlane+cubeRadius and
// farPlane-cubeRadius keeps the whole cube inside the depth range at any
// spin angle.
var (
	cubeRadius = float32(math.Sqrt(3))
	minZoom    = (nearPlane + cubeRadius) / orbitEye(0, 1).Len()
	maxZoom    = (farPlane - cubeRadius) / orbitEye(0, 1).Len()
)

// orbitEye is the camera position for a given spin angle (radians) around Z.
// zoom scales the distance from the origin.
func orbitEye(angle, zoom float32) mgl32.Vec3 {
	rot := mgl32.QuatRotate(angle, mgl32.Vec3{0, 0, 1})
	return rot.Rotate(mgl32.Vec3{1.5, -5, 3}).Mul(zoom)
}

// orbitTransform combines a perspective projection with a look-at view from
// the orbiting eye towards the origin, up being +Z.
func orbitTransform(width, height int, angle, zoom float32) mgl32.Mat4 {
	view := mgl32.LookAtV(orbitEye(angle, zoom), mgl32.Vec3{}, mgl32.Vec3{0, 0, 1})
	proj := mgl32.Perspective(mgl32.DegToRad(fovDegrees), float32(width)/float32(height), nearPlane, farPlane)
	return proj.Mul4(view)
}
