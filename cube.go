package main

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/hherman1/gocube/raster"
)

var (
	green = mgl32.Vec3{0, 1, 0}
	blue  = mgl32.Vec3{0, 0, 1}
)

// cubeMesh is a unit-radius cube with the top face green and the bottom blue.
var cubeMesh = raster.Mesh{
	Vertices: []raster.Vertex{
		// top
		{Pos: mgl32.Vec3{-1, -1, 1}, Color: green},
		{Pos: mgl32.Vec3{1, -1, 1}, Color: green},
		{Pos: mgl32.Vec3{1, 1, 1}, Color: green},
		{Pos: mgl32.Vec3{-1, 1, 1}, Color: green},
		// bottom
		{Pos: mgl32.Vec3{-1, -1, -1}, Color: blue},
		{Pos: mgl32.Vec3{1, -1, -1}, Color: blue},
		{Pos: mgl32.Vec3{1, 1, -1}, Color: blue},
		{Pos: mgl32.Vec3{-1, 1, -1}, Color: blue},
	},
	Indices: []uint16{
		0, 1, 2, 2, 3, 0, // top
		4, 5, 6, 6, 7, 4, // bottom
		0, 1, 4, 4, 5, 1,
		1, 2, 5, 5, 6, 2,
		2, 3, 6, 6, 7, 3,
		3, 0, 7, 7, 4, 0,
	},
}
