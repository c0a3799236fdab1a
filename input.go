package main

import "github.com/hajimehoshi/ebiten/v2"

// Global, single threaded map for easier input consumption
var heldKeys = map[ebiten.Key]bool{}

// Returns true on the first frame k is down. The call consumes the edge, so
// ask at most once per key per update.
func justPressed(k ebiten.Key) bool {
	down := ebiten.IsKeyPressed(k)
	was := heldKeys[k]
	heldKeys[k] = down
	return down && !was
}
