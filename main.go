package main

import (
	_ "embed"
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hherman1/gocube/raster"
)

//go:embed blend_shader.go
var blendShaderRaw []byte
var blendShader *ebiten.Shader

var frameOut = flag.String("frame", "", "render one frame to the given png file and exit")

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatalln(err)
	}
}

func run() error {
	if *frameOut != "" {
		return writeFrame(*frameOut, 1024, 768)
	}

	var err error
	blendShader, err = ebiten.NewShader(blendShaderRaw)
	if err != nil {
		return fmt.Errorf("loading blend shader: %w", err)
	}

	ebiten.SetWindowSize(1024, 768)
	ebiten.SetWindowTitle("gocube")
	ebiten.SetWindowResizable(true)
	if err := ebiten.RunGame(NewGame()); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// Renders the initial view with the software backend. Needs no display.
func writeFrame(path string, w, h int) error {
	target := raster.NewTarget(w, h)
	target.Clear(clearColor)
	prog := raster.FalloffProgram{Locals: raster.Locals{Transform: orbitTransform(w, h, startAngle, 1)}}
	target.Draw(cubeMesh, &prog)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, target.Image()); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}
