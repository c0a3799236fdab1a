package main

import (
	"fmt"
	"math"

	"github.com/ByteArena/box2d"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hherman1/gocube/raster"
)

// Default spin: one degree per tick at 60 ticks per second.
const spinRate = math.Pi / 3

// Angle the demo starts (and resets) at.
const startAngle = math.Pi / 4

var clearColor = mgl32.Vec4{0.1, 0.2, 0.3, 1}

// A Game spins the cube and draws it each frame with one of two backends.
type Game struct {
	// width / height of screen
	w, h int

	world box2d.B2World
	// The cube's angular state lives in this body. Torque gives the spin
	// some inertia instead of a fixed step per frame.
	spin *box2d.B2Body

	// Software backend state, reallocated on resize.
	target *raster.Target
	frame  *ebiten.Image
	prog   raster.FalloffProgram

	// Camera distance multiplier, wheel controlled.
	zoom float32

	// Draw through the Kage shader instead of the software rasterizer.
	gpu bool

	paused bool
}

// Creates a game with the cube already spinning.
func NewGame() *Game {
	g := Game{zoom: 1}
	g.world = box2d.MakeB2World(box2d.MakeB2Vec2(0, 0))

	def := box2d.NewB2BodyDef()
	def.Type = box2d.B2BodyType.B2_dynamicBody
	def.Awake = true
	def.Angle = startAngle
	g.spin = g.world.CreateBody(def)

	// The fixture only exists to give the body mass and rotational inertia.
	shape := box2d.MakeB2PolygonShape()
	shape.SetAsBox(1, 1)
	fd := box2d.MakeB2FixtureDef()
	fd.Shape = &shape
	fd.Density = 1
	g.spin.CreateFixtureFromDef(&fd)
	g.spin.SetAngularVelocity(spinRate)

	return &g
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return fmt.Errorf("escape pressed")
	}
	if justPressed(ebiten.KeyG) {
		g.gpu = !g.gpu
	}
	if justPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if justPressed(ebiten.KeyR) {
		g.spin.SetTransform(g.spin.GetPosition(), startAngle)
		g.spin.SetAngularVelocity(spinRate)
		g.zoom = 1
	}
	{
		// spin control
		if ebiten.IsKeyPressed(ebiten.KeyA) {
			g.spin.ApplyTorque(8, true)
		}
		if ebiten.IsKeyPressed(ebiten.KeyD) {
			g.spin.ApplyTorque(-8, true)
		}
	}
	{
		// camera zoom
		_, yoff := ebiten.Wheel()
		if yoff != 0 {
			g.zoom *= float32(math.Pow(0.98, yoff))
			// keep the cube between the near and far planes
			if g.zoom < minZoom {
				g.zoom = minZoom
			}
			if g.zoom > maxZoom {
				g.zoom = maxZoom
			}
		}
	}

	if !g.paused {
		g.world.Step(1.0/60., 16, 3)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.w == 0 || g.h == 0 {
		return
	}
	t := orbitTransform(g.w, g.h, float32(g.spin.GetAngle()), g.zoom)
	if g.gpu {
		g.drawShaded(screen, t)
		return
	}
	if g.target == nil {
		g.target = raster.NewTarget(g.w, g.h)
		g.frame = ebiten.NewImage(g.w, g.h)
	} else if tw, th := g.target.Size(); tw != g.w || th != g.h {
		g.target = raster.NewTarget(g.w, g.h)
		g.frame = ebiten.NewImage(g.w, g.h)
	}
	g.target.Clear(clearColor)
	g.prog.Transform = t
	g.target.Draw(cubeMesh, &g.prog)
	g.frame.ReplacePixels(g.target.Pix())
	screen.DrawImage(g.frame, nil)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	g.w = outsideWidth
	g.h = outsideHeight
	return outsideWidth, outsideHeight
}
