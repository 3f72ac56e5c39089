// Package ebiten hosts the interactive frontend: an Ebiten game loop
// that samples keyboard and gamepad state each tick, advances the
// camera, renders a frame through the software surface and blits it to
// the window.
package ebiten

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"twistgrid/pkg/engine/geometry"
	engineinput "twistgrid/pkg/engine/input"
	"twistgrid/pkg/game/camera"
	"twistgrid/pkg/game/renderer"
	"twistgrid/pkg/game/renderer/ggsurface"
)

const (
	moveSpeed = 0.045 // tiles per tick
	turnSpeed = 0.035 // radians per tick

	zoomStep    = 4
	minTileSize = 12
	maxTileSize = 160
)

// keyCodes maps Ebiten keys to the device-neutral codes the input layer
// binds actions to.
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyW:          "w",
	ebiten.KeyArrowUp:    "arrow_up",
	ebiten.KeyS:          "s",
	ebiten.KeyArrowDown:  "arrow_down",
	ebiten.KeyA:          "a",
	ebiten.KeyArrowLeft:  "arrow_left",
	ebiten.KeyD:          "d",
	ebiten.KeyArrowRight: "arrow_right",
	ebiten.KeyQ:          "q",
	ebiten.KeyE:          "e",
}

// metaKeyCodes are sampled edge-triggered rather than level-triggered.
var metaKeyCodes = map[ebiten.Key]string{
	ebiten.KeyEqual:          "=",
	ebiten.KeyNumpadAdd:      "numpad_add",
	ebiten.KeyMinus:          "-",
	ebiten.KeyNumpadSubtract: "numpad_subtract",
	ebiten.KeyF12:            "f12",
	ebiten.KeyEscape:         "escape",
}

// Game implements ebiten.Game around a camera and a software surface.
type Game struct {
	cam     *camera.Camera
	surface *ggsurface.Surface

	width, height int
	tileOverride  float64

	gamepadIDs []ebiten.GamepadID
}

// NewGame wires a camera to a surface of the given initial size.
func NewGame(cam *camera.Camera, surface *ggsurface.Surface, width, height int) *Game {
	return &Game{
		cam:     cam,
		surface: surface,
		width:   width,
		height:  height,
	}
}

// Update samples input and advances the camera by one tick.
func (g *Game) Update() error {
	var delta geometry.Vec2
	var turn float64

	for key, code := range keyCodes {
		if !ebiten.IsKeyPressed(key) {
			continue
		}
		intent := engineinput.MapToIntent(engineinput.RawInput{
			Device:    engineinput.DeviceKeyboard,
			Code:      code,
			Timestamp: time.Now(),
		})
		switch intent.Action {
		case engineinput.ActionMoveForward:
			delta.Y += moveSpeed
		case engineinput.ActionMoveBack:
			delta.Y -= moveSpeed
		case engineinput.ActionStrafeLeft:
			delta.X -= moveSpeed
		case engineinput.ActionStrafeRight:
			delta.X += moveSpeed
		case engineinput.ActionTurnLeft:
			turn -= turnSpeed
		case engineinput.ActionTurnRight:
			turn += turnSpeed
		}
	}

	dx, dy, ok := g.leftStick()
	if ok {
		delta.X += dx * moveSpeed
		delta.Y += dy * moveSpeed
	}

	g.cam.Move(delta)
	g.cam.Turn(turn)

	for key, code := range metaKeyCodes {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		intent := engineinput.MapToIntent(engineinput.RawInput{
			Device:    engineinput.DeviceKeyboard,
			Code:      code,
			Timestamp: time.Now(),
		})
		switch intent.Action {
		case engineinput.ActionZoomIn:
			g.adjustZoom(zoomStep)
		case engineinput.ActionZoomOut:
			g.adjustZoom(-zoomStep)
		case engineinput.ActionScreenshot:
			g.saveScreenshot()
		case engineinput.ActionQuit:
			return ebiten.Termination
		}
	}

	return nil
}

// leftStick reads the first connected gamepad's left stick, with a dead
// zone against drift.
func (g *Game) leftStick() (dx, dy float64, ok bool) {
	const deadZone = 0.25
	g.gamepadIDs = ebiten.AppendGamepadIDs(g.gamepadIDs[:0])
	for _, id := range g.gamepadIDs {
		x := ebiten.GamepadAxisValue(id, 0)
		y := ebiten.GamepadAxisValue(id, 1)
		if x*x+y*y < deadZone*deadZone {
			continue
		}
		// Stick up reports -1; forward is positive local Y.
		return x, -y, true
	}
	return 0, 0, false
}

func (g *Game) adjustZoom(step float64) {
	ts := g.tileOverride
	if ts == 0 {
		cfg := renderer.NewRenderConfig(nil, float64(g.width), float64(g.height))
		ts = cfg.TileSize()
	}
	ts += step
	if ts < minTileSize {
		ts = minTileSize
	}
	if ts > maxTileSize {
		ts = maxTileSize
	}
	g.tileOverride = ts
}

func (g *Game) saveScreenshot() {
	name := fmt.Sprintf("twistgrid-%s.png", time.Now().Format("20060102-150405"))
	if err := g.surface.SavePNG(name); err != nil {
		log.Printf("Screenshot failed: %v", err)
		return
	}
	log.Printf("Saved %s", name)
}

// Draw renders the current camera view and blits it to the window.
func (g *Game) Draw(screen *ebiten.Image) {
	cfg := renderer.NewRenderConfig(g.surface, float64(g.width), float64(g.height))
	cfg.TileOverride = g.tileOverride

	// The surface's y axis points down while the world's points north,
	// so the view transform takes the negated yaw.
	renderer.RenderWithConfig(cfg, g.cam.Root, g.cam.Offset, -g.cam.Rotation)

	frame := ebiten.NewImageFromImage(g.surface.Image())
	screen.DrawImage(frame, nil)
	frame.Deallocate()
}

// Layout tracks window resizes and reallocates the software surface to
// match.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 &&
		(outsideWidth != g.width || outsideHeight != g.height) {
		if err := g.surface.Resize(outsideWidth, outsideHeight); err != nil {
			log.Printf("Surface resize failed: %v", err)
		} else {
			g.width = outsideWidth
			g.height = outsideHeight
		}
	}
	return g.width, g.height
}

// Run opens the window and blocks until the player quits.
func Run(title string, g *Game) error {
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}
