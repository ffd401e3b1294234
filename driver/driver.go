// Package driver implements the input.Boundary over Ebitengine. Key and
// button names are resolved against tables built once at construction;
// per-frame queries go straight to ebiten/inpututil with no string work.
package driver

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/flintlock-games/bindle/input"
)

// DefaultDeadzone is applied to gamepad stick axes unless overridden.
const DefaultDeadzone = 0.25

// Option configures the boundary at construction.
type Option func(*Ebiten)

// WithDeadzone sets the stick-axis deadzone (0 disables it).
func WithDeadzone(d float64) Option {
	return func(e *Ebiten) { e.deadzone = d }
}

// Ebiten is the Ebitengine-backed device boundary. One instance serves one
// game; it keeps only per-frame scratch state (cursor history for mouse
// deltas and a reused gamepad ID slice), refreshed by the engine's Tick.
type Ebiten struct {
	keys     map[string]ebiten.Key
	deadzone float64

	// Refreshed once per frame.
	pads             []ebiten.GamepadID
	lastCurX         int
	lastCurY         int
	deltaX           float64
	deltaY           float64
	sawFirstPosition bool
}

// New builds the name-resolution tables and returns a ready boundary.
func New(opts ...Option) *Ebiten {
	e := &Ebiten{
		keys:     make(map[string]ebiten.Key, int(ebiten.KeyMax)+1),
		deadzone: DefaultDeadzone,
	}
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if name := k.String(); name != "" {
			e.keys[strings.ToLower(name)] = k
		}
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Refresh advances per-frame scratch state: reconnects the gamepad ID slice
// in place and derives the cursor delta from the previous frame's position.
func (e *Ebiten) Refresh() {
	e.pads = ebiten.AppendGamepadIDs(e.pads[:0])

	x, y := ebiten.CursorPosition()
	if e.sawFirstPosition {
		e.deltaX = float64(x - e.lastCurX)
		e.deltaY = float64(y - e.lastCurY)
	}
	e.lastCurX, e.lastCurY = x, y
	e.sawFirstPosition = true
}

// ResolveKey resolves a key name ("W", "Space", "ArrowLeft") to a handle.
// Matching is case-insensitive. Resolution runs at build time only.
func (e *Ebiten) ResolveKey(name string) (input.Handle, error) {
	if k, ok := e.keys[strings.ToLower(name)]; ok {
		return input.Handle(k), nil
	}
	return input.NoHandle, fmt.Errorf("driver: unknown key name %q", name)
}

// ResolveGamepadButton resolves a standard-layout button name
// ("A", "LeftShoulder", "DpadUp"; PlayStation aliases work too) to a handle.
func (e *Ebiten) ResolveGamepadButton(name string) (input.Handle, error) {
	if b, ok := standardButtons[strings.ToLower(name)]; ok {
		return input.Handle(b), nil
	}
	return input.NoHandle, fmt.Errorf("driver: unknown gamepad button name %q", name)
}

func (e *Ebiten) KeyDown(h input.Handle) bool {
	return ebiten.IsKeyPressed(ebiten.Key(h))
}

// KeyPressed and KeyReleased forward inpututil's one-frame edges; inpututil
// keeps the previous-frame state, so the engine never has to.
func (e *Ebiten) KeyPressed(h input.Handle) bool {
	return inpututil.IsKeyJustPressed(ebiten.Key(h))
}

func (e *Ebiten) KeyReleased(h input.Handle) bool {
	return inpututil.IsKeyJustReleased(ebiten.Key(h))
}

func (e *Ebiten) MouseButtonDown(b input.MouseButton) bool {
	switch b {
	case input.MouseLeft:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	case input.MouseRight:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	case input.MouseMiddle:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	}
	return false
}

func (e *Ebiten) MouseScalar(p input.MouseScalar) float64 {
	switch p {
	case input.MousePositionX:
		x, _ := ebiten.CursorPosition()
		return float64(x)
	case input.MousePositionY:
		_, y := ebiten.CursorPosition()
		return float64(y)
	case input.MouseDeltaX:
		return e.deltaX
	case input.MouseDeltaY:
		return e.deltaY
	case input.MouseWheelX:
		x, _ := ebiten.Wheel()
		return x
	case input.MouseWheelY:
		_, y := ebiten.Wheel()
		return y
	}
	return 0
}

func (e *Ebiten) MouseVector(p input.MouseVector) (float64, float64) {
	switch p {
	case input.MousePosition:
		x, y := ebiten.CursorPosition()
		return float64(x), float64(y)
	case input.MouseDelta:
		return e.deltaX, e.deltaY
	case input.MouseWheel:
		return ebiten.Wheel()
	}
	return 0, 0
}

// padID maps a zero-based pad index to a connected gamepad with the
// standard layout. A disconnected or nonstandard index reads as neutral.
func (e *Ebiten) padID(pad int) (ebiten.GamepadID, bool) {
	if pad < 0 || pad >= len(e.pads) {
		return 0, false
	}
	id := e.pads[pad]
	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		return 0, false
	}
	return id, true
}

func (e *Ebiten) GamepadButtonDown(pad int, h input.Handle) bool {
	id, ok := e.padID(pad)
	if !ok {
		return false
	}
	return ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButton(h))
}

func (e *Ebiten) GamepadScalar(pad int, p input.GamepadScalar) float64 {
	id, ok := e.padID(pad)
	if !ok {
		return 0
	}
	switch p {
	case input.GamepadLeftStickX:
		return e.axis(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	case input.GamepadLeftStickY:
		return e.axis(id, ebiten.StandardGamepadAxisLeftStickVertical)
	case input.GamepadRightStickX:
		return e.axis(id, ebiten.StandardGamepadAxisRightStickHorizontal)
	case input.GamepadRightStickY:
		return e.axis(id, ebiten.StandardGamepadAxisRightStickVertical)
	case input.GamepadLeftTrigger:
		return ebiten.StandardGamepadButtonValue(id, ebiten.StandardGamepadButtonFrontBottomLeft)
	case input.GamepadRightTrigger:
		return ebiten.StandardGamepadButtonValue(id, ebiten.StandardGamepadButtonFrontBottomRight)
	}
	return 0
}

func (e *Ebiten) GamepadVector(pad int, p input.GamepadVector) (float64, float64) {
	id, ok := e.padID(pad)
	if !ok {
		return 0, 0
	}
	switch p {
	case input.GamepadLeftStick:
		return e.axis(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
			e.axis(id, ebiten.StandardGamepadAxisLeftStickVertical)
	case input.GamepadRightStick:
		return e.axis(id, ebiten.StandardGamepadAxisRightStickHorizontal),
			e.axis(id, ebiten.StandardGamepadAxisRightStickVertical)
	}
	return 0, 0
}

func (e *Ebiten) axis(id ebiten.GamepadID, a ebiten.StandardGamepadAxis) float64 {
	return applyDeadzone(ebiten.StandardGamepadAxisValue(id, a), e.deadzone)
}

func applyDeadzone(v, deadzone float64) float64 {
	if v > -deadzone && v < deadzone {
		return 0
	}
	return v
}
