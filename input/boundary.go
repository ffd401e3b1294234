package input

// Handle identifies one device-signal query at the boundary. Handles are
// resolved from human-readable names once, during the build phase, and are
// stable for the life of the process.
type Handle int

// NoHandle is the zero-information handle. Boundaries return it alongside a
// resolution error.
const NoHandle Handle = -1

// MouseButton selects a mouse button for boolean bindings.
type MouseButton uint8

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// MouseScalar selects a single-axis mouse property.
type MouseScalar uint8

const (
	MousePositionX MouseScalar = iota
	MousePositionY
	MouseDeltaX
	MouseDeltaY
	MouseWheelX
	MouseWheelY
)

// MouseVector selects a two-axis mouse property.
type MouseVector uint8

const (
	MousePosition MouseVector = iota
	MouseDelta
	MouseWheel
)

// GamepadScalar selects a single-axis gamepad property.
type GamepadScalar uint8

const (
	GamepadLeftStickX GamepadScalar = iota
	GamepadLeftStickY
	GamepadRightStickX
	GamepadRightStickY
	GamepadLeftTrigger
	GamepadRightTrigger
)

// GamepadVector selects a two-axis gamepad property.
type GamepadVector uint8

const (
	GamepadLeftStick GamepadVector = iota
	GamepadRightStick
)

// Boundary is the device layer the engine polls. The driver package provides
// the Ebitengine-backed implementation; tests use StubBoundary.
//
// Resolve methods are called only while building. Every query method must be
// synchronous, side-effect free, allocation free and O(1); they are called
// for every matching binding on every Tick. Queries against a disconnected
// gamepad index return neutral zero values rather than failing.
//
// Pressed/released keys are one-frame edges tracked by the boundary itself;
// the engine forwards them without keeping its own history.
type Boundary interface {
	// Refresh advances the boundary's per-frame state (mouse deltas, pad
	// enumeration). Tick calls it once before polling any binding.
	Refresh()

	ResolveKey(name string) (Handle, error)
	ResolveGamepadButton(name string) (Handle, error)

	KeyDown(h Handle) bool
	KeyPressed(h Handle) bool
	KeyReleased(h Handle) bool

	MouseButtonDown(b MouseButton) bool
	MouseScalar(p MouseScalar) float64
	MouseVector(p MouseVector) (x, y float64)

	GamepadButtonDown(pad int, h Handle) bool
	GamepadScalar(pad int, p GamepadScalar) float64
	GamepadVector(pad int, p GamepadVector) (x, y float64)
}
