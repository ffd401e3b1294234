package input

// Binding variants are closed tagged structs. Each owns exactly one result
// slot, allocated at declaration time; Tick only overwrites slot fields and
// never replaces them.

type boolSource uint8

const (
	boolKeyDown boolSource = iota
	boolKeyPressed
	boolKeyReleased
	boolMouseButton
	boolGamepadButton
)

type boolBinding struct {
	src    boolSource
	handle Handle      // key or gamepad button, by source
	button MouseButton // mouse-button source only
	pad    int         // gamepad source only
	value  bool
}

type scalarSource uint8

const (
	scalarKeyAxis scalarSource = iota
	scalarMouse
	scalarGamepad
)

type scalarBinding struct {
	src      scalarSource
	negative Handle // key-axis source
	positive Handle // key-axis source
	mouse    MouseScalar
	gamepad  GamepadScalar
	pad      int
	value    float64
}

type vectorSource uint8

const (
	vectorMouse vectorSource = iota
	vectorGamepad
)

type vectorBinding struct {
	src     vectorSource
	mouse   MouseVector
	gamepad GamepadVector
	pad     int
	value   *Vec2 // identity-stable for the life of the binding
}

func (b *boolBinding) poll(dev Boundary) {
	switch b.src {
	case boolKeyDown:
		b.value = dev.KeyDown(b.handle)
	case boolKeyPressed:
		b.value = dev.KeyPressed(b.handle)
	case boolKeyReleased:
		b.value = dev.KeyReleased(b.handle)
	case boolMouseButton:
		b.value = dev.MouseButtonDown(b.button)
	case boolGamepadButton:
		b.value = dev.GamepadButtonDown(b.pad, b.handle)
	}
}

func (b *scalarBinding) poll(dev Boundary) {
	switch b.src {
	case scalarKeyAxis:
		// Both keys held cancel to 0.
		v := 0.0
		if dev.KeyDown(b.positive) {
			v++
		}
		if dev.KeyDown(b.negative) {
			v--
		}
		b.value = v
	case scalarMouse:
		b.value = dev.MouseScalar(b.mouse)
	case scalarGamepad:
		b.value = dev.GamepadScalar(b.pad, b.gamepad)
	}
}

func (b *vectorBinding) poll(dev Boundary) {
	switch b.src {
	case vectorMouse:
		b.value.X, b.value.Y = dev.MouseVector(b.mouse)
	case vectorGamepad:
		b.value.X, b.value.Y = dev.GamepadVector(b.pad, b.gamepad)
	}
}
