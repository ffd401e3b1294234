package actions

import (
	"fmt"
	"strings"

	"github.com/flintlock-games/bindle/input"
)

// Property vocabularies used by the asset format. Names are matched
// case-insensitively.

var mouseButtons = map[string]input.MouseButton{
	"left":   input.MouseLeft,
	"right":  input.MouseRight,
	"middle": input.MouseMiddle,
}

var mouseScalars = map[string]input.MouseScalar{
	"positionx": input.MousePositionX,
	"positiony": input.MousePositionY,
	"deltax":    input.MouseDeltaX,
	"deltay":    input.MouseDeltaY,
	"wheelx":    input.MouseWheelX,
	"wheely":    input.MouseWheelY,
}

var mouseVectors = map[string]input.MouseVector{
	"position": input.MousePosition,
	"delta":    input.MouseDelta,
	"wheel":    input.MouseWheel,
}

var gamepadScalars = map[string]input.GamepadScalar{
	"leftstickx":   input.GamepadLeftStickX,
	"leftsticky":   input.GamepadLeftStickY,
	"rightstickx":  input.GamepadRightStickX,
	"rightsticky":  input.GamepadRightStickY,
	"lefttrigger":  input.GamepadLeftTrigger,
	"righttrigger": input.GamepadRightTrigger,
}

var gamepadVectors = map[string]input.GamepadVector{
	"leftstick":  input.GamepadLeftStick,
	"rightstick": input.GamepadRightStick,
}

func parseMouseButton(name string) (input.MouseButton, error) {
	if b, ok := mouseButtons[strings.ToLower(name)]; ok {
		return b, nil
	}
	return 0, fmt.Errorf("unknown mouse button %q", name)
}

func parseMouseScalar(name string) (input.MouseScalar, error) {
	if p, ok := mouseScalars[strings.ToLower(name)]; ok {
		return p, nil
	}
	return 0, fmt.Errorf("unknown mouse scalar property %q", name)
}

func parseMouseVector(name string) (input.MouseVector, error) {
	if p, ok := mouseVectors[strings.ToLower(name)]; ok {
		return p, nil
	}
	return 0, fmt.Errorf("unknown mouse vector property %q", name)
}

func parseGamepadScalar(name string) (input.GamepadScalar, error) {
	if p, ok := gamepadScalars[strings.ToLower(name)]; ok {
		return p, nil
	}
	return 0, fmt.Errorf("unknown gamepad scalar property %q", name)
}

func parseGamepadVector(name string) (input.GamepadVector, error) {
	if p, ok := gamepadVectors[strings.ToLower(name)]; ok {
		return p, nil
	}
	return 0, fmt.Errorf("unknown gamepad vector property %q", name)
}
