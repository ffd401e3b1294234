package driver

import "github.com/hajimehoshi/ebiten/v2"

// standardButtons names the standard gamepad layout. Keys are lowercase;
// Xbox-style names are canonical with PlayStation aliases on the face and
// shoulder buttons.
var standardButtons = map[string]ebiten.StandardGamepadButton{
	"a":     ebiten.StandardGamepadButtonRightBottom,
	"south": ebiten.StandardGamepadButtonRightBottom,
	"cross": ebiten.StandardGamepadButtonRightBottom,

	"b":      ebiten.StandardGamepadButtonRightRight,
	"east":   ebiten.StandardGamepadButtonRightRight,
	"circle": ebiten.StandardGamepadButtonRightRight,

	"x":      ebiten.StandardGamepadButtonRightLeft,
	"west":   ebiten.StandardGamepadButtonRightLeft,
	"square": ebiten.StandardGamepadButtonRightLeft,

	"y":        ebiten.StandardGamepadButtonRightTop,
	"north":    ebiten.StandardGamepadButtonRightTop,
	"triangle": ebiten.StandardGamepadButtonRightTop,

	"leftshoulder":  ebiten.StandardGamepadButtonFrontTopLeft,
	"l1":            ebiten.StandardGamepadButtonFrontTopLeft,
	"rightshoulder": ebiten.StandardGamepadButtonFrontTopRight,
	"r1":            ebiten.StandardGamepadButtonFrontTopRight,

	// Digital trigger clicks. Analog values go through GamepadScalar.
	"lefttrigger":  ebiten.StandardGamepadButtonFrontBottomLeft,
	"l2":           ebiten.StandardGamepadButtonFrontBottomLeft,
	"righttrigger": ebiten.StandardGamepadButtonFrontBottomRight,
	"r2":           ebiten.StandardGamepadButtonFrontBottomRight,

	"back":   ebiten.StandardGamepadButtonCenterLeft,
	"select": ebiten.StandardGamepadButtonCenterLeft,
	"start":  ebiten.StandardGamepadButtonCenterRight,
	"guide":  ebiten.StandardGamepadButtonCenterCenter,

	"leftstick":  ebiten.StandardGamepadButtonLeftStick,
	"l3":         ebiten.StandardGamepadButtonLeftStick,
	"rightstick": ebiten.StandardGamepadButtonRightStick,
	"r3":         ebiten.StandardGamepadButtonRightStick,

	"dpadup":    ebiten.StandardGamepadButtonLeftTop,
	"dpaddown":  ebiten.StandardGamepadButtonLeftBottom,
	"dpadleft":  ebiten.StandardGamepadButtonLeftLeft,
	"dpadright": ebiten.StandardGamepadButtonLeftRight,
}
