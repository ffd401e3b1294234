// Package devices covers the housekeeping around the polling engine:
// gamepad enumeration, controller-kind detection for UI prompts, and rumble.
package devices

import (
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Kind is the family of a controller, used to pick button prompts.
type Kind int

const (
	KindUnknown Kind = iota
	KindXbox
	KindPlayStation
)

func (k Kind) String() string {
	switch k {
	case KindXbox:
		return "xbox"
	case KindPlayStation:
		return "playstation"
	}
	return "unknown"
}

// Detection results are cached; gamepad names never change while connected.
var kindCache = make(map[ebiten.GamepadID]Kind)

// Gamepads appends the connected gamepad IDs to dst and returns it. Pass the
// previous result to avoid allocating every frame.
func Gamepads(dst []ebiten.GamepadID) []ebiten.GamepadID {
	return ebiten.AppendGamepadIDs(dst[:0])
}

// KindOf reports the controller family of a connected gamepad, detecting on
// first access and caching after.
func KindOf(id ebiten.GamepadID) Kind {
	if k, ok := kindCache[id]; ok {
		return k
	}
	k := DetectKind(ebiten.GamepadName(id))
	kindCache[id] = k
	return k
}

// DetectKind classifies a gamepad by its reported name. Anything that is not
// recognizably a PlayStation controller is treated as Xbox-style, which is
// the safe default for standard-layout prompts.
func DetectKind(name string) Kind {
	n := strings.ToLower(name)
	for _, marker := range []string{"ps4", "ps5", "playstation", "dualshock", "dualsense"} {
		if strings.Contains(n, marker) {
			return KindPlayStation
		}
	}
	return KindXbox
}

// Forget drops a disconnected gamepad's cached kind.
func Forget(id ebiten.GamepadID) {
	delete(kindCache, id)
}

// Rumble vibrates a gamepad for the given duration. Magnitudes are 0..1;
// strong is the low-frequency motor. A disconnected ID is a no-op.
func Rumble(id ebiten.GamepadID, strong, weak float64, d time.Duration) {
	ebiten.VibrateGamepad(id, &ebiten.VibrateGamepadOptions{
		Duration:        d,
		StrongMagnitude: strong,
		WeakMagnitude:   weak,
	})
}
