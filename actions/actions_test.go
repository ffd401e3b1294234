package actions

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flintlock-games/bindle/input"
)

const sampleAsset = `
deadzone: 0.2
actions:
  jump:
    kind: button
    keys: [Space, W]
    gamepad_buttons: [A]
  fire:
    kind: button
    mouse_button: left
  move_x:
    kind: axis
    negative_key: A
    positive_key: D
    gamepad: leftStickX
  look:
    kind: vector
    gamepad: rightStick
    mouse: delta
`

func load(t *testing.T, asset string) *Set {
	t.Helper()
	s, err := Load(strings.NewReader(asset))
	require.NoError(t, err)
	return s
}

func TestLoadParsesAsset(t *testing.T) {
	s := load(t, sampleAsset)
	require.Equal(t, 4, s.Len())
	require.Equal(t, 0.2, s.Deadzone)
}

func TestLoadWithoutDeadzone(t *testing.T) {
	s := load(t, "actions:\n  jump: {kind: button, keys: [Space]}\n")
	require.Negative(t, s.Deadzone)
}

func TestLoadRejectsBadAssets(t *testing.T) {
	cases := []struct {
		name  string
		asset string
		want  string
	}{
		{"empty", "deadzone: 0.1\n", "no actions"},
		{"unknown kind", "actions:\n  jump: {kind: toggle, keys: [Space]}\n", "unknown kind"},
		{"button without sources", "actions:\n  jump: {kind: button}\n", "no sources"},
		{"axis with half a key pair", "actions:\n  x: {kind: axis, positive_key: D}\n", "negative_key"},
		{"axis bad gamepad property", "actions:\n  x: {kind: axis, gamepad: middleStick}\n", "middleStick"},
		{"vector bad mouse property", "actions:\n  look: {kind: vector, mouse: hover}\n", "hover"},
		{"vector without sources", "actions:\n  look: {kind: vector}\n", "no sources"},
		{"bad mouse button", "actions:\n  fire: {kind: button, mouse_button: fourth}\n", "fourth"},
		{"unknown field", "actions:\n  jump: {kind: button, keys: [Space], turbo: true}\n", "turbo"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tc.asset))
			require.Error(t, err)
			require.ErrorContains(t, err, tc.want)
		})
	}
}

func TestCompileResolvesNamesAgainstBoundary(t *testing.T) {
	s := load(t, sampleAsset)

	dev := input.NewStubBoundary("Space", "W", "A", "D")
	rt, err := s.Compile(dev)
	require.NoError(t, err)
	require.NotNil(t, rt.Engine())

	// A boundary that cannot resolve the asset's names fails compilation.
	_, err = load(t, sampleAsset).Compile(input.NewStubBoundary())
	require.Error(t, err)
}

func TestButtonPhases(t *testing.T) {
	s := load(t, sampleAsset)
	dev := input.NewStubBoundary("Space", "W", "A", "D")
	rt, err := s.Compile(dev)
	require.NoError(t, err)

	space := dev.HandleFor("Space")

	rt.Tick()
	require.Equal(t, Waiting, rt.Phase("jump"))
	require.Zero(t, rt.Value("jump"))

	dev.Keys[space] = true
	rt.Tick()
	require.Equal(t, Started, rt.Phase("jump"))
	require.Equal(t, 1.0, rt.Value("jump"))

	rt.Tick()
	require.Equal(t, Performed, rt.Phase("jump"))

	dev.Keys[space] = false
	rt.Tick()
	require.Equal(t, Canceled, rt.Phase("jump"))

	rt.Tick()
	require.Equal(t, Waiting, rt.Phase("jump"))
}

func TestButtonAnySourceActivates(t *testing.T) {
	s := load(t, sampleAsset)
	dev := input.NewStubBoundary("Space", "W", "A", "D")
	rt, err := s.Compile(dev)
	require.NoError(t, err)

	dev.SetPadButton(0, dev.HandleFor("A"), true)
	rt.Tick()
	require.Equal(t, Started, rt.Phase("jump"))
}

func TestAxisPrefersKeysOverStick(t *testing.T) {
	s := load(t, sampleAsset)
	dev := input.NewStubBoundary("Space", "W", "A", "D")
	rt, err := s.Compile(dev)
	require.NoError(t, err)

	dev.SetPadScalar(0, input.GamepadLeftStickX, 0.4)
	rt.Tick()
	require.Equal(t, 0.4, rt.Value("move_x"))

	// Key pair is declared first, so it wins while live.
	dev.Keys[dev.HandleFor("A")] = true
	rt.Tick()
	require.Equal(t, -1.0, rt.Value("move_x"))
	require.Equal(t, Performed, rt.Phase("move_x"))
}

func TestVectorFallsThroughSources(t *testing.T) {
	s := load(t, sampleAsset)
	dev := input.NewStubBoundary("Space", "W", "A", "D")
	rt, err := s.Compile(dev)
	require.NoError(t, err)

	rt.Tick()
	require.True(t, rt.Vector("look").IsZero())
	require.Equal(t, Waiting, rt.Phase("look"))

	dev.MouseVectors[input.MouseDelta] = input.Vec2{X: 3, Y: -2}
	rt.Tick()
	require.Equal(t, input.Vec2{X: 3, Y: -2}, *rt.Vector("look"))
	require.Equal(t, Started, rt.Phase("look"))

	// The stick is declared ahead of the mouse and shadows it while live.
	dev.SetPadVector(0, input.GamepadRightStick, input.Vec2{X: 0.5, Y: 0.5})
	rt.Tick()
	require.Equal(t, input.Vec2{X: 0.5, Y: 0.5}, *rt.Vector("look"))
}

func TestUnknownActionReadsInert(t *testing.T) {
	s := load(t, sampleAsset)
	rt, err := s.Compile(input.NewStubBoundary("Space", "W", "A", "D"))
	require.NoError(t, err)
	rt.Tick()

	require.Equal(t, Waiting, rt.Phase("dash"))
	require.Zero(t, rt.Value("dash"))
	require.True(t, rt.Vector("dash").IsZero())
}

func TestRuntimeTickDoesNotAllocate(t *testing.T) {
	s := load(t, sampleAsset)
	dev := input.NewStubBoundary("Space", "W", "A", "D")
	rt, err := s.Compile(dev)
	require.NoError(t, err)

	dev.Keys[dev.HandleFor("Space")] = true
	dev.SetPadVector(0, input.GamepadRightStick, input.Vec2{X: 0.5, Y: 0.5})

	rt.Tick()
	allocs := testing.AllocsPerRun(100, rt.Tick)
	require.Zero(t, allocs)
}
