package input

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnknownKeyNameFailsBuild(t *testing.T) {
	dev := NewStubBoundary("Space")

	_, err := NewBuilder(dev).DeclareKey("jump", "NotARealKey").Build()
	require.Error(t, err)
	require.ErrorContains(t, err, "jump")
	require.ErrorContains(t, err, "NotARealKey")
}

func TestFirstDeclarationErrorWins(t *testing.T) {
	dev := NewStubBoundary("W", "S")

	_, err := NewBuilder(dev).
		DeclareKey("up", "W").
		DeclareKeyAxis("y", "Bogus", "AlsoBogus").
		DeclareKey("down", "NotAKeyEither").
		Build()
	require.Error(t, err)
	require.ErrorContains(t, err, "Bogus")
	require.NotContains(t, err.Error(), "NotAKeyEither")
}

func TestDuplicateNameWithinShapeFailsBuild(t *testing.T) {
	dev := NewStubBoundary("Space", "Enter")

	_, err := NewBuilder(dev).
		DeclareKey("jump", "Space").
		DeclareKey("jump", "Enter").
		Build()
	require.ErrorIs(t, err, ErrDuplicateName)
}

func TestSameNameAcrossShapesIsIndependent(t *testing.T) {
	dev := NewStubBoundary("Space")
	eng, err := NewBuilder(dev).
		DeclareKey("boost", "Space").
		DeclareGamepadScalar("boost", GamepadRightTrigger, 0).
		Build()
	require.NoError(t, err)

	dev.Keys[dev.HandleFor("Space")] = true
	dev.SetPadScalar(0, GamepadRightTrigger, 0.8)
	eng.Tick()

	require.True(t, eng.Down("boost"))
	require.Equal(t, 0.8, eng.Float("boost"))
}

func TestBuilderIsConsumedByBuild(t *testing.T) {
	dev := NewStubBoundary("Space")
	b := NewBuilder(dev)

	_, err := b.Build()
	require.NoError(t, err)

	_, err = b.Build()
	require.ErrorIs(t, err, ErrBuilderConsumed)

	_, err = b.DeclareKey("jump", "Space").Build()
	require.ErrorIs(t, err, ErrBuilderConsumed)
}

func TestDeclarationsChain(t *testing.T) {
	dev := NewStubBoundary("A", "D", "Space", "South")

	eng, err := NewBuilder(dev).
		DeclareKey("jump", "Space").
		DeclareKeyPressed("jump-edge", "Space").
		DeclareKeyReleased("jump-up", "Space").
		DeclareKeyAxis("x", "A", "D").
		DeclareMouseButton("fire", MouseLeft).
		DeclareMouseScalar("scroll", MouseWheelY).
		DeclareMouseVector("aim", MousePosition).
		DeclareGamepadButton("dash", "South", 1).
		DeclareGamepadScalar("throttle", GamepadLeftTrigger, 0).
		DeclareGamepadVector("move", GamepadLeftStick, 0).
		Build()
	require.NoError(t, err)
	require.NotNil(t, eng)
}

func TestMouseBindingsPoll(t *testing.T) {
	dev := NewStubBoundary()
	eng, err := NewBuilder(dev).
		DeclareMouseButton("fire", MouseLeft).
		DeclareMouseScalar("wheel", MouseWheelY).
		DeclareMouseVector("cursor", MousePosition).
		Build()
	require.NoError(t, err)

	dev.MouseButtons[MouseLeft] = true
	dev.MouseScalars[MouseWheelY] = -1.5
	dev.MouseVectors[MousePosition] = Vec2{X: 320, Y: 240}
	eng.Tick()

	require.True(t, eng.Down("fire"))
	require.Equal(t, -1.5, eng.Float("wheel"))
	require.Equal(t, Vec2{X: 320, Y: 240}, *eng.Vec2("cursor"))
}
