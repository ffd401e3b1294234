package ecs

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	decs "github.com/yohamta/donburi/ecs"

	"github.com/flintlock-games/bindle/input"
)

func newEngine(t *testing.T, dev *input.StubBoundary) *input.Engine {
	t.Helper()
	eng, err := input.NewBuilder(dev).
		DeclareKey("jump", "Space").
		DeclareKeyAxis("x", "A", "D").
		Build()
	require.NoError(t, err)
	return eng
}

func TestUpdateTicksAttachedEngines(t *testing.T) {
	dev := input.NewStubBoundary("Space", "A", "D")
	eng := newEngine(t, dev)

	world := donburi.NewWorld()
	e := decs.NewECS(world)
	entry := Attach(world, eng, "jump")

	dev.Keys[dev.HandleFor("Space")] = true
	Update(e)

	d := Controls.Get(entry)
	require.True(t, d.Engine.Down("jump"))
	require.Equal(t, 1, dev.Refreshes)
}

func TestStateDerivesEdges(t *testing.T) {
	dev := input.NewStubBoundary("Space", "A", "D")
	eng := newEngine(t, dev)

	world := donburi.NewWorld()
	e := decs.NewECS(world)
	entry := Attach(world, eng, "jump")
	d := Controls.Get(entry)

	space := dev.HandleFor("Space")

	Update(e)
	require.Equal(t, ActionState{}, d.State("jump"))

	dev.Keys[space] = true
	Update(e)
	require.Equal(t, ActionState{Pressed: true, JustPressed: true}, d.State("jump"))

	Update(e)
	require.Equal(t, ActionState{Pressed: true}, d.State("jump"))

	dev.Keys[space] = false
	Update(e)
	require.Equal(t, ActionState{JustReleased: true}, d.State("jump"))

	Update(e)
	require.Equal(t, ActionState{}, d.State("jump"))
}

func TestUnwatchedNameReadsInert(t *testing.T) {
	dev := input.NewStubBoundary("Space", "A", "D")
	world := donburi.NewWorld()
	e := decs.NewECS(world)
	entry := Attach(world, newEngine(t, dev), "jump")

	Update(e)
	require.Equal(t, ActionState{}, Controls.Get(entry).State("dash"))
}

func TestUpdateTicksEveryConsumer(t *testing.T) {
	devA := input.NewStubBoundary("Space", "A", "D")
	devB := input.NewStubBoundary("Space", "A", "D")

	world := donburi.NewWorld()
	e := decs.NewECS(world)
	Attach(world, newEngine(t, devA), "jump")
	Attach(world, newEngine(t, devB), "jump")

	Update(e)
	Update(e)
	require.Equal(t, 2, devA.Refreshes)
	require.Equal(t, 2, devB.Refreshes)
}
