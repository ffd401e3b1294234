// Package ecs wires the input engine into a donburi world: a Controls
// component owns an Engine, and the Update system ticks it once per frame
// before gameplay systems read it.
package ecs

import (
	"github.com/yohamta/donburi"

	"github.com/flintlock-games/bindle/input"
)

// ActionState is the temporal state of a watched binding.
type ActionState struct {
	Pressed      bool // currently held
	JustPressed  bool // went down this frame
	JustReleased bool // went up this frame
}

// ControlsData owns an engine plus current/previous samples for watched
// boolean bindings, so gameplay code can ask for edges on plain held-state
// bindings without declaring extra edge bindings. Both sample maps are
// filled at attach time and only overwritten afterwards.
type ControlsData struct {
	Engine *input.Engine

	watched  []string
	current  map[string]bool
	previous map[string]bool
}

// Controls is the component type holding a ControlsData per input consumer.
var Controls = donburi.NewComponentType[ControlsData]()

// Attach creates an entity owning the engine and starts watching the named
// boolean bindings for edge derivation.
func Attach(w donburi.World, eng *input.Engine, watch ...string) *donburi.Entry {
	entry := w.Entry(w.Create(Controls))
	d := Controls.Get(entry)
	d.Engine = eng
	d.watched = watch
	d.current = make(map[string]bool, len(watch))
	d.previous = make(map[string]bool, len(watch))
	for _, name := range watch {
		d.current[name] = false
		d.previous[name] = false
	}
	return entry
}

// sample swaps the buffers and refreshes the current one from the engine.
// The maps are reused, never reallocated.
func (d *ControlsData) sample() {
	d.Engine.Tick()
	d.previous, d.current = d.current, d.previous
	for _, name := range d.watched {
		d.current[name] = d.Engine.Down(name)
	}
}

// State reports the watched binding's temporal state as of the last Update.
// Unwatched names read as inert, matching the engine's read policy.
func (d *ControlsData) State(name string) ActionState {
	curr := d.current[name]
	prev := d.previous[name]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
