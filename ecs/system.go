package ecs

import (
	"github.com/yohamta/donburi"
	decs "github.com/yohamta/donburi/ecs"
)

// Update ticks every attached engine and resamples its watched bindings.
// Must run before any system that reads input.
func Update(e *decs.ECS) {
	Controls.Each(e.World, func(entry *donburi.Entry) {
		Controls.Get(entry).sample()
	})
}
