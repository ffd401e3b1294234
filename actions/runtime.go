package actions

import (
	"fmt"

	"github.com/flintlock-games/bindle/input"
)

// Runtime drives a compiled action set. It owns the engine it was compiled
// into: one Runtime.Tick per frame refreshes the engine and advances every
// action's phase. Like the engine, it is single-threaded and allocation-free
// after compilation.
type Runtime struct {
	eng     *input.Engine
	actions map[string]*state
	zero    input.Vec2
}

// state is one action's compiled sources plus its live phase. Engine names
// are composed once, at compile time.
type state struct {
	kind Kind

	bools   []string // button sources, any-of
	scalars []string // axis sources, first live wins
	vectors []string // vector sources, first live wins

	phase Phase
	value float64
	vec   *input.Vec2
}

// Compile resolves the set against a device boundary and returns a runtime.
// Resolution failures (unknown key or button names in the asset) surface
// here, before the first frame.
func (s *Set) Compile(dev input.Boundary) (*Runtime, error) {
	b := input.NewBuilder(dev)
	rt := &Runtime{actions: make(map[string]*state, len(s.actions))}

	for name, def := range s.actions {
		st := &state{kind: def.kind}

		switch def.kind {
		case Button:
			for i, key := range def.keys {
				bound := fmt.Sprintf("%s/key%d", name, i)
				b.DeclareKey(bound, key)
				st.bools = append(st.bools, bound)
			}
			for i, btn := range def.padButtons {
				bound := fmt.Sprintf("%s/pad%d", name, i)
				b.DeclareGamepadButton(bound, btn, def.pad)
				st.bools = append(st.bools, bound)
			}
			if def.mouseButton != "" {
				mb, err := parseMouseButton(def.mouseButton)
				if err != nil {
					return nil, err
				}
				bound := name + "/mouse"
				b.DeclareMouseButton(bound, mb)
				st.bools = append(st.bools, bound)
			}

		case Axis:
			if def.positiveKey != "" {
				bound := name + "/keys"
				b.DeclareKeyAxis(bound, def.negativeKey, def.positiveKey)
				st.scalars = append(st.scalars, bound)
			}
			if def.hasPadSc {
				bound := name + "/pad"
				b.DeclareGamepadScalar(bound, def.gamepadScalar, def.pad)
				st.scalars = append(st.scalars, bound)
			}
			if def.hasMouseSc {
				bound := name + "/mouse"
				b.DeclareMouseScalar(bound, def.mouseScalar)
				st.scalars = append(st.scalars, bound)
			}

		case Vector:
			if def.hasPadVec {
				bound := name + "/pad"
				b.DeclareGamepadVector(bound, def.gamepadVector, def.pad)
				st.vectors = append(st.vectors, bound)
			}
			if def.hasMouseVec {
				bound := name + "/mouse"
				b.DeclareMouseVector(bound, def.mouseVector)
				st.vectors = append(st.vectors, bound)
			}
		}

		rt.actions[name] = st
	}

	eng, err := b.Build()
	if err != nil {
		return nil, err
	}
	rt.eng = eng
	return rt, nil
}

// Tick refreshes the engine and advances each action's phase.
func (r *Runtime) Tick() {
	r.zero = input.Vec2{}
	r.eng.Tick()
	for _, st := range r.actions {
		st.advance(r.eng)
	}
}

func (st *state) advance(eng *input.Engine) {
	active := false

	switch st.kind {
	case Button:
		for _, n := range st.bools {
			if eng.Down(n) {
				active = true
				break
			}
		}
		if active {
			st.value = 1
		} else {
			st.value = 0
		}

	case Axis:
		st.value = 0
		for _, n := range st.scalars {
			if v := eng.Float(n); v != 0 {
				st.value = v
				break
			}
		}
		active = st.value != 0

	case Vector:
		st.vec = nil
		for _, n := range st.vectors {
			if v := eng.Vec2(n); !v.IsZero() {
				st.vec = v
				break
			}
		}
		active = st.vec != nil
	}

	switch {
	case active && (st.phase == Waiting || st.phase == Canceled):
		st.phase = Started
	case active:
		st.phase = Performed
	case st.phase == Started || st.phase == Performed:
		st.phase = Canceled
	default:
		st.phase = Waiting
	}
}

// Phase reports an action's phase as of the last Tick. Unknown actions are
// Waiting, mirroring the engine's forgiving reads.
func (r *Runtime) Phase(name string) Phase {
	if st, ok := r.actions[name]; ok {
		return st.phase
	}
	return Waiting
}

// Value reports an action's scalar as of the last Tick: 0 or 1 for button
// actions, the live source value for axis actions, 0 for unknown names.
func (r *Runtime) Value(name string) float64 {
	if st, ok := r.actions[name]; ok {
		return st.value
	}
	return 0
}

// Vector reports a vector action's components as of the last Tick. The
// returned view follows the engine's aliasing contract: read-only, not to be
// retained across a Tick.
func (r *Runtime) Vector(name string) *input.Vec2 {
	if st, ok := r.actions[name]; ok && st.vec != nil {
		return st.vec
	}
	return &r.zero
}

// Engine exposes the underlying engine for mixed use, e.g. raw reads next to
// phased actions.
func (r *Runtime) Engine() *input.Engine { return r.eng }

// Dispose releases the underlying engine. Terminal, like Engine.Dispose.
func (r *Runtime) Dispose() {
	r.eng.Dispose()
	r.actions = nil
}
