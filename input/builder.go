package input

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateName is returned by Build when the same name is declared
	// twice for the same result shape.
	ErrDuplicateName = errors.New("input: duplicate binding name")

	// ErrBuilderConsumed is returned when a builder is used after Build.
	ErrBuilderConsumed = errors.New("input: builder already consumed by Build")
)

// Builder collects binding declarations and resolves key and button names to
// device handles as they are declared. Declaration methods chain; the first
// failure is latched and reported by Build, with the offending name in the
// error. A builder is a single-use scratch object consumed by Build.
type Builder struct {
	dev      Boundary
	bools    map[string]*boolBinding
	scalars  map[string]*scalarBinding
	vectors  map[string]*vectorBinding
	err      error
	consumed bool
}

// NewBuilder starts a declaration session against the given device boundary.
func NewBuilder(dev Boundary) *Builder {
	return &Builder{
		dev:     dev,
		bools:   make(map[string]*boolBinding),
		scalars: make(map[string]*scalarBinding),
		vectors: make(map[string]*vectorBinding),
	}
}

// fail latches the first error; later declarations become no-ops so a chain
// reports its earliest problem.
func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *Builder) ok() bool {
	if b.consumed {
		b.fail(ErrBuilderConsumed)
	}
	return b.err == nil
}

func (b *Builder) resolveKey(name, key string) (Handle, bool) {
	h, err := b.dev.ResolveKey(key)
	if err != nil {
		b.fail(fmt.Errorf("input: binding %q: key %q: %w", name, key, err))
		return NoHandle, false
	}
	return h, true
}

func (b *Builder) putBool(name string, bind *boolBinding) {
	if _, dup := b.bools[name]; dup {
		b.fail(fmt.Errorf("%w: bool %q", ErrDuplicateName, name))
		return
	}
	b.bools[name] = bind
}

func (b *Builder) putScalar(name string, bind *scalarBinding) {
	if _, dup := b.scalars[name]; dup {
		b.fail(fmt.Errorf("%w: scalar %q", ErrDuplicateName, name))
		return
	}
	b.scalars[name] = bind
}

func (b *Builder) putVector(name string, bind *vectorBinding) {
	if _, dup := b.vectors[name]; dup {
		b.fail(fmt.Errorf("%w: vector %q", ErrDuplicateName, name))
		return
	}
	b.vectors[name] = bind
}

// DeclareKey binds name to a key's continuous held state.
func (b *Builder) DeclareKey(name, key string) *Builder {
	if !b.ok() {
		return b
	}
	if h, ok := b.resolveKey(name, key); ok {
		b.putBool(name, &boolBinding{src: boolKeyDown, handle: h})
	}
	return b
}

// DeclareKeyPressed binds name to a key's pressed-this-frame edge.
func (b *Builder) DeclareKeyPressed(name, key string) *Builder {
	if !b.ok() {
		return b
	}
	if h, ok := b.resolveKey(name, key); ok {
		b.putBool(name, &boolBinding{src: boolKeyPressed, handle: h})
	}
	return b
}

// DeclareKeyReleased binds name to a key's released-this-frame edge.
func (b *Builder) DeclareKeyReleased(name, key string) *Builder {
	if !b.ok() {
		return b
	}
	if h, ok := b.resolveKey(name, key); ok {
		b.putBool(name, &boolBinding{src: boolKeyReleased, handle: h})
	}
	return b
}

// DeclareKeyAxis binds name to a two-key axis: +1 while only positive is
// held, -1 while only negative is held, 0 otherwise (both keys held cancel).
func (b *Builder) DeclareKeyAxis(name, negative, positive string) *Builder {
	if !b.ok() {
		return b
	}
	neg, ok := b.resolveKey(name, negative)
	if !ok {
		return b
	}
	pos, ok := b.resolveKey(name, positive)
	if !ok {
		return b
	}
	b.putScalar(name, &scalarBinding{src: scalarKeyAxis, negative: neg, positive: pos})
	return b
}

// DeclareMouseButton binds name to a mouse button's held state.
func (b *Builder) DeclareMouseButton(name string, button MouseButton) *Builder {
	if !b.ok() {
		return b
	}
	b.putBool(name, &boolBinding{src: boolMouseButton, button: button})
	return b
}

// DeclareMouseScalar binds name to a single-axis mouse property.
func (b *Builder) DeclareMouseScalar(name string, p MouseScalar) *Builder {
	if !b.ok() {
		return b
	}
	b.putScalar(name, &scalarBinding{src: scalarMouse, mouse: p})
	return b
}

// DeclareMouseVector binds name to a two-axis mouse property.
func (b *Builder) DeclareMouseVector(name string, p MouseVector) *Builder {
	if !b.ok() {
		return b
	}
	b.putVector(name, &vectorBinding{src: vectorMouse, mouse: p, value: &Vec2{}})
	return b
}

// DeclareGamepadButton binds name to a gamepad button's held state on the
// given pad index.
func (b *Builder) DeclareGamepadButton(name, button string, pad int) *Builder {
	if !b.ok() {
		return b
	}
	h, err := b.dev.ResolveGamepadButton(button)
	if err != nil {
		b.fail(fmt.Errorf("input: binding %q: gamepad button %q: %w", name, button, err))
		return b
	}
	b.putBool(name, &boolBinding{src: boolGamepadButton, handle: h, pad: pad})
	return b
}

// DeclareGamepadScalar binds name to a single-axis gamepad property.
func (b *Builder) DeclareGamepadScalar(name string, p GamepadScalar, pad int) *Builder {
	if !b.ok() {
		return b
	}
	b.putScalar(name, &scalarBinding{src: scalarGamepad, gamepad: p, pad: pad})
	return b
}

// DeclareGamepadVector binds name to a two-axis gamepad property.
func (b *Builder) DeclareGamepadVector(name string, p GamepadVector, pad int) *Builder {
	if !b.ok() {
		return b
	}
	b.putVector(name, &vectorBinding{src: vectorGamepad, gamepad: p, pad: pad, value: &Vec2{}})
	return b
}

// Build freezes the declarations into an Engine and consumes the builder.
// It returns the first declaration error, if any; on error no Engine is
// produced, so a misspelled key name can never become a silently-false
// binding.
func (b *Builder) Build() (*Engine, error) {
	if b.consumed {
		return nil, ErrBuilderConsumed
	}
	b.consumed = true
	if b.err != nil {
		return nil, b.err
	}
	return &Engine{
		dev:     b.dev,
		bools:   b.bools,
		scalars: b.scalars,
		vectors: b.vectors,
	}, nil
}
