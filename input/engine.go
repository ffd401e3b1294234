package input

// Engine holds the frozen binding registry and refreshes it once per frame.
// It is driven by a single frame loop: Tick is the only writer, reads are
// valid any number of times between ticks and always reflect the most recent
// Tick. No internal locking; not safe for concurrent use.
type Engine struct {
	dev      Boundary
	bools    map[string]*boolBinding
	scalars  map[string]*scalarBinding
	vectors  map[string]*vectorBinding
	disposed bool
}

// Tick refreshes every binding's slot from the device boundary. It resolves
// no strings and allocates nothing; iteration order across bindings is
// unspecified. Tick panics if the engine has been disposed.
func (e *Engine) Tick() {
	if e.disposed {
		panic("input: Tick on disposed Engine")
	}
	e.dev.Refresh()
	for _, b := range e.bools {
		b.poll(e.dev)
	}
	for _, b := range e.scalars {
		b.poll(e.dev)
	}
	for _, b := range e.vectors {
		b.poll(e.dev)
	}
}

// Down reports a boolean binding's value as of the last Tick. What the value
// means is fixed at declaration time: held state for DeclareKey, a one-frame
// edge for the pressed/released variants. An undeclared name reads as false,
// never as an error.
func (e *Engine) Down(name string) bool {
	if b, ok := e.bools[name]; ok {
		return b.value
	}
	return false
}

// Pressed is Down for names declared with DeclareKeyPressed. All three
// boolean accessors read the same slot; the aliases keep call sites honest
// about which variant they expect.
func (e *Engine) Pressed(name string) bool {
	return e.Down(name)
}

// Released is Down for names declared with DeclareKeyReleased.
func (e *Engine) Released(name string) bool {
	return e.Down(name)
}

// Float reports a scalar binding's value as of the last Tick. An undeclared
// name reads as 0.
func (e *Engine) Float(name string) float64 {
	if b, ok := e.scalars[name]; ok {
		return b.value
	}
	return 0
}

// Vec2 returns the live slot of a vector binding: the same pointer on every
// call, overwritten in place by each Tick. Callers must treat it as read-only
// and must not retain it across a Tick when they need the pre-Tick value.
// An undeclared name yields a fresh zero vector, never engine-internal state.
func (e *Engine) Vec2(name string) *Vec2 {
	if b, ok := e.vectors[name]; ok {
		return b.value
	}
	return &Vec2{}
}

// Dispose releases the registry. It is terminal: a later Tick panics and
// every read accessor returns its inert default, the same answers an engine
// with no declarations would give.
func (e *Engine) Dispose() {
	e.disposed = true
	e.bools = nil
	e.scalars = nil
	e.vectors = nil
}
