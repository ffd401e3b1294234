package input

import "fmt"

// StubBoundary is a scriptable Boundary for tests. Resolution hands out
// sequential handles per name; queries read plain maps the test mutates
// between ticks. The zero value is not usable; call NewStubBoundary.
type StubBoundary struct {
	handles map[string]Handle
	next    Handle

	Keys         map[Handle]bool // held state per key handle
	KeyEdgeDown  map[Handle]bool // pressed-this-frame per key handle
	KeyEdgeUp    map[Handle]bool // released-this-frame per key handle
	MouseButtons map[MouseButton]bool
	MouseScalars map[MouseScalar]float64
	MouseVectors map[MouseVector]Vec2
	PadButtons   map[int]map[Handle]bool
	PadScalars   map[int]map[GamepadScalar]float64
	PadVectors   map[int]map[GamepadVector]Vec2

	Refreshes int // Refresh call count, one per Tick
}

// NewStubBoundary returns a stub that resolves the given key and gamepad
// button names and answers neutral values until the test scripts otherwise.
func NewStubBoundary(names ...string) *StubBoundary {
	s := &StubBoundary{
		handles:      make(map[string]Handle),
		Keys:         make(map[Handle]bool),
		KeyEdgeDown:  make(map[Handle]bool),
		KeyEdgeUp:    make(map[Handle]bool),
		MouseButtons: make(map[MouseButton]bool),
		MouseScalars: make(map[MouseScalar]float64),
		MouseVectors: make(map[MouseVector]Vec2),
		PadButtons:   make(map[int]map[Handle]bool),
		PadScalars:   make(map[int]map[GamepadScalar]float64),
		PadVectors:   make(map[int]map[GamepadVector]Vec2),
	}
	for _, n := range names {
		s.handles[n] = s.next
		s.next++
	}
	return s
}

// HandleFor returns the handle a name resolved to, for scripting queries.
// It panics on names the stub was not constructed with.
func (s *StubBoundary) HandleFor(name string) Handle {
	h, ok := s.handles[name]
	if !ok {
		panic(fmt.Sprintf("input: stub has no name %q", name))
	}
	return h
}

// SetPadVector scripts a pad's vector property for following ticks.
func (s *StubBoundary) SetPadVector(pad int, p GamepadVector, v Vec2) {
	m, ok := s.PadVectors[pad]
	if !ok {
		m = make(map[GamepadVector]Vec2)
		s.PadVectors[pad] = m
	}
	m[p] = v
}

// SetPadScalar scripts a pad's scalar property for following ticks.
func (s *StubBoundary) SetPadScalar(pad int, p GamepadScalar, v float64) {
	m, ok := s.PadScalars[pad]
	if !ok {
		m = make(map[GamepadScalar]float64)
		s.PadScalars[pad] = m
	}
	m[p] = v
}

// SetPadButton scripts a pad button's held state for following ticks.
func (s *StubBoundary) SetPadButton(pad int, h Handle, down bool) {
	m, ok := s.PadButtons[pad]
	if !ok {
		m = make(map[Handle]bool)
		s.PadButtons[pad] = m
	}
	m[h] = down
}

func (s *StubBoundary) Refresh() { s.Refreshes++ }

func (s *StubBoundary) ResolveKey(name string) (Handle, error) {
	if h, ok := s.handles[name]; ok {
		return h, nil
	}
	return NoHandle, fmt.Errorf("unknown key name %q", name)
}

func (s *StubBoundary) ResolveGamepadButton(name string) (Handle, error) {
	if h, ok := s.handles[name]; ok {
		return h, nil
	}
	return NoHandle, fmt.Errorf("unknown gamepad button name %q", name)
}

func (s *StubBoundary) KeyDown(h Handle) bool     { return s.Keys[h] }
func (s *StubBoundary) KeyPressed(h Handle) bool  { return s.KeyEdgeDown[h] }
func (s *StubBoundary) KeyReleased(h Handle) bool { return s.KeyEdgeUp[h] }

func (s *StubBoundary) MouseButtonDown(b MouseButton) bool { return s.MouseButtons[b] }
func (s *StubBoundary) MouseScalar(p MouseScalar) float64  { return s.MouseScalars[p] }

func (s *StubBoundary) MouseVector(p MouseVector) (float64, float64) {
	v := s.MouseVectors[p]
	return v.X, v.Y
}

func (s *StubBoundary) GamepadButtonDown(pad int, h Handle) bool {
	return s.PadButtons[pad][h]
}

func (s *StubBoundary) GamepadScalar(pad int, p GamepadScalar) float64 {
	return s.PadScalars[pad][p]
}

func (s *StubBoundary) GamepadVector(pad int, p GamepadVector) (float64, float64) {
	v := s.PadVectors[pad][p]
	return v.X, v.Y
}
