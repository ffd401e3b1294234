package input

// Vec2 is a two-component float pair. Keyboard-axis reads return it by
// value; for a declared vector binding, Engine.Vec2 returns a pointer to the
// binding's single live slot, which Tick overwrites in place every frame.
type Vec2 struct {
	X, Y float64
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
