// Package input maps named logical inputs ("move", "fire", "look") onto
// device signals and refreshes them once per frame without allocating.
//
// Usage is two-phase. During setup a Builder resolves every key and button
// name to an integer handle and allocates one result slot per declared name.
// After Build, the Engine's Tick overwrites those slots in place from the
// device boundary; the read accessors (Down, Pressed, Released, Float, Vec2)
// only look at the slots. String resolution, map growth and slot allocation
// all happen before the first frame, never during one.
package input
