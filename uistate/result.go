package uistate

// Result is what a bound callback hands back to the renderer. A callback
// whose whole effect is mutating the element tree returns NoUpdate so the
// renderer knows there is no output value to propagate.
type Result struct {
	noUpdate bool
	value    any
}

// NoUpdate returns the sentinel result meaning "no output to propagate".
func NoUpdate() Result {
	return Result{noUpdate: true}
}

// Update wraps an output value produced by a callback.
func Update(value any) Result {
	return Result{value: value}
}

// IsNoUpdate reports whether the result is the no-update sentinel.
func (r Result) IsNoUpdate() bool {
	return r.noUpdate
}

// Value returns the wrapped output value, or nil for the no-update sentinel.
func (r Result) Value() any {
	return r.value
}
