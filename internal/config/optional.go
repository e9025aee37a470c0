package config

// Opt is an explicit optional value. The zero Opt is unset: it never
// participates in resolution, and clearing an Opt restores the unset
// state exactly, so "set to the zero value" and "never set" stay
// distinguishable.
type Opt[T any] struct {
	value T
	set   bool
}

// SetOpt returns an Opt holding v.
func SetOpt[T any](v T) Opt[T] {
	return Opt[T]{value: v, set: true}
}

// Set stores v and marks the Opt as set.
func (o *Opt[T]) Set(v T) {
	o.value = v
	o.set = true
}

// Clear restores the unset state.
func (o *Opt[T]) Clear() {
	var zero T
	o.value = zero
	o.set = false
}

// IsSet reports whether a value has been stored.
func (o Opt[T]) IsSet() bool {
	return o.set
}

// Value returns the stored value and whether one was set.
func (o Opt[T]) Value() (T, bool) {
	return o.value, o.set
}

// Or returns the stored value if set, otherwise fallback.
func (o Opt[T]) Or(fallback T) T {
	if o.set {
		return o.value
	}
	return fallback
}
