// Package ptr provides helper functions for creating and reading pointers to primitive types.
package ptr

// Bool returns a pointer to the given bool value.
func Bool(b bool) *bool { return &b }

// String returns a pointer to the given string value.
func String(s string) *string { return &s }

// Int32 returns a pointer to the given int32 value.
func Int32(i int32) *int32 { return &i }

// Deref returns the value p points to, or fallback when p is nil.
func Deref[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}

// Clone returns a new pointer holding a copy of *p, or nil.
func Clone[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
