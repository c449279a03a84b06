package ptr

import "time"

func Of[T any](v T) *T {
	return &v
}

// Time returns nil for the zero time so optional dates stay null.
func Time(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func Deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
