// Package clock provides the time source used by the scheduling usecases.
//
// Decision code in internal/domain/schedule never reads the wall clock; it
// receives an explicit instant. Usecases hold a Clock and read it once per
// request so every rule applied to that request sees the same "now".
package clock

import "time"

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// RealClock returns the actual system time.
// Only cmd/* wires it.
type RealClock struct{}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant.
type FixedClock struct {
	T time.Time
}

// Now returns the fixed time.
func (c FixedClock) Now() time.Time {
	return c.T
}

// FuncClock adapts a function to the Clock interface.
type FuncClock func() time.Time

// Now calls the wrapped function.
func (f FuncClock) Now() time.Time {
	return f()
}

// NewReal returns a Clock backed by the system time.
func NewReal() Clock {
	return RealClock{}
}

// NewFixed returns a Clock that always reports t.
func NewFixed(t time.Time) Clock {
	return FixedClock{T: t}
}

var (
	_ Clock = RealClock{}
	_ Clock = FixedClock{}
	_ Clock = FuncClock(nil)
)
