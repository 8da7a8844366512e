package matching

import (
	"errors"
	"fmt"
)

// ErrVertexOutOfRange is the panic value (wrapped) for a vertex outside its part.
var ErrVertexOutOfRange = errors.New("matching: vertex out of range")

// ErrOptionViolation indicates an invalid Option.
var ErrOptionViolation = errors.New("matching: invalid option supplied")

// inf marks a left vertex that cannot lie on a shortest augmenting path.
const inf = 1_000_000_000

// Options configures a HopcroftKarp instance.
type Options struct {
	// CapacityHint pre-sizes each left vertex's adjacency list.
	CapacityHint int

	err error
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns zero capacity hint.
func DefaultOptions() Options {
	return Options{}
}

// WithCapacityHint pre-allocates room for k edges per left vertex.
// A negative k is an option violation.
func WithCapacityHint(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: capacity hint must be >= 0 (%d)", ErrOptionViolation, k)

			return
		}
		o.CapacityHint = k
	}
}
