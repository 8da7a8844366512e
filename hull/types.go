package hull

import (
	"errors"
	"fmt"
)

// Sentinel errors. ErrEmptyHull, ErrZeroDenominator and ErrOptionViolation
// are panic values (possibly wrapped) for contract violations.
var (
	// ErrEmptyHull indicates a query on a hull with no lines.
	ErrEmptyHull = errors.New("hull: query on empty hull")

	// ErrZeroDenominator indicates a query point a/b with b == 0.
	ErrZeroDenominator = errors.New("hull: zero denominator in query point")

	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("hull: invalid option supplied")
)

// Mode selects which envelope a Hull maintains.
type Mode int

const (
	// Max keeps the upper envelope; queries return maxima.
	Max Mode = iota

	// Min keeps the lower envelope; queries return minima.
	Min
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Max:
		return "max"
	case Min:
		return "min"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Line is y = M·x + B.
type Line struct {
	M, B int64
}

// At evaluates the line at integer x.
func (l Line) At(x int64) int64 { return l.M*x + l.B }

// DefaultDegree is the B-tree degree used when WithDegree is not given.
const DefaultDegree = 16

// Options configures a Hull.
type Options struct {
	// Mode selects the upper (Max) or lower (Min) envelope.
	Mode Mode

	// Degree is the fanout of the backing B-tree; must be >= 2.
	Degree int

	// internal error recorded during option parsing
	err error
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Max mode with DefaultDegree.
func DefaultOptions() Options {
	return Options{Mode: Max, Degree: DefaultDegree}
}

// WithMode selects Max or Min. Any other value is an option violation.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if m != Max && m != Min {
			o.err = fmt.Errorf("%w: unknown mode %v", ErrOptionViolation, m)

			return
		}
		o.Mode = m
	}
}

// WithDegree sets the B-tree degree. d < 2 is an option violation.
func WithDegree(d int) Option {
	return func(o *Options) {
		if d < 2 {
			o.err = fmt.Errorf("%w: degree must be >= 2 (%d)", ErrOptionViolation, d)

			return
		}
		o.Degree = d
	}
}
