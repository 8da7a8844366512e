package algebra

import "golang.org/x/exp/constraints"

// Number is any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum returns a + b.
func Sum[T Number](a, b T) T { return a + b }

// Min returns the smaller of a and b, preferring a on ties.
func Min[T constraints.Ordered](a, b T) T {
	if b < a {
		return b
	}

	return a
}

// Max returns the larger of a and b, preferring a on ties.
func Max[T constraints.Ordered](a, b T) T {
	if b > a {
		return b
	}

	return a
}

// Xor returns a ^ b.
func Xor[T constraints.Integer](a, b T) T { return a ^ b }

// And returns a & b.
func And[T constraints.Integer](a, b T) T { return a & b }

// Or returns a | b.
func Or[T constraints.Integer](a, b T) T { return a | b }

// GCD returns the non-negative greatest common divisor of a and b.
// GCD(0, 0) == 0, which makes 0 the identity element.
func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}

	return a
}

// SumMonoid is (T, +, 0).
func SumMonoid[T Number]() Monoid[T] {
	return MonoidOf[T](Sum[T], 0)
}

// XorMonoid is (T, ^, 0).
func XorMonoid[T constraints.Integer]() Monoid[T] {
	return MonoidOf[T](Xor[T], 0)
}

// GCDMonoid is (T, gcd, 0).
func GCDMonoid[T constraints.Integer]() Monoid[T] {
	return MonoidOf[T](GCD[T], 0)
}

// MinMonoid is (T, min, top). top must be no smaller than any stored value.
func MinMonoid[T constraints.Ordered](top T) Monoid[T] {
	return MonoidOf[T](Min[T], top)
}

// MaxMonoid is (T, max, bottom). bottom must be no larger than any stored value.
func MaxMonoid[T constraints.Ordered](bottom T) Monoid[T] {
	return MonoidOf[T](Max[T], bottom)
}
