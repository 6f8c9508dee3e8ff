package synthesizer

// Fixed derivation rules for the Group minimal complete definitions. The
// derived bodies reference only operations that are already resolved, so
// synthesis can never re-enter resolution.

// DeriveSubtract completes the invert form:
//
//	subtract(x, y) = combine(x, invert(y))
func DeriveSubtract[T any](combine func(T, T) T, invert func(T) T) func(T, T) T {
	return func(x T, y T) T {
		return combine(x, invert(y))
	}
}

// DeriveInvert completes the subtract form:
//
//	invert(x) = subtract(identity, x)
func DeriveInvert[T any](subtract func(T, T) T, identity func() T) func(T) T {
	return func(x T) T {
		return subtract(identity(), x)
	}
}
