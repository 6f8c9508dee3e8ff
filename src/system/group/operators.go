package group

// Symbolic operator surface. Purely notational, both forms forward to the
// already resolved operations and add no behavior of their own.

// Minus is the binary minus form, equivalent to g.Subtract(x, y).
func Minus[T any](g Group[T], x T, y T) T {
	return g.Subtract(x, y)
}

// Negate is the unary minus form, equivalent to g.Invert(x).
func Negate[T any](g Group[T], x T) T {
	return g.Invert(x)
}
