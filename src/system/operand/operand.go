package operand

import "reflect"

// TypeID identifies a concrete operand type inside the registry. IDs are
// minted once at declaration/resolution time; dispatch after resolution
// never touches them.
type TypeID string

// TypeOf mints the TypeID for T. Named types include their package path so
// identically named types from different packages never collide.
func TypeOf[T any]() TypeID {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.PkgPath() != "" {
		return TypeID(t.PkgPath() + "." + t.Name())
	}
	return TypeID(t.String())
}

// Pair holds the one or two operand types an instance is declared for.
// Unary operations use a pair with both sides equal.
type Pair struct {
	Left  TypeID
	Right TypeID
}

func NewPair(left TypeID, right TypeID) Pair {
	return Pair{Left: left, Right: right}
}

// Single returns the (T, T) pair used for unary dispatch.
func Single[T any]() Pair {
	id := TypeOf[T]()
	return Pair{Left: id, Right: id}
}

func PairOf[X any, Y any]() Pair {
	return Pair{Left: TypeOf[X](), Right: TypeOf[Y]()}
}

func (p Pair) String() string {
	return string(p.Left) + "," + string(p.Right)
}

// Numeric covers the builtin types that naturally form an additive group.
// Unsigned types are included on purpose: with Go's defined wrap-around
// they form a group modulo 2^n.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}
