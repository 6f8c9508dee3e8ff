package structure

const (
	MonoidName = "Monoid"
	GroupName  = "Group"
)

const (
	OpCombine  = "combine"
	OpIdentity = "identity"
	OpSubtract = "subtract"
	OpInvert   = "invert"
)

const (
	MCD_FULL     = "full"
	MCD_SUBTRACT = "subtract"
	MCD_INVERT   = "invert"
)

// Monoid requires an associative combine and an identity element. It is the
// upstream structure Group builds on.
func Monoid() *Structure {
	return &Structure{
		Name: MonoidName,
		Operations: []Operation{
			{Name: OpCombine, Arity: ARITY_BINARY},
			{Name: OpIdentity, Arity: ARITY_NULLARY},
		},
		MCDs: []MCD{
			{Name: MCD_FULL, Supplies: []string{OpCombine, OpIdentity}},
		},
		Laws: []Law{
			{Name: "associativity", Equation: "combine(combine(x, y), z) == combine(x, combine(y, z))"},
			{Name: "left identity", Equation: "combine(identity, x) == x"},
			{Name: "right identity", Equation: "combine(x, identity) == x"},
		},
	}
}

// Group extends Monoid with an inverse. Either subtract or invert may be
// supplied, the other one is derived:
//
//	subtract(x, y) = combine(x, invert(y))
//	invert(x)      = subtract(identity, x)
func Group() *Structure {
	return &Structure{
		Name:      GroupName,
		DependsOn: []string{MonoidName},
		Operations: []Operation{
			{Name: OpSubtract, Arity: ARITY_BINARY},
			{Name: OpInvert, Arity: ARITY_UNARY},
		},
		MCDs: []MCD{
			{Name: MCD_SUBTRACT, Supplies: []string{OpSubtract}},
			{Name: MCD_INVERT, Supplies: []string{OpInvert}},
		},
		Laws: []Law{
			{Name: "right inverse", Equation: "combine(x, invert(x)) == identity"},
			{Name: "left inverse", Equation: "combine(invert(x), x) == identity"},
			{Name: "subtract definition", Equation: "subtract(x, y) == combine(x, invert(y))"},
		},
	}
}

// Catalog lists the structure definitions this module ships with.
func Catalog() []*Structure {
	return []*Structure{Monoid(), Group()}
}
