package structure

// Arity of an operation inside a structure contract.
type Arity int

const (
	ARITY_NULLARY Arity = iota
	ARITY_UNARY
	ARITY_BINARY
)

// Operation is a named operation slot a structure requires.
type Operation struct {
	Name  string
	Arity Arity
}

// MCD is a minimal complete definition: the named subset of operations an
// instance author may supply, from which the remaining operations of the
// structure are derived by fixed rules.
type MCD struct {
	Name     string
	Supplies []string
}

// Law is a universally quantified equation over an instance's operations.
// Laws are contracts for the test suite, the resolver never evaluates them.
type Law struct {
	Name     string
	Equation string
}

// Structure describes an abstract capability set like Monoid or Group.
type Structure struct {
	Name       string
	DependsOn  []string
	Operations []Operation
	MCDs       []MCD
	Laws       []Law
}

func (s *Structure) MCDByName(name string) (MCD, bool) {
	for _, mcd := range s.MCDs {
		if mcd.Name == name {
			return mcd, true
		}
	}
	return MCD{}, false
}

func (s *Structure) HasOperation(name string) bool {
	for _, op := range s.Operations {
		if op.Name == name {
			return true
		}
	}
	return false
}
