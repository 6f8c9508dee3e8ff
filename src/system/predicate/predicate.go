package predicate

import (
	"github.com/voodooEntity/algebrain/src/system/operand"
)

// View is the read-only slice of the registry a predicate may consult.
// Implemented by resolver.Registry.
type View interface {
	HasInstance(structureName string, pair operand.Pair) bool
}

// Predicate gates an instance's applicability for a pair of operand types.
// Predicates must be pure; they are evaluated from type information only
// and never see runtime values.
type Predicate func(view View, pair operand.Pair) bool

func True() Predicate {
	return func(View, operand.Pair) bool {
		return true
	}
}

func And(preds ...Predicate) Predicate {
	return func(view View, pair operand.Pair) bool {
		for _, pred := range preds {
			if !pred(view, pair) {
				return false
			}
		}
		return true
	}
}

func Or(preds ...Predicate) Predicate {
	return func(view View, pair operand.Pair) bool {
		for _, pred := range preds {
			if pred(view, pair) {
				return true
			}
		}
		return false
	}
}

func Not(pred Predicate) Predicate {
	return func(view View, pair operand.Pair) bool {
		return !pred(view, pair)
	}
}

// BelongsTo holds when both operand types individually carry an instance
// of the named structure.
func BelongsTo(structureName string) Predicate {
	return func(view View, pair operand.Pair) bool {
		if !view.HasInstance(structureName, operand.NewPair(pair.Left, pair.Left)) {
			return false
		}
		return view.HasInstance(structureName, operand.NewPair(pair.Right, pair.Right))
	}
}

// Probe evaluates a capability check that may itself blow up on types it
// was never meant for. A panicking probe counts as false, the same way an
// ill-formed capability check is indistinguishable from a negative one.
func Probe(probe func() bool) Predicate {
	return func(View, operand.Pair) (holds bool) {
		defer func() {
			if recover() != nil {
				holds = false
			}
		}()
		return probe()
	}
}
