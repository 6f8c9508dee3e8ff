package group

import (
	"fmt"

	"github.com/voodooEntity/algebrain/src/system/operand"
	"github.com/voodooEntity/algebrain/src/system/resolver"
	"github.com/voodooEntity/algebrain/src/system/structure"
)

// PairOps is the typed view for a cross-type instance. Subtraction between
// two distinct operand types yields the left operand type. Only the
// subtract form is available here, an inverse is a same-type notion.
type PairOps[X any, Y any] struct {
	SubtractFn func(X, Y) X
	Instance   *resolver.Instance
}

func (p PairOps[X, Y]) Subtract(x X, y Y) X {
	return p.SubtractFn(x, y)
}

// ResolvePair finds the unique Group instance declared for the (X, Y)
// operand pair.
func ResolvePair[X any, Y any](reg *resolver.Registry) (PairOps[X, Y], error) {
	inst, err := reg.Resolve(structure.GroupName, operand.PairOf[X, Y]())
	if err != nil {
		return PairOps[X, Y]{}, err
	}
	body, ok := inst.Op(structure.OpSubtract)
	if !ok {
		return PairOps[X, Y]{}, fmt.Errorf("%w: cross-type instance %s must supply operation %q", resolver.ErrMalformedMCD, inst.Name(), structure.OpSubtract)
	}
	subtractFn, ok := body.(func(X, Y) X)
	if !ok {
		return PairOps[X, Y]{}, fmt.Errorf("%w: operation %q of instance %s", resolver.ErrOperationType, structure.OpSubtract, inst.Name())
	}
	return PairOps[X, Y]{SubtractFn: subtractFn, Instance: inst}, nil
}
