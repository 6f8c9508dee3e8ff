package group

import (
	"fmt"

	"github.com/voodooEntity/algebrain/src/system/monoid"
	"github.com/voodooEntity/algebrain/src/system/operand"
	"github.com/voodooEntity/algebrain/src/system/resolver"
	"github.com/voodooEntity/algebrain/src/system/structure"
	"github.com/voodooEntity/algebrain/src/system/synthesizer"
)

// Group is the resolved typed view for one operand type. It embeds the
// operand's Monoid view, so combine and identity come along. Whichever MCD
// the instance declared, both subtract and invert are always populated,
// the missing one is synthesized.
type Group[T any] struct {
	monoid.Monoid[T]
	SubtractFn func(T, T) T
	InvertFn   func(T) T
	Instance   *resolver.Instance
}

func (g Group[T]) Subtract(x T, y T) T {
	return g.SubtractFn(x, y)
}

func (g Group[T]) Invert(x T) T {
	return g.InvertFn(x)
}

// Resolve finds the unique Group instance for the (T, T) pair (unary
// dispatch always goes through the same-type pair) and completes the
// declared MCD into a full operation set. A native body for the derivable
// operation, when supplied, wins over synthesis.
func Resolve[T any](reg *resolver.Registry) (Group[T], error) {
	inst, err := reg.Resolve(structure.GroupName, operand.Single[T]())
	if err != nil {
		return Group[T]{}, err
	}

	// the parent structure is guaranteed resolvable here, the dependency
	// gate already held during resolution
	parent, err := monoid.Resolve[T](reg)
	if err != nil {
		return Group[T]{}, err
	}

	g := Group[T]{Monoid: parent, Instance: inst}
	switch inst.MCD() {
	case structure.MCD_SUBTRACT:
		subtractFn, err := opAs[func(T, T) T](inst, structure.OpSubtract)
		if err != nil {
			return Group[T]{}, err
		}
		g.SubtractFn = subtractFn
		if body, ok := inst.Op(structure.OpInvert); ok {
			invertFn, ok := body.(func(T) T)
			if !ok {
				return Group[T]{}, fmt.Errorf("%w: operation %q of instance %s", resolver.ErrOperationType, structure.OpInvert, inst.Name())
			}
			g.InvertFn = invertFn
		} else {
			g.InvertFn = synthesizer.DeriveInvert(subtractFn, parent.IdentityFn)
		}
	case structure.MCD_INVERT:
		invertFn, err := opAs[func(T) T](inst, structure.OpInvert)
		if err != nil {
			return Group[T]{}, err
		}
		g.InvertFn = invertFn
		if body, ok := inst.Op(structure.OpSubtract); ok {
			subtractFn, ok := body.(func(T, T) T)
			if !ok {
				return Group[T]{}, fmt.Errorf("%w: operation %q of instance %s", resolver.ErrOperationType, structure.OpSubtract, inst.Name())
			}
			g.SubtractFn = subtractFn
		} else {
			g.SubtractFn = synthesizer.DeriveSubtract(parent.CombineFn, invertFn)
		}
	default:
		return Group[T]{}, fmt.Errorf("%w: %q declared by instance %s", resolver.ErrUnknownMCD, inst.MCD(), inst.Name())
	}
	return g, nil
}

// MustResolve panics on resolution failure.
func MustResolve[T any](reg *resolver.Registry) Group[T] {
	g, err := Resolve[T](reg)
	if err != nil {
		panic(err)
	}
	return g
}

// Subtract resolves and applies in one step.
func Subtract[T any](reg *resolver.Registry, x T, y T) (T, error) {
	g, err := Resolve[T](reg)
	if err != nil {
		var zero T
		return zero, err
	}
	return g.Subtract(x, y), nil
}

// Invert resolves and applies in one step.
func Invert[T any](reg *resolver.Registry, x T) (T, error) {
	g, err := Resolve[T](reg)
	if err != nil {
		var zero T
		return zero, err
	}
	return g.Invert(x), nil
}

func opAs[F any](inst *resolver.Instance, name string) (F, error) {
	var zero F
	body, ok := inst.Op(name)
	if !ok {
		return zero, fmt.Errorf("%w: instance %s misses operation %q", resolver.ErrMalformedMCD, inst.Name(), name)
	}
	fn, ok := body.(F)
	if !ok {
		return zero, fmt.Errorf("%w: operation %q of instance %s", resolver.ErrOperationType, name, inst.Name())
	}
	return fn, nil
}
