package monoid

import (
	"fmt"

	"github.com/voodooEntity/algebrain/src/system/operand"
	"github.com/voodooEntity/algebrain/src/system/resolver"
	"github.com/voodooEntity/algebrain/src/system/structure"
)

// Monoid is the resolved typed view for one operand type. Calls on it are
// direct, resolution happened when it was constructed.
type Monoid[T any] struct {
	CombineFn  func(T, T) T
	IdentityFn func() T
	Instance   *resolver.Instance
}

func (m Monoid[T]) Combine(x T, y T) T {
	return m.CombineFn(x, y)
}

func (m Monoid[T]) Identity() T {
	return m.IdentityFn()
}

// Resolve finds the unique Monoid instance for T and asserts its operation
// bodies into a typed view.
func Resolve[T any](reg *resolver.Registry) (Monoid[T], error) {
	inst, err := reg.Resolve(structure.MonoidName, operand.Single[T]())
	if err != nil {
		return Monoid[T]{}, err
	}
	combineFn, err := opAs[func(T, T) T](inst, structure.OpCombine)
	if err != nil {
		return Monoid[T]{}, err
	}
	identityFn, err := opAs[func() T](inst, structure.OpIdentity)
	if err != nil {
		return Monoid[T]{}, err
	}
	return Monoid[T]{
		CombineFn:  combineFn,
		IdentityFn: identityFn,
		Instance:   inst,
	}, nil
}

// MustResolve panics on resolution failure. Meant for package level wiring
// where construction is supposed to be loud.
func MustResolve[T any](reg *resolver.Registry) Monoid[T] {
	m, err := Resolve[T](reg)
	if err != nil {
		panic(err)
	}
	return m
}

// Combine resolves and applies in one step.
func Combine[T any](reg *resolver.Registry, x T, y T) (T, error) {
	m, err := Resolve[T](reg)
	if err != nil {
		var zero T
		return zero, err
	}
	return m.Combine(x, y), nil
}

// Identity resolves and returns the identity element of T.
func Identity[T any](reg *resolver.Registry) (T, error) {
	m, err := Resolve[T](reg)
	if err != nil {
		var zero T
		return zero, err
	}
	return m.Identity(), nil
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
