package resolver

import (
	"errors"
	"testing"

	"github.com/voodooEntity/algebrain/src/system/group"
	"github.com/voodooEntity/algebrain/src/system/instanceBuilder"
	"github.com/voodooEntity/algebrain/src/system/operand"
	"github.com/voodooEntity/algebrain/src/system/predicate"
	"github.com/voodooEntity/algebrain/src/system/resolver"
	"github.com/voodooEntity/algebrain/src/system/structure"
)

// Test: strings are a monoid but never a group
func Test_NoInstance_StringGroup(t *testing.T) {
	reg, _ := setupWithBuiltins()

	if _, err := reg.Resolve(structure.GroupName, operand.Single[string]()); !errors.Is(err, resolver.ErrNoInstance) {
		t.Fatalf("expected ErrNoInstance for string group, got: %v", err)
	}
	if _, err := group.Resolve[string](reg); !errors.Is(err, resolver.ErrNoInstance) {
		t.Fatalf("expected typed resolution to fail the same way, got: %v", err)
	}
}

// Test: a type with no declarations at all resolves nothing
func Test_NoInstance_UnregisteredType(t *testing.T) {
	reg, _ := setupWithBuiltins()

	if _, err := reg.Resolve(structure.MonoidName, operand.Single[opaque]()); !errors.Is(err, resolver.ErrNoInstance) {
		t.Fatalf("expected ErrNoInstance for opaque monoid, got: %v", err)
	}
	if _, err := reg.Resolve(structure.GroupName, operand.Single[opaque]()); !errors.Is(err, resolver.ErrNoInstance) {
		t.Fatalf("expected ErrNoInstance for opaque group, got: %v", err)
	}
}

// Test: a group declaration whose operand is no monoid stays unreachable,
// there is no silent fallback past the dependency gate
func Test_NoInstance_MissingDependency(t *testing.T) {
	reg, _ := setupFresh() // no builtins at all

	inst := instanceBuilder.New().
		SetName("group:test:orphan-int").
		SetStructure(structure.GroupName).
		SetOperands(operand.Single[int]()).
		SetMCD(structure.MCD_SUBTRACT).
		SetPredicate(predicate.BelongsTo(structure.MonoidName)).
		AddOperation(structure.OpSubtract, func(x int, y int) int { return x - y }).
		Build()
	if err := reg.Register(inst); err != nil {
		t.Fatalf("registration itself must succeed, got: %v", err)
	}

	if _, err := reg.Resolve(structure.GroupName, operand.Single[int]()); !errors.Is(err, resolver.ErrNoInstance) {
		t.Fatalf("expected ErrNoInstance without the monoid dependency, got: %v", err)
	}
}

// Test: resolving against a structure that was never defined
func Test_NoInstance_UnknownStructure(t *testing.T) {
	reg, _ := setupWithBuiltins()

	if _, err := reg.Resolve("Ring", operand.Single[int]()); !errors.Is(err, resolver.ErrUnknownStructure) {
		t.Fatalf("expected ErrUnknownStructure, got: %v", err)
	}
}
