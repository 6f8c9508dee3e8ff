package resolver

import (
	"errors"
	"strings"
	"testing"

	"github.com/voodooEntity/algebrain/src/system/instanceBuilder"
	"github.com/voodooEntity/algebrain/src/system/monoid"
	"github.com/voodooEntity/algebrain/src/system/operand"
	"github.com/voodooEntity/algebrain/src/system/predicate"
	"github.com/voodooEntity/algebrain/src/system/resolver"
	"github.com/voodooEntity/algebrain/src/system/structure"
)

// Test: declaring an MCD without supplying its operation names the gap
func Test_Register_MalformedMCD(t *testing.T) {
	reg, _ := setupWithBuiltins()

	inst := instanceBuilder.New().
		SetName("group:test:incomplete").
		SetStructure(structure.GroupName).
		SetOperands(operand.Single[clicks]()).
		SetMCD(structure.MCD_SUBTRACT).
		SetPredicate(predicate.True()).
		Build() // no operations supplied at all

	err := reg.Register(inst)
	if !errors.Is(err, resolver.ErrMalformedMCD) {
		t.Fatalf("expected ErrMalformedMCD, got: %v", err)
	}
	if !strings.Contains(err.Error(), structure.OpSubtract) {
		t.Fatalf("error must identify the missing operation, got: %v", err)
	}
}

// Test: an MCD the structure does not admit is rejected
func Test_Register_UnknownMCD(t *testing.T) {
	reg, _ := setupWithBuiltins()

	inst := instanceBuilder.New().
		SetName("monoid:test:badmcd").
		SetStructure(structure.MonoidName).
		SetOperands(operand.Single[clicks]()).
		SetMCD("halving").
		AddOperation(structure.OpCombine, func(x clicks, y clicks) clicks { return x + y }).
		Build()

	if err := reg.Register(inst); !errors.Is(err, resolver.ErrUnknownMCD) {
		t.Fatalf("expected ErrUnknownMCD, got: %v", err)
	}
}

// Test: instances for undefined structures are rejected
func Test_Register_UnknownStructure(t *testing.T) {
	reg, _ := setupWithBuiltins()

	inst := instanceBuilder.New().
		SetName("ring:test:int").
		SetStructure("Ring").
		SetOperands(operand.Single[int]()).
		SetMCD(structure.MCD_SUBTRACT).
		AddOperation(structure.OpSubtract, func(x int, y int) int { return x - y }).
		Build()

	if err := reg.Register(inst); !errors.Is(err, resolver.ErrUnknownStructure) {
		t.Fatalf("expected ErrUnknownStructure, got: %v", err)
	}
}

// Test: supplying an operation the structure contract does not know
func Test_Register_UnknownOperation(t *testing.T) {
	reg, _ := setupWithBuiltins()

	inst := instanceBuilder.New().
		SetName("monoid:test:extra").
		SetStructure(structure.MonoidName).
		SetOperands(operand.Single[clicks]()).
		SetMCD(structure.MCD_FULL).
		AddOperation(structure.OpCombine, func(x clicks, y clicks) clicks { return x + y }).
		AddOperation(structure.OpIdentity, func() clicks { return 0 }).
		AddOperation("smash", func(x clicks) clicks { return x * x }).
		Build()

	if err := reg.Register(inst); !errors.Is(err, resolver.ErrUnknownOperation) {
		t.Fatalf("expected ErrUnknownOperation, got: %v", err)
	}
}

// Test: instance names are unique
func Test_Register_DuplicateName(t *testing.T) {
	reg, _ := setupWithBuiltins()

	build := func() *resolver.Instance {
		return instanceBuilder.New().
			SetName("monoid:test:clicks").
			SetStructure(structure.MonoidName).
			SetOperands(operand.Single[clicks]()).
			SetMCD(structure.MCD_FULL).
			AddOperation(structure.OpCombine, func(x clicks, y clicks) clicks { return x + y }).
			AddOperation(structure.OpIdentity, func() clicks { return 0 }).
			Build()
	}

	if err := reg.Register(build()); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if err := reg.Register(build()); !errors.Is(err, resolver.ErrDuplicateInstance) {
		t.Fatalf("expected ErrDuplicateInstance, got: %v", err)
	}
}

// Test: a wrongly typed operation body surfaces at typed view construction
func Test_Resolve_WrongOperationType(t *testing.T) {
	reg, _ := setupWithBuiltins()

	inst := instanceBuilder.New().
		SetName("monoid:test:wrongtype").
		SetStructure(structure.MonoidName).
		SetOperands(operand.Single[clicks]()).
		SetMCD(structure.MCD_FULL).
		AddOperation(structure.OpCombine, func(x int, y int) int { return x + y }). // int, not clicks
		AddOperation(structure.OpIdentity, func() clicks { return 0 }).
		Build()
	if err := reg.Register(inst); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	_, err := monoid.Resolve[clicks](reg)
	if !errors.Is(err, resolver.ErrOperationType) {
		t.Fatalf("expected ErrOperationType, got: %v", err)
	}
}
