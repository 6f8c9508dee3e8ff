package resolver

import (
	"testing"

	"github.com/voodooEntity/algebrain/src/system/group"
	"github.com/voodooEntity/algebrain/src/system/monoid"
)

// Test: the concrete builtin integer scenario end to end
func Test_NumericScenario_Integers(t *testing.T) {
	reg, _ := setupWithBuiltins()

	ints := group.MustResolve[int](reg)

	if got := ints.Subtract(5, 3); got != 2 {
		t.Fatalf("subtract(5, 3) = %d, expected 2", got)
	}
	// invert is derived as subtract(identity, x) with identity == 0
	if got := ints.Invert(5); got != -5 {
		t.Fatalf("invert(5) = %d, expected -5", got)
	}
	if got := ints.Combine(5, ints.Invert(5)); got != 0 {
		t.Fatalf("combine(5, invert(5)) = %d, expected 0", got)
	}

	identity, err := monoid.Identity[int](reg)
	if err != nil {
		t.Fatalf("resolving int identity failed: %v", err)
	}
	if identity != 0 {
		t.Fatalf("identity = %d, expected 0", identity)
	}
}

// Test: the one-step convenience forms resolve and apply in one go
func Test_NumericScenario_ConvenienceForms(t *testing.T) {
	reg, _ := setupWithBuiltins()

	diff, err := group.Subtract(reg, 5, 3)
	if err != nil {
		t.Fatalf("subtract failed: %v", err)
	}
	if diff != 2 {
		t.Fatalf("subtract(5, 3) = %d, expected 2", diff)
	}

	neg, err := group.Invert(reg, 5)
	if err != nil {
		t.Fatalf("invert failed: %v", err)
	}
	if neg != -5 {
		t.Fatalf("invert(5) = %d, expected -5", neg)
	}

	sum, err := monoid.Combine(reg, 5, neg)
	if err != nil {
		t.Fatalf("combine failed: %v", err)
	}
	if sum != 0 {
		t.Fatalf("combine(5, invert(5)) = %d, expected 0", sum)
	}
}
