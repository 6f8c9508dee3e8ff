package resolver

import (
	"testing"

	"github.com/voodooEntity/algebrain/src/system/group"
	"github.com/voodooEntity/algebrain/src/system/monoid"
)

// Test: builtin numeric groups satisfy the inverse laws
func Test_GroupLaws_Numeric(t *testing.T) {
	reg, _ := setupWithBuiltins()

	ints := group.MustResolve[int](reg)
	if err := group.CheckLaws(ints, []int{-41, -3, 0, 2, 5, 1000}, func(a int, b int) bool { return a == b }); err != nil {
		t.Fatalf("int group law violation: %v", err)
	}

	floats := group.MustResolve[float64](reg)
	if err := group.CheckLaws(floats, []float64{-2.5, 0, 0.125, 3}, func(a float64, b float64) bool { return a == b }); err != nil {
		t.Fatalf("float64 group law violation: %v", err)
	}

	// unsigned types form a group modulo 2^n via wrap-around
	bytes := group.MustResolve[uint8](reg)
	if err := group.CheckLaws(bytes, []uint8{0, 1, 7, 128, 255}, func(a uint8, b uint8) bool { return a == b }); err != nil {
		t.Fatalf("uint8 group law violation: %v", err)
	}
}

// Test: the invert-form fixture satisfies the same laws
func Test_GroupLaws_InvertForm(t *testing.T) {
	reg, _ := setupWithBuiltins()
	if err := registerClicks(reg); err != nil {
		t.Fatalf("registering clicks fixture failed: %v", err)
	}

	clicked := group.MustResolve[clicks](reg)
	if err := group.CheckLaws(clicked, []clicks{-9, 0, 4, 77}, func(a clicks, b clicks) bool { return a == b }); err != nil {
		t.Fatalf("clicks group law violation: %v", err)
	}
}

// Test: the string monoid keeps its identity laws (no group involved)
func Test_MonoidLaws_String(t *testing.T) {
	reg, _ := setupWithBuiltins()

	words := monoid.MustResolve[string](reg)
	if words.Identity() != "" {
		t.Fatalf("expected empty string identity, got %q", words.Identity())
	}
	for _, sample := range []string{"", "a", "foobar"} {
		if words.Combine(words.Identity(), sample) != sample {
			t.Fatalf("left identity violated for %q", sample)
		}
		if words.Combine(sample, words.Identity()) != sample {
			t.Fatalf("right identity violated for %q", sample)
		}
	}
	if words.Combine("foo", "bar") != "foobar" {
		t.Fatalf("string combine is not concatenation")
	}
}
