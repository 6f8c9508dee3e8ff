package monoid

import (
	"github.com/voodooEntity/algebrain/src/system/instanceBuilder"
	"github.com/voodooEntity/algebrain/src/system/operand"
	"github.com/voodooEntity/algebrain/src/system/predicate"
	"github.com/voodooEntity/algebrain/src/system/resolver"
	"github.com/voodooEntity/algebrain/src/system/structure"
)

// RegisterNumeric declares the additive monoid for a numeric type: combine
// is +, identity is the zero value.
func RegisterNumeric[T operand.Numeric](reg *resolver.Registry, name string) error {
	inst := instanceBuilder.New().
		SetName(name).
		SetStructure(structure.MonoidName).
		SetOperands(operand.Single[T]()).
		SetMCD(structure.MCD_FULL).
		SetPredicate(predicate.True()).
		AddOperation(structure.OpCombine, func(x T, y T) T { return x + y }).
		AddOperation(structure.OpIdentity, func() T { var zero T; return zero }).
		Build()
	return reg.Register(inst)
}

// RegisterString declares the concatenation monoid for string. Strings
// stay a monoid only, there is no inverse for concatenation.
func RegisterString(reg *resolver.Registry) error {
	inst := instanceBuilder.New().
		SetName("monoid:string").
		SetStructure(structure.MonoidName).
		SetOperands(operand.Single[string]()).
		SetMCD(structure.MCD_FULL).
		SetPredicate(predicate.True()).
		AddOperation(structure.OpCombine, func(x string, y string) string { return x + y }).
		AddOperation(structure.OpIdentity, func() string { return "" }).
		Build()
	return reg.Register(inst)
}

// RegisterDefaults declares the builtin monoid catalogue.
func RegisterDefaults(reg *resolver.Registry) error {
	if err := RegisterNumeric[int](reg, "monoid:numeric:int"); err != nil {
		return err
	}
	if err := RegisterNumeric[int8](reg, "monoid:numeric:int8"); err != nil {
		return err
	}
	if err := RegisterNumeric[int16](reg, "monoid:numeric:int16"); err != nil {
		return err
	}
	if err := RegisterNumeric[int32](reg, "monoid:numeric:int32"); err != nil {
		return err
	}
	if err := RegisterNumeric[int64](reg, "monoid:numeric:int64"); err != nil {
		return err
	}
	if err := RegisterNumeric[uint](reg, "monoid:numeric:uint"); err != nil {
		return err
	}
	if err := RegisterNumeric[uint8](reg, "monoid:numeric:uint8"); err != nil {
		return err
	}
	if err := RegisterNumeric[uint16](reg, "monoid:numeric:uint16"); err != nil {
		return err
	}
	if err := RegisterNumeric[uint32](reg, "monoid:numeric:uint32"); err != nil {
		return err
	}
	if err := RegisterNumeric[uint64](reg, "monoid:numeric:uint64"); err != nil {
		return err
	}
	if err := RegisterNumeric[float32](reg, "monoid:numeric:float32"); err != nil {
		return err
	}
	if err := RegisterNumeric[float64](reg, "monoid:numeric:float64"); err != nil {
		return err
	}
	return RegisterString(reg)
}
