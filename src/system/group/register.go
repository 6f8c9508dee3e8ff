package group

import (
	"github.com/voodooEntity/algebrain/src/system/instanceBuilder"
	"github.com/voodooEntity/algebrain/src/system/operand"
	"github.com/voodooEntity/algebrain/src/system/predicate"
	"github.com/voodooEntity/algebrain/src/system/resolver"
	"github.com/voodooEntity/algebrain/src/system/structure"
)

// RegisterNumeric declares the builtin group for a numeric type: gated on
// the operand already being a Monoid, using the subtract MCD with the
// native - operator. Invert is left to synthesis, so invert(x) really is
// subtract(identity, x).
func RegisterNumeric[T operand.Numeric](reg *resolver.Registry, name string) error {
	inst := instanceBuilder.New().
		SetName(name).
		SetStructure(structure.GroupName).
		SetOperands(operand.Single[T]()).
		SetMCD(structure.MCD_SUBTRACT).
		SetPredicate(predicate.BelongsTo(structure.MonoidName)).
		AddOperation(structure.OpSubtract, func(x T, y T) T { return x - y }).
		Build()
	return reg.Register(inst)
}

// RegisterDefaults declares the builtin group catalogue. Strings are left
// out on purpose, concatenation has no inverse.
func RegisterDefaults(reg *resolver.Registry) error {
	if err := RegisterNumeric[int](reg, "group:numeric:int"); err != nil {
		return err
	}
	if err := RegisterNumeric[int8](reg, "group:numeric:int8"); err != nil {
		return err
	}
	if err := RegisterNumeric[int16](reg, "group:numeric:int16"); err != nil {
		return err
	}
	if err := RegisterNumeric[int32](reg, "group:numeric:int32"); err != nil {
		return err
	}
	if err := RegisterNumeric[int64](reg, "group:numeric:int64"); err != nil {
		return err
	}
	if err := RegisterNumeric[uint](reg, "group:numeric:uint"); err != nil {
		return err
	}
	if err := RegisterNumeric[uint8](reg, "group:numeric:uint8"); err != nil {
		return err
	}
	if err := RegisterNumeric[uint16](reg, "group:numeric:uint16"); err != nil {
		return err
	}
	if err := RegisterNumeric[uint32](reg, "group:numeric:uint32"); err != nil {
		return err
	}
	if err := RegisterNumeric[uint64](reg, "group:numeric:uint64"); err != nil {
		return err
	}
	if err := RegisterNumeric[float32](reg, "group:numeric:float32"); err != nil {
		return err
	}
	return RegisterNumeric[float64](reg, "group:numeric:float64")
}
