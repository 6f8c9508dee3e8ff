package instanceBuilder

import (
	"github.com/voodooEntity/algebrain/src/system/operand"
	"github.com/voodooEntity/algebrain/src/system/predicate"
	"github.com/voodooEntity/algebrain/src/system/resolver"
)

// InstanceBuilder is the declaration surface for structure instances: pick
// a structure, the operand types, one MCD, a gating predicate and supply
// the operation bodies. Build hands back the immutable descriptor to pass
// to resolver.Registry.Register. This is the module's only extension
// point, there is no runtime registration.
type InstanceBuilder struct {
	name          string
	structureName string
	operands      operand.Pair
	mcd           string
	pred          predicate.Predicate
	operations    map[string]any
}

func New() *InstanceBuilder {
	return &InstanceBuilder{
		operations: make(map[string]any),
	}
}

func (builder *InstanceBuilder) SetName(name string) *InstanceBuilder {
	builder.name = name
	return builder
}

func (builder *InstanceBuilder) SetStructure(structureName string) *InstanceBuilder {
	builder.structureName = structureName
	return builder
}

func (builder *InstanceBuilder) SetOperands(operands operand.Pair) *InstanceBuilder {
	builder.operands = operands
	return builder
}

func (builder *InstanceBuilder) SetMCD(mcd string) *InstanceBuilder {
	builder.mcd = mcd
	return builder
}

func (builder *InstanceBuilder) SetPredicate(pred predicate.Predicate) *InstanceBuilder {
	builder.pred = pred
	return builder
}

// AddOperation supplies the body for one operation of the chosen MCD (or a
// native override for a derivable one). The body must be a func whose
// signature matches the operand types; the typed views assert it during
// their construction.
func (builder *InstanceBuilder) AddOperation(name string, body any) *InstanceBuilder {
	builder.operations[name] = body
	return builder
}

func (builder *InstanceBuilder) Build() *resolver.Instance {
	name := builder.name
	if name == "" {
		// derive a stable fallback name from the declaration itself
		name = builder.structureName + ":" + builder.operands.String()
	}
	return resolver.NewInstance(name, builder.structureName, builder.operands, builder.mcd, builder.pred, builder.operations)
}
