package resolver

import (
	"github.com/voodooEntity/gits/src/storage"
	"github.com/voodooEntity/gits/src/transport"

	"github.com/voodooEntity/algebrain/src/system/operand"
	"github.com/voodooEntity/algebrain/src/system/predicate"
	"github.com/voodooEntity/algebrain/src/system/util"
)

// Instance binds a structure to one or two operand types, gated by a
// predicate. Instances are declared once and never mutate.
type Instance struct {
	name          string
	structureName string
	operands      operand.Pair
	mcd           string
	pred          predicate.Predicate
	operations    map[string]any
}

// NewInstance composes an immutable instance descriptor. Operation bodies
// are typed function values held opaque; the typed views assert them once
// during their own construction.
func NewInstance(name string, structureName string, operands operand.Pair, mcd string, pred predicate.Predicate, operations map[string]any) *Instance {
	if pred == nil {
		pred = predicate.True()
	}
	ops := make(map[string]any, len(operations))
	for opName, body := range operations {
		ops[opName] = body
	}
	return &Instance{
		name:          name,
		structureName: structureName,
		operands:      operands,
		mcd:           mcd,
		pred:          pred,
		operations:    ops,
	}
}

func (i *Instance) Name() string {
	return i.name
}

func (i *Instance) Structure() string {
	return i.structureName
}

func (i *Instance) Operands() operand.Pair {
	return i.operands
}

func (i *Instance) MCD() string {
	return i.mcd
}

// Op returns the supplied body for the named operation, if any.
func (i *Instance) Op(name string) (any, bool) {
	body, ok := i.operations[name]
	return body, ok
}

// OperationNames lists the operations the author actually supplied.
func (i *Instance) OperationNames() []string {
	names := make([]string, 0, len(i.operations))
	for name := range i.operations {
		names = append(names, name)
	}
	return names
}

func (i *Instance) applies(view predicate.View, pair operand.Pair) bool {
	if i.operands != pair {
		return false
	}
	return i.pred(view, pair)
}

// transportEntity renders the instance as a storage entity tree rooted at
// its structure, ready to be mapped into memory.
func (i *Instance) transportEntity() transport.TransportEntity {
	properties := map[string]string{
		"MCD":          i.mcd,
		"OperandLeft":  string(i.operands.Left),
		"OperandRight": string(i.operands.Right),
		"Signature":    util.GenerateSignature(i.structureName, string(i.operands.Left), string(i.operands.Right), i.name),
	}
	return transport.TransportEntity{
		ID:         storage.MAP_IF_NOT_EXISTS, // upsert by value
		Type:       "Structure",
		Value:      i.structureName,
		Context:    "System",
		Properties: map[string]string{},
		ChildRelations: []transport.TransportRelation{
			{
				Target: transport.TransportEntity{
					ID:         storage.MAP_IF_NOT_EXISTS,
					Type:       "Instance",
					Value:      i.name,
					Context:    "System",
					Properties: util.CopyStringStringMap(properties),
					ChildRelations: []transport.TransportRelation{
						{
							Target: transport.TransportEntity{
								ID:         storage.MAP_IF_NOT_EXISTS,
								Type:       "Operand",
								Value:      string(i.operands.Left),
								Context:    "System",
								Properties: map[string]string{},
							},
						},
						{
							Target: transport.TransportEntity{
								ID:         storage.MAP_IF_NOT_EXISTS,
								Type:       "Operand",
								Value:      string(i.operands.Right),
								Context:    "System",
								Properties: map[string]string{},
							},
						},
					},
				},
			},
		},
	}
}

// lookupEntity renders the OperandLookup index node pointing at this
// instance for the given operand type.
func (i *Instance) lookupEntity(typeID operand.TypeID) transport.TransportEntity {
	return transport.TransportEntity{
		ID:         storage.MAP_IF_NOT_EXISTS,
		Type:       "OperandLookup",
		Value:      string(typeID),
		Context:    "System",
		Properties: map[string]string{},
		ChildRelations: []transport.TransportRelation{
			{
				Target: transport.TransportEntity{
					ID:         storage.MAP_IF_NOT_EXISTS,
					Type:       "Instance",
					Value:      i.name,
					Context:    "System",
					Properties: map[string]string{},
					ParentRelations: []transport.TransportRelation{
						{
							Target: transport.TransportEntity{
								ID:         storage.MAP_IF_NOT_EXISTS,
								Type:       "Structure",
								Value:      i.structureName,
								Context:    "System",
								Properties: map[string]string{},
							},
						},
					},
				},
			},
		},
	}
}
