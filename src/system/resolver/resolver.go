package resolver

import (
	"fmt"
	"sort"
	"strings"

	"github.com/voodooEntity/gits/src/query"
	"github.com/voodooEntity/gits/src/storage"
	"github.com/voodooEntity/gits/src/transport"

	"github.com/voodooEntity/algebrain/src/system/archivist"
	"github.com/voodooEntity/algebrain/src/system/operand"
	"github.com/voodooEntity/algebrain/src/system/structure"
	"github.com/voodooEntity/algebrain/src/system/util"
)

// Registry holds the statically declared structures and instances and
// resolves the unique applicable instance for a structure and operand
// types. Registration and resolution happen while the program constructs
// itself; afterwards a resolved instance is a set of direct calls.
type Registry struct {
	memory     *Memory
	log        *archivist.Archivist
	structures map[string]*structure.Structure
	instances  map[string][]*Instance
	byName     map[string]*Instance
	// resolution cache: key = structure|left|right
	cache       map[string]*Instance
	cacheHits   int
	cacheMisses int
	history     bool
}

func New(memory *Memory, logger *archivist.Archivist, history bool) *Registry {
	return &Registry{
		memory:     memory,
		log:        logger,
		structures: make(map[string]*structure.Structure),
		instances:  make(map[string][]*Instance),
		byName:     make(map[string]*Instance),
		cache:      make(map[string]*Instance),
		history:    history,
	}
}

func (r *Registry) Memory() *Memory {
	return r.memory
}

// RegisterStructure adds a structure definition to the catalogue and maps
// it into memory. Re-registering a name replaces the definition and drops
// any cached resolutions for it.
func (r *Registry) RegisterStructure(def *structure.Structure) error {
	if def == nil || def.Name == "" {
		return fmt.Errorf("%w: empty structure definition", ErrUnknownStructure)
	}
	if _, ok := r.structures[def.Name]; ok {
		r.log.Debug(archivist.DEBUG_LEVEL_TRACE, "resolution STRUCT re-register name=", def.Name)
		r.invalidateAll()
	}
	r.structures[def.Name] = def
	r.memory.Gits.MapData(transport.TransportEntity{
		ID:      storage.MAP_IF_NOT_EXISTS, // upsert by value
		Type:    "Structure",
		Value:   def.Name,
		Context: "System",
		Properties: map[string]string{
			"DependsOn": strings.Join(def.DependsOn, ","),
		},
	})
	return nil
}

// Structure returns the definition registered under the given name.
func (r *Registry) Structure(name string) (*structure.Structure, bool) {
	def, ok := r.structures[name]
	return def, ok
}

// Structures lists all registered definitions ordered by name.
func (r *Registry) Structures() []*structure.Structure {
	defs := make([]*structure.Structure, 0, len(r.structures))
	for _, def := range r.structures {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i int, j int) bool {
		return defs[i].Name < defs[j].Name
	})
	return defs
}

// Instances lists the declared instances for a structure in registration
// order.
func (r *Registry) Instances(structureName string) []*Instance {
	declared := r.instances[structureName]
	out := make([]*Instance, len(declared))
	copy(out, declared)
	return out
}

// Register validates and stores an instance declaration. The declared MCD
// must be one the structure admits and every operation it requires must be
// supplied, otherwise registration fails naming the missing piece.
func (r *Registry) Register(inst *Instance) error {
	if inst.Name() == "" {
		return fmt.Errorf("%w: instance has no name", ErrDuplicateInstance)
	}
	if _, ok := r.byName[inst.Name()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateInstance, inst.Name())
	}
	def, ok := r.structures[inst.Structure()]
	if !ok {
		return fmt.Errorf("%w: %s (instance %s)", ErrUnknownStructure, inst.Structure(), inst.Name())
	}
	mcd, ok := def.MCDByName(inst.MCD())
	if !ok {
		return fmt.Errorf("%w: %q is not admitted by structure %s (instance %s)", ErrUnknownMCD, inst.MCD(), def.Name, inst.Name())
	}
	for _, opName := range mcd.Supplies {
		if _, ok := inst.Op(opName); !ok {
			return fmt.Errorf("%w: instance %s declares MCD %q but misses operation %q", ErrMalformedMCD, inst.Name(), mcd.Name, opName)
		}
	}
	for _, opName := range inst.OperationNames() {
		if !def.HasOperation(opName) {
			return fmt.Errorf("%w: %q supplied by instance %s is unknown to structure %s", ErrUnknownOperation, opName, inst.Name(), def.Name)
		}
	}

	r.instances[def.Name] = append(r.instances[def.Name], inst)
	r.byName[inst.Name()] = inst

	// map the declaration and its lookup index into memory
	r.memory.Gits.MapData(inst.transportEntity())
	r.memory.Gits.MapData(inst.lookupEntity(inst.Operands().Left))
	if inst.Operands().Left != inst.Operands().Right {
		r.memory.Gits.MapData(inst.lookupEntity(inst.Operands().Right))
	}

	// a new candidate may shadow earlier resolutions, including ones of
	// structures depending on this one, so the whole cache goes
	r.invalidateAll()
	r.log.Debug(archivist.DEBUG_LEVEL_TRACE, "resolution RGST registered instance=", inst.Name(), " structure=", def.Name, " operands=", inst.Operands().String(), " mcd=", inst.MCD())
	return nil
}

// Resolve returns the unique applicable instance for the structure and
// operand pair. Zero applicable instances yield ErrNoInstance, more than
// one yields ErrAmbiguousInstance naming every contender.
func (r *Registry) Resolve(structureName string, pair operand.Pair) (*Instance, error) {
	key := cacheKey(structureName, pair)
	if inst, ok := r.cache[key]; ok {
		r.cacheHits++
		r.log.Debug(archivist.DEBUG_LEVEL_TRACE, "resolution CACHE hit key=", key, " hits=", r.cacheHits, " misses=", r.cacheMisses)
		return inst, nil
	}
	r.cacheMisses++
	r.log.Debug(archivist.DEBUG_LEVEL_TRACE, "resolution CACHE miss key=", key, " hits=", r.cacheHits, " misses=", r.cacheMisses)

	def, ok := r.structures[structureName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStructure, structureName)
	}

	matched := r.matchesFor(def, pair)
	switch len(matched) {
	case 0:
		return nil, fmt.Errorf("%w: operation unavailable for structure %s and operand types (%s)", ErrNoInstance, structureName, pair.String())
	case 1:
		r.cache[key] = matched[0]
		if r.history {
			r.recordResolution(matched[0], pair)
		}
		r.log.Debug(archivist.DEBUG_LEVEL_TRACE, "resolution RSLV unique instance=", matched[0].Name(), " structure=", structureName, " operands=", pair.String())
		return matched[0], nil
	default:
		names := make([]string, 0, len(matched))
		for _, inst := range matched {
			names = append(names, inst.Name())
		}
		return nil, fmt.Errorf("%w: structure %s, operand types (%s), contenders [%s]", ErrAmbiguousInstance, structureName, pair.String(), strings.Join(names, ", "))
	}
}

// HasInstance reports whether exactly one instance applies. It backs
// predicate.View and the dependency gate, and deliberately bypasses the
// cache so predicate evaluation stays side effect free.
func (r *Registry) HasInstance(structureName string, pair operand.Pair) bool {
	def, ok := r.structures[structureName]
	if !ok {
		return false
	}
	return len(r.matchesFor(def, pair)) == 1
}

// CacheStats exposes cache hit/miss counters for diagnostics.
func (r *Registry) CacheStats() (int, int) {
	return r.cacheHits, r.cacheMisses
}

// Invalidate drops a single cached resolution.
func (r *Registry) Invalidate(structureName string, pair operand.Pair) {
	delete(r.cache, cacheKey(structureName, pair))
	r.log.Debug(archivist.DEBUG_LEVEL_TRACE, "resolution CACHE invalidated key=", cacheKey(structureName, pair))
}

// invalidateAll flushes every cached resolution. Registration is a
// construction time event, so dropping the full cache is cheap and avoids
// walking the dependency graph for affected structures.
func (r *Registry) invalidateAll() {
	r.cache = make(map[string]*Instance)
	r.log.Debug(archivist.DEBUG_LEVEL_TRACE, "resolution CACHE flushed")
}

// matchesFor filters the declared candidates down to the applicable ones:
// the structure's dependencies must hold for both operand types and the
// instance predicate must evaluate to true.
func (r *Registry) matchesFor(def *structure.Structure, pair operand.Pair) []*Instance {
	candidates := r.candidatesFor(def.Name, pair)
	if len(candidates) == 0 {
		return nil
	}
	if !r.dependenciesSatisfied(def, pair) {
		return nil
	}
	var matched []*Instance
	for _, inst := range candidates {
		if inst.applies(r, pair) {
			matched = append(matched, inst)
		}
	}
	return matched
}

// candidatesFor retrieves declared instances for the structure that index
// the left operand type, going through the OperandLookup entities mapped
// into memory at registration time.
func (r *Registry) candidatesFor(structureName string, pair operand.Pair) []*Instance {
	var candidates []*Instance
	qry := query.New().Read("OperandLookup").Match("Value", "==", string(pair.Left)).To(
		query.New().Read("Instance").From(
			query.New().Read("Structure").Match("Value", "==", structureName),
		),
	)
	result := r.memory.Gits.Query().Execute(qry)
	r.log.Debug(archivist.DEBUG_LEVEL_DUMP, "OperandLookup ", string(pair.Left), result)
	if 0 < len(result.Entities) {
		for _, instanceEntity := range result.Entities[0].Children() {
			if inst, ok := r.byName[instanceEntity.Value]; ok && inst.Structure() == structureName {
				candidates = append(candidates, inst)
			}
		}
	}
	return candidates
}

func (r *Registry) dependenciesSatisfied(def *structure.Structure, pair operand.Pair) bool {
	for _, depName := range def.DependsOn {
		if !r.HasInstance(depName, operand.NewPair(pair.Left, pair.Left)) {
			return false
		}
		if !r.HasInstance(depName, operand.NewPair(pair.Right, pair.Right)) {
			return false
		}
	}
	return true
}

// recordResolution maps a history entity for a successful resolution so it
// can be looked up later via a plain Resolution query.
func (r *Registry) recordResolution(inst *Instance, pair operand.Pair) {
	r.memory.Gits.MapData(transport.TransportEntity{
		ID:      storage.MAP_FORCE_CREATE,
		Type:    "Resolution",
		Value:   inst.Name(),
		Context: "History",
		Properties: map[string]string{
			"Structure": inst.Structure(),
			"Operands":  pair.String(),
			"Signature": util.GenerateSignature(inst.Structure(), string(pair.Left), string(pair.Right), inst.Name()),
		},
	})
}

func cacheKey(structureName string, pair operand.Pair) string {
	return structureName + "|" + string(pair.Left) + "|" + string(pair.Right)
}
