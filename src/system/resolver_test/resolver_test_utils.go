package resolver

import (
	"log"
	"math/rand"
	"os"

	"github.com/voodooEntity/gits"

	"github.com/voodooEntity/algebrain/src/system/archivist"
	"github.com/voodooEntity/algebrain/src/system/group"
	"github.com/voodooEntity/algebrain/src/system/instanceBuilder"
	"github.com/voodooEntity/algebrain/src/system/monoid"
	"github.com/voodooEntity/algebrain/src/system/operand"
	"github.com/voodooEntity/algebrain/src/system/predicate"
	"github.com/voodooEntity/algebrain/src/system/resolver"
	"github.com/voodooEntity/algebrain/src/system/structure"
)

// - - - - - - - - - - - - - - - - - - - - - - -
// SETUP FRESH REGISTRY
// - needs to be run for each test case
// - provides registry and memory instances
// - structure catalogue is always registered,
//   builtin instances only via setupWithBuiltins

const charset = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func GenerateRandomString(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}

func newLogger() *archivist.Archivist {
	return archivist.New(&archivist.Config{Logger: log.New(os.Stdout, "", 0)})
}

func setupFresh() (*resolver.Registry, *resolver.Memory) {
	// first we create a new gits instance and set it as default
	instanceName := GenerateRandomString(10)
	gitsInstance := gits.NewInstance(instanceName)
	gits.SetDefault(instanceName)

	// setup the logger
	logger := newLogger()

	// compose memory from the fresh gits instance
	mem := &resolver.Memory{Gits: gitsInstance}

	// init registry with history enabled so tests can
	// look up recorded resolutions
	reg := resolver.New(mem, logger, true)

	// the structure catalogue is always available
	for _, def := range structure.Catalog() {
		if err := reg.RegisterStructure(def); err != nil {
			panic(err)
		}
	}

	return reg, mem
}

func setupWithBuiltins() (*resolver.Registry, *resolver.Memory) {
	reg, mem := setupFresh()
	if err := monoid.RegisterDefaults(reg); err != nil {
		panic(err)
	}
	if err := group.RegisterDefaults(reg); err != nil {
		panic(err)
	}
	return reg, mem
}

// clicks is the fixture type declared through the invert form, so its
// subtract is synthesized.
type clicks int

func registerClicks(reg *resolver.Registry) error {
	if err := monoid.RegisterNumeric[clicks](reg, "monoid:test:clicks"); err != nil {
		return err
	}
	inst := instanceBuilder.New().
		SetName("group:test:clicks").
		SetStructure(structure.GroupName).
		SetOperands(operand.Single[clicks]()).
		SetMCD(structure.MCD_INVERT).
		SetPredicate(predicate.BelongsTo(structure.MonoidName)).
		AddOperation(structure.OpInvert, func(x clicks) clicks { return -x }).
		Build()
	return reg.Register(inst)
}

// span is the fixture type for cross-type subtraction against float64.
type span float64

// opaque carries no instances at all.
type opaque struct {
	payload string
}

// registerShadowIntGroup declares a second Group instance for int whose
// predicate always holds, creating deliberate overlap with the builtin.
func registerShadowIntGroup(reg *resolver.Registry) error {
	inst := instanceBuilder.New().
		SetName("group:test:shadow-int").
		SetStructure(structure.GroupName).
		SetOperands(operand.Single[int]()).
		SetMCD(structure.MCD_SUBTRACT).
		SetPredicate(predicate.True()).
		AddOperation(structure.OpSubtract, func(x int, y int) int { return x - y }).
		Build()
	return reg.Register(inst)
}
