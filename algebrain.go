// Package algebrain dispatches operations over algebraic structures
// (capability sets like Monoid and Group) without runtime type tags.
// Instances are declared once while the program constructs itself, gated
// by predicates over the operand types; resolution picks the unique
// applicable instance or fails loudly, and minimal definitions are
// completed by fixed derivation rules. After resolution every call is a
// direct function call.
package algebrain

import (
	"github.com/google/uuid"
	"github.com/voodooEntity/gits"

	"github.com/voodooEntity/algebrain/src/system/archivist"
	"github.com/voodooEntity/algebrain/src/system/auditor"
	"github.com/voodooEntity/algebrain/src/system/group"
	"github.com/voodooEntity/algebrain/src/system/monoid"
	"github.com/voodooEntity/algebrain/src/system/resolver"
	"github.com/voodooEntity/algebrain/src/system/structure"
)

type Engine struct {
	settings Settings
	memory   *resolver.Memory
	registry *resolver.Registry
	log      *archivist.Archivist
}

// New wires up an engine: a fresh gits instance as registry memory, the
// structure catalogue and, unless skipped, the builtin Monoid/Group
// instances. Catalogue registration can only fail on a broken builtin
// declaration, which is a programming error, so it panics.
func New(settings Settings) *Engine {
	if settings.Ident == "" {
		settings.Ident = uuid.NewString()
	}

	logger := archivist.New(&archivist.Config{
		Logger:     settings.Logger,
		LogLevel:   settings.LogLevel,
		DebugLevel: settings.DebugLevel,
	})

	gitsInstance := gits.NewInstance(settings.Ident)
	gits.SetDefault(settings.Ident)

	memory := &resolver.Memory{Gits: gitsInstance}
	registry := resolver.New(memory, logger, settings.History)

	engine := &Engine{
		settings: settings,
		memory:   memory,
		registry: registry,
		log:      logger,
	}

	for _, def := range structure.Catalog() {
		must(registry.RegisterStructure(def))
	}
	if !settings.SkipBuiltins {
		must(monoid.RegisterDefaults(registry))
		must(group.RegisterDefaults(registry))
	}

	logger.Info("algebrain engine created, ident: " + settings.Ident)
	return engine
}

func (e *Engine) Ident() string {
	return e.settings.Ident
}

func (e *Engine) Registry() *resolver.Registry {
	return e.registry
}

func (e *Engine) Memory() *resolver.Memory {
	return e.memory
}

// RegisterStructure adds a structure definition to the catalogue.
func (e *Engine) RegisterStructure(def *structure.Structure) error {
	return e.registry.RegisterStructure(def)
}

// RegisterInstance declares an instance, usually built with the
// instanceBuilder package.
func (e *Engine) RegisterInstance(inst *resolver.Instance) error {
	return e.registry.Register(inst)
}

// GetAuditorInstance returns an auditor over this engine's registry. The
// callback receives the report of every sweep.
func (e *Engine) GetAuditorInstance(callback func(auditor.Report)) *auditor.Auditor {
	return auditor.New(e.registry, e.log, callback)
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
