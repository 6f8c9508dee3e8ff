package auditor

import (
	"errors"
	"sort"

	"github.com/voodooEntity/algebrain/src/system/archivist"
	"github.com/voodooEntity/algebrain/src/system/operand"
	"github.com/voodooEntity/algebrain/src/system/resolver"
)

// Finding is one defect the sweep turned up for a structure and operand
// pair.
type Finding struct {
	Structure string
	Operands  operand.Pair
	Err       error
}

// Report aggregates a full sweep.
type Report struct {
	Checked  int
	Resolved int
	Findings []Finding
}

// Auditor sweeps the whole registry at construction time: every declared
// instance must resolve to itself without ambiguity, and no recombination
// of registered operand types may hit overlapping predicates. Missing
// instances for never-declared recombinations are fine, ambiguity never is.
type Auditor struct {
	registry *resolver.Registry
	log      *archivist.Archivist
	callback func(Report)
}

func New(registry *resolver.Registry, logger *archivist.Archivist, callback func(Report)) *Auditor {
	logger.Info("Creating auditor")
	return &Auditor{
		registry: registry,
		log:      logger,
		callback: callback,
	}
}

func (a *Auditor) Sweep() Report {
	report := Report{}
	for _, def := range a.registry.Structures() {
		declared := a.registry.Instances(def.Name)
		seen := map[string]bool{}

		// every declared operand pair has to resolve cleanly
		for _, inst := range declared {
			pair := inst.Operands()
			if seen[pair.String()] {
				continue
			}
			seen[pair.String()] = true
			report.Checked++
			if _, err := a.registry.Resolve(def.Name, pair); err != nil {
				a.log.Debug(archivist.DEBUG_LEVEL_TRACE, "audit SWEEP defect structure=", def.Name, " operands=", pair.String(), " err=", err.Error())
				report.Findings = append(report.Findings, Finding{Structure: def.Name, Operands: pair, Err: err})
			} else {
				report.Resolved++
			}
		}

		// cross pairs over the registered operand universe: only ambiguity
		// counts as a defect here, a missing cross instance is fine
		universe := operandUniverse(declared)
		for _, left := range universe {
			for _, right := range universe {
				pair := operand.NewPair(left, right)
				if seen[pair.String()] {
					continue
				}
				seen[pair.String()] = true
				report.Checked++
				_, err := a.registry.Resolve(def.Name, pair)
				if err == nil {
					report.Resolved++
					continue
				}
				if errors.Is(err, resolver.ErrAmbiguousInstance) {
					a.log.Debug(archivist.DEBUG_LEVEL_TRACE, "audit SWEEP ambiguity structure=", def.Name, " operands=", pair.String())
					report.Findings = append(report.Findings, Finding{Structure: def.Name, Operands: pair, Err: err})
				}
			}
		}
	}

	a.log.InfoF("audit sweep done: %d checked, %d resolved, %d findings", report.Checked, report.Resolved, len(report.Findings))
	if a.callback != nil {
		a.callback(report)
	}
	return report
}

// operandUniverse collects the distinct operand types the declared
// instances mention, sorted for deterministic sweeps.
func operandUniverse(declared []*resolver.Instance) []operand.TypeID {
	known := map[operand.TypeID]bool{}
	for _, inst := range declared {
		known[inst.Operands().Left] = true
		known[inst.Operands().Right] = true
	}
	universe := make([]operand.TypeID, 0, len(known))
	for typeID := range known {
		universe = append(universe, typeID)
	}
	sort.Slice(universe, func(i int, j int) bool {
		return universe[i] < universe[j]
	})
	return universe
}
