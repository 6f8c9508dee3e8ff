package resolver

import "github.com/voodooEntity/gits"

// Memory groups the gits instance backing the registry. All structure,
// instance and lookup entities registered with the resolver are mapped
// into it, so the full catalogue stays queryable.
type Memory struct {
	Gits *gits.Gits
}
