package group

import "fmt"

// CheckLaws verifies the group contract over the given sample values:
// left/right inverse against the monoid identity, plus the defining
// equivalence subtract(x, y) == combine(x, invert(y)). The resolver never
// runs laws, this helper exists for test suites and audits.
func CheckLaws[T any](g Group[T], samples []T, eq func(T, T) bool) error {
	identity := g.Identity()
	for _, x := range samples {
		if !eq(g.Combine(x, g.Invert(x)), identity) {
			return fmt.Errorf("right inverse law violated for sample %v", x)
		}
		if !eq(g.Combine(g.Invert(x), x), identity) {
			return fmt.Errorf("left inverse law violated for sample %v", x)
		}
	}
	for _, x := range samples {
		for _, y := range samples {
			if !eq(g.Subtract(x, y), g.Combine(x, g.Invert(y))) {
				return fmt.Errorf("subtract definition law violated for samples %v, %v", x, y)
			}
		}
	}
	return nil
}
