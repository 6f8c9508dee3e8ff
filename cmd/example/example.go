package main

import (
	"fmt"
	"log"
	"os"

	"github.com/voodooEntity/gits"

	"github.com/voodooEntity/algebrain"
	"github.com/voodooEntity/algebrain/src/system/archivist"
	"github.com/voodooEntity/algebrain/src/system/auditor"
	"github.com/voodooEntity/algebrain/src/system/group"
	"github.com/voodooEntity/algebrain/src/system/monoid"
)

func main() {
	logger := log.New(os.Stdout, "", 0)

	// create base instance. ident is optional and
	// defaults to a fresh uuid
	engine := algebrain.New(algebrain.Settings{
		Ident:    "GreatName",
		LogLevel: archivist.LEVEL_INFO,
		Logger:   logger,
		History:  true,
	})

	// resolve the builtin integer group once, then dispatch directly
	ints := group.MustResolve[int](engine.Registry())
	fmt.Println("subtract(5, 3) =", ints.Subtract(5, 3))
	fmt.Println("invert(5)      =", ints.Invert(5))
	fmt.Println("combine(5, invert(5)) =", ints.Combine(5, ints.Invert(5)))

	// the symbolic forms forward to the same operations
	fmt.Println("minus(5, 3) =", group.Minus(ints, 5, 3))
	fmt.Println("negate(5)   =", group.Negate(ints, 5))

	// strings form a monoid but not a group
	words := monoid.MustResolve[string](engine.Registry())
	fmt.Println("combine(foo, bar) =", words.Combine("foo", "bar"))
	if _, err := group.Resolve[string](engine.Registry()); err != nil {
		fmt.Println("group for string:", err)
	}

	// sweep the registry for ambiguities before relying on it
	audi := engine.GetAuditorInstance(func(report auditor.Report) {
		logger.Println("audit:", report.Checked, "checked,", len(report.Findings), "findings")
	})
	audi.Sweep()

	// history is enabled so we can look up past resolutions
	qry := gits.NewQuery().Read("Resolution")
	res := gits.GetDefault().Query().Execute(qry)
	fmt.Println(fmt.Sprintf("resolutions recorded: %d", res.Amount))
}
