package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered structures and instances",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	engine, err := newEngine()
	if err != nil {
		return err
	}

	for _, def := range engine.Registry().Structures() {
		fmt.Printf("%s", def.Name)
		if len(def.DependsOn) > 0 {
			fmt.Printf(" (depends on %s)", strings.Join(def.DependsOn, ", "))
		}
		fmt.Println()

		for _, op := range def.Operations {
			fmt.Printf("  operation %s\n", op.Name)
		}
		for _, mcd := range def.MCDs {
			fmt.Printf("  mcd %s supplies [%s]\n", mcd.Name, strings.Join(mcd.Supplies, ", "))
		}
		for _, law := range def.Laws {
			fmt.Printf("  law %s: %s\n", law.Name, law.Equation)
		}
		for _, inst := range engine.Registry().Instances(def.Name) {
			fmt.Printf("  instance %s operands (%s) mcd %s\n", inst.Name(), inst.Operands().String(), inst.MCD())
		}
		fmt.Println()
	}
	return nil
}
