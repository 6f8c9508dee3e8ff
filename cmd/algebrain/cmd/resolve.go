package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voodooEntity/algebrain/src/system/operand"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <structure> <type> [type]",
	Short: "Resolve the instance for a structure and operand types",
	Long: `Resolve the instance for a structure and operand types.

Builtin operand types use their plain Go names, for example:

  algebrain resolve Group int
  algebrain resolve Monoid string
  algebrain resolve Group int float64`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	engine, err := newEngine()
	if err != nil {
		return err
	}

	structureName := args[0]
	left := operand.TypeID(args[1])
	right := left
	if len(args) == 3 {
		right = operand.TypeID(args[2])
	}

	inst, err := engine.Registry().Resolve(structureName, operand.NewPair(left, right))
	if err != nil {
		return err
	}

	fmt.Printf("instance %s\n", inst.Name())
	fmt.Printf("  structure %s\n", inst.Structure())
	fmt.Printf("  operands  (%s)\n", inst.Operands().String())
	fmt.Printf("  mcd       %s\n", inst.MCD())
	return nil
}
