package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Sweep the registry for resolution defects",
	Long: `Sweep the registry for resolution defects.

Checks that every declared instance resolves uniquely and that no
recombination of registered operand types hits overlapping predicates.`,
	RunE: runAudit,
}

func init() {
	rootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, args []string) error {
	engine, err := newEngine()
	if err != nil {
		return err
	}

	report := engine.GetAuditorInstance(nil).Sweep()

	fmt.Printf("checked %d, resolved %d, findings %d\n", report.Checked, report.Resolved, len(report.Findings))
	for _, finding := range report.Findings {
		fmt.Printf("  %s (%s): %v\n", finding.Structure, finding.Operands.String(), finding.Err)
	}
	if len(report.Findings) > 0 {
		return fmt.Errorf("registry audit found %d defect(s)", len(report.Findings))
	}
	return nil
}
