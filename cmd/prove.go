package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RobertDoza/fol-prover/internal/logic"
	"github.com/RobertDoza/fol-prover/internal/session"
	"github.com/RobertDoza/fol-prover/internal/syntax"
	"github.com/RobertDoza/fol-prover/prover"
)

var formulaText string

var proveCmd = &cobra.Command{
	Use:   "prove [formula-file]",
	Short: "Prove a formula interactively",
	Long: `Starts an interactive session for the formula stored in formula-file, or
given with --formula. Type "help" in the session for the commands.

Example) fol-prover prove -f "A ∧ B → B ∧ A"`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		f, err := readFormula(args)
		if err != nil {
			exitOnError("Failed to read formula", err)
		}

		summary, err := prover.Prove(context.Background(), logger, config, f, os.Stdout)
		if err != nil {
			exitOnError("Session failed", err)
		}
		if summary.Result == session.Aborted {
			os.Exit(1)
		}
	},
}

func init() {
	proveCmd.Flags().StringVarP(&formulaText, "formula", "f", "", "Formula to prove")
}

func readFormula(args []string) (logic.Formula, error) {
	switch {
	case formulaText != "" && len(args) > 0:
		return nil, fmt.Errorf("give either a formula file or --formula, not both")
	case formulaText != "":
		return syntax.ParseFormula(formulaText)
	case len(args) == 1:
		return prover.LoadFormula(args[0])
	default:
		return nil, fmt.Errorf("please provide a formula file or --formula")
	}
}
