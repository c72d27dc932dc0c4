package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RobertDoza/fol-prover/formatter"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the inference rules",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(formatter.Rules())
	},
}
