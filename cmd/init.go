package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/RobertDoza/fol-prover/prover"
)

// initCmd: fol-prover init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a configuration file with the default settings",
	Run: func(cmd *cobra.Command, args []string) {
		path := cfgFile
		if path == "" {
			path = prover.DefaultConfigPath
		}
		if err := prover.WriteConfig(path, prover.DefaultConfig()); err != nil {
			logger.Error("Error initializing config file", zap.Error(err))
			return
		}
		fmt.Printf("Configuration file created/updated: %s\n", path)
	},
}
