package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/RobertDoza/fol-prover/formatter"
	"github.com/RobertDoza/fol-prover/prover"
)

var (
	watch           bool
	showProgress    bool
	checkJSONOutput bool
)

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Replay proof scripts",
	Long: `Replays every *.proof.yaml script found under the given paths (default: the
current directory) and reports which ones complete their proof.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			args = []string{"."}
		}

		if watch {
			runWatch(args)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		results, err := prover.CheckPaths(ctx, logger, config, args, prover.CheckOptions{
			Progress:    showProgress,
			ProgressOut: os.Stderr,
		})
		if err != nil {
			exitOnError("Error checking proof scripts", err)
		}

		printResults(results, checkJSONOutput)
		if prover.Failed(results) > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	checkCmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-check scripts whenever they change")
	checkCmd.Flags().BoolVar(&showProgress, "progress", false, "Show a progress bar")
	checkCmd.Flags().BoolVar(&checkJSONOutput, "json", false, "Output results in JSON format")
}

func runWatch(paths []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Println("Watching for changes, press Ctrl-C to stop")
	err := prover.Watch(ctx, logger, config, paths, func(r prover.ScriptResult) {
		printResults([]prover.ScriptResult{r}, checkJSONOutput)
	})
	if err != nil {
		exitOnError("Error watching proof scripts", err)
	}
}

func printResults(results []prover.ScriptResult, isJSON bool) {
	if isJSON {
		d, err := json.Marshal(results)
		if err != nil {
			logger.Error("Error marshalling results to JSON", zap.Error(err))
			return
		}
		fmt.Println(string(d))
		return
	}

	for _, r := range results {
		if r.Passed {
			fmt.Println(formatter.Success("PASS ") + r.Path)
		} else {
			fmt.Println(formatter.Error(r.Path + ": " + r.Error))
		}
	}
	if len(results) > 1 {
		fmt.Printf("%d scripts, %d failed\n", len(results), prover.Failed(results))
	}
}
