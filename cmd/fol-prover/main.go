package main

import (
	"os"

	"github.com/RobertDoza/fol-prover/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
