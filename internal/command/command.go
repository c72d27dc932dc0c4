// Package command parses the line-oriented commands of a proof session.
package command

import (
	"strings"

	"github.com/RobertDoza/fol-prover/internal/proof"
)

// Type identifies what a command line asks for.
type Type int

const (
	Empty Type = iota
	List
	Help
	Exit
	RuleApplication
	Done
	Shift
	Unknown
)

func (t Type) String() string {
	switch t {
	case Empty:
		return "empty"
	case List:
		return "list"
	case Help:
		return "help"
	case Exit:
		return "exit"
	case RuleApplication:
		return "rule application"
	case Done:
		return "done"
	case Shift:
		return "shift"
	default:
		return "unknown"
	}
}

// Command is a parsed command line. Rule is only meaningful for
// RuleApplication.
type Command struct {
	Type Type
	Rule proof.Rule
}

// Parse reads one command line. Words are separated by whitespace; input
// that does not match the grammar exactly, including trailing words, is
// Unknown.
//
//	apply assumption
//	apply rule <introduction rule>
//	apply erule <elimination rule>
//	shift | done | list | help | exit | quit
func Parse(line string) Command {
	words := strings.Fields(line)
	if len(words) == 0 {
		return Command{Type: Empty}
	}

	if words[0] == "apply" {
		return parseApply(words[1:])
	}
	if len(words) > 1 {
		return Command{Type: Unknown}
	}

	switch words[0] {
	case "shift":
		return Command{Type: Shift}
	case "done":
		return Command{Type: Done}
	case "list":
		return Command{Type: List}
	case "help":
		return Command{Type: Help}
	case "exit", "quit":
		return Command{Type: Exit}
	default:
		return Command{Type: Unknown}
	}
}

func parseApply(args []string) Command {
	switch {
	case len(args) == 1 && args[0] == "assumption":
		return Command{Type: RuleApplication, Rule: proof.Assumption}
	case len(args) != 2:
		return Command{Type: Unknown}
	}

	rule, ok := proof.ParseRule(args[1])
	if !ok || rule == proof.Assumption {
		return Command{Type: Unknown}
	}

	switch args[0] {
	case "rule":
		if rule.IsElimination() {
			return Command{Type: Unknown}
		}
	case "erule":
		if !rule.IsElimination() {
			return Command{Type: Unknown}
		}
	default:
		return Command{Type: Unknown}
	}
	return Command{Type: RuleApplication, Rule: rule}
}

// Syntax returns the command line that applies rule.
func Syntax(rule proof.Rule) string {
	switch {
	case rule == proof.Assumption:
		return "apply assumption"
	case rule.IsElimination():
		return "apply erule " + rule.String()
	default:
		return "apply rule " + rule.String()
	}
}
