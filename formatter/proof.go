package formatter

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/fatih/color"

	"github.com/RobertDoza/fol-prover/internal/command"
	"github.com/RobertDoza/fol-prover/internal/logic"
	"github.com/RobertDoza/fol-prover/internal/proof"
)

var (
	errorStyle      = color.New(color.FgRed, color.Bold)
	headerStyle     = color.New(color.FgCyan, color.Bold)
	lineStyle       = color.New(color.FgHiBlue, color.Bold)
	turnstileStyle  = color.New(color.FgYellow, color.Bold)
	metaStyle       = color.New(color.FgMagenta)
	suggestionStyle = color.New(color.FgGreen, color.Bold)
	noStyle         = color.New(color.FgWhite)
)

// Options control how a proof state is rendered.
type Options struct {
	// ShowMetaVariables lists the eigenvariables after each goal.
	ShowMetaVariables bool
}

// State renders the open goals:
//
//	Goals to prove: 2
//	1. A ⊢ B
//	2. ⊢ C
func State(s *proof.State, opts Options) string {
	if s.GoalsSolved() {
		return suggestionStyle.Sprint("No goals!")
	}

	goals := s.Goals()
	width := len(strconv.Itoa(len(goals)))

	var b strings.Builder
	b.WriteString(headerStyle.Sprintf("Goals to prove: %d", len(goals)))
	for i, g := range goals {
		b.WriteString("\n")
		b.WriteString(lineStyle.Sprintf("%*d. ", width, i+1))
		b.WriteString(Goal(g))
		if opts.ShowMetaVariables {
			if meta := g.MetaVariables(); len(meta) > 0 {
				b.WriteString(metaStyle.Sprintf("  [meta: %s]", strings.Join(meta, ", ")))
			}
		}
	}
	return b.String()
}

// Goal renders a single goal with a highlighted turnstile.
func Goal(g *proof.Goal) string {
	return g.Format(turnstileStyle.Sprint(logic.SymbolTurnstile))
}

// Failure renders the one-line diagnostic for a report that did not
// succeed.
func Failure(r proof.Report) string {
	switch r.Status {
	case proof.StatusEmptyGoalList:
		return errorStyle.Sprint("error: ") + noStyle.Sprint("no goals left to apply a rule to")
	default:
		return errorStyle.Sprint("error: ") + noStyle.Sprintf("%s failed: %s", r.Rule, r.Detail)
	}
}

// Error renders an error message.
func Error(msg string) string {
	return errorStyle.Sprint("error: ") + noStyle.Sprint(msg)
}

// Success renders a confirmation line.
func Success(msg string) string {
	return suggestionStyle.Sprint(msg)
}

const introTemplate = `Welcome!
Formula to prove:
{{ formula .Formula }}

{{ .Help }}`

const helpTemplate = `{{ header "Commands:" }}
{{- range .Commands }}
  {{ printf "%-22s" .Syntax }}{{ .Text }}
{{- end }}`

type helpEntry struct {
	Syntax string
	Text   string
}

var helpEntries = []helpEntry{
	{"apply assumption", "close the goal if its target is an assumption"},
	{"apply rule <name>", "apply an introduction rule to the target"},
	{"apply erule <name>", "apply an elimination rule to an assumption"},
	{"shift", "rotate the assumptions of the current goal"},
	{"list", "list the rules"},
	{"done", "finish once no goals are left"},
	{"help", "show this message"},
	{"exit, quit", "leave the prover"},
}

var funcMap = template.FuncMap{
	"header":  func(s string) string { return headerStyle.Sprint(s) },
	"formula": func(f logic.Formula) string { return turnstileStyle.Sprint(f.String()) },
}

// Help lists the session commands.
func Help() string {
	return render("help", helpTemplate, struct{ Commands []helpEntry }{helpEntries})
}

// Intro is printed when a session starts.
func Intro(f logic.Formula) string {
	return render("intro", introTemplate, struct {
		Formula logic.Formula
		Help    string
	}{f, Help()})
}

// Rules lists every rule with the command that applies it.
func Rules() string {
	var b strings.Builder
	b.WriteString(headerStyle.Sprint("Rules:"))
	for _, r := range proof.Rules() {
		b.WriteString("\n  ")
		b.WriteString(fmt.Sprintf("%-10s", r))
		b.WriteString(command.Syntax(r))
		switch {
		case !r.Implemented():
			b.WriteString(metaStyle.Sprint("  (not implemented)"))
		case r.NeedsTerm():
			b.WriteString(metaStyle.Sprint("  (asks for a term)"))
		}
	}
	return b.String()
}

func render(name, text string, data any) string {
	tmpl := template.Must(template.New(name).Funcs(funcMap).Parse(text))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Sprintf("Error formatting %s: %v", name, err)
	}
	return buf.String()
}
