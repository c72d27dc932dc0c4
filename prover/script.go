package prover

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/RobertDoza/fol-prover/internal/logic"
	"github.com/RobertDoza/fol-prover/internal/session"
	"github.com/RobertDoza/fol-prover/internal/syntax"
)

// ScriptExtension marks proof script files.
const ScriptExtension = ".proof.yaml"

// ErrScriptFailed is returned when a script does not end in an accepted
// done.
var ErrScriptFailed = errors.New("proof script failed")

// Script is a proof replayed without a terminal. Steps are fed to the
// session one per prompt: commands, and terms where allE or exI ask for
// one.
type Script struct {
	Name    string   `yaml:"name"`
	Formula string   `yaml:"formula"`
	Steps   []string `yaml:"steps"`
}

// ScriptResult is the outcome of checking one script file.
type ScriptResult struct {
	Path      string `json:"path"`
	Name      string `json:"name"`
	Passed    bool   `json:"passed"`
	Steps     int    `json:"steps"`
	Failures  int    `json:"failures"`
	OpenGoals int    `json:"open_goals"`
	Error     string `json:"error,omitempty"`
}

// LoadScript reads a script file.
func LoadScript(path string) (Script, error) {
	var script Script

	d, err := os.ReadFile(path)
	if err != nil {
		return script, err
	}
	if err := yaml.Unmarshal(d, &script); err != nil {
		return script, fmt.Errorf("error parsing %s: %w", path, err)
	}
	if script.Formula == "" {
		return script, fmt.Errorf("%s: no formula", path)
	}
	return script, nil
}

// LoadFormula reads a formula from a text file.
func LoadFormula(path string) (logic.Formula, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := syntax.ParseFormula(strings.TrimSpace(string(d)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// RunScript replays script. The transcript is written to out, which may be
// nil. The error wraps ErrScriptFailed when the proof was not completed.
func RunScript(ctx context.Context, logger *zap.Logger, config Config, script Script, out io.Writer) (session.Summary, error) {
	f, err := syntax.ParseFormula(script.Formula)
	if err != nil {
		return session.Summary{}, fmt.Errorf("formula: %w", err)
	}
	if out == nil {
		out = io.Discard
	}

	input := strings.NewReader(strings.Join(script.Steps, "\n"))
	s := session.New(f, session.NewReaderPrompter(input, out), out, logger,
		session.Options{ShowMetaVariables: config.ShowMetaVariables})

	summary, err := s.Run(ctx)
	if err != nil {
		return summary, err
	}
	if summary.Result != session.Proved {
		return summary, fmt.Errorf("%w: %s", ErrScriptFailed, failureReason(summary))
	}
	return summary, nil
}

func failureReason(summary session.Summary) string {
	switch {
	case summary.Result == session.Exited:
		return "script exits before the proof is done"
	case summary.OpenGoals > 0 && summary.LastFailure != "":
		return fmt.Sprintf("%d goals left, last failure: %s", summary.OpenGoals, summary.LastFailure)
	case summary.OpenGoals > 0:
		return fmt.Sprintf("%d goals left", summary.OpenGoals)
	default:
		return "script ends without done"
	}
}

// CheckFile loads and replays the script at path.
func CheckFile(ctx context.Context, logger *zap.Logger, config Config, path string) ScriptResult {
	result := ScriptResult{Path: path}

	script, err := LoadScript(path)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Name = script.Name

	summary, err := RunScript(ctx, logger, config, script, nil)
	result.Steps = summary.Steps
	result.Failures = summary.Failures
	result.OpenGoals = summary.OpenGoals
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Passed = true
	return result
}
