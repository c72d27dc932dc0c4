// Package session runs the read-apply-print loop of an interactive proof.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/RobertDoza/fol-prover/formatter"
	"github.com/RobertDoza/fol-prover/internal/command"
	"github.com/RobertDoza/fol-prover/internal/logic"
	"github.com/RobertDoza/fol-prover/internal/proof"
	"github.com/RobertDoza/fol-prover/internal/syntax"
)

const (
	commandPrompt = "> "
	termPrompt    = "term> "
)

// Result tells how a session ended.
type Result int

const (
	// Proved means done was accepted with no goals left.
	Proved Result = iota
	// Exited means the user asked to leave.
	Exited
	// Aborted means the input ended or the context was cancelled.
	Aborted
)

func (r Result) String() string {
	switch r {
	case Proved:
		return "proved"
	case Exited:
		return "exited"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Summary is returned by Run.
type Summary struct {
	Result Result
	// Steps counts rule applications, successful or not.
	Steps int
	// Failures counts rule applications that did not succeed.
	Failures int
	// OpenGoals is the number of goals left at the end.
	OpenGoals int
	// LastFailure is the diagnostic of the most recent failed step.
	LastFailure string
}

// Options configure a Session.
type Options struct {
	ShowMetaVariables bool
}

// Session drives one proof. It is not safe for concurrent use.
type Session struct {
	id       string
	formula  logic.Formula
	state    *proof.State
	prompter Prompter
	out      io.Writer
	logger   *zap.Logger
	opts     Options
	summary  Summary
}

// New creates a session proving f. Output goes to out.
func New(f logic.Formula, prompter Prompter, out io.Writer, logger *zap.Logger, opts Options) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.NewString()
	return &Session{
		id:       id,
		formula:  f,
		state:    proof.NewState(f),
		prompter: prompter,
		out:      out,
		logger:   logger.With(zap.String("session", id)),
		opts:     opts,
	}
}

// ID identifies the session in logs.
func (s *Session) ID() string { return s.id }

// State exposes the proof state.
func (s *Session) State() *proof.State { return s.state }

// Run prints the intro and processes commands until the proof is done,
// the user exits or the input ends. The state is printed before every
// prompt. Errors are returned only for input failures.
func (s *Session) Run(ctx context.Context) (Summary, error) {
	s.logger.Info("session started", zap.String("formula", s.formula.String()))
	s.println(formatter.Intro(s.formula))

	for {
		if err := ctx.Err(); err != nil {
			return s.finish(Aborted), err
		}

		s.println("")
		s.println(formatter.State(s.state, formatter.Options{ShowMetaVariables: s.opts.ShowMetaVariables}))

		line, err := s.prompter.Prompt(commandPrompt)
		if errors.Is(err, io.EOF) {
			return s.finish(Aborted), nil
		}
		if err != nil {
			return s.finish(Aborted), fmt.Errorf("read command: %w", err)
		}
		if strings.TrimSpace(line) != "" {
			s.prompter.AppendHistory(line)
		}

		result, stop, err := s.Execute(command.Parse(line))
		if errors.Is(err, io.EOF) {
			return s.finish(Aborted), nil
		}
		if err != nil {
			return s.finish(Aborted), err
		}
		if stop {
			return s.finish(result), nil
		}
	}
}

// Execute runs one parsed command. stop is true when the session should
// end with result.
func (s *Session) Execute(cmd command.Command) (result Result, stop bool, err error) {
	switch cmd.Type {
	case command.Empty:
	case command.Unknown:
		s.println("Unknown command!")
	case command.List:
		s.println(formatter.Rules())
	case command.Help:
		s.println(formatter.Help())
	case command.Exit:
		return Exited, true, nil
	case command.Done:
		if s.state.GoalsSolved() {
			s.println(formatter.Success("Proof complete."))
			return Proved, true, nil
		}
		s.println(formatter.Error(fmt.Sprintf("there are still %d goals to prove", s.state.Len())))
	case command.Shift:
		if report := s.state.Shift(1); report.Status != proof.StatusSuccess {
			s.println(formatter.Error("no goals to shift"))
		}
	case command.RuleApplication:
		return Aborted, false, s.applyRule(cmd.Rule)
	}
	return Aborted, false, nil
}

func (s *Session) applyRule(rule proof.Rule) error {
	var term logic.Term
	if rule.NeedsTerm() && !s.state.GoalsSolved() {
		t, err := s.readTerm()
		if err != nil {
			return err
		}
		term = t
	}

	s.summary.Steps++
	report, err := s.state.Apply(rule, term)
	if err != nil {
		// the state is left as it was; the user may carry on
		s.summary.Failures++
		s.summary.LastFailure = err.Error()
		s.logger.Error("rule application failed", zap.Stringer("rule", rule), zap.Error(err))
		s.println(formatter.Error(err.Error()))
		return nil
	}

	s.logger.Debug("rule applied",
		zap.Stringer("rule", rule),
		zap.Stringer("status", report.Status),
		zap.Int("goals", s.state.Len()),
	)
	if report.Status != proof.StatusSuccess {
		s.summary.Failures++
		s.summary.LastFailure = describeFailure(report)
		s.println(formatter.Failure(report))
	}
	return nil
}

func describeFailure(r proof.Report) string {
	if r.Status == proof.StatusEmptyGoalList {
		return r.Rule.String() + ": no goals left"
	}
	return r.Rule.String() + " failed: " + r.Detail
}

// readTerm prompts until a term parses. Names that are free in the current
// goal or are its meta-variables read as variables.
func (s *Session) readTerm() (logic.Term, error) {
	vars := logic.NewNameSet()
	if g := s.state.Current(); g != nil {
		vars = g.FreeVariables()
		vars.AddAll(logic.NewNameSet(g.MetaVariables()...))
	}

	for {
		line, err := s.prompter.Prompt(termPrompt)
		if err != nil {
			return nil, fmt.Errorf("read term: %w", err)
		}

		t, err := syntax.ParseTerm(line, vars)
		if err == nil {
			return t, nil
		}
		s.println(formatter.Error(err.Error()))
	}
}

func (s *Session) finish(result Result) Summary {
	s.summary.Result = result
	s.summary.OpenGoals = s.state.Len()
	s.logger.Info("session finished",
		zap.Stringer("result", result),
		zap.Int("steps", s.summary.Steps),
		zap.Int("failures", s.summary.Failures),
		zap.Int("open_goals", s.summary.OpenGoals),
	)
	return s.summary
}

func (s *Session) println(text string) {
	fmt.Fprintln(s.out, text)
}
