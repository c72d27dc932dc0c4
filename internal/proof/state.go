package proof

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/RobertDoza/fol-prover/internal/logic"
)

// Status is the result kind of a State operation.
type Status int

const (
	StatusSuccess Status = iota
	StatusFailure
	// StatusEmptyGoalList means there was no goal to work on; the proof is
	// already complete.
	StatusEmptyGoalList
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	case StatusEmptyGoalList:
		return "empty goal list"
	default:
		return "unknown"
	}
}

// Report describes what a State operation did.
type Report struct {
	Rule   Rule
	Status Status
	// Detail is the failure reason, empty on success.
	Detail string
}

func (r Report) String() string {
	if r.Detail == "" {
		return r.Status.String()
	}
	return r.Status.String() + ": " + r.Detail
}

// State is the ordered list of open goals. The first goal is the current
// one; rules and shifts always act on it.
type State struct {
	goals []*Goal
}

// NewState starts a proof of f with no assumptions.
func NewState(f logic.Formula) *State {
	return NewStateFromGoal(NewGoal(f))
}

// NewStateFromGoal starts a proof with g as the only goal.
func NewStateFromGoal(g *Goal) *State {
	return &State{goals: []*Goal{g}}
}

// Goals returns the open goals, current first. The goals are copies.
func (s *State) Goals() []*Goal {
	out := make([]*Goal, len(s.goals))
	for i, g := range s.goals {
		out[i] = g.Clone()
	}
	return out
}

// Current returns a copy of the current goal, or nil when none is left.
func (s *State) Current() *Goal {
	if len(s.goals) == 0 {
		return nil
	}
	return s.goals[0].Clone()
}

func (s *State) Len() int { return len(s.goals) }

// GoalsSolved reports whether no goals remain.
func (s *State) GoalsSolved() bool {
	return len(s.goals) == 0
}

// Apply runs rule on the current goal. t is the instantiation term for
// allE and exI.
//
// The rule runs on a copy of the current goal and the state only changes
// when it succeeds. A split replaces the current goal with both
// successors, first branch in front. A goal that became solved is removed.
// A returned error leaves the state unchanged.
func (s *State) Apply(rule Rule, t logic.Term) (Report, error) {
	if len(s.goals) == 0 {
		return Report{Rule: rule, Status: StatusEmptyGoalList}, nil
	}

	work := s.goals[0].Clone()
	outcome, err := work.Apply(rule, t)
	if err != nil {
		return Report{}, fmt.Errorf("apply %s: %w", rule, err)
	}

	switch o := outcome.(type) {
	case Failed:
		return Report{Rule: rule, Status: StatusFailure, Detail: o.Reason}, nil
	case Rewritten:
		if work.Solved() {
			s.goals = s.goals[1:]
		} else {
			s.goals[0] = work
		}
	case Branched:
		first, second := work.Clone(), work.Clone()
		o.First.applyTo(first)
		o.Second.applyTo(second)
		rest := s.goals[1:]
		goals := make([]*Goal, 0, len(rest)+2)
		goals = append(goals, first, second)
		s.goals = append(goals, rest...)
	default:
		return Report{}, fmt.Errorf("apply %s: unexpected outcome %T", rule, outcome)
	}
	return Report{Rule: rule, Status: StatusSuccess}, nil
}

// Shift rotates the assumptions of the current goal left by n.
func (s *State) Shift(n int) Report {
	if len(s.goals) == 0 {
		return Report{Status: StatusEmptyGoalList}
	}
	s.goals[0].Shift(n)
	return Report{Status: StatusSuccess}
}

// String renders the state:
//
//	Goals to prove: 2
//	1. A ⊢ B
//	2. ⊢ C
func (s *State) String() string {
	if len(s.goals) == 0 {
		return "No goals!"
	}

	var b strings.Builder
	b.WriteString("Goals to prove: ")
	b.WriteString(strconv.Itoa(len(s.goals)))
	for i, g := range s.goals {
		b.WriteString("\n")
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(". ")
		b.WriteString(g.String())
	}
	return b.String()
}
