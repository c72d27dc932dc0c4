package proof

import "github.com/RobertDoza/fol-prover/internal/logic"

// Outcome is the result of applying a rule to a single goal.
// It is one of Failed, Rewritten or Branched.
type Outcome interface {
	isOutcome()
}

// Failed means the rule's precondition did not hold. The goal is unchanged.
type Failed struct {
	Reason string
}

// Rewritten means the goal was transformed in place. The goal may now be
// solved.
type Rewritten struct{}

// Branched means the goal must be replaced by two goals. Each is a copy of
// the goal after the rule ran with the corresponding Branch applied.
type Branched struct {
	First, Second Branch
}

// Branch is the change that turns a copy of the goal into one successor.
type Branch struct {
	// Assume is appended to the assumptions.
	Assume []logic.Formula
	// Target replaces the target when set.
	Target logic.Formula
}

func (Failed) isOutcome()    {}
func (Rewritten) isOutcome() {}
func (Branched) isOutcome()  {}

func (b Branch) applyTo(g *Goal) {
	for _, a := range b.Assume {
		g.AddAssumption(a)
	}
	if b.Target != nil {
		g.SetTarget(b.Target)
	}
}

func fail(reason string) Failed {
	return Failed{Reason: reason}
}
