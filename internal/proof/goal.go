// Package proof holds the proof-state engine: goals, the natural-deduction
// rules that transform them and the ordered list of open goals.
package proof

import (
	"errors"
	"fmt"
	"strings"

	"github.com/RobertDoza/fol-prover/internal/logic"
)

// ErrAssumptionIndex is returned when an assumption index is out of range.
var ErrAssumptionIndex = errors.New("assumption index out of bounds")

// Goal is a single proof obligation: assumptions ⊢ target.
//
// Formulas are shared between goals; only the assumption list, the target
// reference, the meta-variable set and the solved flag belong to the goal.
type Goal struct {
	assumptions   []logic.Formula
	target        logic.Formula
	metaVariables logic.NameSet
	solved        bool
}

// NewGoal creates an unsolved goal.
func NewGoal(target logic.Formula, assumptions ...logic.Formula) *Goal {
	return &Goal{
		assumptions:   append([]logic.Formula(nil), assumptions...),
		target:        target,
		metaVariables: logic.NewNameSet(),
	}
}

// Clone returns an independent copy. Formulas are shared.
func (g *Goal) Clone() *Goal {
	return &Goal{
		assumptions:   append([]logic.Formula(nil), g.assumptions...),
		target:        g.target,
		metaVariables: g.metaVariables.Clone(),
		solved:        g.solved,
	}
}

func (g *Goal) Target() logic.Formula { return g.target }
func (g *Goal) Solved() bool          { return g.solved }

// Assumptions returns a copy of the assumption list.
func (g *Goal) Assumptions() []logic.Formula {
	return append([]logic.Formula(nil), g.assumptions...)
}

// MetaVariables returns the eigenvariables introduced in this goal, sorted.
func (g *Goal) MetaVariables() []string {
	return g.metaVariables.Sorted()
}

func (g *Goal) SetTarget(f logic.Formula) {
	g.target = f
}

func (g *Goal) AddAssumption(f logic.Formula) {
	g.assumptions = append(g.assumptions, f)
}

// RemoveAssumption deletes the assumption at index i.
func (g *Goal) RemoveAssumption(i int) error {
	if i < 0 || i >= len(g.assumptions) {
		return fmt.Errorf("%w: %d of %d", ErrAssumptionIndex, i, len(g.assumptions))
	}
	g.assumptions = append(g.assumptions[:i:i], g.assumptions[i+1:]...)
	return nil
}

func (g *Goal) FreeVariablesInAssumptions() logic.NameSet {
	names := logic.NewNameSet()
	for _, a := range g.assumptions {
		names.AddAll(a.FreeVariableNames())
	}
	return names
}

func (g *Goal) FreeVariablesInTarget() logic.NameSet {
	return g.target.FreeVariableNames()
}

// FreeVariables returns the free variables of the assumptions and the target.
func (g *Goal) FreeVariables() logic.NameSet {
	return g.FreeVariablesInAssumptions().Union(g.FreeVariablesInTarget())
}

// Shift rotates the assumptions left by n positions. Negative n rotates
// right.
func (g *Goal) Shift(n int) {
	count := len(g.assumptions)
	if count == 0 {
		return
	}
	k := ((n % count) + count) % count
	rotated := make([]logic.Formula, 0, count)
	rotated = append(rotated, g.assumptions[k:]...)
	rotated = append(rotated, g.assumptions[:k]...)
	g.assumptions = rotated
}

// String renders the goal as [A, B] ⊢ C.
func (g *Goal) String() string {
	return g.Format(logic.SymbolTurnstile)
}

// Format renders the goal like String with turnstile in place of ⊢.
func (g *Goal) Format(turnstile string) string {
	if g.solved {
		return "<solved goal>"
	}

	var b strings.Builder
	switch len(g.assumptions) {
	case 0:
	case 1:
		b.WriteString(g.assumptions[0].String())
		b.WriteString(" ")
	default:
		b.WriteString("[")
		for i, a := range g.assumptions {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(a.String())
		}
		b.WriteString("] ")
	}
	b.WriteString(turnstile)
	b.WriteString(" ")
	b.WriteString(g.target.String())
	return b.String()
}

// Apply runs rule against the goal. t is the instantiation term for allE
// and exI and is ignored by the other rules.
//
// A Failed outcome leaves the goal untouched. An error reports a broken
// internal invariant; the goal is left untouched as well.
func (g *Goal) Apply(rule Rule, t logic.Term) (Outcome, error) {
	switch rule {
	case Assumption:
		return g.Assumption()
	case NotI:
		return g.NotI()
	case NotE:
		return g.NotE()
	case ConjI:
		return g.ConjI()
	case ConjE:
		return g.ConjE()
	case DisjI1:
		return g.DisjI1()
	case DisjI2:
		return g.DisjI2()
	case DisjE:
		return g.DisjE()
	case ImpI:
		return g.ImpI()
	case ImpE:
		return g.ImpE()
	case IffI:
		return g.IffI()
	case IffE:
		return g.IffE()
	case AllI:
		return g.AllI()
	case AllE:
		return g.AllE(t)
	case ExI:
		return g.ExI(t)
	case ExE:
		return g.ExE()
	case Ccontr:
		return g.Ccontr()
	case Classical:
		return g.Classical()
	default:
		return nil, fmt.Errorf("unknown rule %d", int(rule))
	}
}

// findAssumption returns the first assumption of the given type.
func (g *Goal) findAssumption(ft logic.FormulaType) (int, logic.Formula, bool) {
	for i, a := range g.assumptions {
		if a.Type() == ft {
			return i, a, true
		}
	}
	return -1, nil, false
}

// freshEigenvariable mints a name derived from base that is not free in the
// goal, not a meta-variable yet and does not occur in body.
func (g *Goal) freshEigenvariable(base string, body logic.Formula) string {
	used := g.FreeVariables().Union(g.metaVariables).Union(body.VariableNames())
	return logic.FreshName(base, used)
}

// Assumption closes the goal when its target is one of the assumptions.
func (g *Goal) Assumption() (Outcome, error) {
	for _, a := range g.assumptions {
		if a.Equal(g.target) {
			g.solved = true
			return Rewritten{}, nil
		}
	}
	return fail("target is not among the assumptions"), nil
}

// NotI turns ⊢ ¬A into A ⊢ ⊥.
func (g *Goal) NotI() (Outcome, error) {
	n, ok := g.target.(logic.Negation)
	if !ok {
		return fail("target is not a negation"), nil
	}
	g.AddAssumption(n.Sub)
	g.SetTarget(logic.False{})
	return Rewritten{}, nil
}

// NotE consumes an assumption ¬A and makes A the target.
func (g *Goal) NotE() (Outcome, error) {
	i, f, ok := g.findAssumption(logic.FormulaNegation)
	if !ok {
		return fail("no assumption is a negation"), nil
	}
	if err := g.RemoveAssumption(i); err != nil {
		return nil, err
	}
	g.SetTarget(f.(logic.Negation).Sub)
	return Rewritten{}, nil
}

// ConjI splits ⊢ A ∧ B into ⊢ A and ⊢ B.
func (g *Goal) ConjI() (Outcome, error) {
	c, ok := g.target.(logic.Conjunction)
	if !ok {
		return fail("target is not a conjunction"), nil
	}
	return Branched{
		First:  Branch{Target: c.Left},
		Second: Branch{Target: c.Right},
	}, nil
}

// ConjE replaces an assumption A ∧ B with A and B.
func (g *Goal) ConjE() (Outcome, error) {
	i, f, ok := g.findAssumption(logic.FormulaConjunction)
	if !ok {
		return fail("no assumption is a conjunction"), nil
	}
	if err := g.RemoveAssumption(i); err != nil {
		return nil, err
	}
	c := f.(logic.Conjunction)
	g.AddAssumption(c.Left)
	g.AddAssumption(c.Right)
	return Rewritten{}, nil
}

// DisjI1 turns ⊢ A ∨ B into ⊢ A.
func (g *Goal) DisjI1() (Outcome, error) {
	d, ok := g.target.(logic.Disjunction)
	if !ok {
		return fail("target is not a disjunction"), nil
	}
	g.SetTarget(d.Left)
	return Rewritten{}, nil
}

// DisjI2 turns ⊢ A ∨ B into ⊢ B.
func (g *Goal) DisjI2() (Outcome, error) {
	d, ok := g.target.(logic.Disjunction)
	if !ok {
		return fail("target is not a disjunction"), nil
	}
	g.SetTarget(d.Right)
	return Rewritten{}, nil
}

// DisjE removes an assumption A ∨ B and splits into a case with A and a
// case with B.
func (g *Goal) DisjE() (Outcome, error) {
	i, f, ok := g.findAssumption(logic.FormulaDisjunction)
	if !ok {
		return fail("no assumption is a disjunction"), nil
	}
	if err := g.RemoveAssumption(i); err != nil {
		return nil, err
	}
	d := f.(logic.Disjunction)
	return Branched{
		First:  Branch{Assume: []logic.Formula{d.Left}},
		Second: Branch{Assume: []logic.Formula{d.Right}},
	}, nil
}

// ImpI turns ⊢ A → B into A ⊢ B.
func (g *Goal) ImpI() (Outcome, error) {
	imp, ok := g.target.(logic.Implication)
	if !ok {
		return fail("target is not an implication"), nil
	}
	g.AddAssumption(imp.Left)
	g.SetTarget(imp.Right)
	return Rewritten{}, nil
}

// ImpE removes an assumption A → B. The first branch proves A, the second
// keeps the target with B assumed.
func (g *Goal) ImpE() (Outcome, error) {
	i, f, ok := g.findAssumption(logic.FormulaImplication)
	if !ok {
		return fail("no assumption is an implication"), nil
	}
	if err := g.RemoveAssumption(i); err != nil {
		return nil, err
	}
	imp := f.(logic.Implication)
	return Branched{
		First:  Branch{Target: imp.Left},
		Second: Branch{Assume: []logic.Formula{imp.Right}},
	}, nil
}

// IffI splits ⊢ A ↔ B into A ⊢ B and B ⊢ A.
func (g *Goal) IffI() (Outcome, error) {
	e, ok := g.target.(logic.Equivalence)
	if !ok {
		return fail("target is not an equivalence"), nil
	}
	return Branched{
		First:  Branch{Assume: []logic.Formula{e.Left}, Target: e.Right},
		Second: Branch{Assume: []logic.Formula{e.Right}, Target: e.Left},
	}, nil
}

// IffE replaces an assumption A ↔ B with A → B and B → A.
func (g *Goal) IffE() (Outcome, error) {
	i, f, ok := g.findAssumption(logic.FormulaEquivalence)
	if !ok {
		return fail("no assumption is an equivalence"), nil
	}
	if err := g.RemoveAssumption(i); err != nil {
		return nil, err
	}
	e := f.(logic.Equivalence)
	g.AddAssumption(logic.Implies(e.Left, e.Right))
	g.AddAssumption(logic.Implies(e.Right, e.Left))
	return Rewritten{}, nil
}

// AllI turns ⊢ ∀x. P into ⊢ P[x'/x] for a fresh eigenvariable x', which is
// recorded as a meta-variable of the goal.
func (g *Goal) AllI() (Outcome, error) {
	q, ok := g.target.(logic.ForAll)
	if !ok {
		return fail("target is not a universal quantification"), nil
	}
	fresh := g.freshEigenvariable(q.Var, q.Body)
	g.SetTarget(q.Body.RenameVar(q.Var, fresh))
	g.metaVariables.Add(fresh)
	return Rewritten{}, nil
}

// AllE replaces an assumption ∀x. P with P[t/x].
func (g *Goal) AllE(t logic.Term) (Outcome, error) {
	if t == nil {
		return fail("allE needs an instantiation term"), nil
	}
	i, f, ok := g.findAssumption(logic.FormulaForAll)
	if !ok {
		return fail("no assumption is a universal quantification"), nil
	}
	if err := g.RemoveAssumption(i); err != nil {
		return nil, err
	}
	q := f.(logic.ForAll)
	g.AddAssumption(q.Body.Replace(q.Var, t))
	return Rewritten{}, nil
}

// ExI turns ⊢ ∃x. P into ⊢ P[t/x] for the witness t.
func (g *Goal) ExI(t logic.Term) (Outcome, error) {
	if t == nil {
		return fail("exI needs a witness term"), nil
	}
	q, ok := g.target.(logic.Exists)
	if !ok {
		return fail("target is not an existential quantification"), nil
	}
	g.SetTarget(q.Body.Replace(q.Var, t))
	return Rewritten{}, nil
}

// ExE replaces an assumption ∃x. P with P[x'/x] for a fresh eigenvariable
// x', which is recorded as a meta-variable of the goal.
func (g *Goal) ExE() (Outcome, error) {
	i, f, ok := g.findAssumption(logic.FormulaExists)
	if !ok {
		return fail("no assumption is an existential quantification"), nil
	}
	q := f.(logic.Exists)
	fresh := g.freshEigenvariable(q.Var, q.Body)
	if err := g.RemoveAssumption(i); err != nil {
		return nil, err
	}
	g.AddAssumption(q.Body.RenameVar(q.Var, fresh))
	g.metaVariables.Add(fresh)
	return Rewritten{}, nil
}

// Ccontr is not implemented and always fails.
func (g *Goal) Ccontr() (Outcome, error) {
	return fail("rule ccontr is not implemented"), nil
}

// Classical is not implemented and always fails.
func (g *Goal) Classical() (Outcome, error) {
	return fail("rule classical is not implemented"), nil
}
