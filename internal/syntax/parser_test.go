package syntax

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RobertDoza/fol-prover/internal/logic"
)

var (
	a = logic.Atom("A")
	b = logic.Atom("B")
	c = logic.Atom("C")
)

func TestParseFormula(t *testing.T) {
	t.Parallel()

	x, y := logic.Var("x"), logic.Var("y")

	tests := []struct {
		name  string
		input string
		want  logic.Formula
	}{
		{"atom", "A", a},
		{"constants", "⊤ ∧ false", logic.And(logic.True{}, logic.False{})},
		{"negation binds tightest", "¬A ∧ B", logic.And(logic.Not(a), b)},
		{"and before or", "A ∨ B ∧ C", logic.Or(a, logic.And(b, c))},
		{"or before implies", "A ∨ B → C", logic.Implies(logic.Or(a, b), c)},
		{"implies before iff", "A → B ↔ C", logic.Iff(logic.Implies(a, b), c)},
		{"and is left associative", "A ∧ B ∧ C", logic.And(logic.And(a, b), c)},
		{"implies is right associative", "A → B → C", logic.Implies(a, logic.Implies(b, c))},
		{"iff is right associative", "A <-> B <-> C", logic.Iff(a, logic.Iff(b, c))},
		{"parentheses", "(A → B) → C", logic.Implies(logic.Implies(a, b), c)},
		{"ascii", "~(A & B) -> A | B", logic.Implies(logic.Not(logic.And(a, b)), logic.Or(a, b))},
		{"predicate", "R(x, a)", logic.Atom("R", x, logic.Const("a"))},
		{"function term", "P(f(x, g(b)))", logic.Atom("P", logic.Func("f", x, logic.Func("g", logic.Const("b"))))},
		{"forall", "∀x. P(x)", logic.All("x", logic.Atom("P", x))},
		{"quantifier body extends right", "∀x. P(x) ∧ Q", logic.All("x", logic.And(logic.Atom("P", x), logic.Atom("Q")))},
		{"quantifier as operand", "(∀x. P(x)) ∧ Q", logic.And(logic.All("x", logic.Atom("P", x)), logic.Atom("Q"))},
		{"nested quantifiers", "forall x. exists y. R(x, y)", logic.All("x", logic.Some("y", logic.Atom("R", x, y)))},
		{"bound name is a variable", "∀a. P(a)", logic.All("a", logic.Atom("P", logic.Var("a")))},
		{"binder scope ends", "(∀a. P(a)) ∧ P(a)", logic.And(
			logic.All("a", logic.Atom("P", logic.Var("a"))),
			logic.Atom("P", logic.Const("a")),
		)},
		{"negated quantifier", "¬∃x. P(x)", logic.Not(logic.Some("x", logic.Atom("P", x)))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseFormula(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestParseFormulaErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		offset int
	}{
		{"", 0},
		{"A ∧", 5},
		{"(A ∧ B", 8},
		{"A B", 2},
		{"∀. P", 3},
		{"∀x P(x)", 5},
		{"P()", 2},
		{"P(x,)", 4},
		{"A → → B", 6},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			_, err := ParseFormula(tt.input)
			require.ErrorIs(t, err, ErrSyntax)

			var serr *Error
			require.ErrorAs(t, err, &serr)
			assert.Equal(t, tt.offset, serr.Offset, serr.Error())
		})
	}
}

func TestParseTerm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		vars  logic.NameSet
		want  logic.Term
	}{
		{"variable", "x1", nil, logic.Var("x1")},
		{"constant", "a", nil, logic.Const("a")},
		{"uppercase is constant", "X", nil, logic.Const("X")},
		{"declared variable", "a1", logic.NewNameSet("a1"), logic.Var("a1")},
		{"function", "f(y, c)", nil, logic.Func("f", logic.Var("y"), logic.Const("c"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseTerm(tt.input, tt.vars)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}

	_, err := ParseTerm("f(x", nil)
	assert.ErrorIs(t, err, ErrSyntax)
	_, err = ParseTerm("x y", nil)
	assert.ErrorIs(t, err, ErrSyntax)
	_, err = ParseTerm("", nil)
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestParseFormulaWithVariables(t *testing.T) {
	t.Parallel()

	got, err := ParseFormulaWith("P(a1) ∧ P(b)", logic.NewNameSet("a1"))
	require.NoError(t, err)
	want := logic.And(logic.Atom("P", logic.Var("a1")), logic.Atom("P", logic.Const("b")))
	assert.True(t, want.Equal(got), "got %s", got)
}

// formulaGen builds random formulas whose variables all read back as
// variables.
type formulaGen struct {
	rnd *rand.Rand
}

func (g formulaGen) term(depth int) logic.Term {
	switch n := g.rnd.Intn(4); {
	case n == 0 && depth > 0:
		return logic.Func("f", g.term(depth-1), g.term(depth-1))
	case n == 1:
		return logic.Const([]string{"a", "b"}[g.rnd.Intn(2)])
	default:
		return logic.Var([]string{"x", "y", "z1"}[g.rnd.Intn(3)])
	}
}

func (g formulaGen) formula(depth int) logic.Formula {
	if depth == 0 {
		switch g.rnd.Intn(4) {
		case 0:
			return logic.True{}
		case 1:
			return logic.False{}
		case 2:
			return logic.Atom("Q")
		default:
			return logic.Atom("R", g.term(1), g.term(1))
		}
	}

	v := []string{"x", "y", "z1"}[g.rnd.Intn(3)]
	switch g.rnd.Intn(7) {
	case 0:
		return logic.Not(g.formula(depth - 1))
	case 1:
		return logic.And(g.formula(depth-1), g.formula(depth-1))
	case 2:
		return logic.Or(g.formula(depth-1), g.formula(depth-1))
	case 3:
		return logic.Implies(g.formula(depth-1), g.formula(depth-1))
	case 4:
		return logic.Iff(g.formula(depth-1), g.formula(depth-1))
	case 5:
		return logic.All(v, g.formula(depth-1))
	default:
		return logic.Some(v, g.formula(depth-1))
	}
}

func TestPrintedFormulaParsesBack(t *testing.T) {
	t.Parallel()

	gen := formulaGen{rnd: rand.New(rand.NewSource(3))}
	for i := 0; i < 500; i++ {
		f := gen.formula(4)
		got, err := ParseFormula(f.String())
		require.NoError(t, err, f.String())
		if !f.Equal(got) {
			t.Fatalf("round trip of %s:\n%s", f, cmp.Diff(f.String(), got.String()))
		}
	}
}

func TestFreeVariablesOutsideNamingConvention(t *testing.T) {
	t.Parallel()

	f := logic.Atom("P", logic.Var("a1"))

	got, err := ParseFormula(f.String())
	require.NoError(t, err)
	assert.True(t, logic.Atom("P", logic.Const("a1")).Equal(got), "got %s", got)

	got, err = ParseFormulaWith(f.String(), f.FreeVariableNames())
	require.NoError(t, err)
	assert.True(t, f.Equal(got), "got %s", got)
}
