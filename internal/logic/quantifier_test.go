package logic

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplaceAvoidsCapture(t *testing.T) {
	t.Parallel()

	// ∀x. R(x, y) [y := x]  =  ∀x1. R(x1, x)
	f := All("x", Atom("R", Var("x"), Var("y")))
	got := f.Replace("y", Var("x"))

	want := All("x1", Atom("R", Var("x1"), Var("x")))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Replace mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "∀x1. R(x1, x)", got.String())
	assert.Equal(t, []string{"x"}, got.FreeVariableNames().Sorted())
}

func TestReplace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		formula Formula
		varName string
		term    Term
		want    string
	}{
		{
			name:    "free occurrence",
			formula: Atom("P", Var("x"), Var("y")),
			varName: "x",
			term:    Func("f", Const("a")),
			want:    "P(f(a), y)",
		},
		{
			name:    "shadowed by binder",
			formula: All("x", Atom("P", Var("x"))),
			varName: "x",
			term:    Const("a"),
			want:    "∀x. P(x)",
		},
		{
			name:    "binder not in term",
			formula: Some("z", Atom("R", Var("z"), Var("y"))),
			varName: "y",
			term:    Func("f", Var("x")),
			want:    "∃z. R(z, f(x))",
		},
		{
			name:    "capture through function term",
			formula: Some("x", Atom("R", Var("x"), Var("y"))),
			varName: "y",
			term:    Func("f", Var("x")),
			want:    "∃x1. R(x1, f(x))",
		},
		{
			name:    "fresh name avoids body names",
			formula: All("x", Atom("R", Var("x"), Var("x1"), Var("y"))),
			varName: "y",
			term:    Var("x"),
			want:    "∀x2. R(x2, x1, x)",
		},
		{
			name:    "fresh name avoids term names",
			formula: All("x", Atom("R", Var("x"), Var("y"))),
			varName: "y",
			term:    Func("g", Var("x"), Var("x1")),
			want:    "∀x2. R(x2, g(x, x1))",
		},
		{
			name:    "inner binder of the same name stays",
			formula: All("x", And(Atom("P", Var("y")), All("x", Atom("Q", Var("x"))))),
			varName: "y",
			term:    Var("x"),
			want:    "∀x1. (P(x) ∧ (∀x. Q(x)))",
		},
		{
			name:    "binder in term is renamed without free occurrence",
			formula: All("x", Atom("P", Var("x"))),
			varName: "y",
			term:    Var("x"),
			want:    "∀x1. P(x1)",
		},
		{
			name:    "binder not in term without free occurrence",
			formula: Some("z", Atom("P", Var("z"))),
			varName: "y",
			term:    Var("x"),
			want:    "∃z. P(z)",
		},
		{
			name:    "through connectives",
			formula: Implies(Not(Atom("P", Var("y"))), Iff(Atom("Q", Var("y")), True{})),
			varName: "y",
			term:    Const("c"),
			want:    "(¬P(c)) → (Q(c) ↔ ⊤)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.formula.Replace(tt.varName, tt.term)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestRenameVarShadowed(t *testing.T) {
	t.Parallel()

	f := All("x", Atom("P", Var("x")))
	assert.True(t, f.Equal(f.RenameVar("x", "z")))
}

func TestAlphaConvert(t *testing.T) {
	t.Parallel()

	f := All("x", Atom("R", Var("x"), Var("x1")))
	got := f.AlphaConvert()
	assert.Equal(t, "∀x2. R(x2, x1)", got.String())
	assert.Equal(t, f.FreeVariableNames(), got.FreeVariableNames())

	e := Some("y", Atom("P", Var("y")))
	assert.Equal(t, "∃y1. P(y1)", e.AlphaConvert().String())
}

func TestAlphaConvertTo(t *testing.T) {
	t.Parallel()

	f := Some("x", Atom("R", Var("x"), Var("y")))

	got, err := f.AlphaConvertTo("z")
	require.NoError(t, err)
	assert.Equal(t, "∃z. R(z, y)", got.String())
	assert.Equal(t, FormulaExists, got.Type())

	_, err = f.AlphaConvertTo("y")
	assert.ErrorIs(t, err, ErrNameInUse)

	_, err = f.AlphaConvertTo("x")
	assert.ErrorIs(t, err, ErrNameInUse)
}

// formulaGen builds small random formulas over a tiny vocabulary so that
// name clashes between binders, free variables and terms are frequent.
type formulaGen struct {
	rnd  *rand.Rand
	vars []string
}

func (g *formulaGen) term(depth int) Term {
	switch n := g.rnd.Intn(4); {
	case n == 0 && depth > 0:
		return Func("f", g.term(depth-1))
	case n == 1:
		return Const("a")
	default:
		return Var(g.vars[g.rnd.Intn(len(g.vars))])
	}
}

func (g *formulaGen) formula(depth int) Formula {
	if depth == 0 {
		switch g.rnd.Intn(4) {
		case 0:
			return Atom("P", g.term(1))
		case 1:
			return Atom("Q")
		default:
			return Atom("R", g.term(1), g.term(1))
		}
	}

	v := g.vars[g.rnd.Intn(len(g.vars))]
	switch g.rnd.Intn(7) {
	case 0:
		return Not(g.formula(depth - 1))
	case 1:
		return And(g.formula(depth-1), g.formula(depth-1))
	case 2:
		return Or(g.formula(depth-1), g.formula(depth-1))
	case 3:
		return Implies(g.formula(depth-1), g.formula(depth-1))
	case 4:
		return Iff(g.formula(depth-1), g.formula(depth-1))
	case 5:
		return All(v, g.formula(depth-1))
	default:
		return Some(v, g.formula(depth-1))
	}
}

// Substitution never captures: the free variables of f[v := t] are exactly
// FV(f) \ {v}, plus FV(t) when v occurs free in f.
func TestReplaceFreeVariablesProperty(t *testing.T) {
	t.Parallel()

	g := &formulaGen{rnd: rand.New(rand.NewSource(1)), vars: []string{"x", "y", "z", "x1"}}

	for i := 0; i < 2000; i++ {
		f := g.formula(4)
		v := g.vars[g.rnd.Intn(len(g.vars))]
		term := g.term(2)

		want := f.FreeVariableNames().Without(v)
		if f.FreeVariableNames().Has(v) {
			want.AddAll(term.VariableNames())
		}

		got := f.Replace(v, term)
		if !assert.Equal(t, want.Sorted(), got.FreeVariableNames().Sorted(),
			"%s [%s := %s] = %s", f, v, term, got) {
			return
		}
	}
}

func TestReplaceWithItselfProperty(t *testing.T) {
	t.Parallel()

	g := &formulaGen{rnd: rand.New(rand.NewSource(7)), vars: []string{"x", "y", "z"}}

	for i := 0; i < 1000; i++ {
		f := g.formula(4)
		v := g.vars[g.rnd.Intn(len(g.vars))]
		got := f.Replace(v, Var(v))
		if !assert.True(t, f.Equal(got), "%s [%s := %s] = %s", f, v, v, got) {
			return
		}
	}
}
