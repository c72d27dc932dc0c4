package logic

// FormulaType identifies the variant of a Formula.
type FormulaType int

const (
	FormulaTrue FormulaType = iota
	FormulaFalse
	FormulaSimpleAtom
	FormulaComplexAtom
	FormulaNegation
	FormulaConjunction
	FormulaDisjunction
	FormulaImplication
	FormulaEquivalence
	FormulaForAll
	FormulaExists
)

func (t FormulaType) String() string {
	switch t {
	case FormulaTrue:
		return "True"
	case FormulaFalse:
		return "False"
	case FormulaSimpleAtom:
		return "SimpleAtom"
	case FormulaComplexAtom:
		return "ComplexAtom"
	case FormulaNegation:
		return "Negation"
	case FormulaConjunction:
		return "Conjunction"
	case FormulaDisjunction:
		return "Disjunction"
	case FormulaImplication:
		return "Implication"
	case FormulaEquivalence:
		return "Equivalence"
	case FormulaForAll:
		return "ForAll"
	case FormulaExists:
		return "Exists"
	default:
		return "?"
	}
}

// Connective symbols used by the canonical printer.
const (
	SymbolTrue      = "⊤"
	SymbolFalse     = "⊥"
	SymbolNot       = "¬"
	SymbolAnd       = "∧"
	SymbolOr        = "∨"
	SymbolImplies   = "→"
	SymbolIff       = "↔"
	SymbolForAll    = "∀"
	SymbolExists    = "∃"
	SymbolTurnstile = "⊢"
)

// Formula is a first-order formula. The set of implementations is closed.
type Formula interface {
	isFormula()
	// String returns the canonical printed form.
	String() string
	Type() FormulaType
	// RequiresParentheses reports whether the formula is wrapped in
	// parentheses when printed as a subformula.
	RequiresParentheses() bool
	// Equal reports structural equality. Quantified formulas are equal
	// only when their bound variable names match literally.
	Equal(other Formula) bool
	// VariableNames returns every variable name occurring in the formula,
	// bound or free.
	VariableNames() NameSet
	// FreeVariableNames returns the names with at least one occurrence not
	// under a binder of the same name.
	FreeVariableNames() NameSet
	// Replace substitutes t for the free occurrences of the variable name,
	// renaming binders that would capture a variable of t.
	Replace(name string, t Term) Formula
	// RenameVar renames occurrences of oldName to newName without any
	// capture check. It does not descend into a quantifier binding either
	// name.
	RenameVar(oldName, newName string) Formula
}

type (
	// True is the constant ⊤.
	True struct{}

	// False is the constant ⊥.
	False struct{}

	// SimpleAtom is a propositional letter.
	SimpleAtom struct {
		Predicate string
	}

	// ComplexAtom is a predicate applied to terms.
	ComplexAtom struct {
		Predicate string
		Args      []Term
	}

	Negation struct {
		Sub Formula
	}

	Conjunction struct {
		Left, Right Formula
	}

	Disjunction struct {
		Left, Right Formula
	}

	Implication struct {
		Left, Right Formula
	}

	Equivalence struct {
		Left, Right Formula
	}
)

// Atom creates a SimpleAtom when no arguments are given and a ComplexAtom
// otherwise. The argument slice is copied.
func Atom(predicate string, args ...Term) Formula {
	if len(args) == 0 {
		return SimpleAtom{Predicate: predicate}
	}
	return ComplexAtom{Predicate: predicate, Args: append([]Term(nil), args...)}
}

func Not(f Formula) Negation           { return Negation{Sub: f} }
func And(l, r Formula) Conjunction     { return Conjunction{Left: l, Right: r} }
func Or(l, r Formula) Disjunction      { return Disjunction{Left: l, Right: r} }
func Implies(l, r Formula) Implication { return Implication{Left: l, Right: r} }
func Iff(l, r Formula) Equivalence     { return Equivalence{Left: l, Right: r} }

func (True) isFormula()        {}
func (False) isFormula()       {}
func (SimpleAtom) isFormula()  {}
func (ComplexAtom) isFormula() {}
func (Negation) isFormula()    {}
func (Conjunction) isFormula() {}
func (Disjunction) isFormula() {}
func (Implication) isFormula() {}
func (Equivalence) isFormula() {}

func (True) Type() FormulaType        { return FormulaTrue }
func (False) Type() FormulaType       { return FormulaFalse }
func (SimpleAtom) Type() FormulaType  { return FormulaSimpleAtom }
func (ComplexAtom) Type() FormulaType { return FormulaComplexAtom }
func (Negation) Type() FormulaType    { return FormulaNegation }
func (Conjunction) Type() FormulaType { return FormulaConjunction }
func (Disjunction) Type() FormulaType { return FormulaDisjunction }
func (Implication) Type() FormulaType { return FormulaImplication }
func (Equivalence) Type() FormulaType { return FormulaEquivalence }

func (True) RequiresParentheses() bool        { return false }
func (False) RequiresParentheses() bool       { return false }
func (SimpleAtom) RequiresParentheses() bool  { return false }
func (ComplexAtom) RequiresParentheses() bool { return false }
func (Negation) RequiresParentheses() bool    { return true }
func (Conjunction) RequiresParentheses() bool { return true }
func (Disjunction) RequiresParentheses() bool { return true }
func (Implication) RequiresParentheses() bool { return true }
func (Equivalence) RequiresParentheses() bool { return true }

// --- printing ---

func (True) String() string         { return SymbolTrue }
func (False) String() string        { return SymbolFalse }
func (a SimpleAtom) String() string { return a.Predicate }

func (a ComplexAtom) String() string {
	return a.Predicate + "(" + joinTerms(a.Args) + ")"
}

func (n Negation) String() string    { return SymbolNot + wrap(n.Sub) }
func (c Conjunction) String() string { return binaryString(c.Left, SymbolAnd, c.Right) }
func (d Disjunction) String() string { return binaryString(d.Left, SymbolOr, d.Right) }
func (i Implication) String() string { return binaryString(i.Left, SymbolImplies, i.Right) }
func (e Equivalence) String() string { return binaryString(e.Left, SymbolIff, e.Right) }

func wrap(f Formula) string {
	if f.RequiresParentheses() {
		return "(" + f.String() + ")"
	}
	return f.String()
}

func binaryString(left Formula, symbol string, right Formula) string {
	return wrap(left) + " " + symbol + " " + wrap(right)
}

// --- equality ---

func (True) Equal(other Formula) bool {
	_, ok := other.(True)
	return ok
}

func (False) Equal(other Formula) bool {
	_, ok := other.(False)
	return ok
}

func (a SimpleAtom) Equal(other Formula) bool {
	o, ok := other.(SimpleAtom)
	return ok && a.Predicate == o.Predicate
}

func (a ComplexAtom) Equal(other Formula) bool {
	o, ok := other.(ComplexAtom)
	return ok && a.Predicate == o.Predicate && termsEqual(a.Args, o.Args)
}

func (n Negation) Equal(other Formula) bool {
	o, ok := other.(Negation)
	return ok && n.Sub.Equal(o.Sub)
}

func (c Conjunction) Equal(other Formula) bool {
	o, ok := other.(Conjunction)
	return ok && c.Left.Equal(o.Left) && c.Right.Equal(o.Right)
}

func (d Disjunction) Equal(other Formula) bool {
	o, ok := other.(Disjunction)
	return ok && d.Left.Equal(o.Left) && d.Right.Equal(o.Right)
}

func (i Implication) Equal(other Formula) bool {
	o, ok := other.(Implication)
	return ok && i.Left.Equal(o.Left) && i.Right.Equal(o.Right)
}

func (e Equivalence) Equal(other Formula) bool {
	o, ok := other.(Equivalence)
	return ok && e.Left.Equal(o.Left) && e.Right.Equal(o.Right)
}

// Equal reports whether two formulas are structurally equal.
// Two nil formulas are equal.
func Equal(a, b Formula) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

// --- variables ---

func (True) VariableNames() NameSet          { return NewNameSet() }
func (False) VariableNames() NameSet         { return NewNameSet() }
func (SimpleAtom) VariableNames() NameSet    { return NewNameSet() }
func (a ComplexAtom) VariableNames() NameSet { return termsVariableNames(a.Args) }
func (n Negation) VariableNames() NameSet    { return n.Sub.VariableNames() }

func (c Conjunction) VariableNames() NameSet {
	return c.Left.VariableNames().Union(c.Right.VariableNames())
}

func (d Disjunction) VariableNames() NameSet {
	return d.Left.VariableNames().Union(d.Right.VariableNames())
}

func (i Implication) VariableNames() NameSet {
	return i.Left.VariableNames().Union(i.Right.VariableNames())
}

func (e Equivalence) VariableNames() NameSet {
	return e.Left.VariableNames().Union(e.Right.VariableNames())
}

func (True) FreeVariableNames() NameSet          { return NewNameSet() }
func (False) FreeVariableNames() NameSet         { return NewNameSet() }
func (SimpleAtom) FreeVariableNames() NameSet    { return NewNameSet() }
func (a ComplexAtom) FreeVariableNames() NameSet { return a.VariableNames() }
func (n Negation) FreeVariableNames() NameSet    { return n.Sub.FreeVariableNames() }

func (c Conjunction) FreeVariableNames() NameSet {
	return c.Left.FreeVariableNames().Union(c.Right.FreeVariableNames())
}

func (d Disjunction) FreeVariableNames() NameSet {
	return d.Left.FreeVariableNames().Union(d.Right.FreeVariableNames())
}

func (i Implication) FreeVariableNames() NameSet {
	return i.Left.FreeVariableNames().Union(i.Right.FreeVariableNames())
}

func (e Equivalence) FreeVariableNames() NameSet {
	return e.Left.FreeVariableNames().Union(e.Right.FreeVariableNames())
}

// --- substitution ---

func (t True) Replace(string, Term) Formula       { return t }
func (f False) Replace(string, Term) Formula      { return f }
func (a SimpleAtom) Replace(string, Term) Formula { return a }

func (a ComplexAtom) Replace(name string, t Term) Formula {
	args := make([]Term, len(a.Args))
	for i, arg := range a.Args {
		args[i] = arg.Replace(name, t)
	}
	return ComplexAtom{Predicate: a.Predicate, Args: args}
}

func (n Negation) Replace(name string, t Term) Formula {
	return Negation{Sub: n.Sub.Replace(name, t)}
}

func (c Conjunction) Replace(name string, t Term) Formula {
	return Conjunction{Left: c.Left.Replace(name, t), Right: c.Right.Replace(name, t)}
}

func (d Disjunction) Replace(name string, t Term) Formula {
	return Disjunction{Left: d.Left.Replace(name, t), Right: d.Right.Replace(name, t)}
}

func (i Implication) Replace(name string, t Term) Formula {
	return Implication{Left: i.Left.Replace(name, t), Right: i.Right.Replace(name, t)}
}

func (e Equivalence) Replace(name string, t Term) Formula {
	return Equivalence{Left: e.Left.Replace(name, t), Right: e.Right.Replace(name, t)}
}

// --- renaming ---

func (t True) RenameVar(string, string) Formula       { return t }
func (f False) RenameVar(string, string) Formula      { return f }
func (a SimpleAtom) RenameVar(string, string) Formula { return a }

func (a ComplexAtom) RenameVar(oldName, newName string) Formula {
	args := make([]Term, len(a.Args))
	for i, arg := range a.Args {
		args[i] = arg.RenameVar(oldName, newName)
	}
	return ComplexAtom{Predicate: a.Predicate, Args: args}
}

func (n Negation) RenameVar(oldName, newName string) Formula {
	return Negation{Sub: n.Sub.RenameVar(oldName, newName)}
}

func (c Conjunction) RenameVar(oldName, newName string) Formula {
	return Conjunction{Left: c.Left.RenameVar(oldName, newName), Right: c.Right.RenameVar(oldName, newName)}
}

func (d Disjunction) RenameVar(oldName, newName string) Formula {
	return Disjunction{Left: d.Left.RenameVar(oldName, newName), Right: d.Right.RenameVar(oldName, newName)}
}

func (i Implication) RenameVar(oldName, newName string) Formula {
	return Implication{Left: i.Left.RenameVar(oldName, newName), Right: i.Right.RenameVar(oldName, newName)}
}

func (e Equivalence) RenameVar(oldName, newName string) Formula {
	return Equivalence{Left: e.Left.RenameVar(oldName, newName), Right: e.Right.RenameVar(oldName, newName)}
}
