package logic

import "strings"

// TermType identifies the variant of a Term.
type TermType int

const (
	TermVariable TermType = iota
	TermConstant
	TermComplex
)

func (t TermType) String() string {
	switch t {
	case TermVariable:
		return "Variable"
	case TermConstant:
		return "Constant"
	case TermComplex:
		return "ComplexTerm"
	default:
		return "?"
	}
}

// Term is a first-order term: a variable, a constant or a function
// application. The set of implementations is closed.
type Term interface {
	isTerm()
	String() string
	Type() TermType
	// Equal reports structural equality.
	Equal(other Term) bool
	// VariableNames returns every variable occurring in the term.
	// Terms have no binders, so these are also the free variables.
	VariableNames() NameSet
	// Replace substitutes t for every occurrence of the variable name.
	Replace(name string, t Term) Term
	// RenameVar renames every occurrence of the variable oldName.
	RenameVar(oldName, newName string) Term
}

// Variable is a term variable.
type Variable struct {
	Name string
}

// Constant is an individual constant.
type Constant struct {
	Name string
}

// ComplexTerm is a function symbol applied to an ordered list of terms.
type ComplexTerm struct {
	Function string
	Args     []Term
}

// Var creates a variable term.
func Var(name string) Variable {
	return Variable{Name: name}
}

// Const creates a constant term.
func Const(name string) Constant {
	return Constant{Name: name}
}

// Func creates a function application. The argument slice is copied.
func Func(function string, args ...Term) ComplexTerm {
	return ComplexTerm{Function: function, Args: append([]Term(nil), args...)}
}

func (Variable) isTerm()    {}
func (Constant) isTerm()    {}
func (ComplexTerm) isTerm() {}

func (v Variable) String() string    { return v.Name }
func (c Constant) String() string    { return c.Name }
func (c ComplexTerm) String() string { return c.Function + "(" + joinTerms(c.Args) + ")" }

func (Variable) Type() TermType    { return TermVariable }
func (Constant) Type() TermType    { return TermConstant }
func (ComplexTerm) Type() TermType { return TermComplex }

func (v Variable) Equal(other Term) bool {
	o, ok := other.(Variable)
	return ok && v.Name == o.Name
}

func (c Constant) Equal(other Term) bool {
	o, ok := other.(Constant)
	return ok && c.Name == o.Name
}

func (c ComplexTerm) Equal(other Term) bool {
	o, ok := other.(ComplexTerm)
	if !ok || c.Function != o.Function {
		return false
	}
	return termsEqual(c.Args, o.Args)
}

func (v Variable) VariableNames() NameSet { return NewNameSet(v.Name) }
func (Constant) VariableNames() NameSet   { return NewNameSet() }

func (c ComplexTerm) VariableNames() NameSet { return termsVariableNames(c.Args) }

func (v Variable) Replace(name string, t Term) Term {
	if v.Name == name {
		return t
	}
	return v
}

func (c Constant) Replace(string, Term) Term { return c }

func (c ComplexTerm) Replace(name string, t Term) Term {
	args := make([]Term, len(c.Args))
	for i, arg := range c.Args {
		args[i] = arg.Replace(name, t)
	}
	return ComplexTerm{Function: c.Function, Args: args}
}

func (v Variable) RenameVar(oldName, newName string) Term {
	if v.Name == oldName {
		return Variable{Name: newName}
	}
	return v
}

func (c Constant) RenameVar(string, string) Term { return c }

func (c ComplexTerm) RenameVar(oldName, newName string) Term {
	args := make([]Term, len(c.Args))
	for i, arg := range c.Args {
		args[i] = arg.RenameVar(oldName, newName)
	}
	return ComplexTerm{Function: c.Function, Args: args}
}

// TermsEqual reports whether two terms are structurally equal.
// Two nil terms are equal.
func TermsEqual(a, b Term) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

// termsEqual compares argument lists; arity must match.
func termsEqual(a, b []Term) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func termsVariableNames(terms []Term) NameSet {
	names := NewNameSet()
	for _, t := range terms {
		names.AddAll(t.VariableNames())
	}
	return names
}

func joinTerms(terms []Term) string {
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, ", ")
}
