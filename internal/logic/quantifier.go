package logic

import (
	"errors"
	"fmt"
)

// ErrNameInUse is returned when alpha conversion is requested onto a name
// that already occurs in the quantifier body.
var ErrNameInUse = errors.New("can't perform alpha conversion - variable in use")

// Quantifier is implemented by ForAll and Exists.
type Quantifier interface {
	Formula
	// BoundVariable returns the name bound by the quantifier.
	BoundVariable() string
	// Subformula returns the quantifier body.
	Subformula() Formula
	// AlphaConvert renames the bound variable to a fresh name derived from
	// the current one.
	AlphaConvert() Quantifier
	// AlphaConvertTo renames the bound variable to name. It fails with
	// ErrNameInUse when name already occurs in the body.
	AlphaConvertTo(name string) (Quantifier, error)
	// with rebuilds a quantifier of the same kind.
	with(variable string, body Formula) Quantifier
}

// ForAll is universal quantification.
type ForAll struct {
	Var  string
	Body Formula
}

// Exists is existential quantification.
type Exists struct {
	Var  string
	Body Formula
}

// All creates ∀variable. body.
func All(variable string, body Formula) ForAll {
	return ForAll{Var: variable, Body: body}
}

// Some creates ∃variable. body.
func Some(variable string, body Formula) Exists {
	return Exists{Var: variable, Body: body}
}

func (ForAll) isFormula() {}
func (Exists) isFormula() {}

func (ForAll) Type() FormulaType { return FormulaForAll }
func (Exists) Type() FormulaType { return FormulaExists }

func (ForAll) RequiresParentheses() bool { return true }
func (Exists) RequiresParentheses() bool { return true }

func (q ForAll) BoundVariable() string { return q.Var }
func (q Exists) BoundVariable() string { return q.Var }

func (q ForAll) Subformula() Formula { return q.Body }
func (q Exists) Subformula() Formula { return q.Body }

func (ForAll) with(variable string, body Formula) Quantifier {
	return ForAll{Var: variable, Body: body}
}

func (Exists) with(variable string, body Formula) Quantifier {
	return Exists{Var: variable, Body: body}
}

func (q ForAll) String() string { return SymbolForAll + q.Var + ". " + wrap(q.Body) }
func (q Exists) String() string { return SymbolExists + q.Var + ". " + wrap(q.Body) }

func (q ForAll) Equal(other Formula) bool {
	o, ok := other.(ForAll)
	return ok && q.Var == o.Var && q.Body.Equal(o.Body)
}

func (q Exists) Equal(other Formula) bool {
	o, ok := other.(Exists)
	return ok && q.Var == o.Var && q.Body.Equal(o.Body)
}

func (q ForAll) VariableNames() NameSet { return quantifiedVariableNames(q) }
func (q Exists) VariableNames() NameSet { return quantifiedVariableNames(q) }

func (q ForAll) FreeVariableNames() NameSet { return q.Body.FreeVariableNames().Without(q.Var) }
func (q Exists) FreeVariableNames() NameSet { return q.Body.FreeVariableNames().Without(q.Var) }

func (q ForAll) Replace(name string, t Term) Formula { return replaceQuantified(q, name, t) }
func (q Exists) Replace(name string, t Term) Formula { return replaceQuantified(q, name, t) }

func (q ForAll) RenameVar(oldName, newName string) Formula {
	return renameQuantified(q, oldName, newName)
}

func (q Exists) RenameVar(oldName, newName string) Formula {
	return renameQuantified(q, oldName, newName)
}

func (q ForAll) AlphaConvert() Quantifier { return alphaConvert(q) }
func (q Exists) AlphaConvert() Quantifier { return alphaConvert(q) }

func (q ForAll) AlphaConvertTo(name string) (Quantifier, error) { return alphaConvertTo(q, name) }
func (q Exists) AlphaConvertTo(name string) (Quantifier, error) { return alphaConvertTo(q, name) }

func quantifiedVariableNames(q Quantifier) NameSet {
	names := q.Subformula().VariableNames()
	names.Add(q.BoundVariable())
	return names
}

// replaceQuantified substitutes under a binder. A binder of the substituted
// name shadows it and nothing changes. A binder occurring in t is renamed
// first, to a name fresh for both the body and t, whether or not name occurs
// in the body.
func replaceQuantified(q Quantifier, name string, t Term) Formula {
	bound, body := q.BoundVariable(), q.Subformula()
	if bound == name {
		return q
	}

	termVars := t.VariableNames()
	if !termVars.Has(bound) {
		return q.with(bound, body.Replace(name, t))
	}

	fresh := FreshName(bound, body.VariableNames().Union(termVars))
	converted := q.with(fresh, body.RenameVar(bound, fresh))
	return converted.Replace(name, t)
}

func renameQuantified(q Quantifier, oldName, newName string) Formula {
	bound := q.BoundVariable()
	if bound == oldName || bound == newName {
		return q
	}
	return q.with(bound, q.Subformula().RenameVar(oldName, newName))
}

func alphaConvert(q Quantifier) Quantifier {
	bound, body := q.BoundVariable(), q.Subformula()
	fresh := FreshName(bound, body.VariableNames())
	return q.with(fresh, body.RenameVar(bound, fresh))
}

func alphaConvertTo(q Quantifier, name string) (Quantifier, error) {
	bound, body := q.BoundVariable(), q.Subformula()
	if body.VariableNames().Has(name) {
		return nil, fmt.Errorf("%w: %s in %s", ErrNameInUse, name, q)
	}
	return q.with(name, body.RenameVar(bound, name)), nil
}
