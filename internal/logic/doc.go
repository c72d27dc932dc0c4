// Package logic implements the first-order data model of the prover:
// terms, formulas and the operations the inference rules need on them.
//
// Terms and formulas are immutable values. Every transformation returns a
// new tree and subtrees are shared freely between formulas, goals and
// branches of a proof.
//
// Supported operations:
//   - canonical printing (String) with minimal parenthesization
//   - structural equality (Equal), bound variable names compared literally
//   - variable and free variable computation
//   - capture-avoiding substitution (Replace)
//   - capture-blind renaming (RenameVar)
//   - alpha conversion of quantifiers and fresh name generation
//
// Out of scope:
//   - equality up to alpha equivalence
//   - parsing (see internal/syntax)
package logic
