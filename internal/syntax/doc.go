// Package syntax reads formulas and terms from text.
//
// Both the logical symbols and their ASCII spellings are accepted:
//
//	⊤ true    ⊥ false    ¬ ~    ∧ &    ∨ |    → ->    ↔ <->
//	∀ forall  ∃ exists
//
// Negation binds tightest, followed by ∧, ∨, → and ↔. Implication and
// equivalence group to the right. A quantifier body extends as far to the
// right as possible, so ∀x. P(x) ∧ Q quantifies over the conjunction.
//
// An identifier in term position is a variable when an enclosing
// quantifier binds it, when the caller declares it as a variable, or when
// it starts with one of u, v, w, x, y or z. Any other identifier is a
// constant. The canonical form printed by the logic package parses back to
// an equal formula.
package syntax
