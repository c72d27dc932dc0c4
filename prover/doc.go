// Package prover is the entry point used by the command line: it loads
// configuration, runs interactive proofs and checks proof scripts in bulk.
//
// A proof script is a YAML file ending in .proof.yaml:
//
//	name: conjunction commutes
//	formula: A ∧ B → B ∧ A
//	steps:
//	  - apply rule impI
//	  - apply erule conjE
//	  - apply rule conjI
//	  - apply assumption
//	  - apply assumption
//	  - done
//
// Steps are the lines a user would type, including the terms asked for by
// allE and exI. A script passes when its final done is accepted.
package prover
