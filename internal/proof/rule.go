package proof

// Rule names a natural-deduction rule that can be applied to a goal.
type Rule int

const (
	Assumption Rule = iota
	NotI
	NotE
	ConjI
	ConjE
	DisjI1
	DisjI2
	DisjE
	ImpI
	ImpE
	IffI
	IffE
	AllI
	AllE
	ExI
	ExE
	// Ccontr (proof by contradiction) and Classical (excluded middle) are
	// part of the vocabulary but have no goal transformation yet; applying
	// them always fails.
	Ccontr
	Classical
)

var ruleNames = [...]string{
	Assumption: "assumption",
	NotI:       "notI",
	NotE:       "notE",
	ConjI:      "conjI",
	ConjE:      "conjE",
	DisjI1:     "disjI1",
	DisjI2:     "disjI2",
	DisjE:      "disjE",
	ImpI:       "impI",
	ImpE:       "impE",
	IffI:       "iffI",
	IffE:       "iffE",
	AllI:       "allI",
	AllE:       "allE",
	ExI:        "exI",
	ExE:        "exE",
	Ccontr:     "ccontr",
	Classical:  "classical",
}

// Rules lists every rule in declaration order.
func Rules() []Rule {
	rules := make([]Rule, len(ruleNames))
	for i := range ruleNames {
		rules[i] = Rule(i)
	}
	return rules
}

func (r Rule) String() string {
	if r < 0 || int(r) >= len(ruleNames) {
		return "?"
	}
	return ruleNames[r]
}

// ParseRule looks a rule up by its command name, e.g. "conjI".
func ParseRule(name string) (Rule, bool) {
	for i, n := range ruleNames {
		if n == name {
			return Rule(i), true
		}
	}
	return 0, false
}

// IsElimination reports whether the rule works on an assumption and is
// invoked with "apply erule".
func (r Rule) IsElimination() bool {
	switch r {
	case NotE, ConjE, DisjE, ImpE, IffE, AllE, ExE:
		return true
	default:
		return false
	}
}

// NeedsTerm reports whether the rule takes an instantiation term.
func (r Rule) NeedsTerm() bool {
	return r == AllE || r == ExI
}

// Implemented reports whether the rule has a goal transformation.
func (r Rule) Implemented() bool {
	return r != Ccontr && r != Classical
}
