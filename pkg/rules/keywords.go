package rules

// Verb is the first keyword of a rule
type Verb int

const (
	VerbMove Verb = iota
	VerbPrefix
	VerbSuffix

	verbCount
)

// Preposition is the second keyword of a rule
type Preposition int

const (
	PrepTo Preposition = iota
	PrepWith
)

var verbKeywords = [verbCount]string{
	VerbMove:   "mv",
	VerbPrefix: "pre",
	VerbSuffix: "suf",
}

var prepositionKeywords = [...]string{
	PrepTo:   "to",
	PrepWith: "with",
}

// sanctionedPairs gives the only preposition each verb accepts.
// It is sized by verbCount, so adding a verb without a pairing does not compile.
var sanctionedPairs = [verbCount]Preposition{
	VerbMove:   PrepTo,
	VerbPrefix: PrepWith,
	VerbSuffix: PrepWith,
}

// Keyword returns the DSL spelling of the verb
func (v Verb) Keyword() string {
	if v < 0 || v >= verbCount {
		return ""
	}
	return verbKeywords[v]
}

// Action returns the verb as used in prompts ("move", "prefix", "suffix")
func (v Verb) Action() string {
	switch v {
	case VerbMove:
		return "move"
	case VerbPrefix:
		return "prefix"
	case VerbSuffix:
		return "suffix"
	}
	return ""
}

// Preposition returns the preposition the verb pairs with
func (v Verb) Preposition() Preposition {
	return sanctionedPairs[v]
}

func (v Verb) String() string {
	return v.Keyword()
}

// Keyword returns the DSL spelling of the preposition
func (p Preposition) Keyword() string {
	if p < 0 || int(p) >= len(prepositionKeywords) {
		return ""
	}
	return prepositionKeywords[p]
}

func (p Preposition) String() string {
	return p.Keyword()
}

// ParseVerb resolves a first keyword
func ParseVerb(s string) (Verb, bool) {
	for v, kw := range verbKeywords {
		if kw == s {
			return Verb(v), true
		}
	}
	return 0, false
}

// ParsePreposition resolves a second keyword
func ParsePreposition(s string) (Preposition, bool) {
	for p, kw := range prepositionKeywords {
		if kw == s {
			return Preposition(p), true
		}
	}
	return 0, false
}

// Pairs reports whether the verb accepts the preposition
func Pairs(v Verb, p Preposition) bool {
	return v >= 0 && v < verbCount && sanctionedPairs[v] == p
}
