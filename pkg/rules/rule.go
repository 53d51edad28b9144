package rules

import (
	"strings"
	"unicode"
)

// Diagnostics recorded on rejected rules
const (
	MsgMissingTokens        = "Missing keyword(s) or pattern(s)."
	MsgInvalidFirstKeyword  = "Invalid first keyword."
	MsgInvalidSecondKeyword = "Invalid second keyword."
	MsgInvalidPair          = "Keywords' pair doesn't exists."
)

// CommentMarker starts a comment running to the end of the line
const CommentMarker = "//"

// ruleTokens is the number of tokens a statement is made of
const ruleTokens = 4

// Rule is one parsed configuration line, valid or not.
//
// Rules are values: the parser builds them once and nothing mutates them
// afterwards.
type Rule struct {
	// LineNumber is 1-based; 0 marks a skipped (blank or comment-only) line
	LineNumber int

	// Raw is the line without its comment and trailing whitespace
	Raw string

	// Tokens holds the accepted tokens, at most four. Validation stops at the
	// first bad token, which is not kept.
	Tokens []string

	FirstKeyword  string
	FirstPattern  string
	SecondKeyword string
	SecondPattern string

	// Valid is set iff Error is empty
	Valid bool
	Error string

	// Verb is the statement kind; only meaningful on valid rules
	Verb Verb
}

// Parse turns one configuration line into a Rule. index is the zero-based
// position of the line in its file.
func Parse(line string, index int) Rule {
	raw := StripComment(line)
	fragments := strings.Fields(raw)

	if len(fragments) == 0 {
		return Rule{Raw: raw, Valid: true}
	}

	lineNumber := index + 1
	if len(fragments) < ruleTokens {
		return Rule{LineNumber: lineNumber, Raw: raw, Error: MsgMissingTokens}
	}

	var tokens []string
	var msg string
	for i, fragment := range fragments[:ruleTokens] {
		if msg = checkToken(i, fragment); msg != "" {
			break
		}
		tokens = append(tokens, fragment)
	}

	var verb Verb
	if msg == "" {
		var prep Preposition
		verb, _ = ParseVerb(tokens[0])
		prep, _ = ParsePreposition(tokens[2])
		if !Pairs(verb, prep) {
			msg = MsgInvalidPair
		}
	}

	rule := Rule{
		LineNumber:    lineNumber,
		Raw:           raw,
		Tokens:        tokens,
		FirstKeyword:  tokenAt(tokens, 0),
		FirstPattern:  tokenAt(tokens, 1),
		SecondKeyword: tokenAt(tokens, 2),
		SecondPattern: tokenAt(tokens, 3),
		Valid:         msg == "",
		Error:         msg,
	}
	if rule.Valid {
		rule.Verb = verb
	}
	return rule
}

// checkToken validates the token at position i; patterns are unconstrained
func checkToken(i int, token string) string {
	switch i {
	case 0:
		if _, ok := ParseVerb(token); !ok {
			return MsgInvalidFirstKeyword
		}
	case 2:
		if _, ok := ParsePreposition(token); !ok {
			return MsgInvalidSecondKeyword
		}
	}
	return ""
}

func tokenAt(tokens []string, i int) string {
	if i < len(tokens) {
		return tokens[i]
	}
	return ""
}

// StripComment removes everything from the first comment marker on and
// trims the trailing whitespace left behind
func StripComment(line string) string {
	before, _, _ := strings.Cut(line, CommentMarker)
	return strings.TrimRightFunc(before, unicode.IsSpace)
}

// Skipped reports whether the line held no statement
func (r Rule) Skipped() bool {
	return r.LineNumber == 0
}

// Pattern is the wildcard pattern selecting files
func (r Rule) Pattern() string {
	return r.FirstPattern
}

// Target is the destination directory (mv) or the affix (pre, suf)
func (r Rule) Target() string {
	return r.SecondPattern
}
