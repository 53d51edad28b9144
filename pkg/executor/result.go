package executor

import (
	"github.com/arthur-debert/sweep/pkg/errors"
	"github.com/arthur-debert/sweep/pkg/rules"
)

// Outcome summarises what executing a rule did
type Outcome int

const (
	// OutcomeSucceeded means every attempted action was performed
	OutcomeSucceeded Outcome = iota
	// OutcomeInvalid means the rule was rejected by the parser
	OutcomeInvalid
	// OutcomeNoMatch means no file matched the pattern
	OutcomeNoMatch
	// OutcomeDeclined means every match was declined at the prompt
	OutcomeDeclined
	// OutcomeFailed means at least one action failed
	OutcomeFailed
	// OutcomeAnnounced means the action was described, not performed
	OutcomeAnnounced
)

var outcomeNames = [...]string{
	OutcomeSucceeded: "succeeded",
	OutcomeInvalid:   "invalid",
	OutcomeNoMatch:   "no-match",
	OutcomeDeclined:  "declined",
	OutcomeFailed:    "failed",
	OutcomeAnnounced: "announced",
}

func (o Outcome) String() string {
	if o >= 0 && int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "unknown"
}

// Failure is an action that could not be performed on one file
type Failure struct {
	File   string
	Reason string
	Code   errors.ErrorCode
	Err    error
}

// Result describes the execution of one rule
type Result struct {
	Rule    rules.Rule
	Outcome Outcome

	// Matched lists the files the pattern selected, in listing order
	Matched []string

	// Applied lists the files acted on (or announced, under dry-run)
	Applied []string

	// Declined lists the files refused at the prompt
	Declined []string

	Failures []Failure
}

// OK reports whether the rule ran without an invalid rule or failed action
func (r Result) OK() bool {
	return r.Outcome != OutcomeInvalid && r.Outcome != OutcomeFailed
}
