package domain

import (
	"fmt"
	"strings"
)

// WordLimit is the maximum number of words accepted by the generate action.
const WordLimit = 6250

// GateReason explains why the gate rejected (or allowed) an action.
type GateReason string

const (
	GateReasonOK          GateReason = "ok"
	GateReasonEmpty       GateReason = "empty"
	GateReasonOverLimit   GateReason = "over_limit"
	GateReasonNotEntitled GateReason = "not_entitled"
	GateReasonBusy        GateReason = "busy"
)

// GateDecision is the result of evaluating draft text against a profile.
// Country echoes the profile's region so rejections can name the local price.
type GateDecision struct {
	CanGenerate bool       `json:"can_generate"`
	WordCount   int        `json:"word_count"`
	Limit       int        `json:"limit"`
	Reason      GateReason `json:"reason"`
	Country     string     `json:"country,omitempty"`
}

// WordCount returns the number of whitespace-delimited non-empty tokens.
// Leading and trailing whitespace never contribute, so
// WordCount(s) == WordCount(strings.TrimSpace(s)) for all s.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// EvaluateGate decides whether a generate action may proceed. Pure function;
// a nil profile means no session or no profile row, which counts as not
// entitled. Rejection reasons are checked in order: empty text, word limit,
// entitlement, busy.
func EvaluateGate(text string, profile *UserProfile, busy bool) GateDecision {
	return EvaluateGateWithLimit(text, profile, busy, WordLimit)
}

// EvaluateGateWithLimit is EvaluateGate with an explicit word ceiling.
// A non-positive limit falls back to WordLimit.
func EvaluateGateWithLimit(text string, profile *UserProfile, busy bool, limit int) GateDecision {
	if limit <= 0 {
		limit = WordLimit
	}

	decision := GateDecision{
		WordCount: WordCount(text),
		Limit:     limit,
	}
	if profile != nil {
		decision.Country = profile.Country
	}

	switch {
	case strings.TrimSpace(text) == "":
		decision.Reason = GateReasonEmpty
	case decision.WordCount > limit:
		decision.Reason = GateReasonOverLimit
	case !profile.Entitled():
		decision.Reason = GateReasonNotEntitled
	case busy:
		decision.Reason = GateReasonBusy
	default:
		decision.Reason = GateReasonOK
		decision.CanGenerate = true
	}

	return decision
}

// GateError carries a gate rejection to callers that need the counts.
type GateError struct {
	Reason    GateReason
	WordCount int
	Limit     int
	Country   string
}

func (e *GateError) Error() string {
	switch e.Reason {
	case GateReasonEmpty:
		return "text is empty"
	case GateReasonOverLimit:
		return fmt.Sprintf("word count %d exceeds limit of %d", e.WordCount, e.Limit)
	case GateReasonNotEntitled:
		return "no active subscription"
	case GateReasonBusy:
		return "another action is in progress"
	}
	return string(e.Reason)
}

// Err converts a rejecting decision into a *GateError, or nil when allowed.
func (d GateDecision) Err() error {
	if d.CanGenerate {
		return nil
	}
	return &GateError{Reason: d.Reason, WordCount: d.WordCount, Limit: d.Limit, Country: d.Country}
}
