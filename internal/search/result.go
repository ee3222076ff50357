package search

import (
	"time"

	"bombe/internal/machine"
)

// Outcome is how a run ended.
type Outcome string

const (
	OutcomeFound      Outcome = "found"
	OutcomeNotFound   Outcome = "not-found"
	OutcomeTrialLimit Outcome = "trial-limit"
	OutcomeTimeout    Outcome = "timeout"
	OutcomeCanceled   Outcome = "canceled"
)

// Result reports a finished run. Settings, Message and Crib are set only
// when Outcome is found.
type Result struct {
	RunID    string           `json:"run_id"`
	Mode     Mode             `json:"mode"`
	Outcome  Outcome          `json:"outcome"`
	Message  string           `json:"message,omitempty"`
	Crib     string           `json:"crib,omitempty"`
	Settings machine.Settings `json:"settings"`
	Space    int              `json:"space"`
	Index    int              `json:"index"`
	Trials   int64            `json:"trials"`
	Elapsed  time.Duration    `json:"elapsed_ns"`
}

// Found reports whether the run recovered the settings.
func (r *Result) Found() bool { return r.Outcome == OutcomeFound }
