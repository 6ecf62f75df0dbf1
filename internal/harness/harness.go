package harness

import (
	"fmt"

	"github.com/roach88/timelane"
)

// Result is the outcome of running a scenario.
type Result struct {
	// Scenario is the name of the executed scenario.
	Scenario string `json:"scenario"`

	// Cases holds one entry per scenario case, in scenario order.
	Cases []CaseResult `json:"cases"`

	// Pass is true when every case passed.
	Pass bool `json:"pass"`
}

// CaseResult records a single executed conversion.
type CaseResult struct {
	Name  string `json:"name"`
	Mark  int64  `json:"mark"`
	From  string `json:"from"`
	To    string `json:"to"`
	Round string `json:"round"`

	// Result is the converted mark. Zero when the conversion overflowed.
	Result int64 `json:"result"`

	// Overflow is true when the conversion left the mark range.
	Overflow bool `json:"overflow,omitempty"`

	// Pass is true when the outcome matched the case's expectation.
	Pass bool `json:"pass"`
}

// Run executes every case of a scenario and returns the collected
// results. Conversions are pure, so cases are independent and the run is
// deterministic. An error is returned only for malformed cases; a
// conversion outcome that differs from the expectation fails the case,
// not the run.
func Run(scenario *Scenario) (*Result, error) {
	result := &Result{
		Scenario: scenario.Name,
		Cases:    make([]CaseResult, 0, len(scenario.Cases)),
		Pass:     true,
	}

	for i, c := range scenario.Cases {
		from, err := timelane.ParseLane(c.From)
		if err != nil {
			return nil, fmt.Errorf("cases[%d]: %w", i, err)
		}
		to, err := timelane.ParseLane(c.To)
		if err != nil {
			return nil, fmt.Errorf("cases[%d]: %w", i, err)
		}
		mode, err := timelane.ParseRoundingMode(c.Round)
		if err != nil {
			return nil, fmt.Errorf("cases[%d]: %w", i, err)
		}

		cr := CaseResult{
			Name:  c.Name,
			Mark:  c.Mark,
			From:  c.From,
			To:    c.To,
			Round: c.Round,
		}

		got, err := timelane.Scale(timelane.Mark(c.Mark), from, to, mode)
		switch {
		case err == nil:
			cr.Result = int64(got)
			cr.Pass = !c.WantOverflow && int64(got) == c.Want
		case timelane.IsOverflow(err):
			cr.Overflow = true
			cr.Pass = c.WantOverflow
		default:
			return nil, fmt.Errorf("cases[%d]: %w", i, err)
		}

		if !cr.Pass {
			result.Pass = false
		}
		result.Cases = append(result.Cases, cr)
	}

	return result, nil
}
