package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/timelane"
)

// Scenario defines a conformance test scenario: a named list of lane
// conversion cases with expected outcomes.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Cases lists the conversions to execute, in order.
	Cases []Case `yaml:"cases"`
}

// Case is a single conversion with its expected outcome.
type Case struct {
	// Name identifies the case within its scenario.
	Name string `yaml:"name"`

	// Mark is the input mark, interpreted on the From lane.
	Mark int64 `yaml:"mark"`

	// From and To are lowercase lane names.
	From string `yaml:"from"`
	To   string `yaml:"to"`

	// Round is the rounding mode, "down" or "up".
	Round string `yaml:"round"`

	// Want is the expected result mark. Ignored when WantOverflow is set.
	Want int64 `yaml:"want,omitempty"`

	// WantOverflow expects the conversion to leave the mark range.
	WantOverflow bool `yaml:"want_overflow,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "want_overfow:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Cases) == 0 {
		return fmt.Errorf("cases list is required and must be non-empty")
	}

	for i, c := range s.Cases {
		if c.Name == "" {
			return fmt.Errorf("cases[%d]: name is required", i)
		}
		if _, err := timelane.ParseLane(c.From); err != nil {
			return fmt.Errorf("cases[%d]: invalid from lane: %w", i, err)
		}
		if _, err := timelane.ParseLane(c.To); err != nil {
			return fmt.Errorf("cases[%d]: invalid to lane: %w", i, err)
		}
		if _, err := timelane.ParseRoundingMode(c.Round); err != nil {
			return fmt.Errorf("cases[%d]: invalid rounding mode: %w", i, err)
		}
		if c.WantOverflow && c.Want != 0 {
			return fmt.Errorf("cases[%d]: want and want_overflow are exclusive", i)
		}
	}

	return nil
}
