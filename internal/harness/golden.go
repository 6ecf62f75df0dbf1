package harness

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// RunWithGolden executes a scenario and compares the serialized result
// against a golden file stored in testdata/golden/{scenario.Name}.golden.
//
// Golden files serve as the source of truth for expected conversion
// behavior; to regenerate them, run:
//
//	go test ./internal/harness -update
//
// The executed result is returned so callers can additionally assert on
// Pass. An error is returned only when the scenario itself cannot run.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, err
	}
	data = append(data, '\n')

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, data)

	return result, nil
}
