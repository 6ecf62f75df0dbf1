// Package harness provides conformance testing for lane conversions.
//
// The harness loads YAML scenarios, executes each case through the public
// scaling API, and compares the full run output against golden files.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	cases:
//	  - name: case_name
//	    mark: 32
//	    from: day
//	    to: month
//	    round: down
//	    want: 2
//	  - name: overflow_case
//	    mark: 9223372036854775807
//	    from: year
//	    to: nanosecond
//	    round: down
//	    want_overflow: true
//
// Lane names are the lowercase names accepted by ParseLane, round is
// "down" or "up". A case either expects a result mark (want) or expects
// the conversion to overflow (want_overflow); the two are exclusive.
//
// # Golden Files
//
// RunWithGolden serializes the run result to canonical indented JSON and
// compares it against testdata/golden/{scenario.Name}.golden. To
// regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Conversions are pure functions of their inputs, so runs are
// deterministic by construction and need no clock or token pinning.
package harness
