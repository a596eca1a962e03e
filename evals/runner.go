// Package evals provides an evaluation harness for MCP tool selection.
// It checks that a selector (an LLM under test, or a scripted baseline)
// picks the right word_* tool and arguments for natural language requests
// like "make this bold" or "add a 3x4 table".
package evals

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"strings"
)

// Case is a single tool selection test: a natural language input and the
// tool the selector is expected to pick for it.
type Case struct {
	ID           string         `json:"id"`
	Area         string         `json:"area"`
	Input        string         `json:"input"`
	ExpectedTool string         `json:"expected_tool"`
	ExpectedArgs map[string]any `json:"expected_args,omitempty"`
	NotTools     []string       `json:"not_tools,omitempty"`
}

// Suite is a collection of tool selection cases loaded from JSON.
type Suite struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
	Cases       []Case `json:"cases"`
}

// PairCase is one disambiguation probe for a confusion pair.
type PairCase struct {
	Input    string `json:"input"`
	Expected string `json:"expected"`
	Reason   string `json:"reason"`
}

// ConfusionPair names two tools that models commonly mix up, such as
// word_insert_text vs word_find_and_replace, with probes that should
// land on one specific side.
type ConfusionPair struct {
	ID             string     `json:"id"`
	Tools          []string   `json:"tools"`
	Disambiguation string     `json:"disambiguation"`
	Cases          []PairCase `json:"cases"`
}

// PairSuite is a collection of confusion pairs loaded from JSON.
type PairSuite struct {
	Name        string          `json:"name"`
	Version     string          `json:"version"`
	Description string          `json:"description"`
	Pairs       []ConfusionPair `json:"pairs"`
}

// Selector picks a tool and arguments for a natural language input.
// Production runs wrap an LLM; tests use scripted selectors.
type Selector interface {
	SelectTool(input string) (tool string, args map[string]any, err error)
}

// Result is the outcome of a single case.
type Result struct {
	CaseID       string
	Input        string
	ExpectedTool string
	ActualTool   string
	Passed       bool
	Errors       []string
}

// AreaStats aggregates pass counts for one tool area.
type AreaStats struct {
	Total  int
	Passed int
	Failed int
}

// Report is the aggregate outcome of an evaluation run.
type Report struct {
	Total         int
	Passed        int
	Failed        int
	Accuracy      float64
	ByArea        map[string]*AreaStats
	FailedDetails []string
}

// LoadSuite reads a tool selection suite from a JSON file.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading suite: %w", err)
	}
	var suite Suite
	if err := json.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("parsing suite: %w", err)
	}
	return &suite, nil
}

// LoadPairSuite reads a confusion pair suite from a JSON file.
func LoadPairSuite(path string) (*PairSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading suite: %w", err)
	}
	var suite PairSuite
	if err := json.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("parsing suite: %w", err)
	}
	return &suite, nil
}

// Validate reports problems with a suite before it is run: empty inputs,
// and expected or forbidden tools that the server does not register.
// known reports whether a tool name exists.
func Validate(suite *Suite, known func(name string) bool) []string {
	var problems []string
	seen := make(map[string]bool)
	for _, c := range suite.Cases {
		if c.ID == "" {
			problems = append(problems, fmt.Sprintf("case with input %q has no id", c.Input))
		} else if seen[c.ID] {
			problems = append(problems, fmt.Sprintf("duplicate case id %s", c.ID))
		}
		seen[c.ID] = true

		if c.Input == "" {
			problems = append(problems, fmt.Sprintf("[%s] empty input", c.ID))
		}
		if !known(c.ExpectedTool) {
			problems = append(problems, fmt.Sprintf("[%s] unknown expected tool %s", c.ID, c.ExpectedTool))
		}
		for _, tool := range c.NotTools {
			if !known(tool) {
				problems = append(problems, fmt.Sprintf("[%s] unknown forbidden tool %s", c.ID, tool))
			}
		}
	}
	return problems
}

// Run evaluates every case in the suite against the selector.
func Run(suite *Suite, selector Selector) (*Report, []Result) {
	report := &Report{ByArea: make(map[string]*AreaStats)}
	var results []Result

	for _, c := range suite.Cases {
		report.Total++
		stats := report.ByArea[c.Area]
		if stats == nil {
			stats = &AreaStats{}
			report.ByArea[c.Area] = stats
		}
		stats.Total++

		result := Result{
			CaseID:       c.ID,
			Input:        c.Input,
			ExpectedTool: c.ExpectedTool,
			Passed:       true,
		}

		actualTool, actualArgs, err := selector.SelectTool(c.Input)
		result.ActualTool = actualTool
		if err != nil {
			result.Passed = false
			result.Errors = append(result.Errors, fmt.Sprintf("selector error: %v", err))
		}
		if actualTool != c.ExpectedTool {
			result.Passed = false
			result.Errors = append(result.Errors,
				fmt.Sprintf("wrong tool: expected %s, got %s", c.ExpectedTool, actualTool))
		}
		for _, forbidden := range c.NotTools {
			if actualTool == forbidden {
				result.Passed = false
				result.Errors = append(result.Errors,
					fmt.Sprintf("selected forbidden tool %s", forbidden))
			}
		}
		for key, expected := range c.ExpectedArgs {
			actual, ok := actualArgs[key]
			if !ok {
				result.Passed = false
				result.Errors = append(result.Errors,
					fmt.Sprintf("missing arg %s (expected %v)", key, expected))
			} else if !sameValue(expected, actual) {
				result.Passed = false
				result.Errors = append(result.Errors,
					fmt.Sprintf("wrong arg %s: expected %v, got %v", key, expected, actual))
			}
		}

		if result.Passed {
			report.Passed++
			stats.Passed++
		} else {
			report.Failed++
			stats.Failed++
			report.FailedDetails = append(report.FailedDetails,
				fmt.Sprintf("[%s] %s: %s", c.ID, c.Input, strings.Join(result.Errors, "; ")))
		}
		results = append(results, result)
	}

	if report.Total > 0 {
		report.Accuracy = float64(report.Passed) / float64(report.Total)
	}
	return report, results
}

// RunPairs evaluates every probe of every confusion pair.
func RunPairs(suite *PairSuite, selector Selector) (*Report, []Result) {
	report := &Report{ByArea: make(map[string]*AreaStats)}
	var results []Result

	for _, pair := range suite.Pairs {
		stats := report.ByArea[pair.ID]
		if stats == nil {
			stats = &AreaStats{}
			report.ByArea[pair.ID] = stats
		}
		for i, probe := range pair.Cases {
			report.Total++
			stats.Total++

			result := Result{
				CaseID:       fmt.Sprintf("%s/%d", pair.ID, i+1),
				Input:        probe.Input,
				ExpectedTool: probe.Expected,
				Passed:       true,
			}

			actualTool, _, err := selector.SelectTool(probe.Input)
			result.ActualTool = actualTool
			if err != nil {
				result.Passed = false
				result.Errors = append(result.Errors, fmt.Sprintf("selector error: %v", err))
			}
			if actualTool != probe.Expected {
				result.Passed = false
				result.Errors = append(result.Errors,
					fmt.Sprintf("wrong tool: expected %s, got %s (%s)", probe.Expected, actualTool, probe.Reason))
			}

			if result.Passed {
				report.Passed++
				stats.Passed++
			} else {
				report.Failed++
				stats.Failed++
				report.FailedDetails = append(report.FailedDetails,
					fmt.Sprintf("[%s] %s: %s", result.CaseID, probe.Input, strings.Join(result.Errors, "; ")))
			}
			results = append(results, result)
		}
	}

	if report.Total > 0 {
		report.Accuracy = float64(report.Passed) / float64(report.Total)
	}
	return report, results
}

// sameValue compares an expected suite value with a selector value.
// JSON decoding turns all numbers into float64, so numeric kinds are
// normalized before comparison.
func sameValue(expected, actual any) bool {
	if ef, ok := toFloat(expected); ok {
		if af, ok := toFloat(actual); ok {
			return ef == af
		}
		return false
	}
	return reflect.DeepEqual(expected, actual)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
