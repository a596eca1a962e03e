package evals

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/officekit/word-mcp-server/tools"
)

// scriptedSelector returns a fixed answer per input.
type scriptedSelector struct {
	answers map[string]scriptedAnswer
}

type scriptedAnswer struct {
	tool string
	args map[string]any
	err  error
}

func (s *scriptedSelector) SelectTool(input string) (string, map[string]any, error) {
	a, ok := s.answers[input]
	if !ok {
		return "", nil, errors.New("no answer scripted")
	}
	return a.tool, a.args, a.err
}

func TestRunAllPass(t *testing.T) {
	suite := &Suite{
		Name: "smoke",
		Cases: []Case{
			{ID: "t1", Area: "text", Input: "type hello", ExpectedTool: "word_insert_text",
				ExpectedArgs: map[string]any{"text": "hello"}},
			{ID: "t2", Area: "table", Input: "add a 3x4 table", ExpectedTool: "word_add_table",
				ExpectedArgs: map[string]any{"rows": 3, "cols": 4}},
		},
	}
	selector := &scriptedSelector{answers: map[string]scriptedAnswer{
		"type hello":      {tool: "word_insert_text", args: map[string]any{"text": "hello"}},
		"add a 3x4 table": {tool: "word_add_table", args: map[string]any{"rows": float64(3), "cols": float64(4)}},
	}}

	report, results := Run(suite, selector)
	if report.Total != 2 || report.Passed != 2 || report.Failed != 0 {
		t.Errorf("report = %+v, want 2/2 passed", report)
	}
	if report.Accuracy != 1.0 {
		t.Errorf("accuracy = %v, want 1.0", report.Accuracy)
	}
	for _, r := range results {
		if !r.Passed {
			t.Errorf("[%s] failed: %v", r.CaseID, r.Errors)
		}
	}
}

func TestRunNumericArgsCompareAcrossTypes(t *testing.T) {
	// JSON suites carry ints, selectors decode to float64. Both should match.
	suite := &Suite{Cases: []Case{
		{ID: "n1", Area: "table", Input: "table", ExpectedTool: "word_add_table",
			ExpectedArgs: map[string]any{"rows": 2}},
	}}
	selector := &scriptedSelector{answers: map[string]scriptedAnswer{
		"table": {tool: "word_add_table", args: map[string]any{"rows": float64(2)}},
	}}

	report, _ := Run(suite, selector)
	if report.Failed != 0 {
		t.Errorf("numeric args across types should match: %v", report.FailedDetails)
	}
}

func TestRunWrongTool(t *testing.T) {
	suite := &Suite{Cases: []Case{
		{ID: "w1", Area: "text", Input: "replace foo with bar",
			ExpectedTool: "word_find_and_replace",
			NotTools:     []string{"word_insert_text"}},
	}}
	selector := &scriptedSelector{answers: map[string]scriptedAnswer{
		"replace foo with bar": {tool: "word_insert_text"},
	}}

	report, results := Run(suite, selector)
	if report.Failed != 1 {
		t.Fatalf("failed = %d, want 1", report.Failed)
	}
	if len(results[0].Errors) != 2 {
		// Wrong tool plus forbidden tool hit.
		t.Errorf("errors = %v, want wrong-tool and forbidden-tool", results[0].Errors)
	}
	if report.ByArea["text"].Failed != 1 {
		t.Errorf("area stats = %+v", report.ByArea["text"])
	}
}

func TestRunMissingAndWrongArgs(t *testing.T) {
	suite := &Suite{Cases: []Case{
		{ID: "a1", Area: "text", Input: "set font", ExpectedTool: "word_set_font",
			ExpectedArgs: map[string]any{"name": "Arial", "size": 12}},
	}}
	selector := &scriptedSelector{answers: map[string]scriptedAnswer{
		"set font": {tool: "word_set_font", args: map[string]any{"name": "Calibri"}},
	}}

	report, results := Run(suite, selector)
	if report.Passed != 0 {
		t.Error("case with bad args should fail")
	}
	if len(results[0].Errors) != 2 {
		t.Errorf("errors = %v, want wrong-arg and missing-arg", results[0].Errors)
	}
}

func TestRunSelectorError(t *testing.T) {
	suite := &Suite{Cases: []Case{
		{ID: "e1", Area: "document", Input: "unscripted", ExpectedTool: "word_create_document"},
	}}
	selector := &scriptedSelector{answers: map[string]scriptedAnswer{}}

	report, _ := Run(suite, selector)
	if report.Failed != 1 {
		t.Error("selector error should fail the case")
	}
}

func TestRunPairs(t *testing.T) {
	suite := &PairSuite{Pairs: []ConfusionPair{{
		ID:             "insert-vs-replace",
		Tools:          []string{"word_insert_text", "word_find_and_replace"},
		Disambiguation: "replace rewrites existing text, insert types new text",
		Cases: []PairCase{
			{Input: "type hello at the cursor", Expected: "word_insert_text", Reason: "new text"},
			{Input: "change every foo to bar", Expected: "word_find_and_replace", Reason: "existing text"},
		},
	}}}
	selector := &scriptedSelector{answers: map[string]scriptedAnswer{
		"type hello at the cursor": {tool: "word_insert_text"},
		"change every foo to bar":  {tool: "word_insert_text"},
	}}

	report, results := RunPairs(suite, selector)
	if report.Total != 2 || report.Passed != 1 || report.Failed != 1 {
		t.Errorf("report = %+v, want 1/2 passed", report)
	}
	if results[1].Passed {
		t.Error("second probe should fail")
	}
	if report.ByArea["insert-vs-replace"].Total != 2 {
		t.Errorf("pair stats = %+v", report.ByArea["insert-vs-replace"])
	}
}

func TestValidateAgainstRegisteredTools(t *testing.T) {
	known := make(map[string]bool)
	for _, spec := range tools.AllTools {
		known[spec.Name] = true
	}
	isKnown := func(name string) bool { return known[name] }

	good := &Suite{Cases: []Case{
		{ID: "v1", Area: "text", Input: "bold this", ExpectedTool: "word_toggle_bold",
			NotTools: []string{"word_set_font"}},
	}}
	if problems := Validate(good, isKnown); len(problems) != 0 {
		t.Errorf("valid suite reported problems: %v", problems)
	}

	bad := &Suite{Cases: []Case{
		{ID: "v1", Area: "text", Input: "bold this", ExpectedTool: "word_make_bold"},
		{ID: "v1", Area: "text", Input: "", ExpectedTool: "word_toggle_bold"},
	}}
	problems := Validate(bad, isKnown)
	if len(problems) != 3 {
		// Unknown tool, duplicate id, empty input.
		t.Errorf("problems = %v, want 3", problems)
	}
}

func TestLoadSuite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.json")
	data := `{
		"name": "word tool selection",
		"version": "1",
		"cases": [
			{"id": "t1", "area": "text", "input": "type hi", "expected_tool": "word_insert_text",
			 "expected_args": {"text": "hi"}}
		]
	}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	suite, err := LoadSuite(path)
	if err != nil {
		t.Fatalf("LoadSuite failed: %v", err)
	}
	if suite.Name != "word tool selection" || len(suite.Cases) != 1 {
		t.Errorf("suite = %+v", suite)
	}
	if suite.Cases[0].ExpectedArgs["text"] != "hi" {
		t.Errorf("args = %v", suite.Cases[0].ExpectedArgs)
	}
}

func TestLoadSuiteErrors(t *testing.T) {
	if _, err := LoadSuite(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSuite(path); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
