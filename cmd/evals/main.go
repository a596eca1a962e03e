// Command evals inspects and validates MCP tool selection suites.
//
// Usage:
//
//	go run ./cmd/evals -dir ./evals/suites -suite all
//
// It loads the JSON suites, validates every referenced tool against the
// server's registered tools, and reports coverage per area. For actual
// LLM evaluation, plug an LLM-backed evals.Selector into evals.Run.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/officekit/word-mcp-server/evals"
	"github.com/officekit/word-mcp-server/tools"
)

func main() {
	dir := flag.String("dir", "./evals/suites", "Directory containing eval JSON files")
	suite := flag.String("suite", "all", "Suite to load: tool_selection, confusion_pairs, or all")
	verbose := flag.Bool("verbose", false, "Show individual cases")
	flag.Parse()

	fmt.Println("Word MCP Server - Evaluation Suites")
	fmt.Println("===================================")
	fmt.Println()

	ok := true
	switch *suite {
	case "tool_selection":
		ok = loadToolSelection(*dir, *verbose)
	case "confusion_pairs":
		ok = loadConfusionPairs(*dir, *verbose)
	case "all":
		ok = loadToolSelection(*dir, *verbose)
		ok = loadConfusionPairs(*dir, *verbose) && ok
	default:
		fmt.Fprintf(os.Stderr, "Unknown suite: %s\n", *suite)
		os.Exit(1)
	}
	if !ok {
		os.Exit(1)
	}
}

// registeredTool reports whether the server registers a tool by this name.
func registeredTool(name string) bool {
	for _, spec := range tools.AllTools {
		if spec.Name == name {
			return true
		}
	}
	return false
}

func loadToolSelection(dir string, verbose bool) bool {
	path := filepath.Join(dir, "tool_selection.json")
	suite, err := evals.LoadSuite(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading tool selection suite: %v\n", err)
		return false
	}

	fmt.Printf("Tool Selection Suite: %s (v%s)\n", suite.Name, suite.Version)
	fmt.Printf("Total Cases: %d\n", len(suite.Cases))
	fmt.Println()

	areas := make(map[string]int)
	byTool := make(map[string]int)
	for _, c := range suite.Cases {
		areas[c.Area]++
		byTool[c.ExpectedTool]++
	}

	fmt.Println("Cases by Area:")
	for _, area := range sortedKeys(areas) {
		fmt.Printf("  %-12s: %d\n", area, areas[area])
	}
	fmt.Println()

	fmt.Println("Cases by Tool:")
	for _, tool := range sortedKeys(byTool) {
		fmt.Printf("  %-32s: %d\n", tool, byTool[tool])
	}
	fmt.Println()

	uncovered := 0
	for _, spec := range tools.AllTools {
		if byTool[spec.Name] == 0 {
			uncovered++
			if verbose {
				fmt.Printf("  no cases for %s\n", spec.Name)
			}
		}
	}
	fmt.Printf("Registered tools without cases: %d of %d\n", uncovered, len(tools.AllTools))
	fmt.Println()

	if problems := evals.Validate(suite, registeredTool); len(problems) > 0 {
		fmt.Fprintln(os.Stderr, "Suite problems:")
		for _, p := range problems {
			fmt.Fprintf(os.Stderr, "  %s\n", p)
		}
		return false
	}

	if verbose {
		fmt.Println("Cases:")
		for _, c := range suite.Cases {
			fmt.Printf("  [%s] %s -> %s\n", c.ID, c.Input, c.ExpectedTool)
		}
		fmt.Println()
	}
	return true
}

func loadConfusionPairs(dir string, verbose bool) bool {
	path := filepath.Join(dir, "confusion_pairs.json")
	suite, err := evals.LoadPairSuite(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading confusion pairs suite: %v\n", err)
		return false
	}

	fmt.Printf("Confusion Pairs Suite: %s (v%s)\n", suite.Name, suite.Version)
	fmt.Printf("Total Pairs: %d\n", len(suite.Pairs))
	fmt.Println()

	ok := true
	for _, pair := range suite.Pairs {
		fmt.Printf("  %s:\n", pair.ID)
		fmt.Printf("    Tools: %v\n", pair.Tools)
		fmt.Printf("    Rule: %s\n", pair.Disambiguation)
		fmt.Printf("    Probes: %d\n", len(pair.Cases))

		for _, tool := range pair.Tools {
			if !registeredTool(tool) {
				fmt.Fprintf(os.Stderr, "    unknown tool %s\n", tool)
				ok = false
			}
		}
		if verbose {
			for _, probe := range pair.Cases {
				fmt.Printf("    %q -> %s (%s)\n", probe.Input, probe.Expected, probe.Reason)
			}
		}
	}
	fmt.Println()
	return ok
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
