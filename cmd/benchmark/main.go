// Command benchmark measures tool-layer overhead against the in-memory
// Word fake. Word itself is an out-of-process COM server and dominates
// real latencies; running against the fake isolates the server's own
// cost per operation (session locking, validation, logging).
//
// Usage:
//
//	go run ./cmd/benchmark -n 1000 -op all
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/officekit/word-mcp-server/internal/automation"
	"github.com/officekit/word-mcp-server/internal/automation/automationtest"
	"github.com/officekit/word-mcp-server/internal/document"
	"github.com/officekit/word-mcp-server/internal/paragraph"
	"github.com/officekit/word-mcp-server/internal/table"
	"github.com/officekit/word-mcp-server/internal/text"
)

func main() {
	n := flag.Int("n", 1000, "Iterations per operation")
	op := flag.String("op", "all", "Operation to benchmark: insert, replace, table, alignment, or all")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	session := automation.NewSession(automationtest.NewFactory(), logger)
	defer session.Quit()

	ctx := context.Background()
	docs := document.NewClient(session, logger)
	texts := text.NewClient(session, logger)
	tables := table.NewClient(session, logger)
	paragraphs := paragraph.NewClient(session, logger)

	if _, err := docs.Create(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Create failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("=== Word MCP Server Benchmark (in-memory fake) ===")
	fmt.Printf("Iterations: %d\n\n", *n)

	benchmarks := map[string]func(int) error{
		"insert": func(i int) error {
			return texts.Insert(ctx, fmt.Sprintf("line %d\n", i))
		},
		"replace": func(i int) error {
			_, err := texts.FindAndReplace(ctx, "line", "row", false, false, false)
			return err
		},
		"table": func(int) error {
			_, err := tables.Add(ctx, 2, 2)
			return err
		},
		"alignment": func(i int) error {
			return paragraphs.SetAlignment(ctx, i%4)
		},
	}

	order := []string{"insert", "replace", "table", "alignment"}
	for _, name := range order {
		if *op != "all" && *op != name {
			continue
		}
		run(name, *n, benchmarks[name])
	}
}

// run times n iterations of fn and prints latency percentiles.
func run(name string, n int, fn func(int) error) {
	durations := make([]time.Duration, 0, n)
	for i := 0; i < n; i++ {
		start := time.Now()
		if err := fn(i); err != nil {
			fmt.Fprintf(os.Stderr, "%s failed at iteration %d: %v\n", name, i, err)
			os.Exit(1)
		}
		durations = append(durations, time.Since(start))
	}

	sort.Slice(durations, func(i, j int) bool { return durations[i] < durations[j] })
	var total time.Duration
	for _, d := range durations {
		total += d
	}

	fmt.Printf("%-10s  avg %-10v  p50 %-10v  p95 %-10v  max %v\n",
		name,
		total/time.Duration(n),
		percentile(durations, 50),
		percentile(durations, 95),
		durations[len(durations)-1],
	)
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	idx := len(sorted) * p / 100
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
