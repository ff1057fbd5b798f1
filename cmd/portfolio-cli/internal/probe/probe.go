// Package probe checks that the API endpoints behind the public pages answer.
package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/ruebensh/portfolio/internal/portfolio"
	"golang.org/x/sync/errgroup"
)

// Endpoint is one named fetch.
type Endpoint struct {
	Name  string
	Fetch func(ctx context.Context) error
}

// Result is the outcome of probing one endpoint.
type Result struct {
	Name    string        `json:"name"`
	OK      bool          `json:"ok"`
	Latency time.Duration `json:"latency"`
	Error   string        `json:"error,omitempty"`
}

// Endpoints lists the public reads of src in page order.
func Endpoints(src portfolio.Content) []Endpoint {
	return []Endpoint{
		{"projects", func(ctx context.Context) error { _, err := src.Projects(ctx); return err }},
		{"certificates", func(ctx context.Context) error { _, err := src.Certificates(ctx); return err }},
		{"skills", func(ctx context.Context) error { _, err := src.Skills(ctx); return err }},
		{"experience", func(ctx context.Context) error { _, err := src.Experience(ctx); return err }},
		{"about", func(ctx context.Context) error { _, err := src.About(ctx); return err }},
		{"settings", func(ctx context.Context) error { _, err := src.Settings(ctx); return err }},
	}
}

// Run probes every endpoint concurrently. Results keep the input order and a
// failing endpoint never stops the others.
func Run(ctx context.Context, endpoints []Endpoint) []Result {
	results := make([]Result, len(endpoints))
	var g errgroup.Group
	for i, ep := range endpoints {
		g.Go(func() error {
			start := time.Now()
			err := ep.Fetch(ctx)
			results[i] = Result{Name: ep.Name, OK: err == nil, Latency: time.Since(start)}
			if err != nil {
				results[i].Error = err.Error()
			}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// Failed counts the failed results.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.OK {
			n++
		}
	}
	return n
}

// WriteTable prints the results as an aligned table.
func WriteTable(out io.Writer, results []Result) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "ENDPOINT\tSTATUS\tLATENCY\tERROR")
	fmt.Fprintln(w, "--------\t------\t-------\t-----")
	for _, r := range results {
		status := "ok"
		if !r.OK {
			status = "FAIL"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Name, status, r.Latency.Round(time.Millisecond), r.Error)
	}
}

// WriteJSON prints the results as indented JSON.
func WriteJSON(out io.Writer, results []Result) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
