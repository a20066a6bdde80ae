// Package report prints benchmark comparisons as a text table or JSON.
package report

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/randomizedcoder/subdays-benchmarks/internal/bench"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Report is the JSON document written by WriteJSON.
type Report struct {
	GOOS        string             `json:"goos"`
	GOARCH      string             `json:"goarch"`
	SetupMode   string             `json:"setup_mode"`
	Results     []bench.Result     `json:"results"`
	Comparisons []bench.Comparison `json:"comparisons"`
}

// New builds a report from raw results.
func New(mode bench.SetupMode, results []bench.Result) *Report {
	return &Report{
		GOOS:        runtime.GOOS,
		GOARCH:      runtime.GOARCH,
		SetupMode:   mode.String(),
		Results:     results,
		Comparisons: bench.Compare(results),
	}
}

// WriteJSON writes r as indented JSON.
func WriteJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

const rule = "─────────────────────────────────────────────────────────────"

// WriteText writes r as an aligned table, one block per suite.
func WriteText(w io.Writer, r *Report) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Architecture: %s/%s, setup: %s\n", r.GOOS, r.GOARCH, r.SetupMode)

	suite := ""
	for _, c := range r.Comparisons {
		if c.Suite != suite {
			suite = c.Suite
			fmt.Fprintf(&sb, "\n%s\n%s\n", suite, rule)
		}
		marker := ""
		if c.Fastest {
			marker = "  fastest"
		}
		fmt.Fprintf(&sb, "  %-12s %10.2f ns/op  %6.2fx  %8.2f M/s  (%d runs)%s\n",
			c.Case, c.NsPerOp, c.Relative, c.OpsPerSec/1e6, c.Runs, marker)
	}

	if r.SetupMode == bench.PerBatch.String() {
		sb.WriteString("\nNote: setup runs once per batch, so in-place cases accumulate across iterations.\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
