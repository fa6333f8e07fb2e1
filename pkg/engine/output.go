package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/kr/pretty"
	"github.com/olekukonko/tablewriter"
)

// Sample describes one generated tree.
type Sample struct {
	Index     int     `json:"index"`
	Expr      string  `json:"expr"`
	LaTeX     string  `json:"latex"`
	Rendered  string  `json:"rendered"` // bounded rendering
	Truncated bool    `json:"truncated"`
	Count     int     `json:"count"`
	Depth     int     `json:"depth"`
	Value     float64 `json:"-"` // may be Inf or NaN, which JSON cannot hold
	Result    string  `json:"value"`
}

// Distribution summarizes an integer statistic across samples.
type Distribution struct {
	Mean float64 `json:"mean"`
	P50  int64   `json:"p50"`
	P99  int64   `json:"p99"`
	Max  int64   `json:"max"`
}

// Summary aggregates a run.
type Summary struct {
	Seed      int64        `json:"seed"`
	Samples   int          `json:"samples"`
	NodeCount Distribution `json:"node_count"`
	Depth     Distribution `json:"depth"`
	NonFinite int          `json:"non_finite"`
	Truncated int          `json:"truncated"`
}

// Report is the result of a sampling run.
type Report struct {
	Config  Config   `json:"config"`
	Summary Summary  `json:"summary"`
	Samples []Sample `json:"samples,omitempty"`
}

// Write writes r in the format named by r.Config.Format.
func Write(w io.Writer, r Report) error {
	switch r.Config.Format {
	case "json":
		return WriteJSON(w, r)
	case "pretty":
		return WritePretty(w, r)
	case "text", "":
		WriteText(w, r)
		return nil
	default:
		return errors.Newf("unknown format %q", r.Config.Format)
	}
}

// WriteText writes the report in human-readable format. Individual samples
// are listed only for verbose runs.
func WriteText(w io.Writer, r Report) {
	if r.Config.Verbose && len(r.Samples) > 0 {
		tbl := tablewriter.NewWriter(w)
		tbl.SetHeader([]string{"#", "Expression", "Nodes", "Depth", "Value"})
		for _, s := range r.Samples {
			tbl.Append([]string{
				strconv.Itoa(s.Index),
				s.Rendered,
				strconv.Itoa(s.Count),
				strconv.Itoa(s.Depth),
				s.Result,
			})
		}
		tbl.Render()
	}
	s := r.Summary
	fmt.Fprintln(w, "========== SUMMARY ==========")
	fmt.Fprintf(w, "Pool:      %s\n", r.Config.Pool)
	fmt.Fprintf(w, "Seed:      %d\n", s.Seed)
	fmt.Fprintf(w, "Samples:   %d\n", s.Samples)
	fmt.Fprintf(w, "Nodes:     mean %.2f | p50 %d | p99 %d | max %d\n",
		s.NodeCount.Mean, s.NodeCount.P50, s.NodeCount.P99, s.NodeCount.Max)
	fmt.Fprintf(w, "Depth:     mean %.2f | p50 %d | p99 %d | max %d\n",
		s.Depth.Mean, s.Depth.P50, s.Depth.P99, s.Depth.Max)
	fmt.Fprintf(w, "NonFinite: %d\n", s.NonFinite)
	fmt.Fprintf(w, "Truncated: %d (buffer %d)\n", s.Truncated, r.Config.BufSize)
	fmt.Fprintln(w, "=============================")
}

// WriteJSON writes the report as JSON.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(r), "encoding report")
}

// WritePretty writes a Go-syntax dump of the report.
func WritePretty(w io.Writer, r Report) error {
	_, err := pretty.Fprintf(w, "%# v\n", r)
	return errors.Wrap(err, "writing report")
}
