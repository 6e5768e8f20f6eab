// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report renders avlstress results as tables.
package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/jba/avlmap/internal/workload"
)

// A Writer renders results to an output stream.
type Writer struct {
	w     io.Writer
	color bool
}

// New returns a Writer that writes to w, coloring status words if useColor is set.
func New(w io.Writer, useColor bool) *Writer {
	return &Writer{w: w, color: useColor}
}

func (r *Writer) newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(r.w)
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	return tbl
}

func (r *Writer) status(err error) string {
	if err == nil {
		if r.color {
			return color.New(color.FgGreen, color.Bold).Sprint("PASS")
		}
		return "PASS"
	}
	if r.color {
		return color.New(color.FgRed, color.Bold).Sprint("FAIL")
	}
	return "FAIL"
}

// Run renders the outcome of a checked workload run.
// runErr is the error the run returned, if any.
func (r *Writer) Run(res workload.Result, runErr error) {
	tbl := r.newTable()
	tbl.SetTitle("avlstress run")
	tbl.AppendHeader(table.Row{"Metric", "Value"})
	c := res.Counts
	tbl.AppendRows([]table.Row{
		{"operations", humanize.Comma(int64(res.Ops))},
		{"inserts", humanize.Comma(int64(c.Inserts))},
		{"duplicate inserts", humanize.Comma(int64(c.Duplicates))},
		{"erases", humanize.Comma(int64(c.Erases))},
		{"erase misses", humanize.Comma(int64(c.Misses))},
		{"index writes", humanize.Comma(int64(c.Indexes))},
		{"lookups", humanize.Comma(int64(c.Finds))},
		{"structure checks", humanize.Comma(int64(c.Checks))},
		{"final size", humanize.Comma(int64(res.FinalLen))},
		{"final depth", res.Depth},
		{"elapsed", res.Elapsed.String()},
	})
	tbl.AppendFooter(table.Row{"status", r.status(runErr)})
	tbl.Render()
	if runErr != nil {
		fmt.Fprintf(r.w, "error: %v\n", runErr)
	}
}

// Compare renders timings of the same workload on several implementations.
func (r *Writer) Compare(ops int, timings []workload.Timing) {
	tbl := r.newTable()
	tbl.SetTitle(fmt.Sprintf("%s operations", humanize.Comma(int64(ops))))
	tbl.AppendHeader(table.Row{"Implementation", "Elapsed", "Per op", "Final size"})
	for _, t := range timings {
		tbl.AppendRow(table.Row{
			t.Name,
			t.Elapsed.String(),
			t.PerOp(ops).String(),
			humanize.Comma(int64(t.FinalLen)),
		})
	}
	tbl.Render()
}
