// Package ui provides small terminal widgets for the simplec CLI's token
// and AST displays.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Table represents a simple table for displaying tabular data
type Table struct {
	writer  io.Writer
	headers []string
	rows    [][]string
	noColor bool
}

// TableOptions configures table behavior
type TableOptions struct {
	NoColor bool
}

// NewTable creates a new table with the given headers
func NewTable(w io.Writer, headers []string, opts *TableOptions) *Table {
	noColor := false
	if opts != nil {
		noColor = opts.NoColor
	}

	return &Table{
		writer:  w,
		headers: headers,
		rows:    make([][]string, 0),
		noColor: noColor,
	}
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// Render renders the table to the writer
func (t *Table) Render() {
	if len(t.headers) == 0 {
		return
	}

	// Calculate column widths
	widths := make([]int, len(t.headers))
	for i, header := range t.headers {
		widths[i] = len(header)
	}

	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	// Render header
	bold := color.New(color.Bold, color.FgCyan)
	if t.noColor {
		bold.DisableColor()
	}
	for i, header := range t.headers {
		bold.Fprint(t.writer, padRight(header, widths[i]))
		if i < len(t.headers)-1 {
			fmt.Fprint(t.writer, "  ")
		}
	}
	fmt.Fprintln(t.writer)

	// Render separator
	gray := color.New(color.FgHiBlack)
	if t.noColor {
		gray.DisableColor()
	}
	for i, width := range widths {
		gray.Fprint(t.writer, strings.Repeat("─", width))
		if i < len(widths)-1 {
			gray.Fprint(t.writer, "  ")
		}
	}
	fmt.Fprintln(t.writer)

	// Render rows
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) {
				fmt.Fprint(t.writer, padRight(cell, widths[i]))
				if i < len(row)-1 {
					fmt.Fprint(t.writer, "  ")
				}
			}
		}
		fmt.Fprintln(t.writer)
	}
}

// padRight pads a string with spaces on the right to reach the target width
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// Divider renders a horizontal divider line
func Divider(w io.Writer, width int, noColor bool) {
	if width == 0 {
		width = 80
	}

	gray := color.New(color.FgHiBlack)
	if noColor {
		gray.DisableColor()
	}
	gray.Fprintln(w, strings.Repeat("─", width))
}

// Header renders a styled header
func Header(w io.Writer, title string, noColor bool) {
	bold := color.New(color.Bold, color.FgCyan)
	if noColor {
		bold.DisableColor()
	}
	bold.Fprintln(w, title)
	Divider(w, len(title), noColor)
}
