// Package cliout provides output formatting for the pslist command: fixed-width
// tables for stdout and coloured diagnostics for stderr.
package cliout

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI color codes for consistent styling
const (
	Reset        = "\033[0m"
	BrightRed    = "\033[91m"
	BrightYellow = "\033[93m"
)

// Symbols prefixed to diagnostics.
const (
	SymbolCross   = "✗"
	SymbolWarning = "⚠"
)

// EnvNoColor disables colour when set to any value (https://no-color.org).
const EnvNoColor = "NO_COLOR"

// ColorEnabled reports whether w is a terminal that should receive ANSI colour.
func ColorEnabled(w io.Writer) bool {
	if _, ok := os.LookupEnv(EnvNoColor); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func paint(w io.Writer, color, symbol, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if ColorEnabled(w) {
		fmt.Fprintf(w, "%s%s%s %s\n", color, symbol, Reset, msg)
		return
	}
	fmt.Fprintf(w, "%s %s\n", symbol, msg)
}

// Error prints an error message with a red cross.
func Error(w io.Writer, format string, args ...interface{}) {
	paint(w, BrightRed, SymbolCross, format, args...)
}

// Warning prints a warning message with a yellow triangle.
func Warning(w io.Writer, format string, args ...interface{}) {
	paint(w, BrightYellow, SymbolWarning, format, args...)
}

// Column is one fixed-width table column.
type Column struct {
	Title string
	Width int
}

// Table writes left-aligned fixed-width rows. Values wider than their column
// are written in full and push the rest of the row to the right.
type Table struct {
	w       io.Writer
	columns []Column
}

// NewTable creates a table writing to w.
func NewTable(w io.Writer, columns []Column) *Table {
	return &Table{w: w, columns: columns}
}

// Width returns the sum of the column widths.
func (t *Table) Width() int {
	total := 0
	for _, c := range t.columns {
		total += c.Width
	}
	return total
}

// WriteHeader writes the column titles and a dashed separator as wide as the table.
func (t *Table) WriteHeader() error {
	titles := make([]string, len(t.columns))
	for i, c := range t.columns {
		titles[i] = c.Title
	}
	if err := t.WriteRow(titles...); err != nil {
		return err
	}
	_, err := fmt.Fprintln(t.w, strings.Repeat("-", t.Width()))
	return err
}

// WriteRow writes one row. values must match the columns one to one.
func (t *Table) WriteRow(values ...string) error {
	if len(values) != len(t.columns) {
		return fmt.Errorf("row has %d values, table has %d columns", len(values), len(t.columns))
	}

	var b strings.Builder
	for i, c := range t.columns {
		fmt.Fprintf(&b, "%-*s", c.Width, values[i])
	}
	b.WriteByte('\n')

	_, err := io.WriteString(t.w, b.String())
	return err
}
