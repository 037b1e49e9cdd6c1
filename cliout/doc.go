// Package cliout provides output formatting for the pslist command.
//
// # Tables
//
// Table writes rows in fixed-width, left-aligned columns. The header is
// followed by a separator of dashes as wide as the sum of the column widths:
//
//	t := cliout.NewTable(os.Stdout, []cliout.Column{
//	    {Title: "PID", Width: 6},
//	    {Title: "Command", Width: 15},
//	})
//	_ = t.WriteHeader()
//	_ = t.WriteRow("42", "bash")
//
// Columns never truncate. A value longer than its width is written in full and
// shifts the remainder of that row.
//
// # Diagnostics
//
// Error and Warning write a symbol-prefixed message to the given writer. ANSI
// colour is used only when the writer is a terminal (golang.org/x/term) and
// NO_COLOR is unset.
package cliout
