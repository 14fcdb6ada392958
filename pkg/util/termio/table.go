package termio

import (
	"fmt"
	"io"
)

// TablePrinter is useful for printing tables to the terminal.  Column widths
// are derived from the widest cell seen; individual cells can carry an ANSI
// escape for colour or emphasis.
type TablePrinter struct {
	out           io.Writer
	widths        []uint
	rows          [][]string
	escapes       [][]string
	enableEscapes bool
}

// NewTablePrinter constructs a new table with given dimensions, rendering to
// the given writer.
func NewTablePrinter(out io.Writer, width uint, height uint) *TablePrinter {
	widths := make([]uint, width)
	rows := make([][]string, height)
	escapes := make([][]string, height)
	// Construct the table
	for i := uint(0); i < height; i++ {
		rows[i] = make([]string, width)
		escapes[i] = make([]string, width)
	}

	return &TablePrinter{out, widths, rows, escapes, true}
}

// Set the contents of a given cell in this table
func (p *TablePrinter) Set(col uint, row uint, val string) {
	p.widths[col] = max(p.widths[col], uint(len(val)))
	p.rows[row][col] = val
}

// SetRow sets the contents of an entire row in this table
func (p *TablePrinter) SetRow(row uint, vals ...string) {
	if len(vals) != len(p.widths) {
		panic("incorrect number of columns")
	}
	// Update column widths
	for i := 0; i < len(p.widths); i++ {
		p.widths[i] = max(p.widths[i], uint(len(vals[i])))
	}
	// Done
	p.rows[row] = vals
}

// SetEscape sets the escape to apply when printing the contents of a given
// cell.
func (p *TablePrinter) SetEscape(col uint, row uint, escape AnsiEscape) {
	p.escapes[row][col] = escape.Build()
}

// AnsiEscapes enables or disables the use of ANSI escapes (e.g. for showing
// colour).  Disabling escapes is useful in environments that don't support
// escapes as, otherwise, you get a lot of visible escape characters being
// printed.
func (p *TablePrinter) AnsiEscapes(enable bool) {
	p.enableEscapes = enable
}

// Print the table.
func (p *TablePrinter) Print() {
	for i := 0; i < len(p.rows); i++ {
		row := p.rows[i]
		escapes := p.escapes[i]
		//
		for j, col := range row {
			jth_escape := escapes[j]
			// Print colour (if applicable)
			if p.enableEscapes && jth_escape != "" {
				fmt.Fprint(p.out, jth_escape)
			}
			// Print data
			fmt.Fprintf(p.out, " %*s", int(p.widths[j]), col)
			// Cancel colour (if applicable)
			if p.enableEscapes && jth_escape != "" {
				fmt.Fprint(p.out, ResetAnsiEscape().Build())
			}

			fmt.Fprint(p.out, " |")
		}

		fmt.Fprintln(p.out)
	}
}
