package termio

import (
	"fmt"
	"strings"
)

// TERM_BLACK represents black
const TERM_BLACK = uint(0)

// TERM_RED represents red
const TERM_RED = uint(1)

// TERM_GREEN represents green
const TERM_GREEN = uint(2)

// TERM_YELLOW represents yellow
const TERM_YELLOW = uint(3)

// TERM_BLUE represents blue
const TERM_BLUE = uint(4)

// TERM_MAGENTA represents magenta
const TERM_MAGENTA = uint(5)

// TERM_CYAN represents cyan
const TERM_CYAN = uint(6)

// TERM_WHITE represents white
const TERM_WHITE = uint(7)

// AnsiEscape represents an ANSI escape code used for formatting text in a
// terminal, assembled from individual attributes.
type AnsiEscape struct {
	codes []uint
}

// NewAnsiEscape constructs an empty escape.
func NewAnsiEscape() AnsiEscape {
	return AnsiEscape{nil}
}

// ResetAnsiEscape constructs an escape which clears all attributes.
func ResetAnsiEscape() AnsiEscape {
	return AnsiEscape{[]uint{0}}
}

// BoldAnsiEscape constructs an escape for bold text.
func BoldAnsiEscape() AnsiEscape {
	return AnsiEscape{[]uint{1}}
}

// FgColour sets the foreground colour.
func (p AnsiEscape) FgColour(col uint) AnsiEscape {
	return AnsiEscape{append(p.codes, col+30)}
}

// BgColour sets the background colour.
func (p AnsiEscape) BgColour(col uint) AnsiEscape {
	return AnsiEscape{append(p.codes, col+40)}
}

// Build assembles the final escape sequence.
func (p AnsiEscape) Build() string {
	var builder strings.Builder
	//
	builder.WriteString("\033[")
	//
	for i, code := range p.codes {
		if i != 0 {
			builder.WriteString(";")
		}
		//
		fmt.Fprintf(&builder, "%d", code)
	}
	//
	builder.WriteString("m")
	// Done
	return builder.String()
}
