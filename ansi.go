package ascii

import (
	"fmt"
	"io"
)

const ESC = "\u001b"

// The renderer needs exactly six terminal primitives: clear-all,
// move-to-row, move-to-column, 24-bit foreground, color reset, and
// plain character output. Anything fancier belongs to the caller.

// clearAll erases the whole output surface.
func clearAll(w io.Writer) {
	fmt.Fprintf(w, "%s[2J", ESC)
}

// moveToRow positions the cursor on a zero-based terminal row.
func moveToRow(w io.Writer, row int) {
	fmt.Fprintf(w, "%s[%dd", ESC, row+1)
}

// moveToColumn positions the cursor on a zero-based terminal column.
func moveToColumn(w io.Writer, col int) {
	fmt.Fprintf(w, "%s[%dG", ESC, col+1)
}

// setForeground sets the 24-bit foreground color.
func setForeground(w io.Writer, c RGB) {
	fmt.Fprintf(w, "%s[38;2;%d;%d;%dm", ESC, c.R, c.G, c.B)
}

// ResetColor restores the terminal's default colors. Callers should
// emit it once after the final frame.
func ResetColor(w io.Writer) {
	fmt.Fprintf(w, "%s[0m", ESC)
}
