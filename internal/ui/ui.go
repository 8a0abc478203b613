// Package ui renders composed report lines next to the decorative logo
// block. The pairing logic is pure so it can be tested without a terminal.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Logo block dimensions; every row is exactly LogoWidth characters so the
// report lines all start in the same column.
const (
	LogoHeight = 9
	LogoWidth  = 32
)

var logo = [LogoHeight]string{
	"       :#.                      ",
	"       :#-:****************+    ",
	"         -::::::::.......:::    ",
	"   .#*               -**=:.     ",
	"    #-::            =%%=:.      ",
	"     --::.        :*%#::        ",
	"       -:::.    .=%%-:          ",
	"         :::=######:.           ",
	"          .::::::..             ",
}

// Styles
var (
	logoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
)

// Pair joins report lines with decorative block rows: line i follows block
// row i while both exist, block rows past the last line are emitted bare,
// and lines past the last block row are indented by the block width.
func Pair(block []string, width int, lines []string) []string {
	n := len(lines)
	if len(block) > n {
		n = len(block)
	}
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		switch {
		case i < len(block) && i < len(lines):
			out = append(out, block[i]+lines[i])
		case i < len(lines):
			out = append(out, strings.Repeat(" ", width)+lines[i])
		default:
			out = append(out, block[i])
		}
	}
	return out
}

// Render writes the paired report framed by one blank line on each side.
// Styling touches only the logo rows and the user@host header; pairing math
// runs on the unstyled strings so escape codes never skew alignment.
func Render(w io.Writer, lines []string, noColor bool) {
	block := make([]string, LogoHeight)
	for i, row := range logo {
		if noColor {
			block[i] = row
		} else {
			block[i] = logoStyle.Render(row)
		}
	}

	display := make([]string, len(lines))
	copy(display, lines)
	if len(display) > 0 && !noColor {
		display[0] = headerStyle.Render(display[0])
	}

	fmt.Fprintln(w)
	for _, line := range Pair(block, LogoWidth, display) {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w)
}
