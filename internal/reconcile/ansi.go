package reconcile

import (
	"regexp"

	"github.com/charmbracelet/x/ansi"
)

// bareSGR catches colour codes whose ESC byte was lost in transit.
var bareSGR = regexp.MustCompile(`\[[0-9]+(?:;[0-9]+)*m`)

// StripFormatting removes terminal escape sequences from a message.
func StripFormatting(msg string) string {
	return bareSGR.ReplaceAllString(ansi.Strip(msg), "")
}
