package command

import (
	"bytes"
	"flag"
	"fmt"
	"strings"

	"github.com/kr/text"
)

// maxLineLength is the maximum width of any line.
const maxLineLength int = 72

// Usage renders a command's help slug followed by a formatted listing of its
// flags and their wrapped usage text.
func Usage(txt string, flags *flag.FlagSet) string {
	out := new(bytes.Buffer)

	out.WriteString(strings.TrimSpace(txt))
	out.WriteString("\n\n")

	if flags != nil {
		out.WriteString("Command Options\n\n")
		flags.VisitAll(func(f *flag.Flag) {
			_, _ = fmt.Fprintf(out, "  -%s\n", f.Name)
			_, _ = fmt.Fprintf(out, "%s\n\n", wrapAtLength(f.Usage, 5))
		})
	}

	return strings.TrimRight(out.String(), "\n")
}

// wrapAtLength wraps the given text at the maxLineLength, taking into account
// any provided left padding.
func wrapAtLength(s string, pad int) string {
	wrapped := text.Wrap(s, maxLineLength-pad)
	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		lines[i] = strings.Repeat(" ", pad) + line
	}
	return strings.Join(lines, "\n")
}
