package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/upmtools/upmpack/pkg/domain/model"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warnColor    = color.New(color.FgYellow)
	successColor = color.New(color.FgGreen, color.Bold)
	headerColor  = color.New(color.FgCyan)
)

// printLog writes an operation log, highlighting failures and outcomes
func printLog(w io.Writer, lines []string) {
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "Error"),
			strings.HasPrefix(trimmed, "invalid"),
			strings.Contains(trimmed, "canceling"),
			strings.Contains(trimmed, "canceled"):
			_, _ = errorColor.Fprintln(w, line)
		case strings.HasPrefix(trimmed, "warning"):
			_, _ = warnColor.Fprintln(w, line)
		case strings.HasSuffix(trimmed, "complete!"), trimmed == "Validation passed":
			_, _ = successColor.Fprintln(w, line)
		case strings.HasSuffix(trimmed, "..."):
			_, _ = headerColor.Fprintln(w, line)
		default:
			_, _ = fmt.Fprintln(w, line)
		}
	}
}

// printViolations writes one line per violation with a prefix
func printViolations(w io.Writer, prefix string, c *color.Color, violations []model.Violation) {
	for _, v := range violations {
		_, _ = c.Fprintf(w, "%s %s\n", prefix, v)
	}
}
