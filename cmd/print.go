package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ANSI colors for terminal output
const (
	ColorReset = "\033[0m"
	ColorGreen = "\033[32m"
	ColorBlue  = "\033[34m"
	ColorBold  = "\033[1m"
)

// status lines go to stderr so they never mix with sample data on stdout
func printSuccess(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "   %s✓%s %s\n", ColorGreen, ColorReset, fmt.Sprintf(format, args...))
}

func printSection(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s%s%s%s\n", ColorBold, ColorBlue, title, ColorReset)
	fmt.Fprintln(w, strings.Repeat("-", len(title)))
}

func printKeyValue(w io.Writer, key, value string) {
	if value == "" {
		fmt.Fprintf(w, "%-35s\n", key)
	} else {
		fmt.Fprintf(w, "%-35s %s\n", key+":", value)
	}
}
