package logging

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether w is an interactive terminal. Anything exposing an
// Fd method (os.File included) is probed; other writers are never TTYs.
func IsTTY(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// SupportsColor reports whether ANSI color output is appropriate for w.
// NO_COLOR (https://no-color.org) and TERM=dumb both disable color even on
// a terminal.
func SupportsColor(w io.Writer) bool {
	return supportsColor(IsTTY(w))
}

func supportsColor(isTTY bool) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isTTY
}
