// Package earlyinit runs before charmbracelet/bubbletea's init() so that
// "codeintel serve" never writes terminal queries into its log stream.
//
// bubbletea's init() calls lipgloss.HasDarkBackground(), which sends OSC 11
// and DSR escape sequences to stdout. A server started on a detached TTY
// (docker run -d -t, systemd with a pty) has nothing to answer them, so they
// show up as garbage in the logs.
//
// This package only imports "os", so Go initializes it before bubbletea.
// When the serve subcommand is detected in os.Args, TERM is set to "dumb"
// and termenv's termStatusReport() bails out early. The original TERM is
// kept so the caller can restore it, and the color profile of the logger,
// once bubbletea's init() has completed.
package earlyinit

import "os"

// Serving is true when the serve subcommand was detected in os.Args.
var Serving bool

// OrigTERM holds the TERM value seen before earlyinit replaced it.
var OrigTERM string

// IsServe reports whether args invoke the serve subcommand.
// Exported for testing; init() calls this with os.Args.
func IsServe(args []string) bool {
	return len(args) >= 2 && args[1] == "serve"
}

// Restore puts the original TERM back. It is a no-op unless init()
// replaced it.
func Restore() {
	if !Serving {
		return
	}
	if OrigTERM == "" {
		os.Unsetenv("TERM")
		return
	}
	os.Setenv("TERM", OrigTERM)
}

func init() {
	Serving = IsServe(os.Args)
	if !Serving {
		return
	}

	// termenv's termStatusReport() checks strings.HasPrefix(term, "dumb")
	// and returns without sending OSC escape sequences.
	OrigTERM = os.Getenv("TERM")
	os.Setenv("TERM", "dumb")
}
