// Package completion provides CLI tab-completion for codeintel.
//
// The binary itself handles completions: when invoked with COMP_LINE set
// (by the shell), it outputs matching completions and exits.
// Works across bash, zsh, and fish with a one-time install.
//
// This package has no TUI dependency. User-facing output is handled by
// the caller in main.go.
package completion

import (
	"os"

	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/install"
	"github.com/posener/complete/v2/predict"

	"github.com/AgentShepherd/codeintel/internal/indicators"
)

// Name is the binary name completions are registered for.
const Name = "codeintel"

var kinds = predict.Set{"badge", "alert", "legacy"}

// indicatorNames predicts every name in the default catalog.
func indicatorNames() predict.Set {
	entries := indicators.DefaultCatalog().Entries()
	names := make(predict.Set, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return names
}

// Command returns the full codeintel CLI completion tree.
func Command() *complete.Command {
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"serve": {
				Flags: map[string]complete.Predictor{
					"config":         predict.Files("*.yaml"),
					"port":           predict.Nothing,
					"listen-address": predict.Nothing,
					"log-level":      predict.Set{"trace", "debug", "info", "warn", "error"},
					"no-color":       predict.Nothing,
					"no-watch":       predict.Nothing,
				},
			},
			"init": {
				Flags: map[string]complete.Predictor{
					"config": predict.Files("*.yaml"),
					"force":  predict.Nothing,
				},
			},
			"list": {
				Flags: map[string]complete.Predictor{
					"config": predict.Files("*.yaml"),
					"kind":   kinds,
					"json":   predict.Nothing,
					"plain":  predict.Nothing,
				},
			},
			"show": {
				Flags: map[string]complete.Predictor{
					"config": predict.Files("*.yaml"),
					"kind":   kinds,
				},
				Args: indicatorNames(),
			},
			"icon": {
				Flags: map[string]complete.Predictor{
					"config": predict.Files("*.yaml"),
					"color":  predict.Something,
					"light":  predict.Nothing,
					"decode": predict.Nothing,
					"svg":    predict.Nothing,
				},
			},
			"version":    {Flags: map[string]complete.Predictor{"json": predict.Nothing}},
			"help":       {},
			"completion": {Flags: map[string]complete.Predictor{"install": predict.Nothing, "uninstall": predict.Nothing}},
		},
	}
}

// Run checks if the binary was invoked for shell completion.
// If COMP_LINE is set, it outputs completions and exits (never returns).
// Otherwise it returns false and the program continues normally.
func Run() bool {
	if os.Getenv("COMP_LINE") != "" || os.Getenv("COMP_INSTALL") != "" || os.Getenv("COMP_UNINSTALL") != "" {
		Command().Complete(Name)
		return true
	}
	return false
}

// Install sets up shell completion for the detected shells.
// Returns nil on success. The caller handles user-facing output.
func Install() error {
	return install.Install(Name)
}

// Uninstall removes shell completion for the detected shells.
// Returns nil on success. The caller handles user-facing output.
func Uninstall() error {
	return install.Uninstall(Name)
}

// IsInstalled reports whether shell completion is already set up.
func IsInstalled() bool {
	return install.IsInstalled(Name)
}
