//go:build notui

package indicatorlist

import (
	"os"

	"github.com/AgentShepherd/codeintel/internal/indicators"
)

// Render displays entries as plain text (no interactivity in notui build).
func Render(entries []indicators.Entry) error {
	return RenderPlain(os.Stdout, entries)
}
