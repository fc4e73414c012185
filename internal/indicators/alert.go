package indicators

import (
	"fmt"

	"github.com/AgentShepherd/codeintel/internal/types"
)

// AlertSpec describes a hover alert before links are attached.
type AlertSpec struct {
	Type         types.AlertType
	Message      string
	HoverMessage string
}

// NewAlert builds a hover alert. The legacy badge field duplicates the
// tooltip for hosts that predate hover alerts; newer hosts ignore it.
func NewAlert(spec AlertSpec, links Links) HoverAlert {
	return HoverAlert{
		Type:     spec.Type,
		IconKind: types.IconKindInfo,
		Summary: MarkupContent{
			Kind:  types.MarkupKindMarkdown,
			Value: fmt.Sprintf("%s<br /> [Learn more about precise code intelligence](%s)", spec.Message, links.Precise),
		},
		Badge: LegacyBadge{
			Kind:         types.IconKindInfo,
			LinkURL:      links.Precise,
			HoverMessage: spec.HoverMessage,
		},
	}
}
