// Package types defines common type-safe enums used across the codebase.
package types

// IndicatorKind groups catalog records by how hosts consume them.
type IndicatorKind string

const (
	// KindBadge is an aggregable badge attached to every result.
	KindBadge IndicatorKind = "badge"
	// KindAlert is a hover alert emitted for the first result only.
	KindAlert IndicatorKind = "alert"
	// KindLegacy is a pre-3.26 badge indicator with an inline icon.
	KindLegacy IndicatorKind = "legacy"
)

// AllIndicatorKinds returns every known kind in catalog order.
func AllIndicatorKinds() []IndicatorKind {
	return []IndicatorKind{KindBadge, KindAlert, KindLegacy}
}

// Valid returns true if the IndicatorKind is a known valid value.
func (k IndicatorKind) Valid() bool {
	return k == KindBadge || k == KindAlert || k == KindLegacy
}

// ParseIndicatorKind converts a CLI or query value to an IndicatorKind.
// Plural forms are accepted. Returns "" and false for anything else.
func ParseIndicatorKind(s string) (IndicatorKind, bool) {
	switch s {
	case "badge", "badges":
		return KindBadge, true
	case "alert", "alerts":
		return KindAlert, true
	case "legacy":
		return KindLegacy, true
	}
	return "", false
}

// IconKind is the icon a host draws next to an alert or legacy badge.
type IconKind string

// IconKindInfo is the only icon kind emitted.
const IconKindInfo IconKind = "info"

// Valid returns true if the IconKind is a known valid value.
func (k IconKind) Valid() bool {
	return k == IconKindInfo
}

// MarkupKind is the format of a hover alert summary.
type MarkupKind string

const (
	MarkupKindPlainText MarkupKind = "plaintext"
	MarkupKindMarkdown  MarkupKind = "markdown"
)

// Valid returns true if the MarkupKind is a known valid value.
func (k MarkupKind) Valid() bool {
	return k == MarkupKindPlainText || k == MarkupKindMarkdown
}

// AlertType identifies a dismissible hover alert. Hosts remember dismissals
// per type, so alerts without a type cannot be dismissed.
type AlertType string

const (
	AlertLSIFAvailableNoCaveat               AlertType = "LSIFAvailableNoCaveat"
	AlertSearchResultExperimentalLSIFSupport AlertType = "SearchResultExperimentalLSIFSupport"
	AlertSearchResultNoLSIFSupport           AlertType = "SearchResultNoLSIFSupport"
)

// Valid returns true if the AlertType is a known value. The empty type is valid.
func (t AlertType) Valid() bool {
	switch t {
	case "", AlertLSIFAvailableNoCaveat, AlertSearchResultExperimentalLSIFSupport, AlertSearchResultNoLSIFSupport:
		return true
	}
	return false
}

// LogLevel is the configured verbosity of the console logger.
type LogLevel string

const (
	LogLevelTrace LogLevel = "trace"
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// Valid returns true for known levels. Empty means the default level.
func (l LogLevel) Valid() bool {
	switch l {
	case "", LogLevelTrace, LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true
	}
	return false
}
