package catalog

// FieldIcon maps a detail field name to its icon identifier. Identifiers
// use Lucide icon names (https://lucide.dev) for compatibility with the
// web dashboard.
var FieldIcon = map[string]string{
	"ReportPeriod": "calendar",
	"Target":       "bullseye",
	"Comment":      "message-square",
	"Contributor":  "user",
	"Source":       "link",
}

// Icon returns the icon identifier for a detail field name, or "" when
// the field has no mapped icon.
func Icon(field string) string {
	return FieldIcon[field]
}
