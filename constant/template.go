// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

// Filename template placeholders substituted when resolving download targets.
const (
	TemplateTitle    = "{title}"
	TemplateID       = "{id}"
	TemplateDate     = "{date}"
	TemplateDuration = "{duration}"
)

// DefaultFilenameTemplate is the out-of-the-box filename pattern for downloads.
const DefaultFilenameTemplate = TemplateTitle
