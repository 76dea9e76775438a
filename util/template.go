package util

import (
	"strings"
	"time"

	"github.com/samber/mo"
	"github.com/vgrab-cli/vgrab/constant"
)

// Metadata carries the resource attributes available during filename resolution.
type Metadata struct {
	Title    string
	ID       string
	Date     mo.Option[time.Time]
	Duration mo.Option[string]
}

// ApplyTemplate expands recognized placeholders in a filename template.
//
// {title} substitutes the sanitized title, {id} the resource identifier,
// {date} the publish date as YYYY-MM-DD (current date when absent) and
// {duration} the duration string (empty when absent).
//
// Unrecognized placeholders pass through verbatim. There is no escaping
// mechanism, which is a known limitation.
func ApplyTemplate(template string, meta Metadata) string {
	date := meta.Date.OrElse(time.Now()).Format("2006-01-02")

	replacer := strings.NewReplacer(
		constant.TemplateTitle, SanitizeFilename(meta.Title),
		constant.TemplateID, meta.ID,
		constant.TemplateDate, date,
		constant.TemplateDuration, meta.Duration.OrEmpty(),
	)
	return replacer.Replace(template)
}
