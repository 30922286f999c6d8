// Package calendarlink turns extracted events into calendar artifacts: a
// Google Calendar deep link, a display date string and an iCalendar export.
// Everything here is pure formatting; no extraction logic.
package calendarlink

import (
	"github.com/baditaflorin/go_newsletter_extract/internal/core/calendarlink"
	"github.com/baditaflorin/go_newsletter_extract/internal/core/domain"
	"github.com/baditaflorin/go_newsletter_extract/internal/ics"
)

// Event is a single calendar event extracted from newsletter text.
type Event = domain.ExtractedEvent

// BuildGoogleLink renders one extracted event as a Google Calendar deep-link
// URL with `text`, `dates` and optional `details` query parameters.
func BuildGoogleLink(ev Event) string {
	return calendarlink.BuildGoogleLink(ev)
}

// FormatDisplayDate renders an ISO YYYY-MM-DD date as "M月D日（曜）".
func FormatDisplayDate(dateStr string) string {
	return calendarlink.FormatDisplayDate(dateStr)
}

// ExportICS serializes an extraction result as an iCalendar document with one
// VEVENT per event.
func ExportICS(events []Event) string {
	return ics.Export(events)
}
