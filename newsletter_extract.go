// newsletter_extract.go
// Package newsletterextract extracts structured data from noisy OCR text of
// Japanese school and daycare newsletters: calendar events (date, optional
// time range, title) and things-to-bring items (name, category). Extraction
// is deterministic pattern matching, tolerant of full-width digits, mixed
// bullet styles and inconsistent spacing; no NLP model is involved.
//
// This package is the convenience facade with default wiring. For custom
// loggers, normalizers, ID generation or warm-up, use pkg/event and pkg/item
// directly.
package newsletterextract

import (
	"context"
	"sync"

	"github.com/baditaflorin/go_newsletter_extract/pkg/calendarlink"
	"github.com/baditaflorin/go_newsletter_extract/pkg/event"
	"github.com/baditaflorin/go_newsletter_extract/pkg/item"
)

// Event is a single extracted calendar event.
type Event = event.Event

// Item is a single extracted thing-to-bring.
type Item = item.Item

var (
	defaultOnce   sync.Once
	defaultEvents *event.Extractor
	defaultItems  *item.Extractor
	defaultErr    error
)

// defaults wires the shared default extractors once. Extraction itself is
// stateless, so one instance serves concurrent callers.
func defaults() (*event.Extractor, *item.Extractor, error) {
	defaultOnce.Do(func() {
		defaultEvents, defaultErr = event.New()
		if defaultErr != nil {
			return
		}
		defaultItems, defaultErr = item.New()
	})
	return defaultEvents, defaultItems, defaultErr
}

// ExtractEvents extracts at most 20 events from text, sorted by date, using
// the current year as reference year. Malformed input yields fewer or zero
// events, never an error; the error return covers default wiring only.
func ExtractEvents(ctx context.Context, text string) ([]Event, error) {
	events, _, err := defaults()
	if err != nil {
		return nil, err
	}
	return events.Extract(ctx, text), nil
}

// ExtractEventsForYear extracts events against an explicit reference year.
func ExtractEventsForYear(ctx context.Context, text string, referenceYear int) ([]Event, error) {
	events, _, err := defaults()
	if err != nil {
		return nil, err
	}
	return events.ExtractForYear(ctx, text, referenceYear), nil
}

// ExtractItems extracts at most 20 things-to-bring items from text in
// discovery order.
func ExtractItems(ctx context.Context, text string) ([]Item, error) {
	_, items, err := defaults()
	if err != nil {
		return nil, err
	}
	return items.Extract(ctx, text), nil
}

// BuildCalendarLink renders one extracted event as a Google Calendar
// deep-link URL.
func BuildCalendarLink(ev Event) string {
	return calendarlink.BuildGoogleLink(ev)
}

// FormatDisplayDate renders an ISO YYYY-MM-DD date as "M月D日（曜）".
func FormatDisplayDate(dateStr string) string {
	return calendarlink.FormatDisplayDate(dateStr)
}
