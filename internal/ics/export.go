package ics

import (
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/baditaflorin/go_newsletter_extract/internal/core/calendarlink"
	"github.com/baditaflorin/go_newsletter_extract/internal/core/domain"
)

// Export serializes an extraction result as an iCalendar document, one VEVENT
// per event. Timed events without a matched end time get a one-hour duration;
// here the end rolls over midnight properly, since iCalendar carries full
// timestamps rather than a single date field. Events whose date does not
// parse are skipped.
func Export(events []domain.ExtractedEvent) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//go_newsletter_extract//JA")

	now := time.Now().UTC()
	for _, ev := range events {
		date, err := time.ParseInLocation("2006-01-02", ev.Date, time.Local)
		if err != nil {
			continue
		}

		ve := cal.AddEvent(ev.ID)
		ve.SetDtStampTime(now)
		ve.SetSummary(ev.Title)
		if ev.Note != "" {
			ve.SetDescription(ev.Note)
		}

		if ev.StartTime == "" {
			ve.SetAllDayStartAt(date)
			ve.SetAllDayEndAt(date.AddDate(0, 0, 1))
			continue
		}

		start := at(date, ev.StartTime)
		ve.SetStartAt(start)
		if ev.EndTime != "" {
			ve.SetEndAt(at(date, ev.EndTime))
		} else {
			ve.SetEndAt(start.Add(time.Hour))
		}
	}

	return cal.Serialize()
}

// at combines a calendar date with an HH:MM fragment.
func at(date time.Time, clock string) time.Time {
	h, m := calendarlink.SplitClock(clock)
	return time.Date(date.Year(), date.Month(), date.Day(), h, m, 0, 0, date.Location())
}
