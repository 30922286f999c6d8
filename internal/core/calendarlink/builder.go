package calendarlink

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/baditaflorin/go_newsletter_extract/internal/core/domain"
)

// googleCalendarBase is the Google Calendar event-edit deep link endpoint.
const googleCalendarBase = "https://calendar.google.com/calendar/r/eventedit"

// BuildGoogleLink renders one extracted event as a Google Calendar deep link.
// Timed events get a one-hour default duration when no end time was matched;
// the end hour wraps at midnight without rolling the date, so a 23:00 start
// yields a 00:00 end on the same day. All-day events span date to date+1,
// exclusive end.
func BuildGoogleLink(ev domain.ExtractedEvent) string {
	params := url.Values{}
	params.Set("text", ev.Title)

	dateOnly := strings.ReplaceAll(ev.Date, "-", "")
	if ev.StartTime != "" {
		startDt := dateOnly + "T" + compactClock(ev.StartTime)
		var endDt string
		switch {
		case ev.EndTime != "":
			endDt = dateOnly + "T" + compactClock(ev.EndTime)
		default:
			h, m := SplitClock(ev.StartTime)
			endDt = fmt.Sprintf("%sT%02d%02d00", dateOnly, (h+1)%24, m)
		}
		params.Set("dates", startDt+"/"+endDt)
	} else {
		endDate := dateOnly
		if d, err := time.Parse("2006-01-02", ev.Date); err == nil {
			endDate = d.AddDate(0, 0, 1).Format("20060102")
		}
		params.Set("dates", dateOnly+"/"+endDate)
	}

	if ev.Note != "" {
		params.Set("details", ev.Note)
	}

	return googleCalendarBase + "?" + params.Encode()
}

// weekdayGlyphs is Sunday-first, matching time.Weekday numbering.
var weekdayGlyphs = [7]string{"日", "月", "火", "水", "木", "金", "土"}

// FormatDisplayDate renders an ISO date as "M月D日（曜）". Input that does not
// parse is returned unchanged.
func FormatDisplayDate(dateStr string) string {
	d, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return dateStr
	}
	return fmt.Sprintf("%d月%d日（%s）", int(d.Month()), d.Day(), weekdayGlyphs[int(d.Weekday())])
}

// SplitClock parses an HH:MM fragment into hour and minute, tolerating
// unpadded fields. Unparseable fields count as zero.
func SplitClock(t string) (int, int) {
	hs, ms, _ := strings.Cut(t, ":")
	h, _ := strconv.Atoi(hs)
	m, _ := strconv.Atoi(ms)
	return h, m
}

// compactClock renders an HH:MM fragment as HHMMSS with zero seconds.
func compactClock(t string) string {
	h, m := SplitClock(t)
	return fmt.Sprintf("%02d%02d00", h, m)
}
