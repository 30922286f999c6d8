package calendarlink

import (
	"net/url"
	"strings"
	"testing"

	"github.com/baditaflorin/go_newsletter_extract/internal/core/domain"
)

// parseLink splits a built link into its base URL and decoded query values.
func parseLink(t *testing.T, link string) (string, url.Values) {
	t.Helper()
	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("built link does not parse: %v", err)
	}
	return u.Scheme + "://" + u.Host + u.Path, u.Query()
}

func TestBuildGoogleLinkTimedEvent(t *testing.T) {
	link := BuildGoogleLink(domain.ExtractedEvent{
		Title:     "春の運動会",
		Date:      "2025-05-18",
		StartTime: "09:00",
		EndTime:   "15:00",
	})

	base, q := parseLink(t, link)
	if base != "https://calendar.google.com/calendar/r/eventedit" {
		t.Errorf("base = %q", base)
	}
	if got := q.Get("text"); got != "春の運動会" {
		t.Errorf("text = %q, want 春の運動会", got)
	}
	if got := q.Get("dates"); got != "20250518T090000/20250518T150000" {
		t.Errorf("dates = %q, want 20250518T090000/20250518T150000", got)
	}
	if q.Has("details") {
		t.Errorf("unexpected details param: %q", q.Get("details"))
	}
}

func TestBuildGoogleLinkDefaultDuration(t *testing.T) {
	link := BuildGoogleLink(domain.ExtractedEvent{
		Title:     "保護者会",
		Date:      "2025-06-17",
		StartTime: "10:30",
	})

	_, q := parseLink(t, link)
	if got := q.Get("dates"); got != "20250617T103000/20250617T113000" {
		t.Errorf("dates = %q, want one-hour default duration", got)
	}
}

// The one-hour default wraps the hour at midnight without advancing the date.
func TestBuildGoogleLinkMidnightWrap(t *testing.T) {
	link := BuildGoogleLink(domain.ExtractedEvent{
		Title:     "夜間開放",
		Date:      "2025-06-17",
		StartTime: "23:30",
	})

	_, q := parseLink(t, link)
	if got := q.Get("dates"); got != "20250617T233000/20250617T003000" {
		t.Errorf("dates = %q, want hour wrapped to 00 on the same date", got)
	}
}

func TestBuildGoogleLinkAllDay(t *testing.T) {
	link := BuildGoogleLink(domain.ExtractedEvent{
		Title: "終業式",
		Date:  "2025-07-31",
	})

	_, q := parseLink(t, link)
	if got := q.Get("dates"); got != "20250731/20250801" {
		t.Errorf("dates = %q, want exclusive next-day end", got)
	}
}

func TestBuildGoogleLinkDetails(t *testing.T) {
	link := BuildGoogleLink(domain.ExtractedEvent{
		Title: "遠足",
		Date:  "2025-05-02",
		Note:  "雨天中止",
	})

	_, q := parseLink(t, link)
	if got := q.Get("details"); got != "雨天中止" {
		t.Errorf("details = %q, want 雨天中止", got)
	}
}

func TestFormatDisplayDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2025-05-18", "5月18日（日）"},
		{"2025-06-17", "6月17日（火）"},
		{"2025-01-01", "1月1日（水）"},
		{"not-a-date", "not-a-date"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := FormatDisplayDate(tc.in); got != tc.want {
			t.Errorf("FormatDisplayDate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSplitClock(t *testing.T) {
	tests := []struct {
		in   string
		h, m int
	}{
		{"09:00", 9, 0},
		{"9:30", 9, 30},
		{"23:59", 23, 59},
		{"", 0, 0},
		{"abc", 0, 0},
	}
	for _, tc := range tests {
		h, m := SplitClock(tc.in)
		if h != tc.h || m != tc.m {
			t.Errorf("SplitClock(%q) = %d:%d, want %d:%d", tc.in, h, m, tc.h, tc.m)
		}
	}
}

func TestBuildGoogleLinkEscapesQuery(t *testing.T) {
	link := BuildGoogleLink(domain.ExtractedEvent{
		Title:     "運動会",
		Date:      "2025-05-18",
		StartTime: "09:00",
		EndTime:   "15:00",
	})
	if strings.ContainsAny(link, " \n") {
		t.Errorf("link contains raw whitespace: %q", link)
	}
}
