package event

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/baditaflorin/go_newsletter_extract/internal/core/domain"
	"github.com/baditaflorin/go_newsletter_extract/internal/ports"
)

// The four pattern families below run independently over the whole normalized
// text, in the order returned by DefaultScanners. A date mentioned in more
// than one shape is collapsed later by the orchestrator's dedup key, so the
// families never need to coordinate.

// The bracketed weekday is matched as one atomic group and the title classes
// exclude bracket and range glyphs, so a partially consumed weekday can never
// seed a title. The gap in the title-leading family rejects newlines: a title
// belongs to the same line as its date.
var (
	// 5月18日（土）9:00〜15:00　春の運動会
	dateTimeRangeRe = regexp.MustCompile(`(\d{1,2})月(\d{1,2})日(?:[（(][月火水木金土日祝振]?[）)])?\s*(\d{1,2}[:：時]\d{0,2}分?)?(?:[〜~～-](\d{1,2}[:：時]\d{0,2}分?))?\s+([^\n\d。、\[\]【】（）()〜~～]{2,25})`)

	// 運動会 5月18日（土）9:00
	titleLeadingRe = regexp.MustCompile(`([^\n\d。、\[\]【】（）()〜~～]{2,20})[^\S\n]+(\d{1,2})月(\d{1,2})日(?:[（(][月火水木金土日祝振]?[）)])?\s*(\d{1,2}[:：時]\d{0,2}分?)?`)

	// ・5月1日　入学式 / 【5月10日】保護者会
	bulletedDateRe = regexp.MustCompile(`[・●◆▶→\-\*【\[]?\s*(\d{1,2})月(\d{1,2})日[】\]]?\s*(?:[（(][月火水木金土日祝振]?[）)])?\s*([^\n\d。、【】\[\]（）()〜~～]{2,25})`)

	// 6月17日（月）〜21日（金）　個人懇談
	dateSpanRe = regexp.MustCompile(`(\d{1,2})月(\d{1,2})日(?:[（(][月火水木金土日祝振]?[）)])?[〜~～-](\d{1,2})日(?:[（(][月火水木金土日祝振]?[）)])?\s+([^\n\d。、（）()〜~～]{2,25})`)
)

// DefaultScanners returns the pattern families in their fixed priority order.
func DefaultScanners() []ports.EventScanner {
	return []ports.EventScanner{
		&dateTimeRangeScanner{},
		&titleLeadingScanner{},
		&bulletedDateScanner{},
		&dateSpanScanner{},
	}
}

// dateTimeRangeScanner matches a date, an optional weekday, an optional time
// or time range, and a trailing title.
type dateTimeRangeScanner struct{}

func (s *dateTimeRangeScanner) Name() string { return "date_time_range" }

func (s *dateTimeRangeScanner) Scan(normalized string) []domain.RawMatch {
	var out []domain.RawMatch
	for _, m := range dateTimeRangeRe.FindAllStringSubmatch(normalized, -1) {
		mon, day, ok := parseMonthDay(m[1], m[2])
		if !ok {
			continue
		}
		out = append(out, domain.RawMatch{
			Month:     mon,
			Day:       day,
			StartTime: m[3],
			EndTime:   m[4],
			Title:     m[5],
		})
	}
	return out
}

// titleLeadingScanner matches a title followed by a date and an optional
// start time. Candidates containing 年 are skipped so a year preamble
// ("2025年5月...") is never mistaken for a title, as are candidates longer
// than 20 runes.
type titleLeadingScanner struct{}

func (s *titleLeadingScanner) Name() string { return "title_leading" }

func (s *titleLeadingScanner) Scan(normalized string) []domain.RawMatch {
	var out []domain.RawMatch
	for _, m := range titleLeadingRe.FindAllStringSubmatch(normalized, -1) {
		title := m[1]
		if strings.Contains(title, "年") || utf8.RuneCountInString(title) > 20 {
			continue
		}
		mon, day, ok := parseMonthDay(m[2], m[3])
		if !ok {
			continue
		}
		out = append(out, domain.RawMatch{
			Month:     mon,
			Day:       day,
			StartTime: m[4],
			Title:     title,
		})
	}
	return out
}

// bulletedDateScanner matches list-style entries: an optional bullet or
// bracket marker, a date (possibly bracketed), an optional weekday, a title.
type bulletedDateScanner struct{}

func (s *bulletedDateScanner) Name() string { return "bulleted_date" }

func (s *bulletedDateScanner) Scan(normalized string) []domain.RawMatch {
	var out []domain.RawMatch
	for _, m := range bulletedDateRe.FindAllStringSubmatch(normalized, -1) {
		mon, day, ok := parseMonthDay(m[1], m[2])
		if !ok {
			continue
		}
		out = append(out, domain.RawMatch{
			Month: mon,
			Day:   day,
			Title: m[3],
		})
	}
	return out
}

// dateSpanScanner matches a same-month day range. Only the start day is kept
// as the event date; the range end marks the span in the source text but a
// multi-day event stays a single entry.
type dateSpanScanner struct{}

func (s *dateSpanScanner) Name() string { return "date_span" }

func (s *dateSpanScanner) Scan(normalized string) []domain.RawMatch {
	var out []domain.RawMatch
	for _, m := range dateSpanRe.FindAllStringSubmatch(normalized, -1) {
		mon, day, ok := parseMonthDay(m[1], m[2])
		if !ok {
			continue
		}
		out = append(out, domain.RawMatch{
			Month: mon,
			Day:   day,
			Title: m[4],
		})
	}
	return out
}

// parseMonthDay converts matched digit groups and rejects tuples outside the
// calendar range. OCR noise like "13月40日" matches the digit patterns but
// must never become an event.
func parseMonthDay(monStr, dayStr string) (int, int, bool) {
	mon, err := strconv.Atoi(monStr)
	if err != nil || mon < 1 || mon > 12 {
		return 0, 0, false
	}
	day, err := strconv.Atoi(dayStr)
	if err != nil || day < 1 || day > 31 {
		return 0, 0, false
	}
	return mon, day, true
}
