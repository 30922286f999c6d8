package event

import "testing"

func TestDateTimeRangeScanner(t *testing.T) {
	s := &dateTimeRangeScanner{}

	matches := s.Scan("5月18日（土）9:00〜15:00 春の運動会")
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d: %+v", len(matches), matches)
	}
	m := matches[0]
	if m.Month != 5 || m.Day != 18 {
		t.Errorf("month/day = %d/%d, want 5/18", m.Month, m.Day)
	}
	if m.StartTime != "9:00" || m.EndTime != "15:00" {
		t.Errorf("times = %q/%q, want raw 9:00/15:00", m.StartTime, m.EndTime)
	}
	if m.Title != "春の運動会" {
		t.Errorf("title = %q, want 春の運動会", m.Title)
	}
}

func TestDateTimeRangeScannerOptionalParts(t *testing.T) {
	s := &dateTimeRangeScanner{}

	tests := []struct {
		name      string
		text      string
		wantStart string
		wantEnd   string
	}{
		{"no time at all", "5月18日（土） 音楽会", "", ""},
		{"start only", "5月18日 10:30 音楽会", "10:30", ""},
		{"kanji clock", "5月18日 9時30分〜12時 音楽会", "9時30分", "12時"},
		{"full-width colon", "5月18日 9：00 音楽会", "9：00", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			matches := s.Scan(tc.text)
			if len(matches) != 1 {
				t.Fatalf("expected 1 match, got %d", len(matches))
			}
			if matches[0].StartTime != tc.wantStart || matches[0].EndTime != tc.wantEnd {
				t.Errorf("times = %q/%q, want %q/%q",
					matches[0].StartTime, matches[0].EndTime, tc.wantStart, tc.wantEnd)
			}
		})
	}
}

func TestTitleLeadingScannerGuards(t *testing.T) {
	s := &titleLeadingScanner{}

	if got := s.Scan("運動会 5月18日（土）9:00"); len(got) != 1 {
		t.Fatalf("plain title should match, got %+v", got)
	}

	// A year preamble must not be mistaken for a title.
	if got := s.Scan("令和七年 5月18日"); len(got) != 0 {
		t.Errorf("candidate containing 年 should be skipped, got %+v", got)
	}
}

func TestBulletedDateScannerMarkers(t *testing.T) {
	s := &bulletedDateScanner{}

	tests := []struct {
		name string
		text string
	}{
		{"middot bullet", "・5月1日 入学式"},
		{"filled circle", "●5月1日 入学式"},
		{"diamond", "◆5月1日 入学式"},
		{"square brackets", "【5月1日】入学式"},
		{"no marker", "5月1日 入学式"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			matches := s.Scan(tc.text)
			if len(matches) != 1 {
				t.Fatalf("expected 1 match, got %d", len(matches))
			}
			if matches[0].Title != "入学式" {
				t.Errorf("title = %q, want 入学式", matches[0].Title)
			}
			if matches[0].Month != 5 || matches[0].Day != 1 {
				t.Errorf("month/day = %d/%d, want 5/1", matches[0].Month, matches[0].Day)
			}
		})
	}
}

func TestDateSpanScannerKeepsStartDay(t *testing.T) {
	s := &dateSpanScanner{}

	matches := s.Scan("6月17日（月）〜21日（金） 個人懇談")
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d: %+v", len(matches), matches)
	}
	if matches[0].Day != 17 {
		t.Errorf("day = %d, want start day 17", matches[0].Day)
	}
	if matches[0].Title != "個人懇談" {
		t.Errorf("title = %q, want 個人懇談", matches[0].Title)
	}
}

func TestBulletedDateScannerNeverHalfMatchesWeekdayBracket(t *testing.T) {
	s := &bulletedDateScanner{}

	// A weekday bracket matches whole or not at all; its glyphs and the range
	// tilde must never end up in a title capture.
	if got := s.Scan("5月18日（土）9:00〜15:00 春の運動会"); len(got) != 0 {
		t.Errorf("time digits follow the weekday, nothing to capture, got %+v", got)
	}
	if got := s.Scan("6月17日（月）〜21日（金） 個人懇談"); len(got) != 0 {
		t.Errorf("range punctuation follows the weekday, nothing to capture, got %+v", got)
	}
}

func TestTitleLeadingScannerStaysOnOneLine(t *testing.T) {
	s := &titleLeadingScanner{}

	if got := s.Scan("5月1日 保護者会\n5月2日 保護者会"); len(got) != 0 {
		t.Errorf("a title must sit on the same line as its date, got %+v", got)
	}
}

func TestParseMonthDay(t *testing.T) {
	tests := []struct {
		mon, day string
		ok       bool
	}{
		{"1", "1", true},
		{"12", "31", true},
		{"0", "5", false},
		{"13", "5", false},
		{"5", "0", false},
		{"5", "32", false},
	}
	for _, tc := range tests {
		if _, _, ok := parseMonthDay(tc.mon, tc.day); ok != tc.ok {
			t.Errorf("parseMonthDay(%s, %s) ok = %v, want %v", tc.mon, tc.day, ok, tc.ok)
		}
	}
}

func TestDefaultScannersOrder(t *testing.T) {
	want := []string{"date_time_range", "title_leading", "bulleted_date", "date_span"}
	scanners := DefaultScanners()
	if len(scanners) != len(want) {
		t.Fatalf("expected %d scanners, got %d", len(want), len(scanners))
	}
	for i, s := range scanners {
		if s.Name() != want[i] {
			t.Errorf("scanner[%d] = %q, want %q", i, s.Name(), want[i])
		}
	}
}
