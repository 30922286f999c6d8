package event

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/baditaflorin/go_newsletter_extract/internal/adapters/idgen"
	"github.com/baditaflorin/go_newsletter_extract/internal/adapters/logger"
	"github.com/baditaflorin/go_newsletter_extract/internal/adapters/normalizer"
)

// newTestExtractor wires an extractor with a fixed clock, deterministic IDs
// and a silent logger.
func newTestExtractor(t *testing.T, clock time.Time) *Extractor {
	t.Helper()
	ex, err := NewExtractor(
		DefaultConfig(),
		logger.NewNopLogger(),
		normalizer.NewBulletFoldingNormalizer(),
		idgen.NewSequentialGenerator("ev-"),
		nil,
		func() time.Time { return clock },
	)
	if err != nil {
		t.Fatalf("NewExtractor: %v", err)
	}
	return ex
}

// june2025 keeps tests away from the Nov/Dec year-boundary rules.
var june2025 = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func TestExtractDateTimeRangeWithTitle(t *testing.T) {
	ex := newTestExtractor(t, june2025)

	events := ex.ExtractForYear(context.Background(), "5月18日（土）9:00〜15:00　春の運動会", 2025)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d: %+v", len(events), events)
	}

	ev := events[0]
	if ev.Title != "春の運動会" {
		t.Errorf("title = %q, want 春の運動会", ev.Title)
	}
	if ev.Date != "2025-05-18" {
		t.Errorf("date = %q, want 2025-05-18", ev.Date)
	}
	if ev.StartTime != "09:00" {
		t.Errorf("startTime = %q, want 09:00", ev.StartTime)
	}
	if ev.EndTime != "15:00" {
		t.Errorf("endTime = %q, want 15:00", ev.EndTime)
	}
	if ev.Icon != "🏃" {
		t.Errorf("icon = %q, want 🏃", ev.Icon)
	}
	if ev.ID == "" {
		t.Error("expected a non-empty ID")
	}
}

func TestExtractDateSpanKeepsStartDayOnly(t *testing.T) {
	ex := newTestExtractor(t, june2025)

	events := ex.ExtractForYear(context.Background(), "6月17日（月）〜21日（金）　個人懇談", 2025)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d: %+v", len(events), events)
	}

	ev := events[0]
	if ev.Date != "2025-06-17" {
		t.Errorf("date = %q, want 2025-06-17", ev.Date)
	}
	if ev.Title != "個人懇談" {
		t.Errorf("title = %q, want 個人懇談", ev.Title)
	}
	if ev.Icon != "💬" {
		t.Errorf("icon = %q, want 💬", ev.Icon)
	}
}

func TestExtractPatternVariants(t *testing.T) {
	ex := newTestExtractor(t, june2025)

	tests := []struct {
		name      string
		text      string
		wantDate  string
		wantTitle string
	}{
		{
			name:      "bulleted single date",
			text:      "・5月1日　入学式",
			wantDate:  "2025-05-01",
			wantTitle: "入学式",
		},
		{
			name:      "bracketed date",
			text:      "【5月10日】保護者会",
			wantDate:  "2025-05-10",
			wantTitle: "保護者会",
		},
		{
			name:      "title leading",
			text:      "避難訓練 6月20日（金）10時30分",
			wantDate:  "2025-06-20",
			wantTitle: "避難訓練",
		},
		{
			name:      "full-width digits",
			text:      "５月１８日（土）　音楽会",
			wantDate:  "2025-05-18",
			wantTitle: "音楽会",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			events := ex.ExtractForYear(context.Background(), tc.text, 2025)
			if len(events) == 0 {
				t.Fatalf("expected at least 1 event for %q", tc.text)
			}
			if events[0].Date != tc.wantDate {
				t.Errorf("date = %q, want %q", events[0].Date, tc.wantDate)
			}
			if events[0].Title != tc.wantTitle {
				t.Errorf("title = %q, want %q", events[0].Title, tc.wantTitle)
			}
		})
	}
}

func TestExtractDeduplicatesRepeatedMention(t *testing.T) {
	ex := newTestExtractor(t, june2025)

	text := "5月18日（土）9:00〜15:00　運動会\nお知らせ\n5月18日（土）9:00〜15:00　運動会"
	events := ex.ExtractForYear(context.Background(), text, 2025)

	count := 0
	for _, ev := range events {
		if ev.Title == "運動会" && ev.Date == "2025-05-18" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected exactly 1 運動会 event, got %d (all: %+v)", count, events)
	}
}

func TestExtractYearBoundaryInference(t *testing.T) {
	tests := []struct {
		name     string
		refMonth time.Month
		text     string
		wantDate string
	}{
		{
			name:     "december newsletter, february event rolls forward",
			refMonth: time.December,
			text:     "・2月10日　発表会",
			wantDate: "2025-02-10",
		},
		{
			name:     "december newsletter, june event stays",
			refMonth: time.December,
			text:     "・6月10日　発表会",
			wantDate: "2024-06-10",
		},
		{
			name:     "november newsletter, january event rolls forward",
			refMonth: time.November,
			text:     "・1月10日　発表会",
			wantDate: "2025-01-10",
		},
		{
			name:     "november newsletter, february event stays",
			refMonth: time.November,
			text:     "・2月10日　発表会",
			wantDate: "2024-02-10",
		},
		{
			name:     "june newsletter, february event stays",
			refMonth: time.June,
			text:     "・2月10日　発表会",
			wantDate: "2024-02-10",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clock := time.Date(2024, tc.refMonth, 10, 0, 0, 0, 0, time.UTC)
			ex := newTestExtractor(t, clock)
			events := ex.ExtractForYear(context.Background(), tc.text, 2024)
			if len(events) != 1 {
				t.Fatalf("expected 1 event, got %d", len(events))
			}
			if events[0].Date != tc.wantDate {
				t.Errorf("date = %q, want %q", events[0].Date, tc.wantDate)
			}
		})
	}
}

func TestExtractDefaultReferenceYearComesFromClock(t *testing.T) {
	ex := newTestExtractor(t, june2025)

	events := ex.Extract(context.Background(), "・7月5日　七夕まつり")
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Date != "2025-07-05" {
		t.Errorf("date = %q, want 2025-07-05", events[0].Date)
	}
}

func TestExtractTitleLengthBoundary(t *testing.T) {
	ex := newTestExtractor(t, june2025)

	// A single rune is all that precedes the 。, which no title class accepts.
	events := ex.ExtractForYear(context.Background(), "・5月1日　あ。", 2025)
	if len(events) != 0 {
		t.Errorf("1-rune title should be discarded, got %+v", events)
	}

	events = ex.ExtractForYear(context.Background(), "・5月1日　絵本", 2025)
	if len(events) != 1 || events[0].Title != "絵本" {
		t.Errorf("2-rune title should be kept, got %+v", events)
	}
}

func TestExtractRejectsImpossibleDates(t *testing.T) {
	ex := newTestExtractor(t, june2025)

	events := ex.ExtractForYear(context.Background(), "・13月40日　まつり\n・0月0日　まつり", 2025)
	if len(events) != 0 {
		t.Errorf("out-of-range month/day should never become events, got %+v", events)
	}
}

func TestExtractSortsAndCapsAtTwenty(t *testing.T) {
	ex := newTestExtractor(t, june2025)

	var sb strings.Builder
	for day := 25; day >= 1; day-- {
		fmt.Fprintf(&sb, "・6月%d日　保護者会\n", day)
	}
	events := ex.ExtractForYear(context.Background(), sb.String(), 2025)

	if len(events) != 20 {
		t.Fatalf("expected cap of 20 events, got %d", len(events))
	}
	for i := 1; i < len(events); i++ {
		if events[i-1].Date > events[i].Date {
			t.Fatalf("events not sorted: %q > %q", events[i-1].Date, events[i].Date)
		}
	}
	// Truncation happens after sorting, so the earliest dates survive.
	if events[0].Date != "2025-06-01" || events[19].Date != "2025-06-20" {
		t.Errorf("kept range = %q..%q, want 2025-06-01..2025-06-20", events[0].Date, events[19].Date)
	}
}

func TestExtractEmptyInput(t *testing.T) {
	ex := newTestExtractor(t, june2025)

	if events := ex.Extract(context.Background(), ""); len(events) != 0 {
		t.Errorf("empty input should yield no events, got %+v", events)
	}
}

func TestExtractAssignsSequentialIDs(t *testing.T) {
	ex := newTestExtractor(t, june2025)

	events := ex.ExtractForYear(context.Background(), "・5月1日　保護者会\n・5月2日　保護者会", 2025)
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	seen := map[string]bool{}
	for _, ev := range events {
		if !strings.HasPrefix(ev.ID, "ev-") {
			t.Errorf("unexpected ID %q", ev.ID)
		}
		if seen[ev.ID] {
			t.Errorf("duplicate ID %q", ev.ID)
		}
		seen[ev.ID] = true
	}
}

func TestExtractAdjacentDateLinesDoNotBleed(t *testing.T) {
	ex := newTestExtractor(t, june2025)

	events := ex.ExtractForYear(context.Background(), "・5月1日　保護者会\n・5月2日　園庭開放", 2025)
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d: %+v", len(events), events)
	}
	if events[0].Title != "保護者会" || events[1].Title != "園庭開放" {
		t.Errorf("titles = %q, %q; want 保護者会, 園庭開放", events[0].Title, events[1].Title)
	}
	for _, ev := range events {
		if strings.ContainsAny(ev.Title, "（）()〜~") {
			t.Errorf("date-line fragment leaked into title %q", ev.Title)
		}
	}
}

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  春の運動会  ", "春の運動会"},
		{"春の　運動会", "春の 運動会"},
		{"運動会。", "運動会"},
		{"運動会、", "運動会"},
		{"運動会,", "運動会"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := cleanTitle(tc.in); got != tc.want {
			t.Errorf("cleanTitle(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}

	cfg.MaxEvents = 0
	if err := cfg.Validate(); err == nil {
		t.Error("MaxEvents=0 should not validate")
	}

	cfg = DefaultConfig()
	cfg.MinTitleRunes = 0
	if err := cfg.Validate(); err == nil {
		t.Error("MinTitleRunes=0 should not validate")
	}
}
