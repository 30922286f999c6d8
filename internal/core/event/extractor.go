package event

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/baditaflorin/go_newsletter_extract/internal/core/domain"
	"github.com/baditaflorin/go_newsletter_extract/internal/ports"
)

// ExtractorConfig holds configuration for the event extractor.
type ExtractorConfig struct {
	// MaxEvents caps the result after sorting, so the kept events are
	// always the chronologically earliest ones.
	MaxEvents int
	// MinTitleRunes is the minimum cleaned title length; shorter matches
	// are dropped silently as OCR noise.
	MinTitleRunes int
}

// DefaultConfig returns a default configuration.
func DefaultConfig() ExtractorConfig {
	return ExtractorConfig{
		MaxEvents:     20,
		MinTitleRunes: 2,
	}
}

// Validate checks if the configuration is valid.
func (c ExtractorConfig) Validate() error {
	if c.MaxEvents <= 0 {
		return errors.New("maxEvents must be greater than 0")
	}
	if c.MinTitleRunes < 1 {
		return errors.New("minTitleRunes must be at least 1")
	}
	return nil
}

// Extractor runs the ordered pattern families over normalized newsletter text
// and merges their raw matches into a deduplicated, sorted, capped event list.
type Extractor struct {
	config     ExtractorConfig
	logger     ports.Logger
	normalizer ports.Normalizer
	ids        ports.IDGenerator
	scanners   []ports.EventScanner
	now        func() time.Time
}

// NewExtractor creates a new event extractor. A nil now falls back to
// time.Now; a nil or empty scanner list falls back to DefaultScanners.
func NewExtractor(config ExtractorConfig, logger ports.Logger, normalizer ports.Normalizer, ids ports.IDGenerator, scanners []ports.EventScanner, now func() time.Time) (*Extractor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if now == nil {
		now = time.Now
	}
	if len(scanners) == 0 {
		scanners = DefaultScanners()
	}

	return &Extractor{
		config:     config,
		logger:     logger,
		normalizer: normalizer,
		ids:        ids,
		scanners:   scanners,
		now:        now,
	}, nil
}

// Extract extracts events using the clock's current year as reference year.
func (e *Extractor) Extract(ctx context.Context, text string) []domain.ExtractedEvent {
	return e.ExtractForYear(ctx, text, e.now().Year())
}

// ExtractForYear extracts events against an explicit reference year. The
// reference month for year-boundary inference always comes from the clock.
// Malformed input never fails: it simply yields fewer or zero events.
func (e *Extractor) ExtractForYear(ctx context.Context, text string, referenceYear int) []domain.ExtractedEvent {
	refMonth := int(e.now().Month())
	e.logger.Debug("starting event extraction",
		"text_len", len(text),
		"reference_year", referenceYear,
		"reference_month", refMonth,
	)

	normalized := e.normalizer.Normalize(text)

	events := make([]domain.ExtractedEvent, 0)
	seen := make(map[string]struct{})

	for _, scanner := range e.scanners {
		select {
		case <-ctx.Done():
			e.logger.Warn("extraction cancelled, returning partial result",
				"error", ctx.Err(),
				"events", len(events),
			)
			return e.finalize(events)
		default:
		}

		matches := scanner.Scan(normalized)
		e.logger.Debug("pattern family scanned",
			"family", scanner.Name(),
			"matches", len(matches),
		)
		for _, m := range matches {
			e.addEvent(&events, seen, m, referenceYear, refMonth)
		}
	}

	events = e.finalize(events)
	e.logger.Info("event extraction completed", "events", len(events))
	return events
}

// addEvent validates and cleans one raw match and appends it unless it is a
// duplicate. The dedup key is (month, day, cleaned title) and deliberately
// ignores the inferred year: the same date mentioned through two pattern
// families must collapse to a single event.
func (e *Extractor) addEvent(events *[]domain.ExtractedEvent, seen map[string]struct{}, m domain.RawMatch, refYear, refMonth int) {
	title := cleanTitle(m.Title)
	if utf8.RuneCountInString(title) < e.config.MinTitleRunes {
		return
	}

	key := fmt.Sprintf("%d/%d/%s", m.Month, m.Day, title)
	if _, dup := seen[key]; dup {
		return
	}
	seen[key] = struct{}{}

	year := inferYear(m.Month, refYear, refMonth)
	*events = append(*events, domain.ExtractedEvent{
		ID:        e.ids.NewID(),
		Title:     title,
		Date:      toDateString(year, m.Month, m.Day),
		StartTime: normalizeClockTime(m.StartTime),
		EndTime:   normalizeClockTime(m.EndTime),
		Icon:      IconFor(title),
	})
}

// finalize sorts by ISO date and truncates to the configured maximum.
func (e *Extractor) finalize(events []domain.ExtractedEvent) []domain.ExtractedEvent {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date < events[j].Date
	})
	if len(events) > e.config.MaxEvents {
		events = events[:e.config.MaxEvents]
	}
	return events
}

var (
	// Go's \s is ASCII-only; the ideographic space must be listed explicitly.
	innerSpaceRe    = regexp.MustCompile(`[\s　]+`)
	trailingPunctRe = regexp.MustCompile(`[。、，,.]$`)
)

// cleanTitle trims a raw title, collapses internal whitespace runs and strips
// a single trailing period or comma (Japanese or ASCII).
func cleanTitle(raw string) string {
	title := strings.TrimSpace(raw)
	title = innerSpaceRe.ReplaceAllString(title, " ")
	return trailingPunctRe.ReplaceAllString(title, "")
}
