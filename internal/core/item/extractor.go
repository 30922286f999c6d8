package item

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/baditaflorin/go_newsletter_extract/internal/core/domain"
	"github.com/baditaflorin/go_newsletter_extract/internal/ports"
)

// ExtractorConfig holds configuration for the item extractor.
type ExtractorConfig struct {
	// MaxItems caps the result in discovery order.
	MaxItems int
	// MinNameRunes / MaxNameRunes bound the cleaned name length, both
	// inclusive. Candidates outside the bounds are dropped silently.
	MinNameRunes int
	MaxNameRunes int
}

// DefaultConfig returns a default configuration.
func DefaultConfig() ExtractorConfig {
	return ExtractorConfig{
		MaxItems:     20,
		MinNameRunes: 2,
		MaxNameRunes: 20,
	}
}

// Validate checks if the configuration is valid.
func (c ExtractorConfig) Validate() error {
	if c.MaxItems <= 0 {
		return errors.New("maxItems must be greater than 0")
	}
	if c.MinNameRunes < 1 {
		return errors.New("minNameRunes must be at least 1")
	}
	if c.MaxNameRunes < c.MinNameRunes {
		return errors.New("maxNameRunes must not be smaller than minNameRunes")
	}
	return nil
}

var (
	// 持ち物： section heading followed by up to 15 body lines.
	sectionRe = regexp.MustCompile(`(?:持ち物|準備物|必要なもの|用意するもの|お道具|持参|ご用意|準備品)[：:】]?\s*\n?((?:[^\n]+\n?){1,15})`)

	// Separators that split one body line into candidate phrases.
	separatorRe = regexp.MustCompile(`[、，,・●◆▶]+`)

	// A bulleted run anywhere in the text, bullet to next bullet/newline.
	bulletRunRe = regexp.MustCompile(`[・●◆]([^\n・●◆]{2,15})`)

	// Leading bullet/numbering decorations on a candidate.
	leadingMarkRe = regexp.MustCompile(`^[・●◆▶→\-\*①②③④⑤⑥⑦⑧⑨⑩\d.)）]+\s*`)

	// A fully parenthesized annotation (size, brand, count).
	parentheticalRe = regexp.MustCompile(`[（(][^)）]*[)）]`)
)

// standaloneKeywordRes holds one pre-built matcher per known item keyword,
// requiring the keyword to stand alone between whitespace/punctuation
// boundaries. Used only by the fallback strategy.
var standaloneKeywordRes = buildStandaloneKeywordRes()

func buildStandaloneKeywordRes() map[string]*regexp.Regexp {
	res := make(map[string]*regexp.Regexp, len(itemIcons))
	for _, r := range itemIcons {
		res[r.keyword] = regexp.MustCompile(`(?:^|[\s、。\n])` + regexp.QuoteMeta(r.keyword) + `(?:[\s、。\n]|$)`)
	}
	return res
}

// Extractor locates things-to-bring sections and bullet lists in normalized
// newsletter text and turns them into a deduplicated, capped item list.
type Extractor struct {
	config     ExtractorConfig
	logger     ports.Logger
	normalizer ports.Normalizer
	ids        ports.IDGenerator
}

// NewExtractor creates a new item extractor.
func NewExtractor(config ExtractorConfig, logger ports.Logger, normalizer ports.Normalizer, ids ports.IDGenerator) (*Extractor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Extractor{
		config:     config,
		logger:     logger,
		normalizer: normalizer,
		ids:        ids,
	}, nil
}

// Extract extracts items to bring. Section-anchored discovery and the
// bullet-anywhere scan both always run; the whole-text keyword fallback only
// fires when they found nothing. Malformed input never fails.
func (e *Extractor) Extract(ctx context.Context, text string) []domain.ExtractedItem {
	e.logger.Debug("starting item extraction", "text_len", len(text))

	normalized := e.normalizer.Normalize(text)

	items := make([]domain.ExtractedItem, 0)
	seen := make(map[string]struct{})

	e.scanSections(normalized, &items, seen)

	select {
	case <-ctx.Done():
		e.logger.Warn("extraction cancelled, returning partial result",
			"error", ctx.Err(),
			"items", len(items),
		)
		return e.cap(items)
	default:
	}

	e.scanBulletRuns(normalized, &items, seen)

	if len(items) == 0 {
		e.scanKeywords(normalized, &items, seen)
	}

	items = e.cap(items)
	e.logger.Info("item extraction completed", "items", len(items))
	return items
}

// scanSections finds heading keywords, captures the following section body
// and splits each line on list separators.
func (e *Extractor) scanSections(normalized string, items *[]domain.ExtractedItem, seen map[string]struct{}) {
	sections := sectionRe.FindAllStringSubmatch(normalized, -1)
	e.logger.Debug("item sections located", "sections", len(sections))

	for _, m := range sections {
		for _, line := range strings.Split(m[1], "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			for _, phrase := range separatorRe.Split(line, -1) {
				if utf8.RuneCountInString(strings.TrimSpace(phrase)) > 1 {
					e.addItem(items, seen, phrase)
				}
			}
		}
	}
}

// scanBulletRuns picks up bulleted candidates regardless of section context.
func (e *Extractor) scanBulletRuns(normalized string, items *[]domain.ExtractedItem, seen map[string]struct{}) {
	for _, m := range bulletRunRe.FindAllStringSubmatch(normalized, -1) {
		e.addItem(items, seen, m[1])
	}
}

// scanKeywords is the fallback: known item keywords appearing as standalone
// tokens anywhere in the text, in table-declaration order.
func (e *Extractor) scanKeywords(normalized string, items *[]domain.ExtractedItem, seen map[string]struct{}) {
	e.logger.Debug("no structured items found, falling back to keyword scan")
	for _, r := range itemIcons {
		if standaloneKeywordRes[r.keyword].MatchString(normalized) {
			e.addItem(items, seen, r.keyword)
		}
	}
}

// addItem cleans one candidate and appends it unless it is out of bounds or
// already present. Names compare by exact string equality after cleanup.
func (e *Extractor) addItem(items *[]domain.ExtractedItem, seen map[string]struct{}, raw string) {
	name := cleanName(raw)
	n := utf8.RuneCountInString(name)
	if n < e.config.MinNameRunes || n > e.config.MaxNameRunes {
		return
	}
	if _, dup := seen[name]; dup {
		return
	}
	seen[name] = struct{}{}

	*items = append(*items, domain.ExtractedItem{
		ID:       e.ids.NewID(),
		Name:     name,
		Category: CategoryFor(name),
		Icon:     IconFor(name),
	})
}

func (e *Extractor) cap(items []domain.ExtractedItem) []domain.ExtractedItem {
	if len(items) > e.config.MaxItems {
		return items[:e.config.MaxItems]
	}
	return items
}

// cleanName strips leading bullet/numbering decorations and parenthesized
// annotations from a candidate name.
func cleanName(raw string) string {
	name := strings.TrimSpace(raw)
	name = leadingMarkRe.ReplaceAllString(name, "")
	name = parentheticalRe.ReplaceAllString(name, "")
	return strings.TrimSpace(name)
}
