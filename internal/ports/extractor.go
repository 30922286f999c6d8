package ports

import (
	"context"

	"github.com/baditaflorin/go_newsletter_extract/internal/core/domain"
)

// EventExtractor defines the interface for extracting calendar events from
// newsletter text.
type EventExtractor interface {
	Extract(ctx context.Context, text string) []domain.ExtractedEvent
	ExtractForYear(ctx context.Context, text string, referenceYear int) []domain.ExtractedEvent
}

// ItemExtractor defines the interface for extracting things-to-bring items
// from newsletter text.
type ItemExtractor interface {
	Extract(ctx context.Context, text string) []domain.ExtractedItem
}
