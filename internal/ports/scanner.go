package ports

import (
	"github.com/baditaflorin/go_newsletter_extract/internal/core/domain"
)

// EventScanner is one independent date/title pattern family. Scanners run over
// already-normalized text and report every raw match they find; overlapping
// matches across scanners are resolved later by the orchestrator's dedup key.
type EventScanner interface {
	// Name identifies the pattern family in logs.
	Name() string
	// Scan returns all raw matches in the normalized text.
	Scan(normalized string) []domain.RawMatch
}
