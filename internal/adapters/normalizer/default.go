package normalizer

import (
	"strings"

	"github.com/baditaflorin/go_newsletter_extract/internal/ports"
)

// OCRNormalizer implements the default normalization strategy for OCR output:
// full-width digits become ASCII digits, the ideographic space becomes an
// ASCII space and Windows line endings collapse to a single newline.
// Normalization is pure and idempotent.
type OCRNormalizer struct {
	// foldBullets additionally maps interpunct bullets (・ ･) to spaces.
	// The event pipeline wants this so a leading bullet never glues itself
	// to a title; the item pipeline keeps bullets for list splitting.
	foldBullets bool
}

// NewDefaultNormalizer creates a normalizer that preserves bullet glyphs.
func NewDefaultNormalizer() ports.Normalizer {
	return &OCRNormalizer{}
}

// NewBulletFoldingNormalizer creates a normalizer that also folds interpunct
// bullets into spaces.
func NewBulletFoldingNormalizer() ports.Normalizer {
	return &OCRNormalizer{foldBullets: true}
}

// Normalize canonicalizes raw OCR text.
func (n *OCRNormalizer) Normalize(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		sb.WriteRune(n.mapRune(r))
	}
	return sb.String()
}

func (n *OCRNormalizer) mapRune(r rune) rune {
	switch {
	case r >= '０' && r <= '９':
		// U+FF10..U+FF19 sit at a fixed offset from ASCII digits.
		return r - 0xFEE0
	case r == '　':
		return ' '
	case n.foldBullets && (r == '・' || r == '･'):
		return ' '
	default:
		return r
	}
}
