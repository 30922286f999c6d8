package normalizer

import (
	"strings"
	"unicode/utf8"

	"github.com/baditaflorin/go_newsletter_extract/internal/pool"
	"github.com/baditaflorin/go_newsletter_extract/internal/ports"
)

// OptimizedOCRNormalizer implements the same normalization contract as
// OCRNormalizer with buffer pooling and a byte-level fast path for ASCII-only
// input, where the only possible rewrite is collapsing CRLF.
type OptimizedOCRNormalizer struct {
	foldBullets bool
	bytePool    *pool.BufferPool
}

// NewOptimizedNormalizer creates a new pooled normalizer.
func NewOptimizedNormalizer(foldBullets bool) ports.Normalizer {
	return &OptimizedOCRNormalizer{
		foldBullets: foldBullets,
		bytePool:    pool.NewBufferPool(8192),
	}
}

// Normalize canonicalizes raw OCR text.
func (n *OptimizedOCRNormalizer) Normalize(text string) string {
	// Fast path for empty strings
	if len(text) == 0 {
		return ""
	}

	// Check for ASCII-only string first (optimization)
	asciiOnly := true
	for i := 0; i < len(text); i++ {
		if text[i] >= 128 {
			asciiOnly = false
			break
		}
	}

	if asciiOnly {
		// Full-width digits, ideographic spaces and bullets are all
		// multi-byte, so only the line-ending rewrite can apply.
		return strings.ReplaceAll(text, "\r\n", "\n")
	}

	// Get a reusable buffer from the pool
	buffer := n.bytePool.Get()
	defer n.bytePool.Put(buffer)

	// Ensure the buffer has adequate capacity
	if cap(*buffer) < len(text) {
		*buffer = make([]byte, 0, len(text))
	}
	*buffer = (*buffer)[:0] // Reset length while keeping capacity

	var prev rune
	for _, r := range text {
		switch {
		case r == '\n' && prev == '\r':
			// Collapse CRLF: drop the CR we already emitted.
			*buffer = (*buffer)[:len(*buffer)-1]
			*buffer = append(*buffer, '\n')
		case r >= '０' && r <= '９':
			*buffer = append(*buffer, byte(r-0xFEE0))
		case r == '　':
			*buffer = append(*buffer, ' ')
		case n.foldBullets && (r == '・' || r == '･'):
			*buffer = append(*buffer, ' ')
		default:
			*buffer = utf8.AppendRune(*buffer, r)
		}
		prev = r
	}

	return string(*buffer)
}

// NormalizerFactory creates the appropriate normalizer based on performance requirements
type NormalizerFactory struct{}

// NewNormalizerFactory creates a new normalizer factory
func NewNormalizerFactory() *NormalizerFactory {
	return &NormalizerFactory{}
}

// Type of normalizer to create
type NormalizerType int

const (
	// DefaultNormalizerType is the plain rune-walking normalizer.
	DefaultNormalizerType NormalizerType = iota
	// BulletFoldingNormalizerType additionally folds interpunct bullets.
	BulletFoldingNormalizerType
	// OptimizedNormalizerType uses buffer pooling and an ASCII fast path.
	OptimizedNormalizerType
	// OptimizedBulletFoldingNormalizerType combines pooling with bullet folding.
	OptimizedBulletFoldingNormalizerType
)

// CreateNormalizer creates a normalizer of the specified type
func (f *NormalizerFactory) CreateNormalizer(normalizerType NormalizerType) ports.Normalizer {
	switch normalizerType {
	case BulletFoldingNormalizerType:
		return NewBulletFoldingNormalizer()
	case OptimizedNormalizerType:
		return NewOptimizedNormalizer(false)
	case OptimizedBulletFoldingNormalizerType:
		return NewOptimizedNormalizer(true)
	default:
		return NewDefaultNormalizer()
	}
}
