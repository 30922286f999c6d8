package ports

// Normalizer defines the interface for OCR text normalization.
type Normalizer interface {
	Normalize(text string) string
}
