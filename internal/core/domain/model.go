package domain

// ExtractedEvent is a single calendar event recovered from newsletter text.
type ExtractedEvent struct {
	// ID is an opaque unique identifier assigned at extraction time.
	ID string
	// Title is the cleaned event title (at least 2 runes).
	Title string
	// Date is the concrete event date in ISO YYYY-MM-DD form.
	Date string
	// StartTime and EndTime are optional HH:MM clock times; empty when absent.
	StartTime string
	EndTime   string
	// Note is free text carried through to calendar links as the details field.
	Note string
	// Icon is the display glyph chosen by keyword classification.
	Icon string
}

// ExtractedItem is a single "thing to bring" recovered from newsletter text.
type ExtractedItem struct {
	// ID is an opaque unique identifier assigned at extraction time.
	ID string
	// Name is the cleaned item name (2 to 20 runes).
	Name string
	// Category is one of the fixed category labels (服装/持ち物/飲食/学用品/書類/その他).
	Category string
	// Icon is the display glyph chosen by keyword classification.
	Icon string
}

// RawMatch is the intermediate tuple produced by one pattern family before
// validation, cleanup and deduplication. StartTime/EndTime hold the raw
// matched time fragments (e.g. "9時30分"), not yet normalized.
type RawMatch struct {
	Month     int
	Day       int
	StartTime string
	EndTime   string
	Title     string
}
