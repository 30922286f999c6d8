package event

import (
	"context"
	"time"

	"github.com/baditaflorin/l"

	"github.com/baditaflorin/go_newsletter_extract/internal/adapters/idgen"
	"github.com/baditaflorin/go_newsletter_extract/internal/adapters/logger"
	"github.com/baditaflorin/go_newsletter_extract/internal/adapters/normalizer"
	"github.com/baditaflorin/go_newsletter_extract/internal/core/domain"
	coreevent "github.com/baditaflorin/go_newsletter_extract/internal/core/event"
	"github.com/baditaflorin/go_newsletter_extract/internal/ports"
	"github.com/baditaflorin/go_newsletter_extract/internal/warmup"
)

// Event is a single calendar event extracted from newsletter text.
type Event = domain.ExtractedEvent

// Extractor provides methods to extract calendar events from OCR-derived
// Japanese newsletter text.
type Extractor struct {
	core       ports.EventExtractor
	logger     ports.Logger
	normalizer ports.Normalizer
	warmed     bool
}

// Option defines a functional option for configuring the Extractor.
type Option func(*extractorConfig)

type extractorConfig struct {
	MaxEvents     int
	MinTitleRunes int
	Logger        ports.Logger
	Normalizer    ports.Normalizer
	IDs           ports.IDGenerator
	Scanners      []ports.EventScanner
	Clock         func() time.Time
	WarmUp        bool
	WarmUpConfig  warmup.WarmupConfig
}

// WithMaxEvents sets a custom result cap.
func WithMaxEvents(n int) Option {
	return func(cfg *extractorConfig) {
		cfg.MaxEvents = n
	}
}

// WithMinTitleRunes sets a custom minimum cleaned-title length.
func WithMinTitleRunes(n int) Option {
	return func(cfg *extractorConfig) {
		cfg.MinTitleRunes = n
	}
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) Option {
	return func(cfg *extractorConfig) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// WithNormalizer sets a custom normalizer.
func WithNormalizer(n ports.Normalizer) Option {
	return func(cfg *extractorConfig) {
		cfg.Normalizer = n
	}
}

// WithOptimizedNormalizer sets the buffer-pooled normalizer.
func WithOptimizedNormalizer() Option {
	return func(cfg *extractorConfig) {
		normFactory := normalizer.NewNormalizerFactory()
		cfg.Normalizer = normFactory.CreateNormalizer(normalizer.OptimizedBulletFoldingNormalizerType)
	}
}

// WithIDGenerator sets a custom ID generator.
func WithIDGenerator(g ports.IDGenerator) Option {
	return func(cfg *extractorConfig) {
		cfg.IDs = g
	}
}

// WithDeterministicIDs switches to a sequential ID generator, keeping results
// reproducible across runs.
func WithDeterministicIDs(prefix string) Option {
	return func(cfg *extractorConfig) {
		cfg.IDs = idgen.NewSequentialGenerator(prefix)
	}
}

// WithScanners replaces the default pattern families.
func WithScanners(scanners ...ports.EventScanner) Option {
	return func(cfg *extractorConfig) {
		cfg.Scanners = scanners
	}
}

// WithClock sets the clock used for the default reference year and the
// reference month of year-boundary inference.
func WithClock(now func() time.Time) Option {
	return func(cfg *extractorConfig) {
		cfg.Clock = now
	}
}

// WithWarmUp enables system warm-up on initialization.
func WithWarmUp(enable bool) Option {
	return func(cfg *extractorConfig) {
		cfg.WarmUp = enable
	}
}

// WithWarmUpConfig sets a custom warm-up configuration.
func WithWarmUpConfig(config warmup.WarmupConfig) Option {
	return func(cfg *extractorConfig) {
		cfg.WarmUpConfig = config
		cfg.WarmUp = true
	}
}

// New creates a new event Extractor instance.
func New(opts ...Option) (*Extractor, error) {
	// Default configuration
	defaultConfig := coreevent.DefaultConfig()

	config := &extractorConfig{
		MaxEvents:     defaultConfig.MaxEvents,
		MinTitleRunes: defaultConfig.MinTitleRunes,
		WarmUp:        false,
		WarmUpConfig:  warmup.DefaultWarmupConfig(),
	}

	// Apply options
	for _, opt := range opts {
		opt(config)
	}

	// Set up logger if not provided
	if config.Logger == nil {
		var err error
		config.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}

	// Set up normalizer if not provided; the event pipeline folds bullets
	// so a list marker never glues itself to a title.
	if config.Normalizer == nil {
		config.Normalizer = normalizer.NewBulletFoldingNormalizer()
	}

	// Set up ID generation if not provided
	if config.IDs == nil {
		config.IDs = idgen.NewUUIDGenerator()
	}

	// Create core extractor
	coreConfig := coreevent.ExtractorConfig{
		MaxEvents:     config.MaxEvents,
		MinTitleRunes: config.MinTitleRunes,
	}
	core, err := coreevent.NewExtractor(coreConfig, config.Logger, config.Normalizer, config.IDs, config.Scanners, config.Clock)
	if err != nil {
		return nil, err
	}

	ex := &Extractor{
		core:       core,
		logger:     config.Logger,
		normalizer: config.Normalizer,
		warmed:     false,
	}

	// Perform warm-up if configured
	if config.WarmUp {
		ex.WarmUp(context.Background(), config.WarmUpConfig)
	}

	return ex, nil
}

// Extract extracts events from text, using the clock's current year as the
// reference year.
func (e *Extractor) Extract(ctx context.Context, text string) []Event {
	return e.core.Extract(ctx, text)
}

// ExtractForYear extracts events against an explicit reference year.
func (e *Extractor) ExtractForYear(ctx context.Context, text string, referenceYear int) []Event {
	return e.core.ExtractForYear(ctx, text, referenceYear)
}

// WarmUp performs system warm-up to optimize performance.
func (e *Extractor) WarmUp(ctx context.Context, config warmup.WarmupConfig) {
	if e.warmed {
		e.logger.Debug("System already warmed up, skipping")
		return
	}

	warmupMgr := warmup.NewManager(e.logger, config)
	warmupMgr.RegisterEventExtractor(e.core)
	warmupMgr.RegisterNormalizer(e.normalizer)

	warmupMgr.WarmUp(ctx)
	e.warmed = true
}
