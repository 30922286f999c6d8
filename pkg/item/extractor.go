package item

import (
	"context"

	"github.com/baditaflorin/l"

	"github.com/baditaflorin/go_newsletter_extract/internal/adapters/idgen"
	"github.com/baditaflorin/go_newsletter_extract/internal/adapters/logger"
	"github.com/baditaflorin/go_newsletter_extract/internal/adapters/normalizer"
	"github.com/baditaflorin/go_newsletter_extract/internal/core/domain"
	coreitem "github.com/baditaflorin/go_newsletter_extract/internal/core/item"
	"github.com/baditaflorin/go_newsletter_extract/internal/ports"
	"github.com/baditaflorin/go_newsletter_extract/internal/warmup"
)

// Item is a single thing-to-bring extracted from newsletter text.
type Item = domain.ExtractedItem

// Extractor provides methods to extract things-to-bring items from
// OCR-derived Japanese newsletter text.
type Extractor struct {
	core       ports.ItemExtractor
	logger     ports.Logger
	normalizer ports.Normalizer
	warmed     bool
}

// Option defines a functional option for configuring the Extractor.
type Option func(*extractorConfig)

type extractorConfig struct {
	MaxItems     int
	MinNameRunes int
	MaxNameRunes int
	Logger       ports.Logger
	Normalizer   ports.Normalizer
	IDs          ports.IDGenerator
	WarmUp       bool
	WarmUpConfig warmup.WarmupConfig
}

// WithMaxItems sets a custom result cap.
func WithMaxItems(n int) Option {
	return func(cfg *extractorConfig) {
		cfg.MaxItems = n
	}
}

// WithNameBounds sets custom inclusive bounds on cleaned name length.
func WithNameBounds(minRunes, maxRunes int) Option {
	return func(cfg *extractorConfig) {
		cfg.MinNameRunes = minRunes
		cfg.MaxNameRunes = maxRunes
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

// WithOptimizedNormalizer sets the buffer-pooled normalizer. Bullets stay
// intact: the item pipeline splits on them.
func WithOptimizedNormalizer() Option {
	return func(cfg *extractorConfig) {
		normFactory := normalizer.NewNormalizerFactory()
		cfg.Normalizer = normFactory.CreateNormalizer(normalizer.OptimizedNormalizerType)
	}
}

// WithIDGenerator sets a custom ID generator.
func WithIDGenerator(g ports.IDGenerator) Option {
	return func(cfg *extractorConfig) {
		cfg.IDs = g
	}
}

// WithDeterministicIDs switches to a sequential ID generator.
func WithDeterministicIDs(prefix string) Option {
	return func(cfg *extractorConfig) {
		cfg.IDs = idgen.NewSequentialGenerator(prefix)
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

// New creates a new item Extractor instance.
func New(opts ...Option) (*Extractor, error) {
	// Default configuration
	defaultConfig := coreitem.DefaultConfig()

	config := &extractorConfig{
		MaxItems:     defaultConfig.MaxItems,
		MinNameRunes: defaultConfig.MinNameRunes,
		MaxNameRunes: defaultConfig.MaxNameRunes,
		WarmUp:       false,
		WarmUpConfig: warmup.DefaultWarmupConfig(),
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

	// Set up normalizer if not provided; bullets are preserved so the
	// bullet-anywhere strategy can split on them.
	if config.Normalizer == nil {
		config.Normalizer = normalizer.NewDefaultNormalizer()
	}

	// Set up ID generation if not provided
	if config.IDs == nil {
		config.IDs = idgen.NewUUIDGenerator()
	}

	// Create core extractor
	coreConfig := coreitem.ExtractorConfig{
		MaxItems:     config.MaxItems,
		MinNameRunes: config.MinNameRunes,
		MaxNameRunes: config.MaxNameRunes,
	}
	core, err := coreitem.NewExtractor(coreConfig, config.Logger, config.Normalizer, config.IDs)
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

// Extract extracts things-to-bring items from text.
func (e *Extractor) Extract(ctx context.Context, text string) []Item {
	return e.core.Extract(ctx, text)
}

// WarmUp performs system warm-up to optimize performance.
func (e *Extractor) WarmUp(ctx context.Context, config warmup.WarmupConfig) {
	if e.warmed {
		e.logger.Debug("System already warmed up, skipping")
		return
	}

	warmupMgr := warmup.NewManager(e.logger, config)
	warmupMgr.RegisterItemExtractor(e.core)
	warmupMgr.RegisterNormalizer(e.normalizer)

	warmupMgr.WarmUp(ctx)
	e.warmed = true
}
