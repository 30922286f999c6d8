package warmup

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/baditaflorin/go_newsletter_extract/internal/ports"
)

// WarmupConfig defines configuration for warming up the system
type WarmupConfig struct {
	// Number of concurrent warmup routines to run
	Concurrency int
	// Number of iterations per routine
	Iterations int
	// Number of newsletter lines in the generated sample text
	SampleLines int
	// Warmup duration (0 means no time limit)
	Duration time.Duration
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultWarmupConfig returns the default warmup configuration
func DefaultWarmupConfig() WarmupConfig {
	return WarmupConfig{
		Concurrency: runtime.NumCPU(),
		Iterations:  200,
		SampleLines: 40,
		Duration:    2 * time.Second,
		ForceGC:     true,
	}
}

// Manager handles system warmup operations. Warming touches the compiled
// pattern families, keyword tables and buffer pools before the first real
// request hits them.
type Manager struct {
	logger          ports.Logger
	eventExtractors []ports.EventExtractor
	itemExtractors  []ports.ItemExtractor
	normalizers     []ports.Normalizer
	config          WarmupConfig
}

// NewManager creates a new warmup manager
func NewManager(logger ports.Logger, config WarmupConfig) *Manager {
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterEventExtractor adds an event extractor to be warmed up
func (wm *Manager) RegisterEventExtractor(ex ports.EventExtractor) {
	wm.eventExtractors = append(wm.eventExtractors, ex)
}

// RegisterItemExtractor adds an item extractor to be warmed up
func (wm *Manager) RegisterItemExtractor(ex ports.ItemExtractor) {
	wm.itemExtractors = append(wm.itemExtractors, ex)
}

// RegisterNormalizer adds a normalizer to be warmed up
func (wm *Manager) RegisterNormalizer(norm ports.Normalizer) {
	wm.normalizers = append(wm.normalizers, norm)
}

// WarmUp runs the warmup process for all registered components
func (wm *Manager) WarmUp(ctx context.Context) {
	startTime := time.Now()
	wm.logger.Info("Starting system warmup",
		"components", len(wm.eventExtractors)+len(wm.itemExtractors)+len(wm.normalizers),
		"concurrency", wm.config.Concurrency,
		"iterations", wm.config.Iterations,
	)

	// Create a context with timeout if duration is specified
	var warmupCtx context.Context
	var cancel context.CancelFunc
	if wm.config.Duration > 0 {
		warmupCtx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	} else {
		warmupCtx = ctx
	}

	sample := GenerateSampleNewsletter(wm.config.SampleLines)

	wm.run(warmupCtx, func(ctx context.Context) {
		for _, normalizer := range wm.normalizers {
			_ = normalizer.Normalize(sample)
		}
		for _, ex := range wm.eventExtractors {
			_ = ex.Extract(ctx, sample)
		}
		for _, ex := range wm.itemExtractors {
			_ = ex.Extract(ctx, sample)
		}
	})

	// Force garbage collection if configured
	if wm.config.ForceGC {
		wm.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	wm.logger.Info("System warmup completed",
		"duration", time.Since(startTime),
	)
}

// run fans one warmup step out over the configured concurrency.
func (wm *Manager) run(ctx context.Context, step func(ctx context.Context)) {
	var wg sync.WaitGroup
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < wm.config.Iterations; j++ {
				// Check for context cancellation
				select {
				case <-ctx.Done():
					return
				default:
					// Continue
				}

				step(ctx)
			}
		}()
	}
	wg.Wait()
}

// GenerateSampleNewsletter composes synthetic newsletter text with dated
// lines, a things-to-bring section and some prose, exercising every pattern
// family and discovery strategy.
func GenerateSampleNewsletter(lines int) string {
	titles := []string{"運動会", "遠足", "保護者会", "身体測定", "避難訓練", "音楽会", "授業参観", "プール開き"}
	items := []string{"水筒", "体操服", "タオル", "上履き", "お弁当", "ハンカチ"}

	var sb strings.Builder
	sb.WriteString("５月の予定\n")
	for i := 0; i < lines; i++ {
		title := titles[i%len(titles)]
		day := i%28 + 1
		switch i % 3 {
		case 0:
			fmt.Fprintf(&sb, "%d月%d日（金）9:00〜15:00　%s\n", i%12+1, day, title)
		case 1:
			fmt.Fprintf(&sb, "・%d月%d日　%s\n", i%12+1, day, title)
		default:
			fmt.Fprintf(&sb, "%s　%d月%d日（月）10時30分\n", title, i%12+1, day)
		}
	}
	sb.WriteString("持ち物：")
	sb.WriteString(strings.Join(items, "、"))
	sb.WriteString("\n")
	return sb.String()
}
