package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/baditaflorin/l"
	"github.com/valyala/fasthttp"

	"github.com/baditaflorin/go_newsletter_extract/internal/config"
	"github.com/baditaflorin/go_newsletter_extract/pkg/calendarlink"
	"github.com/baditaflorin/go_newsletter_extract/pkg/event"
	"github.com/baditaflorin/go_newsletter_extract/pkg/item"
)

// Extraction engines shared across requests; extraction is stateless and
// safe for concurrent use.
var (
	eventExtractor *event.Extractor
	itemExtractor  *item.Extractor

	// Logger instance
	logger l.Logger
)

// ExtractRequest carries newsletter text to either extractor.
type ExtractRequest struct {
	Text string `json:"text"`
	// ReferenceYear overrides the server clock's year for event dating.
	ReferenceYear int `json:"reference_year,omitempty"`
}

// EventPayload is one extracted event plus its presentation fields.
type EventPayload struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Date         string `json:"date"`
	DisplayDate  string `json:"display_date"`
	StartTime    string `json:"start_time,omitempty"`
	EndTime      string `json:"end_time,omitempty"`
	Note         string `json:"note,omitempty"`
	Icon         string `json:"icon"`
	CalendarLink string `json:"calendar_link"`
}

// EventsResponse is the /events response body.
type EventsResponse struct {
	Events []EventPayload `json:"events"`
}

// ItemPayload is one extracted thing-to-bring.
type ItemPayload struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Icon     string `json:"icon"`
}

// ItemsResponse is the /items response body.
type ItemsResponse struct {
	Items []ItemPayload `json:"items"`
}

// LinkRequest is the /calendar-link request body.
type LinkRequest struct {
	Title     string `json:"title"`
	Date      string `json:"date"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
	Note      string `json:"note,omitempty"`
}

// LinkResponse is the /calendar-link response body.
type LinkResponse struct {
	URL string `json:"url"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

func main() {
	configPath := flag.String("config", "", "YAML config file path")
	listen := flag.String("listen", "", "listen address (overrides config)")
	warmUp := flag.Bool("warm-up", true, "perform system warm-up on startup")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *listen != "" {
		cfg.Listen = *listen
	}

	// Set up logger
	logger, err = createLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	logger.Info("Starting newsletter extraction server",
		"listen", cfg.Listen,
		"read_timeout", cfg.ReadTimeout(),
		"write_timeout", cfg.WriteTimeout(),
		"max_request_size", cfg.MaxRequestSize,
	)

	// Initialize extraction engines
	initExtractors(*warmUp && cfg.WarmUp)

	// Create HTTP server with fasthttp
	server := &fasthttp.Server{
		Handler:               requestHandler,
		ReadTimeout:           cfg.ReadTimeout(),
		WriteTimeout:          cfg.WriteTimeout(),
		MaxRequestBodySize:    cfg.MaxRequestSize,
		DisableKeepalive:      false,
		TCPKeepalive:          true,
		TCPKeepalivePeriod:    3 * time.Minute,
		MaxIdleWorkerDuration: 10 * time.Second,
		Logger:                nil, // we'll handle logging ourselves
	}

	// Set up graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		logger.Info("Shutting down server...")
		if err := server.Shutdown(); err != nil {
			logger.Error("Error during server shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	// Start server
	logger.Info("Server listening", "address", cfg.Listen)
	if err := server.ListenAndServe(cfg.Listen); err != nil {
		logger.Error("Server error", "error", err)
	}

	<-idleConnsClosed
	logger.Info("Server stopped")
}

// initExtractors initializes the extraction engines with the pooled
// normalizers and optional warm-up.
func initExtractors(warmUp bool) {
	var err error

	eventOpts := []event.Option{
		event.WithOptimizedNormalizer(),
		event.WithLogger(logger),
	}
	if warmUp {
		eventOpts = append(eventOpts, event.WithWarmUp(true))
	}
	eventExtractor, err = event.New(eventOpts...)
	if err != nil {
		logger.Error("Failed to initialize event extractor", "error", err)
		os.Exit(1)
	}

	itemOpts := []item.Option{
		item.WithOptimizedNormalizer(),
		item.WithLogger(logger),
	}
	if warmUp {
		itemOpts = append(itemOpts, item.WithWarmUp(true))
	}
	itemExtractor, err = item.New(itemOpts...)
	if err != nil {
		logger.Error("Failed to initialize item extractor", "error", err)
		os.Exit(1)
	}

	logger.Info("Extraction engines initialized successfully", "warm_up", warmUp)
}

// requestHandler is the main fasthttp request handler
func requestHandler(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()

	// Set common headers
	ctx.Response.Header.Set("Content-Type", "application/json")
	ctx.Response.Header.Set("Server", "NewsletterExtractServer")

	// Route based on path
	switch string(ctx.Path()) {
	case "/health":
		handleHealthCheck(ctx)
	case "/events":
		handleEvents(ctx)
	case "/items":
		handleItems(ctx)
	case "/calendar-link":
		handleCalendarLink(ctx)
	case "/events.ics":
		handleEventsICS(ctx)
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		writeJSONError(ctx, "Not found")
	}

	// Log request
	duration := time.Since(startTime)
	logger.Info("Request processed",
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"status", ctx.Response.StatusCode(),
		"ip", ctx.RemoteIP().String(),
		"duration", duration,
	)
}

// handleHealthCheck responds to health check requests
func handleHealthCheck(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	response := map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	}
	writeJSONResponse(ctx, response)
}

// parseExtractRequest decodes the shared request shape for both extractors.
func parseExtractRequest(ctx *fasthttp.RequestCtx) (*ExtractRequest, bool) {
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		writeJSONError(ctx, "Method not allowed")
		return nil, false
	}

	var req ExtractRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, "Invalid request: "+err.Error())
		return nil, false
	}

	if req.Text == "" {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, "Text is required")
		return nil, false
	}

	return &req, true
}

// extractEvents runs event extraction for one request.
func extractEvents(ctx *fasthttp.RequestCtx, req *ExtractRequest) []event.Event {
	if req.ReferenceYear != 0 {
		return eventExtractor.ExtractForYear(ctx, req.Text, req.ReferenceYear)
	}
	return eventExtractor.Extract(ctx, req.Text)
}

// handleEvents handles event extraction requests
func handleEvents(ctx *fasthttp.RequestCtx) {
	req, ok := parseExtractRequest(ctx)
	if !ok {
		return
	}

	events := extractEvents(ctx, req)

	response := EventsResponse{Events: make([]EventPayload, 0, len(events))}
	for _, ev := range events {
		response.Events = append(response.Events, EventPayload{
			ID:           ev.ID,
			Title:        ev.Title,
			Date:         ev.Date,
			DisplayDate:  calendarlink.FormatDisplayDate(ev.Date),
			StartTime:    ev.StartTime,
			EndTime:      ev.EndTime,
			Note:         ev.Note,
			Icon:         ev.Icon,
			CalendarLink: calendarlink.BuildGoogleLink(ev),
		})
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	writeJSONResponse(ctx, response)
}

// handleItems handles item extraction requests
func handleItems(ctx *fasthttp.RequestCtx) {
	req, ok := parseExtractRequest(ctx)
	if !ok {
		return
	}

	items := itemExtractor.Extract(ctx, req.Text)

	response := ItemsResponse{Items: make([]ItemPayload, 0, len(items))}
	for _, it := range items {
		response.Items = append(response.Items, ItemPayload{
			ID:       it.ID,
			Name:     it.Name,
			Category: it.Category,
			Icon:     it.Icon,
		})
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	writeJSONResponse(ctx, response)
}

// handleCalendarLink builds a Google Calendar deep link for one event.
func handleCalendarLink(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		writeJSONError(ctx, "Method not allowed")
		return
	}

	var req LinkRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, "Invalid request: "+err.Error())
		return
	}

	if req.Title == "" || req.Date == "" {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, "Both title and date are required")
		return
	}

	ev := calendarlink.Event{
		Title:     req.Title,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Note:      req.Note,
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	writeJSONResponse(ctx, LinkResponse{URL: calendarlink.BuildGoogleLink(ev)})
}

// handleEventsICS extracts events and responds with an iCalendar document.
func handleEventsICS(ctx *fasthttp.RequestCtx) {
	req, ok := parseExtractRequest(ctx)
	if !ok {
		return
	}

	events := extractEvents(ctx, req)

	ctx.Response.Header.Set("Content-Type", "text/calendar; charset=utf-8")
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBodyString(calendarlink.ExportICS(events))
}

// Helper functions

// writeJSONResponse writes a JSON response to the context
func writeJSONResponse(ctx *fasthttp.RequestCtx, data interface{}) {
	response, err := json.Marshal(data)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		logger.Error("Error marshaling JSON response", "error", err)
		writeJSONError(ctx, "Internal server error")
		return
	}

	ctx.SetBody(response)
}

// writeJSONError writes a JSON error response to the context
func writeJSONError(ctx *fasthttp.RequestCtx, message string) {
	errResponse := ErrorResponse{
		Error: message,
	}

	response, err := json.Marshal(errResponse)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		logger.Error("Error marshaling JSON error response", "error", err)
		ctx.SetBodyString(`{"error":"Internal server error"}`)
		return
	}

	ctx.SetBody(response)
}

// createLogger creates and configures a logger
func createLogger(cfg *config.Config) (l.Logger, error) {
	// Create a logger factory
	factory := l.NewStandardFactory()

	// Configure the logger
	var output io.Writer = os.Stdout
	if cfg.LogFile != "" {
		file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		output = file
	}

	// Create the logger
	logger, err := factory.CreateLogger(l.Config{
		Output:      output,
		JsonFormat:  cfg.LogJSON,
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,       // 1MB
		MaxFileSize: 100 * 1024 * 1024, // 100MB
		MaxBackups:  5,
		AddSource:   false,
		Metrics:     false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return logger, nil
}
