package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"notice-calendar/config"
	_ "notice-calendar/docs" // Swagger docs
	"notice-calendar/internal/httpserver"
	"notice-calendar/internal/middleware"
	"notice-calendar/internal/notice"
	noticeHTTP "notice-calendar/internal/notice/delivery/http"
	"notice-calendar/internal/notice/usecase"
	"notice-calendar/pkg/gcalendar"
	"notice-calendar/pkg/kdate"
	"notice-calendar/pkg/llm"
	"notice-calendar/pkg/log"
	"notice-calendar/pkg/ocr"
)

// @title       Notice Calendar API
// @description Converts photographed official notices into Google Calendar events via OCR and LLM field extraction.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Notice Calendar...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. OCR engine client
	ocrTimeout, _ := time.ParseDuration(cfg.OCR.Timeout)
	recognizer, err := ocr.New(ocr.Config{
		BaseURL: cfg.OCR.URL,
		Timeout: ocrTimeout,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize OCR client: ", err)
		return
	}

	// 4. LLM providers with fallback
	providers, err := llm.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	retryDelay, _ := time.ParseDuration(cfg.LLM.RetryDelay)
	maxTotalTimeout, _ := time.ParseDuration(cfg.LLM.MaxTotalTimeout)
	llmManager := llm.NewManager(providers, &llm.ManagerConfig{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotalTimeout,
	}, logger)
	logger.Infof(ctx, "LLM manager initialized with %d provider(s)", len(providers))

	// 5. Google Calendar client (optional until credentials are provisioned)
	var calendarClient gcalendar.ICalendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
		} else {
			calendarClient = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	} else {
		logger.Warn(ctx, "No Google Calendar credentials configured; scheduling will report authorization required")
	}

	// 6. Date resolver
	resolver, err := kdate.NewResolver(cfg.Pipeline.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Pipeline.Timezone, err)
		resolver, _ = kdate.NewResolver("UTC")
	}

	// 7. Notice UseCase + HTTP delivery
	noticeUC := usecase.New(
		logger,
		recognizer,
		llmManager,
		calendarClient,
		resolver,
		notice.DefaultExtractionSchema(),
		cfg.GoogleCalendar.CalendarID,
		cfg.Pipeline.Timezone,
	)
	noticeHandler := noticeHTTP.New(logger, noticeUC, cfg.Upload.MaxImageBytes)

	mw := middleware.New(logger, cfg)

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:        logger,
		Port:          cfg.HTTPServer.Port,
		Mode:          cfg.HTTPServer.Mode,
		Environment:   cfg.Environment.Name,
		NoticeHandler: noticeHandler,
		Middleware:    mw,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
