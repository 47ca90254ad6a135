package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"study-planner/config"
	_ "study-planner/docs" // Swagger docs
	deadlineUC "study-planner/internal/deadline/usecase"
	"study-planner/internal/httpserver"
	"study-planner/internal/middleware"
	"study-planner/internal/planner"
	plannerUC "study-planner/internal/planner/usecase"
	"study-planner/internal/session"
	"study-planner/pkg/datemath"
	"study-planner/pkg/gcalendar"
	"study-planner/pkg/llmprovider"
	"study-planner/pkg/log"
	"study-planner/pkg/telegram"
)

// @title       Study Planner API
// @description Personalized study plans from course deadlines and study preferences.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		var cfgErr *config.ConfigurationError
		if errors.As(err, &cfgErr) {
			fmt.Println("Configuration error, the planner will not start: ", err)
		} else {
			fmt.Println("Failed to load config: ", err)
		}
		return err
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

	logger.Info(ctx, "Starting Study Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Dates
	dateMathParser, err := datemath.NewParser(cfg.Planner.Timezone)
	if err != nil {
		logger.Errorf(ctx, "Invalid planner timezone %q: %v", cfg.Planner.Timezone, err)
		return err
	}

	// 4. Plan generation
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		logger.Errorf(ctx, "No usable LLM provider, the planner will not start: %v", err)
		return &config.ConfigurationError{Err: err}
	}

	maxTotalTimeout, _ := time.ParseDuration(cfg.LLM.MaxTotalTimeout)
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		MaxTotalTimeout: maxTotalTimeout,
	}, logger)
	primary := manager.Primary()
	logger.Infof(ctx, "LLM provider: %s (%s), %d configured, fallback=%v",
		primary.Name(), primary.Model(), len(providers), cfg.LLM.FallbackEnabled)

	planClient := planner.NewPlanClient(manager, cfg.Planner.MaxTokens)

	// 5. Google Calendar client (optional)
	var calendar deadlineUC.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "→ Run `go run ./cmd/gcal-auth` to generate token.json")
		} else {
			calendar = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. Telegram notifications (optional)
	var messenger plannerUC.Messenger
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != 0 {
		bot, botErr := telegram.NewBot(telegram.Config{
			Token:  cfg.Telegram.BotToken,
			APIURL: cfg.Telegram.APIURL,
		})
		if botErr != nil {
			logger.Warnf(ctx, "Telegram not available (optional): %v", botErr)
		} else {
			messenger = bot
			logger.Info(ctx, "Telegram notifications initialized")
		}
	}

	// 7. Sessions
	sessions := session.NewManager(session.Config{
		MaxSessions: cfg.Session.MaxSessions,
		TTL:         cfg.Session.TTL,
	})

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		Sessions:       sessions,
		DateMath:       dateMathParser,
		PlanClient:     planClient,
		DefaultView:    cfg.Planner.DefaultView,
		Calendar:       calendar,
		CalendarID:     cfg.GoogleCalendar.CalendarID,
		Messenger:      messenger,
		TelegramChatID: cfg.Telegram.ChatID,
		Cookie: middleware.CookieConfig{
			Name:   cfg.Session.CookieName,
			MaxAge: cfg.Session.TTL,
			Secure: cfg.Session.CookieSecure,
		},
		PlanRateLimitPerMin: cfg.Session.PlanRateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return err
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return err
	}

	logger.Info(ctx, "Server stopped gracefully")
	return nil
}
