package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/hawkarm/heval-bot/internal/bot"
	"github.com/hawkarm/heval-bot/internal/completion"
	"github.com/hawkarm/heval-bot/internal/i18n"
	"github.com/hawkarm/heval-bot/internal/models"
	"github.com/hawkarm/heval-bot/internal/session"
	"github.com/hawkarm/heval-bot/internal/storage"
	"github.com/hawkarm/heval-bot/pkg/config"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Load configuration
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err), zap.String("path", "config.yaml"))
	}

	// Initialize feedback storage
	var store storage.Storage
	if cfg.Database.UseInMemory {
		logger.Info("Using in-memory feedback storage")
		store = storage.NewMemoryStorage()
	} else {
		logger.Info("Using PostgreSQL feedback storage")
		dbConfig := storage.DatabaseConfig{
			Host:        cfg.Database.Host,
			Port:        cfg.Database.Port,
			User:        cfg.Database.User,
			Password:    cfg.Database.Password,
			DBName:      cfg.Database.DBName,
			SSLMode:     cfg.Database.SSLMode,
			UseInMemory: cfg.Database.UseInMemory,
		}
		store, err = storage.NewPostgresStorage(dbConfig, logger)
		if err != nil {
			logger.Fatal("Failed to initialize storage", zap.Error(err))
		}
	}
	defer store.Close()

	// Initialize completion service
	completer := completion.NewOpenAICompleter(
		cfg.OpenAI.APIKey,
		cfg.OpenAI.Model,
		cfg.OpenAI.MaxTokens,
		cfg.OpenAI.Temperature,
		logger,
	)

	// Initialize transport
	b, err := bot.NewBot(cfg.Telegram.Token, logger)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	dispatcher := bot.NewDispatcher(
		session.NewStore(models.Language(cfg.Bot.DefaultLanguage)),
		b,
		completer,
		i18n.NewLocalizer(logger),
		store,
		cfg.Telegram.AdminChatID,
		time.Duration(cfg.Bot.RateLimitSeconds)*time.Second,
		time.Duration(cfg.Bot.CompletionTimeoutSeconds)*time.Second,
		logger,
	)

	// Start the bot
	logger.Info("Starting bot")
	if err := b.Run(context.Background(), dispatcher); err != nil {
		logger.Fatal("Bot error", zap.Error(err))
	}
}
