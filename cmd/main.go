package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"matchbot/config"
	telegram "matchbot/internal/api"
	"matchbot/internal/container"
	"matchbot/internal/domain/port"
	"matchbot/internal/infrastructure/matchmaking"
	"matchbot/internal/infrastructure/media"
	"matchbot/internal/infrastructure/storage"
	"matchbot/internal/ops"
)

func main() {
	log := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Debug {
		log.SetLevel(logrus.DebugLevel)
	}

	if cfg.TelegramToken == "" {
		log.Fatal("TELEGRAM_TOKEN is required")
	}

	// Выбираем хранилище анкет: PostgreSQL или память
	var profiles port.ProfileStore
	if cfg.DatabaseURL != "" {
		if err := storage.RunMigrations(cfg.DatabaseURL); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		db, err := storage.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer db.Close()
		profiles = storage.NewPostgresProfileStore(db)
	} else {
		log.Warn("DATABASE_URL is not set, using in-memory profile store")
		profiles = storage.NewMemoryProfileStore()
	}

	photoStore, err := media.NewLocalStore(cfg.PhotoDir)
	if err != nil {
		log.Fatalf("Failed to create photo store: %v", err)
	}

	// Собираем сервисы приложения
	appContainer := container.New(profiles, photoStore, matchmaking.NewStubCandidateSource(), cfg.StoreTimeout)

	// Создаём бота
	bot, err := telegram.NewBot(cfg.TelegramToken, appContainer, log)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opsServer := ops.NewServer(cfg.OpsAddr)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("Bot is running...")
		return bot.Run(ctx)
	})
	g.Go(func() error {
		log.Infof("Ops server is listening on %s", cfg.OpsAddr)
		return opsServer.Run(ctx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Bot error: %v", err)
	}
}
