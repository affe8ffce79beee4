package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/example/storefront-bot/internal/cart"
	"github.com/example/storefront-bot/internal/catalog"
	"github.com/example/storefront-bot/internal/checkout"
	"github.com/example/storefront-bot/internal/config"
	"github.com/example/storefront-bot/internal/engine"
	"github.com/example/storefront-bot/internal/ordersink"
	"github.com/example/storefront-bot/internal/telegram"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[Bot] %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cat, err := loadCatalog(cfg)
	if err != nil {
		log.Fatalf("[Bot] Failed to load catalog: %v", err)
	}
	log.Printf("[Bot] Catalog loaded: %d categories", len(cat.Categories()))

	sinks := ordersink.Multi{ordersink.NewFileSink(cfg.OrdersFile)}
	log.Printf("[Bot] Order log: %s", cfg.OrdersFile)

	if cfg.DatabaseURL != "" {
		db, err := ordersink.ConnectPostgres(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("[Bot] Failed to connect to PostgreSQL: %v", err)
		}
		defer db.Close()
		pg := ordersink.NewPostgresSink(db)
		if err := pg.EnsureSchema(ctx); err != nil {
			log.Fatalf("[Bot] %v", err)
		}
		sinks = append(sinks, pg)
		log.Println("[Bot] Order sink: PostgreSQL")
	}

	if len(cfg.KafkaBrokers) > 0 {
		kafkaSink := ordersink.NewKafkaSink(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer kafkaSink.Close()
		sinks = append(sinks, kafkaSink)
		log.Printf("[Bot] Order sink: Kafka %v topic %s", cfg.KafkaBrokers, cfg.KafkaTopic)
	}

	bot, err := telegram.New(cfg.Token)
	if err != nil {
		log.Fatalf("[Bot] %v", err)
	}
	log.Printf("[Bot] Authorized as @%s", bot.Username())

	var notifier engine.Notifier
	if cfg.AdminID != 0 {
		notifier = telegram.NewOperatorNotifier(bot, cfg.AdminID)
		log.Printf("[Bot] Operator notifications: chat %d", cfg.AdminID)
	} else {
		log.Println("[Bot] No ADMIN_ID configured, operator notifications disabled")
	}

	router := engine.New(cat, cart.NewStore(), checkout.NewTracker(), bot, sinks, notifier)

	log.Println("[Bot] Polling for updates...")
	if err := bot.Run(ctx, router.HandleEvent); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("[Bot] %v", err)
	}
	log.Println("[Bot] Shutdown complete")
}

func loadCatalog(cfg config.Config) (*catalog.Store, error) {
	if cfg.CatalogFile != "" {
		return catalog.LoadFile(cfg.CatalogFile)
	}
	return catalog.Default()
}
