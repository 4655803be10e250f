package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"influencer-srv/config"
	configKafka "influencer-srv/config/kafka"
	configMinio "influencer-srv/config/minio"
	configPostgre "influencer-srv/config/postgre"
	"influencer-srv/internal/consumer"
	"influencer-srv/pkg/discord"
	"influencer-srv/pkg/log"

	"github.com/joho/godotenv"
)

func main() {
	// 0. Load .env before viper reads the environment (no-op when absent)
	_ = godotenv.Load()

	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 3. Initialize PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 4. Initialize MinIO
	minioClient, err := configMinio.Connect(ctx, cfg.MinIO)
	if err != nil {
		logger.Error(ctx, "Failed to connect to MinIO: ", err)
		return
	}
	logger.Infof(ctx, "MinIO connected successfully to %s (bucket %s)", cfg.MinIO.Endpoint, cfg.MinIO.Bucket)

	// 5. Initialize Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil
	}

	// 6. Initialize profile-updated producer (optional)
	profileProducer, err := configKafka.ConnectProfileProducer(cfg.Kafka)
	if err != nil {
		logger.Warnf(ctx, "Kafka profile producer not available (optional): %v", err)
		profileProducer = nil
	}
	defer configKafka.DisconnectProducers()

	// 7. Initialize consumer server
	srv, err := consumer.New(consumer.Config{
		Logger:          logger,
		Config:          cfg,
		PostgresDB:      postgresDB,
		MinIOClient:     minioClient,
		ProfileProducer: profileProducer,
		Discord:         discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize consumer server: ", err)
		return
	}

	// 8. Cancel the run context on SIGINT/SIGTERM
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		logger.Info(context.Background(), "Shutting down gracefully...")
		cancel()
	}()

	if err := srv.Run(ctx); err != nil {
		logger.Error(ctx, "Consumer server stopped with error: ", err)
	}
}
