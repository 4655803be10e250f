package consumer

import (
	"context"
	"database/sql"

	"influencer-srv/config"
	"influencer-srv/pkg/discord"
	pkgKafka "influencer-srv/pkg/kafka"
	"influencer-srv/pkg/log"
	"influencer-srv/pkg/minio"
)

// ConsumerServer runs the Kafka side of the service: it drains queued fetch
// jobs and executes them against the platform APIs.
type ConsumerServer struct {
	// Core Configuration
	l      log.Logger
	config *config.Config

	// Infrastructure clients
	postgresDB      *sql.DB
	minioClient     minio.IMinIO
	profileProducer pkgKafka.IProducer

	// Monitoring & Notification
	discord discord.IDiscord
}

// Config holds all dependencies for the consumer server
type Config struct {
	// Core Configuration
	Logger log.Logger
	Config *config.Config

	// Infrastructure clients
	PostgresDB      *sql.DB
	MinIOClient     minio.IMinIO
	ProfileProducer pkgKafka.IProducer

	// Monitoring & Notification
	Discord discord.IDiscord
}

// Run starts the consumer server and blocks until context is cancelled.
// It initializes all domain layers, starts consumers, and handles graceful shutdown.
func (srv *ConsumerServer) Run(ctx context.Context) error {
	consumers, err := srv.setupDomains(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "Failed to setup domains: %v", err)
		return err
	}

	if err := srv.startConsumers(ctx, consumers); err != nil {
		srv.l.Errorf(ctx, "Failed to start consumers: %v", err)
		return err
	}

	srv.l.Info(ctx, "Consumer Server is running")

	<-ctx.Done()
	srv.l.Info(ctx, "Shutdown signal received, stopping consumers...")

	srv.stopConsumers(ctx, consumers)

	srv.l.Info(ctx, "Consumer Server stopped gracefully")
	return nil
}
