package consumer

import (
	"context"
	"fmt"

	fetcherConsumer "influencer-srv/internal/fetcher/delivery/kafka/consumer"
	fetcherUsecase "influencer-srv/internal/fetcher/usecase"
	influencerPostgre "influencer-srv/internal/influencer/repository/postgre"
	influencerUsecase "influencer-srv/internal/influencer/usecase"
	"influencer-srv/pkg/colors"
	pkgHTTP "influencer-srv/pkg/http"
	"influencer-srv/pkg/instagram"
	"influencer-srv/pkg/sentiment"
	"influencer-srv/pkg/twitter"
	"influencer-srv/pkg/youtube"
)

// domainConsumers holds references to all domain consumers for cleanup
type domainConsumers struct {
	fetcherConsumer *fetcherConsumer.Consumer
}

// setupDomains initializes all domain layers (repositories, usecases, consumers)
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	httpClient := pkgHTTP.NewClient(pkgHTTP.DefaultConfig())

	// Influencer domain feeds the fetchers their persistence path.
	influencerRepo := influencerPostgre.New(srv.postgresDB, srv.l)
	influencerUC := influencerUsecase.New(influencerRepo, srv.profileProducer, srv.l)

	ytClient, err := youtube.New(ctx, youtube.Config{APIKey: srv.config.YouTube.APIKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube client: %w", err)
	}

	igClient, err := instagram.New(instagram.Config{
		BaseURL:     srv.config.Instagram.BaseURL,
		BusinessID:  srv.config.Instagram.BusinessID,
		AccessToken: srv.config.Instagram.AccessToken,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create instagram client: %w", err)
	}

	twClient, err := twitter.New(twitter.Config{
		BaseURL:     srv.config.Twitter.BaseURL,
		BearerToken: srv.config.Twitter.BearerToken,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create twitter client: %w", err)
	}

	analyzer, err := sentiment.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create sentiment analyzer: %w", err)
	}

	fetcherUC := fetcherUsecase.New(
		ytClient,
		igClient,
		twClient,
		colors.New(),
		analyzer,
		srv.minioClient,
		httpClient,
		influencerUC,
		nil, // consumer side never enqueues
		srv.l,
		fetcherUsecase.Config{
			VisualWorkers: srv.config.Fetcher.VisualWorkers,
			ArchiveBucket: srv.config.Fetcher.ArchiveBucket,
		},
	)

	fetchCons, err := fetcherConsumer.New(fetcherConsumer.Config{
		Logger:      srv.l,
		KafkaConfig: srv.config.Kafka,
		UseCase:     fetcherUC,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create fetcher consumer: %w", err)
	}

	srv.l.Infof(ctx, "Fetcher domain initialized")

	return &domainConsumers{
		fetcherConsumer: fetchCons,
	}, nil
}

// startConsumers starts all domain consumers in background goroutines
func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	if err := consumers.fetcherConsumer.ConsumeFetchJobs(ctx); err != nil {
		return fmt.Errorf("failed to start fetcher consumer: %w", err)
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers gracefully stops all domain consumers
func (srv *ConsumerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	if consumers.fetcherConsumer != nil {
		if err := consumers.fetcherConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing fetcher consumer: %v", err)
		}
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
