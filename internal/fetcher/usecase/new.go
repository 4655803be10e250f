package usecase

import (
	"influencer-srv/internal/fetcher"
	"influencer-srv/internal/influencer"
	"influencer-srv/pkg/colors"
	pkghttp "influencer-srv/pkg/http"
	"influencer-srv/pkg/instagram"
	"influencer-srv/pkg/kafka"
	"influencer-srv/pkg/log"
	"influencer-srv/pkg/minio"
	"influencer-srv/pkg/sentiment"
	"influencer-srv/pkg/twitter"
	"influencer-srv/pkg/youtube"
)

// Config - Cấu hình UseCase
type Config struct {
	VisualWorkers int    // Bounded visual analysis goroutines (default 4)
	ArchiveBucket string // MinIO bucket for raw media; empty disables archiving
}

// DefaultConfig - Cấu hình mặc định
func DefaultConfig() Config {
	return Config{
		VisualWorkers: 4,
	}
}

type implUseCase struct {
	yt           youtube.IYouTube
	ig           instagram.IInstagram
	tw           twitter.ITwitter
	colors       colors.IColors
	analyzer     sentiment.IAnalyzer
	storage      minio.IMinIO
	httpClient   pkghttp.IClient
	influencerUC influencer.UseCase
	producer     kafka.IProducer
	l            log.Logger
	cfg          Config
}

// New - Factory function. storage and producer may be nil; archiving and
// enqueueing are then disabled.
func New(
	yt youtube.IYouTube,
	ig instagram.IInstagram,
	tw twitter.ITwitter,
	colorsClient colors.IColors,
	analyzer sentiment.IAnalyzer,
	storage minio.IMinIO,
	httpClient pkghttp.IClient,
	influencerUC influencer.UseCase,
	producer kafka.IProducer,
	l log.Logger,
	cfg Config,
) fetcher.UseCase {
	if cfg.VisualWorkers <= 0 {
		cfg.VisualWorkers = DefaultConfig().VisualWorkers
	}
	return &implUseCase{
		yt:           yt,
		ig:           ig,
		tw:           tw,
		colors:       colorsClient,
		analyzer:     analyzer,
		storage:      storage,
		httpClient:   httpClient,
		influencerUC: influencerUC,
		producer:     producer,
		l:            l,
		cfg:          cfg,
	}
}

func intPtr(v int) *int {
	return &v
}
