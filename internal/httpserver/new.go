package httpserver

import (
	"database/sql"
	"errors"

	"influencer-srv/config"
	"influencer-srv/internal/influencer"
	influencerRepo "influencer-srv/internal/influencer/repository"
	"influencer-srv/pkg/discord"
	"influencer-srv/pkg/encrypter"
	"influencer-srv/pkg/gemini"
	pkgJWT "influencer-srv/pkg/jwt"
	pkgKafka "influencer-srv/pkg/kafka"
	"influencer-srv/pkg/log"
	"influencer-srv/pkg/minio"
	pkgRedis "influencer-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Database Configuration
	postgresDB  *sql.DB
	redisClient pkgRedis.IRedis

	// Storage Configuration
	minioClient minio.IMinIO

	// Messaging Configuration (both optional)
	fetchProducer   pkgKafka.IProducer
	profileProducer pkgKafka.IProducer

	// AI Configuration
	geminiClient gemini.IGemini

	// Authentication & Security Configuration
	config       *config.Config
	jwtManager   *pkgJWT.Manager
	cookieConfig config.CookieConfig
	encrypter    encrypter.Encrypter

	// Monitoring & Notification Configuration
	discord discord.IDiscord

	// Cross-domain references populated during handler mapping
	influencerRepo influencerRepo.PostgresRepository
	influencerUC   influencer.UseCase
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Database Configuration
	PostgresDB  *sql.DB
	RedisClient pkgRedis.IRedis

	// Storage Configuration
	MinIOClient minio.IMinIO

	// Messaging Configuration (both optional)
	FetchProducer   pkgKafka.IProducer
	ProfileProducer pkgKafka.IProducer

	// AI Configuration
	GeminiClient gemini.IGemini

	// Authentication & Security Configuration
	Config       *config.Config
	JWTManager   *pkgJWT.Manager
	CookieConfig config.CookieConfig
	Encrypter    encrypter.Encrypter

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.Default(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		// Database Configuration
		postgresDB:  cfg.PostgresDB,
		redisClient: cfg.RedisClient,

		// Storage Configuration
		minioClient: cfg.MinIOClient,

		// Messaging Configuration
		fetchProducer:   cfg.FetchProducer,
		profileProducer: cfg.ProfileProducer,

		// AI Configuration
		geminiClient: cfg.GeminiClient,

		// Authentication & Security Configuration
		config:       cfg.Config,
		jwtManager:   cfg.JWTManager,
		cookieConfig: cfg.CookieConfig,
		encrypter:    cfg.Encrypter,

		// Monitoring & Notification Configuration
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Database Configuration
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}

	// Storage Configuration
	if srv.minioClient == nil {
		return errors.New("minioClient is required")
	}

	// AI Configuration
	if srv.geminiClient == nil {
		return errors.New("geminiClient is required")
	}

	// Authentication & Security Configuration
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}
	if srv.encrypter == nil {
		return errors.New("encrypter is required")
	}

	// Messaging (optional: endpoints degrade to synchronous-only) and
	// Discord (optional) are not validated.

	return nil
}
