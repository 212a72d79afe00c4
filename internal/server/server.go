package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"restaurant_dashboard/internal/config"
	"restaurant_dashboard/internal/database"
	"restaurant_dashboard/internal/handlers"
	"restaurant_dashboard/internal/middlewares"
	"restaurant_dashboard/internal/repositories"
	"restaurant_dashboard/internal/routes"
	"restaurant_dashboard/internal/services"
	"restaurant_dashboard/internal/storage"
	"restaurant_dashboard/internal/utils"
)

// PublicStoragePath is where the disk store's buckets are served.
const PublicStoragePath = "/storage/v1/object/public"

type Server struct {
	HTTP *http.Server

	pool *pgxpool.Pool
	rdb  *redis.Client
	log  logrus.FieldLogger
}

// NewServer connects every backing store and wires the API on top of them.
func NewServer(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*Server, error) {
	pool, err := database.Connect(ctx, cfg.Database, log)
	if err != nil {
		return nil, err
	}
	log.Info("Connected to database successfully")

	s := &Server{pool: pool, log: log}
	fail := func(err error) (*Server, error) {
		s.Close()
		return nil, err
	}

	if err := database.RunMigrations(ctx, pool, log); err != nil {
		return fail(err)
	}

	db, err := database.OpenGorm(pool)
	if err != nil {
		return fail(err)
	}

	s.rdb = redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.rdb.Ping(pingCtx).Err(); err != nil {
		return fail(fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Redis.Addr, err))
	}
	log.Info("Connected to Redis successfully")

	store, diskRoot, err := openStore(ctx, cfg.Storage)
	if err != nil {
		return fail(err)
	}

	// Dependency injection
	restaurantRepo := repositories.NewRestaurantRepository(pool)
	userRepo := repositories.NewUserRepository(pool)
	descriptionRepo := repositories.NewDescriptionRepository(db)
	profileRepo := repositories.NewAdminProfileRepository(db)
	redisRepo := repositories.NewRedisRepository(s.rdb)
	draftRepo := repositories.NewDraftRepository(s.rdb, cfg.Redis.DraftTTL)

	tokens := utils.NewTokenManager(cfg.Auth.AccessTokenSecret, cfg.Auth.RefreshTokenSecret)
	uploader := services.NewAssetUploader(store, cfg.Upload.Concurrency, log)

	authService := services.NewAuthService(userRepo, redisRepo, tokens, log)
	adminService := services.NewAdminService(userRepo, profileRepo, log)
	restaurantService := services.NewRestaurantService(restaurantRepo, store, uploader, log)
	editService := services.NewEditService(restaurantRepo, draftRepo, uploader, log)
	descriptionService := services.NewDescriptionService(descriptionRepo)
	dashboardService := services.NewDashboardService(restaurantRepo, profileRepo)

	if err := adminService.Bootstrap(ctx, cfg.Auth.BootstrapEmail, cfg.Auth.BootstrapPassword); err != nil {
		return fail(fmt.Errorf("failed to bootstrap admin: %w", err))
	}

	h := routes.Handlers{
		Auth:       handlers.NewAuthHandler(authService, adminService, cfg.Auth.SecureCookies),
		Restaurant: handlers.NewRestaurantHandler(restaurantService),
		Draft:      handlers.NewDraftHandler(editService),
		Site:       handlers.NewSiteHandler(descriptionService),
		Admin:      handlers.NewAdminHandler(adminService, dashboardService),
	}
	g := routes.Guards{
		Authenticate: middlewares.Authenticate(authService, cfg.SignInPath),
		RequireAdmin: middlewares.RequireAdmin(adminService),
	}

	s.HTTP = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      NewRouter(cfg, h, g, diskRoot),
		IdleTimeout:  time.Minute,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	return s, nil
}

// NewRouter builds the gin engine. diskRoot, when set, is served under
// PublicStoragePath.
func NewRouter(cfg *config.Config, h routes.Handlers, g routes.Guards, diskRoot string) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigin,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if diskRoot != "" {
		router.Static(PublicStoragePath, diskRoot)
	}

	routes.RegisterRoutes(router, h, g)
	return router
}

func openStore(ctx context.Context, cfg config.StorageConfig) (storage.ObjectStore, string, error) {
	switch cfg.Driver {
	case config.StorageDriverS3:
		s3, err := storage.NewS3Store(storage.S3Options{
			Endpoint:      cfg.S3Endpoint,
			AccessKey:     cfg.S3AccessKey,
			SecretKey:     cfg.S3SecretKey,
			Region:        cfg.S3Region,
			UseSSL:        cfg.S3UseSSL,
			PublicBaseURL: cfg.PublicBaseURL,
		})
		if err != nil {
			return nil, "", err
		}
		if err := s3.EnsureBuckets(ctx); err != nil {
			return nil, "", err
		}
		return s3, "", nil
	case config.StorageDriverDisk:
		disk, err := storage.NewDiskStore(cfg.DiskRoot, cfg.PublicBaseURL)
		if err != nil {
			return nil, "", err
		}
		return disk, disk.Root(), nil
	default:
		return nil, "", fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// Close releases the database pool and the Redis client.
func (s *Server) Close() {
	if s.rdb != nil {
		if err := s.rdb.Close(); err != nil && !errors.Is(err, redis.ErrClosed) {
			s.log.WithError(err).Warn("failed to close Redis client")
		}
	}
	if s.pool != nil {
		s.pool.Close()
	}
}
