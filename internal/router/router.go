package router

import (
	"context"
	"fmt"

	"github.com/anonto42/wanderlog/backend/internal/handlers"
	"github.com/anonto42/wanderlog/backend/internal/middleware"
	"github.com/anonto42/wanderlog/backend/internal/repositories"
	"github.com/anonto42/wanderlog/backend/internal/services"
	"github.com/anonto42/wanderlog/backend/pkg/config"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// Deps are the externally initialised dependencies of the routes.
type Deps struct {
	Config *config.Config
	DB     *config.DB
	// Firebase is nil when Firebase login is not configured.
	Firebase services.TokenVerifier
	Logger   logrus.FieldLogger
}

// SetupRoutes prepares the stores and configures all application routes.
func SetupRoutes(ctx context.Context, e *echo.Echo, deps Deps) error {
	cfg, log := deps.Config, deps.Logger

	// --- Initialize Repositories ---
	postRepo := repositories.NewMongoPostRepository(deps.DB.Database)
	countryRepo := repositories.NewMongoCountryRepository(deps.DB.Database)

	userRepo, err := userRepository(ctx, deps.DB)
	if err != nil {
		return err
	}
	sessionStore, err := sessionStore(ctx, cfg, deps.DB)
	if err != nil {
		return err
	}

	// --- Services ---
	authOpts := []services.AuthOption{services.WithSessionTTL(cfg.SessionTTL)}
	if deps.Firebase != nil {
		authOpts = append(authOpts, services.WithFirebase(deps.Firebase))
	}
	authService := services.NewAuthService(userRepo, countryRepo, sessionStore, services.NewBcryptHasher(), log, authOpts...)
	postService := services.NewPostService(postRepo, countryRepo, userRepo, log)

	// Health check - always accessible
	stores := map[string]handlers.Pinger{"mongo": handlers.PingFunc(deps.DB.PingMongo)}
	if deps.DB.Postgres != nil {
		stores["postgres"] = handlers.PingFunc(deps.DB.PingPostgres)
	}
	e.GET("/health", handlers.HealthCheck(stores, log))

	cookies := middleware.NewCookieCodec(cfg.SessionCookieName, cfg.SessionSecret, cfg.SessionSecure)
	api := e.Group(cfg.APIPrefix, middleware.Session(cookies, log))
	requireSession := middleware.RequireSession(authService)

	authHandler := handlers.NewAuthHandler(authService, cookies)
	authHandler.RegisterAuthRoutes(api, deps.Firebase != nil)
	log.Info("Auth routes configured")

	countryHandler := handlers.NewCountryHandler(countryRepo)
	countryHandler.RegisterCountryRoutes(api)
	log.Info("Country routes configured")

	postHandler := handlers.NewPostHandler(postService)
	postHandler.RegisterPostRoutes(api, requireSession)
	log.Info("Post routes configured")

	commentHandler := handlers.NewCommentHandler(postService)
	commentHandler.RegisterCommentRoutes(api, requireSession)
	log.Info("Comment routes configured")

	likeHandler := handlers.NewLikeHandler(postService)
	likeHandler.RegisterLikeRoutes(api, requireSession)
	log.Info("Like routes configured")

	log.WithField("prefix", cfg.APIPrefix).Info("All routes configured")
	return nil
}

// userRepository picks the identity store: Postgres when configured, the
// Mongo users collection otherwise.
func userRepository(ctx context.Context, db *config.DB) (repositories.UserRepository, error) {
	if db.Postgres != nil {
		if err := repositories.MigrateUserTables(db.Postgres); err != nil {
			return nil, fmt.Errorf("failed to auto migrate user tables: %w", err)
		}
		logrus.Info("PostgreSQL auto-migrations completed for identity tables")
		return repositories.NewPostgresUserRepository(db.Postgres), nil
	}

	repo := repositories.NewMongoUserRepository(db.Database)
	if err := repo.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("failed to create user indexes: %w", err)
	}
	return repo, nil
}

func sessionStore(ctx context.Context, cfg *config.Config, db *config.DB) (repositories.SessionStore, error) {
	if cfg.SessionStore == "memory" {
		logrus.Warn("Using in-memory session store; sessions are lost on restart")
		return repositories.NewMemorySessionStore(), nil
	}

	store := repositories.NewMongoSessionStore(db.Database)
	if err := store.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("failed to create session indexes: %w", err)
	}
	return store, nil
}
