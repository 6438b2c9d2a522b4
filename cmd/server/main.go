package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anonto42/wanderlog/backend/internal/router"
	"github.com/anonto42/wanderlog/backend/pkg/config"
	"github.com/anonto42/wanderlog/backend/pkg/firebase"
	"github.com/anonto42/wanderlog/backend/validators"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}
	logger := config.SetupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database connections
	db, err := config.InitDB(ctx, cfg)
	if err != nil {
		logger.WithError(err).Fatal("failed to initialize databases")
	}
	defer db.CloseDB()

	deps := router.Deps{Config: cfg, DB: db, Logger: logger}

	fb, err := firebase.InitFirebase(ctx, cfg.FirebaseCredentialsPath)
	switch {
	case err == nil:
		deps.Firebase = fb.AuthClient
	case errors.Is(err, firebase.ErrNotConfigured):
		logger.Info("Firebase login disabled")
	default:
		logger.WithError(err).Fatal("failed to initialize Firebase")
	}

	e := echo.New()
	e.Validator = validators.NewValidator()
	config.SetupMiddleware(e, cfg, logger)

	if err := router.SetupRoutes(ctx, e, deps); err != nil {
		logger.WithError(err).Fatal("failed to set up routes")
	}

	gr, gctx := errgroup.WithContext(ctx)
	gr.Go(func() error {
		logger.WithField("port", cfg.Port).Info("server started")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	gr.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	if err := gr.Wait(); err != nil {
		logger.WithError(err).Error("server unexpectedly closed")
	}
}
