package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "github.com/philipjohn05/taskapp-portfolio/internal/adapter/db"
	httpadapter "github.com/philipjohn05/taskapp-portfolio/internal/adapter/http"
	"github.com/philipjohn05/taskapp-portfolio/internal/adapter/http/handlers"
	httpmiddleware "github.com/philipjohn05/taskapp-portfolio/internal/adapter/http/middleware"
	appservice "github.com/philipjohn05/taskapp-portfolio/internal/app/service"
	"github.com/philipjohn05/taskapp-portfolio/internal/config"
	"github.com/philipjohn05/taskapp-portfolio/pkg/translator"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	if err := translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	}); err != nil {
		logger.Warn("translations unavailable, responses will carry message keys", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := dbadapter.ConnectDB(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.String("driver", cfg.DbDriver), zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close database connection", zap.Error(err))
		}
	}()

	retry := dbadapter.RetryPolicyFromConfig(cfg)
	userService := appservice.NewUserService(dbadapter.NewUserRepository(db, retry))
	taskService := appservice.NewTaskService(dbadapter.NewTaskRepository(db, retry))
	categoryService := appservice.NewCategoryService(dbadapter.NewCategoryRepository(db, retry))
	identity := appservice.NewDemoIdentityResolver(userService, cfg.DemoUserEmail, cfg.DemoUserName)

	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Strings("proxies", cfg.TrustedProxies), zap.Error(err))
	}
	httpadapter.RegisterRoutes(
		r,
		cfg.APIBasePath,
		identity,
		handlers.NewHealthHandler(db, cfg.AppVersion, cfg.AppEnv),
		handlers.NewTaskHandler(taskService),
		handlers.NewCategoryHandler(categoryService),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr), zap.String("base_path", cfg.APIBasePath))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown requested")
	case err := <-serverErr:
		logger.Error("server stopped", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
