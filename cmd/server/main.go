package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	webAdapter "dashboard-customization/internal/adapters/web"
	"dashboard-customization/internal/app"
	"dashboard-customization/internal/customization"
	"dashboard-customization/internal/logger"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := app.LoadConfig()
	log, err := logger.New(cfg.LogLevel, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	bundle := customization.New()
	svc := app.NewAppService(bundle)
	if err := svc.CheckConsistency(context.Background()); err != nil {
		log.Info("customization has consistency problems", "error", err.Error())
	}

	handler := webAdapter.NewHandler(svc, log.Logger, cfg.AllowedOrigins)
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("server starting", "addr", srv.Addr, "company", bundle.Config.CompanyName)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(err, "server")
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownGracePeriod)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(err, "shutdown")
		return
	}
	log.Info("server stopped")
}
