package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/nimbus-kallosoft/nimbus-studio-kallossoft-co/api"
	"github.com/nimbus-kallosoft/nimbus-studio-kallossoft-co/auth"
	"github.com/nimbus-kallosoft/nimbus-studio-kallossoft-co/config"
	"github.com/nimbus-kallosoft/nimbus-studio-kallossoft-co/nimbus"
	"github.com/nimbus-kallosoft/nimbus-studio-kallossoft-co/policy"
	"github.com/nimbus-kallosoft/nimbus-studio-kallossoft-co/store"
)

func main() {
	cfg := config.Load()

	log := logrus.New()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	log.Infof("starting nimbus studio gateway on port %d", cfg.HTTPPort)
	log.Infof("nimbus backend: %s", cfg.NimbusURL)
	for _, name := range cfg.InsecureDefaults() {
		log.Warnf("%s is using its development fallback; set it before deploying", name)
	}

	// Chat history store
	db, err := store.NewSQLiteStore(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to initialize store: %v", err)
	}
	defer db.Close()

	// Nimbus backend client
	client := nimbus.NewClient(cfg.NimbusURL, cfg.NimbusToken)

	// Dispatch policy engine
	policyEngine, err := policy.NewEngine(context.Background(), policy.DefaultPolicy)
	if err != nil {
		log.Fatalf("failed to initialize policy engine: %v", err)
	}

	// Session gate
	resolver := auth.NewJWTResolver(cfg.SessionSecret)

	h := api.NewHandler(client, db, policyEngine, log)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	h.RegisterRoutes(e, auth.Middleware(resolver))

	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down gateway...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("failed to shutdown server gracefully: %v", err)
	}

	log.Info("gateway stopped")
}
