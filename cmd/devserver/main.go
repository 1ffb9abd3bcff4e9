package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/text"

	"mediguard/internal/config"
	"mediguard/internal/devapi"
)

func main() {
	cfg := config.Load()
	cfg.SetupLogging(text.New(os.Stderr))

	repo, closeRepo, err := devapi.OpenRepository(context.Background(), devapi.StoreOptions{
		DatabaseURL:     cfg.DatabaseURL,
		MigrationsDir:   cfg.MigrationsDir,
		ConnectAttempts: 10,
		RetryDelay:      time.Second,
	})
	if err != nil {
		log.WithError(err).Fatal("storage setup failed")
	}
	defer closeRepo()
	handler := devapi.NewHandler(repo)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           devapi.NewRouter(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("dev API starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("shutdown failed")
	}
	log.Info("dev API stopped")
}
