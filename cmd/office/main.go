package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Godson026/sic-agent-app/internal/config"
	"github.com/Godson026/sic-agent-app/internal/db"
	"github.com/Godson026/sic-agent-app/internal/httpserver"
	clientrepo "github.com/Godson026/sic-agent-app/internal/repository/client"
	counterrepo "github.com/Godson026/sic-agent-app/internal/repository/counter"
	paymentrepo "github.com/Godson026/sic-agent-app/internal/repository/payment"
	clientsvc "github.com/Godson026/sic-agent-app/internal/service/client"
	paymentsvc "github.com/Godson026/sic-agent-app/internal/service/payment"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	log := cfg.NewLogger()

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		log.WithError(err).Fatal("connect to db")
	}
	defer dbpool.Close()

	clientRepo := clientrepo.NewPostgres(dbpool, log)
	paymentRepo := paymentrepo.NewPostgres(dbpool, log)
	counterRepo := counterrepo.NewPostgres(dbpool)
	clientService := clientsvc.New(clientRepo, counterRepo)
	paymentService := paymentsvc.New(paymentRepo)

	srv, err := httpserver.New(cfg.HTTPAddr, log, dbpool, httpserver.Deps{
		ClientSvc:  clientService,
		PaymentSvc: paymentService,
	})
	if err != nil {
		log.WithError(err).Fatal("init server")
	}

	serverErr := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.HTTPAddr).Info("starting http server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		log.WithField("signal", sig.String()).Info("shutting down")
	case err := <-serverErr:
		log.WithError(err).Error("server error")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	} else {
		log.Info("server stopped")
	}
}
