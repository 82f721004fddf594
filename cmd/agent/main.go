package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	evbus "github.com/asaskevich/EventBus"
	"github.com/joho/godotenv"

	"github.com/Godson026/sic-agent-app/internal/config"
	"github.com/Godson026/sic-agent-app/internal/connectivity"
	"github.com/Godson026/sic-agent-app/internal/kvstore"
	"github.com/Godson026/sic-agent-app/internal/localstore"
	"github.com/Godson026/sic-agent-app/internal/policy"
	"github.com/Godson026/sic-agent-app/internal/session"
	"github.com/Godson026/sic-agent-app/internal/syncclient"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	log := cfg.NewLogger()

	kv, err := kvstore.Open(cfg.AgentDataPath, log)
	if err != nil {
		log.WithError(err).Fatal("open local store")
	}
	defer kv.Close()

	store := localstore.New(kv, policy.NewGenerator(cfg.PolicyPrefix), log)
	pusher := syncclient.New(cfg.OfficeBaseURL, cfg.SyncTimeout, log)

	sess := session.New(store, pusher, log)
	sess.SetSyncTimeout(cfg.SyncTimeout)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sess.Load(ctx)
	log.WithFields(map[string]interface{}{
		"clients":  len(sess.Clients()),
		"payments": len(sess.Payments()),
	}).Info("session loaded")

	bus := evbus.New()
	if err := sess.BindBus(bus); err != nil {
		log.WithError(err).Fatal("bind event bus")
	}

	monitor := connectivity.New(cfg.OfficeBaseURL+"/healthz", cfg.ProbeInterval, bus, log)
	go monitor.Run(ctx)

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stopCh
	log.WithField("signal", sig.String()).Info("shutting down")
}
