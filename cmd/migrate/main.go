package main

import (
	"context"

	"github.com/joho/godotenv"

	"github.com/Godson026/sic-agent-app/internal/config"
	"github.com/Godson026/sic-agent-app/internal/db"
	"github.com/Godson026/sic-agent-app/internal/migrate"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	log := cfg.NewLogger()

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		log.WithError(err).Fatal("connect db")
	}
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		log.WithError(err).Fatal("apply migrations")
	}

	log.Info("migrations applied")
}
