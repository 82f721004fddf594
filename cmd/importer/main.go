package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Godson026/sic-agent-app/internal/config"
	"github.com/Godson026/sic-agent-app/internal/db"
	"github.com/Godson026/sic-agent-app/internal/importer"
	clientrepo "github.com/Godson026/sic-agent-app/internal/repository/client"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to client-book CSV export")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load()
	cfg := config.FromEnv()
	log := cfg.NewLogger()
	ctx := context.Background()

	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		log.WithError(err).Fatal("connect db")
	}
	defer pool.Close()

	f, err := os.Open(filePath)
	if err != nil {
		log.WithError(err).Fatal("open file")
	}
	defer f.Close()

	imp := importer.NewCSVImporter(f, clientrepo.NewPostgres(pool, log))

	start := time.Now()
	count, err := imp.Run(ctx)
	if err != nil {
		log.WithError(err).Fatal("import failed")
	}

	log.WithFields(map[string]interface{}{
		"clients": count,
		"took":    time.Since(start).Truncate(time.Millisecond).String(),
	}).Info("import complete")
}
