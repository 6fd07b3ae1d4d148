package main

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/esneiderbravo/crehana-tasks/internal/config"
	"github.com/esneiderbravo/crehana-tasks/internal/graphql"
	"github.com/esneiderbravo/crehana-tasks/internal/router"
)

func main() {
	// optional .env for local development
	_ = godotenv.Load()

	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// the signing secret must come from config or environment
	if cfg.JWT.Secret == "" {
		log.Fatal("jwt secret is not configured (set TASKS_JWT_SECRET)")
	}

	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	gql := graphql.New(
		cfg.GraphQL.URL,
		time.Duration(cfg.GraphQL.TimeoutSeconds)*time.Second,
		logger,
	)

	r := router.SetupRouter(cfg, gql, logger)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	logger.Info("server listening",
		zap.String("addr", addr),
		zap.String("graphql_url", cfg.GraphQL.URL),
	)
	if err := r.Run(addr); err != nil {
		logger.Fatal("run server", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if level != "" {
		lvl, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		zcfg.Level = lvl
	}
	return zcfg.Build()
}
