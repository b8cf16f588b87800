package main

import (
	"context"
	"flag"
	"os"

	"bitbucket.org/sotavant/contacts-app/internal/config"
	"bitbucket.org/sotavant/contacts-app/internal/history"
	"bitbucket.org/sotavant/contacts-app/internal/logger"
	"bitbucket.org/sotavant/contacts-app/internal/remote"
	"bitbucket.org/sotavant/contacts-app/internal/store"
	"go.uber.org/zap"
)

func main() {
	parseFlags()
	if err := run(); err != nil {
		panic(err)
	}
}

func run() error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	if flagBaseURL != "" {
		cfg.BaseURL = flagBaseURL
	}
	if flagAPIKey != "" {
		cfg.APIKey = flagAPIKey
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}

	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return err
	}

	logger.Log.Info("contacts client starting",
		zap.String("base_url", cfg.BaseURL),
		zap.Duration("timeout", cfg.Timeout))

	client := remote.New(remote.Config{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		Timeout: cfg.Timeout,
	})
	appInstance := newApp(store.New(client), client, history.NewStore(), os.Stdout)

	ctx := context.Background()
	if args := flag.Args(); len(args) > 0 {
		return appInstance.run(ctx, args)
	}
	return appInstance.interactive(ctx, os.Stdin)
}
