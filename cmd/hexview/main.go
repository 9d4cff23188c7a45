// Package main is the entry point for the interactive hex grid viewer.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/hexdrape/internal/config"
	"github.com/Faultbox/hexdrape/internal/logger"
	"github.com/Faultbox/hexdrape/internal/viewer"
	"github.com/Faultbox/hexdrape/internal/world"
)

func main() {
	// Parse CLI flags first
	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== hexview ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	w, err := world.Build(cfg, logger.Named("world"))
	if err != nil {
		logger.Error("failed to build world", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("grid generated", zap.Object("stats", w.Grid.Stats))

	v, err := viewer.New(cfg, w, logger.Named("viewer"))
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		os.Exit(1)
	}
	defer v.Close()

	if err := v.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}
