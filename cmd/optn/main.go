// Package main is the entry point for optn, a calculator for the returns of
// cash-secured short puts and covered calls held to expiry.
package main

import (
	"fmt"
	"os"

	"github.com/aristath/optn/internal/cli"
	"github.com/aristath/optn/internal/config"
	"github.com/aristath/optn/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Use fallback logger if config fails
		fallbackLog := logger.New(logger.Config{
			Level:  "info",
			Pretty: true,
		})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
	})
	logger.SetGlobalLogger(log)

	root := cli.NewRootCommand(cli.Options{Log: log})
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
