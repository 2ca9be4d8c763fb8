// @title         Showcase API
// @version       0.1.0
// @description   Project cards of a GitHub account, enriched from their deployed pages

// Command showcase serves or renders the project cards of a GitHub account
package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"showcase/internal/core/version"
	"showcase/internal/platform/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "showcase",
		Short:         "Show a GitHub account's repositories as project cards",
		Version:       version.Info().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// env first so LOG_* from the file reaches the logger
			if err := loadEnv(envFile); err != nil {
				return err
			}
			opt := logger.FromEnv()
			opt.Writer = os.Stderr
			logger.Init(opt)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(serveCmd(), renderCmd())
	return root
}

// loadEnv loads path when it exists; existing variables win
func loadEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// fail logs err and hands it back to cobra
func fail(err error, msg string) error {
	logger.Get().Error().Err(err).Msg(msg)
	return err
}
