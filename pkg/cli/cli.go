package cli

import (
	"context"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/upmtools/upmpack/pkg/cli/config"
	"github.com/upmtools/upmpack/pkg/domain/types"
	"github.com/upmtools/upmpack/pkg/utils/logging"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	// Values from .env feed the UPMPACK_* flag sources
	_ = godotenv.Load()

	var logger *slog.Logger
	app := newApp(&logger)

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		return err
	}

	return nil
}

func newApp(logger **slog.Logger) *cli.Command {
	var loggerCfg config.Logger

	return &cli.Command{
		Name:    "upmpack",
		Usage:   "Build package manifests and export installable package directories",
		Version: types.Version,
		Flags:   loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			l, err := loggerCfg.Configure()
			if err != nil {
				return nil, err
			}
			*logger = l

			slog.SetDefault(l)
			return logging.With(ctx, l), nil
		},
		Commands: []*cli.Command{
			cmdNew(),
			cmdShow(),
			cmdValidate(),
			cmdKeyword(),
			cmdDependency(),
			cmdExport(),
			cmdVerify(),
		},
	}
}
