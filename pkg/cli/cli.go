package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/apkdrop/pkg/cli/config"
	"github.com/m-mizutani/apkdrop/pkg/domain/types"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	var (
		loggerCfg config.Logger
		sentryCfg config.Sentry
	)
	var logger *slog.Logger

	flags := append(loggerCfg.Flags(), sentryCfg.Flags()...)

	app := &cli.Command{
		Name:    "apkdrop",
		Usage:   "Publish an APK build artifact to cloud storage",
		Version: types.Version,
		Flags:   flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)

			if err := sentryCfg.Configure(); err != nil {
				return nil, err
			}

			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdPublish(),
			cmdInspect(),
			cmdChangelog(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))

		if sentryCfg.DSN != "" {
			sentry.CurrentHub().CaptureException(err)
			sentry.Flush(2 * time.Second)
		}

		return err
	}

	return nil
}

// ExitCode maps a pipeline error to the process exit code of its
// failure category
func ExitCode(err error) int {
	switch {
	case err == nil:
		return types.ExitOK
	case goerr.HasTag(err, types.TagOutputParse):
		return types.ExitOutputParse
	case goerr.HasTag(err, types.TagChangelog):
		return types.ExitChangelog
	case goerr.HasTag(err, types.TagFileName):
		return types.ExitFileName
	default:
		return types.ExitStorage
	}
}
