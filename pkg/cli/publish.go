package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"google.golang.org/api/option"

	"github.com/m-mizutani/apkdrop/pkg/cli/config"
	"github.com/m-mizutani/apkdrop/pkg/domain/interfaces"
	"github.com/m-mizutani/apkdrop/pkg/domain/model"
	"github.com/m-mizutani/apkdrop/pkg/infra/dropbox"
	"github.com/m-mizutani/apkdrop/pkg/infra/gcs"
	slackinfra "github.com/m-mizutani/apkdrop/pkg/infra/slack"
	"github.com/m-mizutani/apkdrop/pkg/usecase"
)

func cmdPublish() *cli.Command {
	var (
		fileCfg    config.File
		appCfg     config.App
		storageCfg config.Storage
		dropboxCfg config.Dropbox
		slackCfg   config.Slack
	)

	flags := fileCfg.Flags()
	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, storageCfg.Flags()...)
	flags = append(flags, dropboxCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)

	return &cli.Command{
		Name:    "publish",
		Aliases: []string{"p"},
		Usage:   "Upload the built APK and print its public download link",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			defaults, err := fileCfg.Load()
			if err != nil {
				return err
			}
			defaults.Apply(&appCfg, &storageCfg, &slackCfg)

			if appCfg.ReleaseDir == "" {
				appCfg.ReleaseDir = "."
			}
			if appCfg.ChangelogPath == "" {
				appCfg.ChangelogPath = "CHANGELOG.md"
			}
			if storageCfg.Provider == "" {
				storageCfg.Provider = config.ProviderDropbox
			}

			storageClient, err := newStorageClient(ctx, &storageCfg, &dropboxCfg)
			if err != nil {
				return err
			}

			var opts []usecase.PublishOption
			if slackCfg.Enabled() {
				opts = append(opts, usecase.WithNotifier(slackinfra.NewNotifier(slackCfg.Token, slackCfg.Channel)))
			}

			uc := usecase.NewPublish(storageClient, opts...)

			logger.Info("Starting publish",
				"app", appCfg.Name,
				"release_dir", appCfg.ReleaseDir,
				"provider", storageCfg.Provider,
				"folder", storageCfg.Folder,
			)

			result, err := uc.Publish(ctx, &model.PublishRequest{
				AppName:       appCfg.Name,
				ReleaseDir:    appCfg.ReleaseDir,
				ChangelogPath: appCfg.ChangelogPath,
				Folder:        storageCfg.Folder,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(c.Writer, "%s %s\n", color.GreenString("Download URL:"), result.SharedURL)
			if result.Changes != "" {
				fmt.Fprintf(c.Writer, "\n%s\n%s", color.GreenString("Latest changes:"), result.Changes)
			}

			return nil
		},
	}
}

// newStorageClient builds the storage backend selected by the
// provider setting
func newStorageClient(ctx context.Context, storageCfg *config.Storage, dropboxCfg *config.Dropbox) (interfaces.StorageClient, error) {
	switch storageCfg.Provider {
	case config.ProviderDropbox:
		if dropboxCfg.Token == "" {
			return nil, goerr.New("dropbox token is required for the dropbox provider")
		}
		return dropbox.NewClient(dropboxCfg.Token), nil

	case config.ProviderGCS:
		if storageCfg.Bucket == "" {
			return nil, goerr.New("gcs bucket is required for the gcs provider")
		}
		var opts []option.ClientOption
		if storageCfg.CredentialsFile != "" {
			opts = append(opts, option.WithCredentialsFile(storageCfg.CredentialsFile))
		}
		return gcs.NewClient(ctx, storageCfg.Bucket, opts...)

	default:
		return nil, goerr.New("unknown storage provider", goerr.V("provider", storageCfg.Provider))
	}
}
