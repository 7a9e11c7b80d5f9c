package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/apkdrop/pkg/usecase"
)

func cmdInspect() *cli.Command {
	var releaseDir string

	return &cli.Command{
		Name:  "inspect",
		Usage: "Print version and artifact path from a release directory",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "release-dir",
				Usage:       "Directory containing output.json",
				Value:       ".",
				Destination: &releaseDir,
				Sources:     cli.EnvVars("APKDROP_RELEASE_DIR"),
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			meta, err := usecase.InspectBuild(ctx, releaseDir)
			if err != nil {
				return err
			}

			fmt.Fprintf(c.Writer, "version: %s\n", meta.Version)
			fmt.Fprintf(c.Writer, "artifact: %s\n", meta.ArtifactPath)
			return nil
		},
	}
}
