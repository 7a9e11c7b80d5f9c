package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/apkdrop/pkg/domain/model"
	"github.com/m-mizutani/apkdrop/pkg/domain/types"
)

func cmdChangelog() *cli.Command {
	var changelogPath string

	return &cli.Command{
		Name:  "changelog",
		Usage: "Print the latest changelog entry",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "changelog",
				Usage:       "Path to the changelog file",
				Value:       "CHANGELOG.md",
				Destination: &changelogPath,
				Sources:     cli.EnvVars("APKDROP_CHANGELOG"),
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			raw, err := os.ReadFile(changelogPath)
			if err != nil {
				return goerr.Wrap(err, "failed to read changelog file",
					goerr.T(types.TagChangelog), goerr.V("path", changelogPath))
			}

			fmt.Fprint(c.Writer, model.LatestChanges(string(raw)))
			return nil
		},
	}
}
