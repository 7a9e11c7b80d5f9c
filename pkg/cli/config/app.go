package config

import "github.com/urfave/cli/v3"

// App holds application build configuration
type App struct {
	Name          string
	ReleaseDir    string
	ChangelogPath string
}

// Flags returns CLI flags for application configuration
func (c *App) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "app-name",
			Usage:       "Application name used for the release file name",
			Destination: &c.Name,
			Sources:     cli.EnvVars("APKDROP_APP_NAME"),
		},
		&cli.StringFlag{
			Name:        "release-dir",
			Usage:       "Directory containing output.json and the built APK (default: current directory)",
			Destination: &c.ReleaseDir,
			Sources:     cli.EnvVars("APKDROP_RELEASE_DIR"),
		},
		&cli.StringFlag{
			Name:        "changelog",
			Usage:       "Path to the changelog file (default: CHANGELOG.md)",
			Destination: &c.ChangelogPath,
			Sources:     cli.EnvVars("APKDROP_CHANGELOG"),
		},
	}
}
