package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// File holds the path to an optional TOML config file supplying
// defaults for publish settings. Flags and environment variables win
// over file values.
type File struct {
	Path string
}

// Flags returns CLI flags for config file selection
func (c *File) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to a TOML config file with publish defaults",
			Destination: &c.Path,
			Sources:     cli.EnvVars("APKDROP_CONFIG"),
		},
	}
}

// FileDefaults mirrors the config file layout:
//
//	[app]
//	name = "My App"
//	release_dir = "app/release"
//	changelog = "CHANGELOG.md"
//
//	[storage]
//	provider = "dropbox"
//	folder = "releases"
//
//	[slack]
//	channel = "#releases"
type FileDefaults struct {
	App struct {
		Name          string `toml:"name"`
		ReleaseDir    string `toml:"release_dir"`
		ChangelogPath string `toml:"changelog"`
	} `toml:"app"`
	Storage struct {
		Provider        string `toml:"provider"`
		Folder          string `toml:"folder"`
		Bucket          string `toml:"bucket"`
		CredentialsFile string `toml:"credentials_file"`
	} `toml:"storage"`
	Slack struct {
		Channel string `toml:"channel"`
	} `toml:"slack"`
}

// Load parses the config file. Returns nil without error when no path
// is configured.
func (c *File) Load() (*FileDefaults, error) {
	if c.Path == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(c.Path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V("path", c.Path))
	}

	var defaults FileDefaults
	if err := toml.Unmarshal(raw, &defaults); err != nil {
		return nil, goerr.Wrap(err, "failed to parse config file", goerr.V("path", c.Path))
	}

	return &defaults, nil
}

// Apply fills unset fields of the given configs from the file
// defaults. A nil receiver or nil target is a no-op.
func (d *FileDefaults) Apply(app *App, storage *Storage, slack *Slack) {
	if d == nil {
		return
	}

	if app != nil {
		fallback(&app.Name, d.App.Name)
		fallback(&app.ReleaseDir, d.App.ReleaseDir)
		fallback(&app.ChangelogPath, d.App.ChangelogPath)
	}
	if storage != nil {
		fallback(&storage.Provider, d.Storage.Provider)
		fallback(&storage.Folder, d.Storage.Folder)
		fallback(&storage.Bucket, d.Storage.Bucket)
		fallback(&storage.CredentialsFile, d.Storage.CredentialsFile)
	}
	if slack != nil {
		fallback(&slack.Channel, d.Slack.Channel)
	}
}

func fallback(dst *string, value string) {
	if *dst == "" && value != "" {
		*dst = value
	}
}
