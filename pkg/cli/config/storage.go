package config

import "github.com/urfave/cli/v3"

// Storage provider names
const (
	ProviderDropbox = "dropbox"
	ProviderGCS     = "gcs"
)

// Storage holds storage provider configuration
type Storage struct {
	Provider        string
	Folder          string
	Bucket          string
	CredentialsFile string
}

// Flags returns CLI flags for storage configuration
func (c *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "provider",
			Usage:       "Storage provider (dropbox, gcs; default: dropbox)",
			Destination: &c.Provider,
			Sources:     cli.EnvVars("APKDROP_PROVIDER"),
		},
		&cli.StringFlag{
			Name:        "folder",
			Usage:       "Remote folder the artifact is stored under",
			Destination: &c.Folder,
			Sources:     cli.EnvVars("APKDROP_FOLDER"),
		},
		&cli.StringFlag{
			Name:        "gcs-bucket",
			Usage:       "GCS bucket name (gcs provider only)",
			Destination: &c.Bucket,
			Sources:     cli.EnvVars("APKDROP_GCS_BUCKET"),
		},
		&cli.StringFlag{
			Name:        "gcs-credentials",
			Usage:       "Path to a service account credentials file (gcs provider only)",
			Destination: &c.CredentialsFile,
			Sources:     cli.EnvVars("APKDROP_GCS_CREDENTIALS"),
		},
	}
}
