package config

import "github.com/urfave/cli/v3"

// Dropbox holds Dropbox API configuration
type Dropbox struct {
	Token string
}

// Flags returns CLI flags for Dropbox configuration
func (c *Dropbox) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "dropbox-token",
			Usage:       "Dropbox API access token",
			Destination: &c.Token,
			Sources:     cli.EnvVars("APKDROP_DROPBOX_TOKEN"),
		},
	}
}
