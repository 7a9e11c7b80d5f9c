package config

import "github.com/urfave/cli/v3"

// Slack holds release notification configuration. Notification is
// active only when both token and channel are set.
type Slack struct {
	Token   string
	Channel string
}

// Flags returns CLI flags for Slack configuration
func (c *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-token",
			Usage:       "Slack bot token for release notifications",
			Destination: &c.Token,
			Sources:     cli.EnvVars("APKDROP_SLACK_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel for release notifications",
			Destination: &c.Channel,
			Sources:     cli.EnvVars("APKDROP_SLACK_CHANNEL"),
		},
	}
}

// Enabled reports whether notification is configured
func (c *Slack) Enabled() bool {
	return c.Token != "" && c.Channel != ""
}
