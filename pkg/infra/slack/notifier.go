package slack

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"

	"github.com/m-mizutani/apkdrop/pkg/domain/interfaces"
	"github.com/m-mizutani/apkdrop/pkg/domain/model"
)

type notifier struct {
	slackClient *slack.Client
	channel     string
}

// NewNotifier creates a Notifier that posts release announcements to
// a Slack channel
func NewNotifier(token, channel string) interfaces.Notifier {
	return &notifier{
		slackClient: slack.New(token),
		channel:     channel,
	}
}

// NotifyRelease posts the app name, version, changelog entry and
// download link to the configured channel
func (n *notifier) NotifyRelease(ctx context.Context, result *model.PublishResult) error {
	attachment := slack.Attachment{
		Title:     fmt.Sprintf("%s %s released", result.AppName, result.Version),
		TitleLink: result.SharedURL,
		Text:      formatChanges(result.Changes),
		Fields: []slack.AttachmentField{
			{Title: "File", Value: result.FileName, Short: true},
			{Title: "Version", Value: result.Version, Short: true},
		},
	}

	_, _, err := n.slackClient.PostMessageContext(ctx, n.channel,
		slack.MsgOptionText(fmt.Sprintf("New build available: <%s|%s>", result.SharedURL, result.FileName), false),
		slack.MsgOptionAttachments(attachment),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post release notification",
			goerr.V("channel", n.channel))
	}

	return nil
}

// formatChanges trims the changelog entry for the message body
func formatChanges(changes string) string {
	trimmed := strings.TrimSpace(changes)
	if trimmed == "" {
		return "(no changelog entry)"
	}
	return trimmed
}
