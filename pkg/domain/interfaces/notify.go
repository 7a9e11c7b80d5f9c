package interfaces

import (
	"context"

	"github.com/m-mizutani/apkdrop/pkg/domain/model"
)

// Notifier announces a published release to an external channel
type Notifier interface {
	// NotifyRelease sends a notification for a completed publish
	NotifyRelease(ctx context.Context, result *model.PublishResult) error
}
