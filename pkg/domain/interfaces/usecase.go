package interfaces

import (
	"context"

	"github.com/m-mizutani/apkdrop/pkg/domain/model"
)

// PublishUseCase defines the artifact publishing pipeline
type PublishUseCase interface {
	// Publish locates the build artifact, derives the release file
	// name and changelog, uploads the artifact and returns the
	// public download link
	Publish(ctx context.Context, req *model.PublishRequest) (*model.PublishResult, error)
}
