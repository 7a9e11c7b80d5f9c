package usecase

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/apkdrop/pkg/domain/interfaces"
	"github.com/m-mizutani/apkdrop/pkg/domain/model"
	"github.com/m-mizutani/apkdrop/pkg/domain/types"
)

type publishUseCase struct {
	storageClient interfaces.StorageClient
	notifier      interfaces.Notifier
}

// PublishOption configures the publish use case
type PublishOption func(*publishUseCase)

// WithNotifier sets a notifier that announces successful publishes
func WithNotifier(notifier interfaces.Notifier) PublishOption {
	return func(uc *publishUseCase) {
		uc.notifier = notifier
	}
}

// NewPublish creates a new instance of PublishUseCase
func NewPublish(storageClient interfaces.StorageClient, opts ...PublishOption) interfaces.PublishUseCase {
	uc := &publishUseCase{
		storageClient: storageClient,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Publish runs the pipeline: inspect the build output, derive the
// release file name, extract the latest changelog entry, then delete,
// upload and share the artifact on the storage provider. The remote
// path is the same for all three storage calls. Every remote failure
// past the best-effort delete is terminal, with no retry and no
// rollback.
func (uc *publishUseCase) Publish(ctx context.Context, req *model.PublishRequest) (*model.PublishResult, error) {
	logger := ctxlog.From(ctx).With("publish_id", uuid.NewString())
	ctx = ctxlog.With(ctx, logger)

	if strings.TrimSpace(req.AppName) == "" {
		return nil, goerr.New("app name is empty", goerr.T(types.TagFileName))
	}

	meta, err := InspectBuild(ctx, req.ReleaseDir)
	if err != nil {
		return nil, err
	}

	fileName := model.TargetFileName(req.AppName, meta.Version)

	changelog, err := os.ReadFile(req.ChangelogPath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read changelog file",
			goerr.T(types.TagChangelog), goerr.V("path", req.ChangelogPath))
	}
	changes := model.LatestChanges(string(changelog))

	remotePath := fmt.Sprintf("/%s/%s", req.Folder, fileName)

	logger.Info("Publishing build artifact",
		"app", req.AppName,
		"version", meta.Version,
		"file_name", fileName,
		"remote_path", remotePath,
		"artifact_path", meta.ArtifactPath,
	)

	// Best-effort cleanup of a previous upload at the same path. The
	// file usually does not exist, so the outcome is ignored.
	if err := uc.storageClient.Delete(ctx, remotePath); err != nil {
		logger.Debug("Pre-upload delete failed", "error", err, "remote_path", remotePath)
	}

	artifact, err := os.Open(meta.ArtifactPath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open build artifact",
			goerr.T(types.TagStorage), goerr.V("path", meta.ArtifactPath))
	}
	defer artifact.Close()

	if err := uc.storageClient.Upload(ctx, remotePath, artifact); err != nil {
		logger.Error("Failed to upload artifact", "error", err, "remote_path", remotePath)
		return nil, goerr.Wrap(err, "failed to upload artifact",
			goerr.T(types.TagStorage), goerr.V("remote_path", remotePath))
	}

	logger.Info("Uploaded artifact", "remote_path", remotePath)

	sharedURL, err := uc.storageClient.CreateSharedLink(ctx, remotePath)
	if err != nil {
		logger.Error("Failed to create shared link", "error", err, "remote_path", remotePath)
		return nil, goerr.Wrap(err, "failed to create shared link",
			goerr.T(types.TagStorage), goerr.V("remote_path", remotePath))
	}

	result := &model.PublishResult{
		AppName:    req.AppName,
		Version:    meta.Version,
		FileName:   fileName,
		RemotePath: remotePath,
		SharedURL:  sharedURL,
		Changes:    changes,
	}

	logger.Info("Published build artifact",
		"version", result.Version,
		"shared_url", result.SharedURL,
	)

	// The artifact is already public at this point, so a failed
	// notification is not worth failing the publish over.
	if uc.notifier != nil {
		if err := uc.notifier.NotifyRelease(ctx, result); err != nil {
			logger.Warn("Failed to send release notification", "error", err)
		}
	}

	return result, nil
}
