package usecase

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/apkdrop/pkg/domain/model"
	"github.com/m-mizutani/apkdrop/pkg/domain/types"
)

// outputFileName is the metadata file the Android build tool writes
// next to the built artifact.
const outputFileName = "output.json"

// metadataKeys are the known top-level keys carrying build metadata.
// The key name changed between build tool versions, so both variants
// are accepted.
var metadataKeys = []string{"apkInfo", "apkData"}

// buildOutputDetails is the metadata object nested under one of the
// known keys in output.json.
type buildOutputDetails struct {
	VersionName string `json:"versionName"`
	OutputFile  string `json:"outputFile"`
}

// InspectBuild reads the build tool's output.json in releaseDir and
// returns the version and absolute artifact path. An output file that
// parses but carries none of the known metadata keys yields an error
// tagged with types.TagMetadataSchema, so callers can tell a schema
// mismatch from an unreadable file.
func InspectBuild(ctx context.Context, releaseDir string) (*model.BuildMetadata, error) {
	logger := ctxlog.From(ctx)

	outputPath := filepath.Join(releaseDir, outputFileName)

	raw, err := os.ReadFile(outputPath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read build output file",
			goerr.T(types.TagOutputParse), goerr.V("path", outputPath))
	}

	// Entries carry sibling keys with non-object values (e.g. "path",
	// "outputType"), so only the selected metadata key is decoded.
	var entries []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, goerr.Wrap(err, "failed to parse build output file",
			goerr.T(types.TagOutputParse), goerr.V("path", outputPath))
	}
	if len(entries) == 0 {
		return nil, goerr.New("build output file has no entries",
			goerr.T(types.TagOutputParse), goerr.V("path", outputPath))
	}

	for _, key := range metadataKeys {
		rawDetails, ok := entries[0][key]
		if !ok {
			continue
		}

		var details buildOutputDetails
		if err := json.Unmarshal(rawDetails, &details); err != nil {
			return nil, goerr.Wrap(err, "failed to parse build metadata",
				goerr.T(types.TagOutputParse),
				goerr.V("path", outputPath), goerr.V("key", key))
		}

		meta := &model.BuildMetadata{
			Version:      details.VersionName,
			ArtifactPath: filepath.Join(releaseDir, details.OutputFile),
		}

		logger.Debug("Extracted build metadata",
			"key", key,
			"version", meta.Version,
			"artifact_path", meta.ArtifactPath,
		)

		return meta, nil
	}

	return nil, goerr.New("no known build metadata key in output file",
		goerr.T(types.TagOutputParse), goerr.T(types.TagMetadataSchema),
		goerr.V("path", outputPath))
}
