package model

// BuildMetadata represents build information extracted from the build
// tool's output.json
type BuildMetadata struct {
	Version      string // Dotted version string, e.g. "1.0.3"
	ArtifactPath string // Absolute path to the built APK
}
