package model

// PublishRequest carries the inputs of one publish invocation
type PublishRequest struct {
	AppName       string // Application name used for the release file name
	ReleaseDir    string // Directory containing output.json and the APK
	ChangelogPath string // Path to the changelog file
	Folder        string // Remote folder the artifact is stored under
}

// PublishResult is the outcome of a successful publish
type PublishResult struct {
	AppName    string // Application name as given in the request
	Version    string // Version extracted from the build output
	FileName   string // Derived release file name
	RemotePath string // Remote path used for delete, upload and share
	SharedURL  string // Public direct-download link
	Changes    string // Latest changelog entry
}
