package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/apkdrop/pkg/cli/config"
)

func TestFile_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "apkdrop.toml")

	content := `
[app]
name = "My App"
release_dir = "app/release"
changelog = "docs/CHANGELOG.md"

[storage]
provider = "gcs"
folder = "releases"
bucket = "my-releases"

[slack]
channel = "#releases"
`
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg := &config.File{Path: path}
	defaults, err := cfg.Load()

	gt.NoError(t, err)
	gt.Equal(t, defaults.App.Name, "My App")
	gt.Equal(t, defaults.App.ReleaseDir, "app/release")
	gt.Equal(t, defaults.Storage.Provider, "gcs")
	gt.Equal(t, defaults.Storage.Bucket, "my-releases")
	gt.Equal(t, defaults.Slack.Channel, "#releases")
}

func TestFile_Load_NoPath(t *testing.T) {
	cfg := &config.File{}

	defaults, err := cfg.Load()

	gt.NoError(t, err)
	gt.Value(t, defaults).Nil()
}

func TestFile_Load_MissingFile(t *testing.T) {
	cfg := &config.File{Path: filepath.Join(t.TempDir(), "no-such.toml")}

	_, err := cfg.Load()

	gt.Error(t, err)
}

func TestFileDefaults_Apply(t *testing.T) {
	defaults := &config.FileDefaults{}
	defaults.App.Name = "File App"
	defaults.App.ReleaseDir = "file/release"
	defaults.Storage.Folder = "file-folder"

	appCfg := &config.App{Name: "Flag App"}
	storageCfg := &config.Storage{}
	slackCfg := &config.Slack{}

	defaults.Apply(appCfg, storageCfg, slackCfg)

	// Flag values win over file values, file fills the gaps
	gt.Equal(t, appCfg.Name, "Flag App")
	gt.Equal(t, appCfg.ReleaseDir, "file/release")
	gt.Equal(t, storageCfg.Folder, "file-folder")
}

func TestFileDefaults_Apply_Nil(t *testing.T) {
	var defaults *config.FileDefaults

	appCfg := &config.App{Name: "Flag App"}
	defaults.Apply(appCfg, nil, nil)

	gt.Equal(t, appCfg.Name, "Flag App")
}
