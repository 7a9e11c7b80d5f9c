package model_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/apkdrop/pkg/domain/model"
)

func TestTargetFileName(t *testing.T) {
	tests := []struct {
		name    string
		appName string
		version string
		want    string
	}{
		{
			name:    "simple",
			appName: "myapp",
			version: "1.0",
			want:    "myapp_1_0.apk",
		},
		{
			name:    "mixed case app name",
			appName: "MyApp",
			version: "1.0",
			want:    "myapp_1_0.apk",
		},
		{
			name:    "spaces stripped",
			appName: "My App",
			version: "1.0.3",
			want:    "myapp_1_0_3.apk",
		},
		{
			name:    "version without dots",
			appName: "app",
			version: "42",
			want:    "app_42.apk",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Equal(t, model.TargetFileName(tt.appName, tt.version), tt.want)
		})
	}
}

func TestTargetFileName_DotReplacement(t *testing.T) {
	versions := []string{"1", "1.0", "1.0.3", "10.20.30.40"}

	for _, v := range versions {
		name := model.TargetFileName("Some App", v)

		gt.Equal(t, strings.Count(name, "_")-1, strings.Count(v, "."))
		gt.False(t, strings.Contains(name, " "))
		gt.Equal(t, strings.Count(name, ".apk"), 1)
		gt.True(t, strings.HasSuffix(name, ".apk"))
	}
}

func TestLatestChanges(t *testing.T) {
	tests := []struct {
		name      string
		changelog string
		want      string
	}{
		{
			name:      "two entries with headings",
			changelog: "# v2\nFix A\n##\n# v1\nFix B\n",
			want:      "Fix A\n",
		},
		{
			name:      "single entry without delimiter",
			changelog: "Fix A\nFix B\n",
			want:      "Fix A\nFix B\n",
		},
		{
			name:      "internal blank lines preserved",
			changelog: "# v3\nFix A\n\nFix B\n##\nolder\n",
			want:      "Fix A\n\nFix B\n",
		},
		{
			name:      "no trailing newline before delimiter",
			changelog: "# v2\nFix A##\nolder",
			want:      "Fix A",
		},
		{
			name:      "empty document",
			changelog: "",
			want:      "",
		},
		{
			name:      "only headings",
			changelog: "# v1\n# details\n##\nolder\n",
			want:      "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Equal(t, model.LatestChanges(tt.changelog), tt.want)
		})
	}
}

func TestLatestChanges_Idempotent(t *testing.T) {
	extracted := model.LatestChanges("# v2\nFix A\nFix B\n##\n# v1\nFix C\n")

	gt.Equal(t, model.LatestChanges(extracted), extracted)
}
