package dropbox_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/apkdrop/pkg/domain/types"
	"github.com/m-mizutani/apkdrop/pkg/infra/dropbox"
)

type recordedRequest struct {
	Path    string
	Headers http.Header
	Body    []byte
}

func TestClient_Delete(t *testing.T) {
	var recorded *recordedRequest

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		recorded = &recordedRequest{Path: r.URL.Path, Headers: r.Header, Body: body}
		w.WriteHeader(http.StatusOK)
	}))
	defer api.Close()

	client := dropbox.NewClient("test-token", dropbox.WithBaseURL(api.URL, api.URL))

	err := client.Delete(context.Background(), "/releases/myapp_1_0.apk")

	gt.NoError(t, err)
	gt.Equal(t, recorded.Path, "/2/files/delete_v2")
	gt.Equal(t, recorded.Headers.Get("Authorization"), "Bearer test-token")
	gt.Equal(t, recorded.Headers.Get("Content-Type"), "application/json")

	var body map[string]string
	gt.NoError(t, json.Unmarshal(recorded.Body, &body))
	gt.Equal(t, body["path"], "/releases/myapp_1_0.apk")
}

func TestClient_Upload(t *testing.T) {
	var recorded *recordedRequest

	content := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		recorded = &recordedRequest{Path: r.URL.Path, Headers: r.Header, Body: body}
		w.WriteHeader(http.StatusOK)
	}))
	defer content.Close()

	client := dropbox.NewClient("test-token", dropbox.WithBaseURL(content.URL, content.URL))

	err := client.Upload(context.Background(), "/releases/myapp_1_0.apk", strings.NewReader("apk-bytes"))

	gt.NoError(t, err)
	gt.Equal(t, recorded.Path, "/2/files/upload")
	gt.Equal(t, recorded.Headers.Get("Authorization"), "Bearer test-token")
	gt.Equal(t, recorded.Headers.Get("Content-Type"), "application/octet-stream")
	gt.Equal(t, string(recorded.Body), "apk-bytes")

	var args struct {
		Path           string `json:"path"`
		Mode           string `json:"mode"`
		Autorename     bool   `json:"autorename"`
		StrictConflict bool   `json:"strict_conflict"`
	}
	gt.NoError(t, json.Unmarshal([]byte(recorded.Headers.Get("Dropbox-API-Arg")), &args))
	gt.Equal(t, args.Path, "/releases/myapp_1_0.apk")
	gt.Equal(t, args.Mode, "overwrite")
	gt.True(t, args.Autorename)
	gt.True(t, args.StrictConflict)
}

func TestClient_Upload_NonSuccessStatus(t *testing.T) {
	content := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInsufficientStorage)
	}))
	defer content.Close()

	client := dropbox.NewClient("test-token", dropbox.WithBaseURL(content.URL, content.URL))

	err := client.Upload(context.Background(), "/releases/app.apk", strings.NewReader("x"))

	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, types.TagStorage))
}

func TestClient_CreateSharedLink(t *testing.T) {
	var recorded *recordedRequest

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		recorded = &recordedRequest{Path: r.URL.Path, Headers: r.Header, Body: body}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]string{
			"url": "https://www.dropbox.com/s/abc/myapp_1_0.apk?dl=0",
		}); err != nil {
			t.Errorf("failed to encode response: %v", err)
		}
	}))
	defer api.Close()

	client := dropbox.NewClient("test-token", dropbox.WithBaseURL(api.URL, api.URL))

	url, err := client.CreateSharedLink(context.Background(), "/releases/myapp_1_0.apk")

	gt.NoError(t, err)
	gt.Equal(t, url, "https://www.dropbox.com/s/abc/myapp_1_0.apk?raw=1")
	gt.Equal(t, recorded.Path, "/2/sharing/create_shared_link_with_settings")

	var args struct {
		Path     string `json:"path"`
		Settings struct {
			RequestedVisibility string `json:"requested_visibility"`
		} `json:"settings"`
	}
	gt.NoError(t, json.Unmarshal(recorded.Body, &args))
	gt.Equal(t, args.Path, "/releases/myapp_1_0.apk")
	gt.Equal(t, args.Settings.RequestedVisibility, "public")
}

func TestClient_CreateSharedLink_NonSuccessStatus(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer api.Close()

	client := dropbox.NewClient("test-token", dropbox.WithBaseURL(api.URL, api.URL))

	_, err := client.CreateSharedLink(context.Background(), "/releases/app.apk")

	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, types.TagStorage))
}

func TestDirectDownloadURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "preview link",
			in:   "https://x/s/abc?dl=0",
			want: "https://x/s/abc?raw=1",
		},
		{
			name: "dl=1 link",
			in:   "https://x/s/abc?dl=1",
			want: "https://x/s/abc?raw=1",
		},
		{
			name: "no dl query",
			in:   "https://x/s/abc",
			want: "https://x/s/abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Equal(t, dropbox.DirectDownloadURL(tt.in), tt.want)
		})
	}
}
