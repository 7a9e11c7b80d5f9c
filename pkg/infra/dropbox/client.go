package dropbox

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/apkdrop/pkg/domain/interfaces"
	"github.com/m-mizutani/apkdrop/pkg/domain/types"
)

const (
	defaultAPIBaseURL     = "https://api.dropboxapi.com"
	defaultContentBaseURL = "https://content.dropboxapi.com"
)

// dlQuery matches the download-mode query suffix of a share URL.
// Rewriting it to raw=1 turns the HTML preview page into a direct
// download.
var dlQuery = regexp.MustCompile(`dl=.*`)

type client struct {
	httpClient     *http.Client
	token          string
	apiBaseURL     string
	contentBaseURL string
}

// Option is a functional option for the Dropbox client
type Option func(*client)

// WithHTTPClient sets the HTTP client used for API calls
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *client) {
		c.httpClient = httpClient
	}
}

// WithBaseURL overrides the API and content host URLs, mainly for tests
func WithBaseURL(apiBaseURL, contentBaseURL string) Option {
	return func(c *client) {
		c.apiBaseURL = apiBaseURL
		c.contentBaseURL = contentBaseURL
	}
}

// NewClient creates a Dropbox-backed StorageClient authenticated with
// the given access token
func NewClient(token string, opts ...Option) interfaces.StorageClient {
	c := &client{
		httpClient:     http.DefaultClient,
		token:          token,
		apiBaseURL:     defaultAPIBaseURL,
		contentBaseURL: defaultContentBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// deleteArgs is the request body of files/delete_v2
type deleteArgs struct {
	Path string `json:"path"`
}

// uploadArgs is the Dropbox-API-Arg header of files/upload
type uploadArgs struct {
	Path           string `json:"path"`
	Mode           string `json:"mode"`
	Autorename     bool   `json:"autorename"`
	StrictConflict bool   `json:"strict_conflict"`
}

// shareArgs is the request body of sharing/create_shared_link_with_settings
type shareArgs struct {
	Path     string        `json:"path"`
	Settings shareSettings `json:"settings"`
}

type shareSettings struct {
	RequestedVisibility string `json:"requested_visibility"`
}

// Delete removes the file at remotePath via files/delete_v2
func (c *client) Delete(ctx context.Context, remotePath string) error {
	resp, err := c.postJSON(ctx, c.apiBaseURL+"/2/files/delete_v2", deleteArgs{Path: remotePath})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return goerr.New("failed to delete file on Dropbox",
			goerr.T(types.TagStorage),
			goerr.V("status", resp.StatusCode), goerr.V("path", remotePath))
	}

	return nil
}

// Upload streams content to remotePath via files/upload on the content
// host. The file is written in overwrite mode with strict conflict
// checking, matching the provider-side idempotency the pipeline relies
// on.
func (c *client) Upload(ctx context.Context, remotePath string, content io.Reader) error {
	args, err := json.Marshal(uploadArgs{
		Path:           remotePath,
		Mode:           "overwrite",
		Autorename:     true,
		StrictConflict: true,
	})
	if err != nil {
		return goerr.Wrap(err, "failed to encode upload arguments", goerr.T(types.TagStorage))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.contentBaseURL+"/2/files/upload", content)
	if err != nil {
		return goerr.Wrap(err, "failed to create upload request", goerr.T(types.TagStorage))
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Dropbox-API-Arg", string(args))
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to upload file to Dropbox",
			goerr.T(types.TagStorage), goerr.V("path", remotePath))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return goerr.New("failed to upload file to Dropbox",
			goerr.T(types.TagStorage),
			goerr.V("status", resp.StatusCode), goerr.V("path", remotePath))
	}

	return nil
}

// shareResponse is the subset of the share call response the client
// needs
type shareResponse struct {
	URL string `json:"url"`
}

// CreateSharedLink requests a public share link for remotePath and
// returns it rewritten as a direct-download URL
func (c *client) CreateSharedLink(ctx context.Context, remotePath string) (string, error) {
	resp, err := c.postJSON(ctx, c.apiBaseURL+"/2/sharing/create_shared_link_with_settings", shareArgs{
		Path: remotePath,
		Settings: shareSettings{
			RequestedVisibility: "public",
		},
	})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", goerr.New("failed to get share link from Dropbox",
			goerr.T(types.TagStorage),
			goerr.V("status", resp.StatusCode), goerr.V("path", remotePath))
	}

	var share shareResponse
	if err := json.NewDecoder(resp.Body).Decode(&share); err != nil {
		return "", goerr.Wrap(err, "failed to parse share link response",
			goerr.T(types.TagStorage), goerr.V("path", remotePath))
	}

	return DirectDownloadURL(share.URL), nil
}

// postJSON issues an authenticated POST with a JSON body to the API
// host. Request arguments are marshaled fresh per call.
func (c *client) postJSON(ctx context.Context, url string, body any) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode request body", goerr.T(types.TagStorage))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, goerr.Wrap(err, fmt.Sprintf("failed to create request for %s", url), goerr.T(types.TagStorage))
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, fmt.Sprintf("failed to call %s", url), goerr.T(types.TagStorage))
	}

	return resp, nil
}

// DirectDownloadURL rewrites a Dropbox share URL so the dl=0 query
// suffix becomes raw=1, which serves the raw bytes instead of an HTML
// preview page
func DirectDownloadURL(sharedURL string) string {
	return dlQuery.ReplaceAllString(sharedURL, "raw=1")
}
