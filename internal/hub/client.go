// Package hub downloads model assets from the Hugging Face hub.
package hub

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	fhttp "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"

	apierrors "github.com/thangchung/skillbox/internal/errors"
	"github.com/thangchung/skillbox/internal/models"
)

// DefaultEndpoint is the public Hugging Face hub
const DefaultEndpoint = "https://huggingface.co"

// Client fetches files from the hub
type Client struct {
	httpClient tls_client.HttpClient
	endpoint   string
	revision   string
	timeout    time.Duration
}

// ClientOption is a function that configures the client
type ClientOption func(*Client)

// WithEndpoint overrides the hub endpoint (e.g. a mirror)
func WithEndpoint(endpoint string) ClientOption {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithRevision sets the repository revision to resolve (default "main")
func WithRevision(revision string) ClientOption {
	return func(c *Client) {
		c.revision = revision
	}
}

// WithTimeout sets the request timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// NewClient creates a hub client
func NewClient(opts ...ClientOption) (*Client, error) {
	client := &Client{
		endpoint: DefaultEndpoint,
		revision: "main",
		timeout:  60 * time.Second,
	}

	for _, opt := range opts {
		opt(client)
	}

	options := []tls_client.HttpClientOption{
		tls_client.WithTimeoutSeconds(int(client.timeout.Seconds())),
		tls_client.WithClientProfile(profiles.Chrome_120),
	}

	httpClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}
	client.httpClient = httpClient

	return client, nil
}

// FileURL builds the resolve URL for a file in a hub repository
func (c *Client) FileURL(repo, filename string) string {
	return fmt.Sprintf("%s/%s/resolve/%s/%s", c.endpoint, repo, c.revision, filename)
}

// FetchTokenizerConfig downloads tokenizer_config.json for a repository into
// destDir and returns the path it was written to.
func (c *Client) FetchTokenizerConfig(ctx context.Context, repo, destDir string) (string, error) {
	return c.fetchFile(ctx, repo, models.TokenizerConfigFile, destDir)
}

func (c *Client) fetchFile(ctx context.Context, repo, filename, destDir string) (string, error) {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	url := c.FileURL(repo, filename)

	req, err := fhttp.NewRequestWithContext(ctx, fhttp.MethodGet, url, nil)
	if err != nil {
		return "", apierrors.NewDownloadError("failed to create request: "+err.Error(), url)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "skillbox/0.1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apierrors.NewDownloadError(err.Error(), url)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != 200 {
		return "", apierrors.NewDownloadErrorWithStatus(url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apierrors.NewDownloadError("failed to read response: "+err.Error(), url)
	}

	path := filepath.Join(destDir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	return path, nil
}
