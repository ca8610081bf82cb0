package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const timeout = time.Second * 15

// Client uploads objects to a Supabase Storage bucket and builds their
// public URLs.
type Client struct {
	http    *resty.Client
	baseURL string
	bucket  string
}

func New(baseURL, apiKey, bucket string) *Client {
	base := strings.TrimRight(baseURL, "/")
	http := resty.New().
		SetBaseURL(base).
		SetAuthToken(apiKey).
		SetTimeout(timeout)
	return &Client{
		http:    http,
		baseURL: base,
		bucket:  bucket,
	}
}

func (c *Client) Upload(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetBody(data).
		Post(fmt.Sprintf("/storage/v1/object/%s/%s", c.bucket, path))
	if err != nil {
		return "", fmt.Errorf("storage upload failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("storage upload failed: %s: %s", resp.Status(), resp.String())
	}
	return c.PublicURL(path), nil
}

func (c *Client) PublicURL(path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, c.bucket, path)
}
