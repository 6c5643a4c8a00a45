package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Download streams the asset behind locator into w
func (c *Client) Download(ctx context.Context, locator string, w io.Writer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ResolveURL(locator), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download %s: %w", locator, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return newBackendError(resp.StatusCode, body)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("failed to read %s: %w", locator, err)
	}
	return nil
}
