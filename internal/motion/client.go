package motion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"shakecalc/internal/domain"
)

// Client pushes samples to a calculator's HTTPSource.
type Client struct {
	Base string
	HTTP *http.Client
}

// NewClient returns a client for the calculator listening at base, e.g.
// http://127.0.0.1:8087. A nil httpClient selects http.DefaultClient.
func NewClient(base string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{Base: strings.TrimRight(base, "/"), HTTP: httpClient}
}

// Send posts a batch of samples.
func (c *Client) Send(ctx context.Context, samples ...domain.Sample) error {
	if len(samples) == 0 {
		return nil
	}
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(samples); err != nil {
		return err
	}
	u := c.Base + MotionPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("motion post %s: %s", u, resp.Status)
	}
	return nil
}
