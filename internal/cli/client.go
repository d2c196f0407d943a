package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/okian/squadraft/internal/domain/types"
)

// Client calls the draft routes of a running server.
type Client struct {
	base string
	http *http.Client
}

// NewClient creates a client for the server at base.
func NewClient(base string, timeout time.Duration) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: timeout},
	}
}

// Draft asks the server to draft from its loaded pool.
func (c *Client) Draft(ctx context.Context, strategy string) (types.Squad, error) {
	target := c.base + "/draft"
	if strategy != "" {
		target += "?strategy=" + url.QueryEscape(strategy)
	}
	var out types.Squad
	return out, c.get(ctx, target, &out)
}

// Compare asks the server to run every comparison strategy.
func (c *Client) Compare(ctx context.Context) (types.Comparison, error) {
	var out types.Comparison
	return out, c.get(ctx, c.base+"/draft/compare", &out)
}

type remoteError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (c *Client) get(ctx context.Context, target string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRemote, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRemote, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read body: %w", ErrRemote, err)
	}
	if resp.StatusCode != http.StatusOK {
		var re remoteError
		if json.Unmarshal(body, &re) == nil && re.Code != "" {
			return fmt.Errorf("%w: %d %s: %s", ErrRemote, resp.StatusCode, re.Code, re.Message)
		}
		return fmt.Errorf("%w: status %d", ErrRemote, resp.StatusCode)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: decode: %w", ErrRemote, err)
	}
	return nil
}
