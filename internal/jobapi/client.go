// Package jobapi talks to the external job API that owns application records.
package jobapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/justsurfingit/jobtrack-dashboard/internal/auth"
	"github.com/justsurfingit/jobtrack-dashboard/internal/models"
)

// StatusError is a non-2xx answer from the job API.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("job api responded with status %d: %s", e.Code, e.Body)
}

// Client fetches job lists on behalf of a user's bearer token.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	group   singleflight.Group
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		timeout: timeout,
	}
}

// FetchJobs returns the caller's job list. Concurrent calls with the same token
// share one upstream request; the returned slice is shared between them and
// must be treated as read-only.
func (c *Client) FetchJobs(ctx context.Context, token string) ([]models.Job, error) {
	ch := c.group.DoChan(auth.Owner(token), func() (interface{}, error) {
		// Detached so one caller giving up does not fail the others sharing this flight.
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
		defer cancel()
		return c.fetch(fctx, token)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]models.Job), nil
	}
}

func (c *Client) fetch(ctx context.Context, token string) ([]models.Job, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/jobs", nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := auth.Client(ctx, c.http, token).Do(req)
	if err != nil {
		return nil, fmt.Errorf("call job api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &StatusError{Code: resp.StatusCode, Body: string(body)}
	}

	var jobs []models.Job
	if err := json.NewDecoder(resp.Body).Decode(&jobs); err != nil {
		return nil, fmt.Errorf("decode job list: %w", err)
	}
	if jobs == nil {
		jobs = []models.Job{}
	}
	return jobs, nil
}
