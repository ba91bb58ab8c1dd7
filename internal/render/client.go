// Package render talks to the external render service. The service is
// treated as opaque: we hand it a lossless composition snapshot, get a
// job id back, and poll the id until the job reaches a terminal state.
package render

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/reelkit/reelkit/internal/overlay"
)

// Snapshot is the render input: the full overlay list plus composition
// parameters. Every overlay field must round-trip through this shape.
type Snapshot struct {
	Overlays         []overlay.Overlay `json:"overlays"`
	DurationInFrames int               `json:"durationInFrames"`
	FPS              int               `json:"fps"`
	Width            int               `json:"width"`
	Height           int               `json:"height"`
}

// Options carry the user's resolution/speed preference.
type Options struct {
	Resolution string `json:"resolution,omitempty"`
	Speed      string `json:"speed,omitempty"`
}

// Status is a render job state.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusDone       Status = "done"
	StatusError      Status = "error"
)

// Terminal reports whether the job will not change state again.
func (s Status) Terminal() bool {
	return s == StatusDone || s == StatusError
}

// Job is the polled state of a dispatched render.
type Job struct {
	ID       string  `json:"id"`
	Status   Status  `json:"status"`
	Progress float64 `json:"progress"`
	URL      string  `json:"url,omitempty"`
	Size     int64   `json:"size,omitempty"`
	Error    string  `json:"error,omitempty"`
}

// Client is an HTTP client for the render service.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient creates a render client for the service at baseURL.
func NewClient(baseURL string, log zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     log,
	}
}

type dispatchRequest struct {
	Snapshot
	Options Options `json:"options"`
}

type dispatchResponse struct {
	JobID string `json:"jobId"`
}

// Dispatch submits a snapshot for rendering and returns the job id.
func (c *Client) Dispatch(ctx context.Context, snap Snapshot, opts Options) (string, error) {
	body, err := json.Marshal(dispatchRequest{Snapshot: snap, Options: opts})
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/render", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("dispatch render: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return "", fmt.Errorf("render service returned %d", resp.StatusCode)
	}

	var out dispatchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode dispatch response: %w", err)
	}

	c.log.Info().
		Str("job_id", out.JobID).
		Int("overlays", len(snap.Overlays)).
		Int("duration_frames", snap.DurationInFrames).
		Msg("render dispatched")
	return out.JobID, nil
}

// JobStatus fetches the current state of a render job.
func (c *Client) JobStatus(ctx context.Context, jobID string) (Job, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/render/"+jobID, nil)
	if err != nil {
		return Job{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Job{}, fmt.Errorf("poll render job: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Job{}, fmt.Errorf("render service returned %d for job %s", resp.StatusCode, jobID)
	}

	var job Job
	if err := json.NewDecoder(resp.Body).Decode(&job); err != nil {
		return Job{}, fmt.Errorf("decode job status: %w", err)
	}
	if job.ID == "" {
		job.ID = jobID
	}
	return job, nil
}

// Await polls the job until it reaches a terminal state or the context
// is canceled.
func (c *Client) Await(ctx context.Context, jobID string, interval time.Duration) (Job, error) {
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		job, err := c.JobStatus(ctx, jobID)
		if err != nil {
			return Job{}, err
		}
		if job.Status.Terminal() {
			c.log.Info().
				Str("job_id", jobID).
				Str("status", string(job.Status)).
				Str("url", job.URL).
				Msg("render finished")
			return job, nil
		}

		select {
		case <-ctx.Done():
			return Job{}, ctx.Err()
		case <-ticker.C:
		}
	}
}
