package predictor

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/piwi3910/RoomLayout/internal/model"
)

const (
	// DefaultRemoteTimeout is the default HTTP timeout for a prediction call.
	DefaultRemoteTimeout = 5 * time.Second

	// maxResponseBytes caps the prediction response body.
	maxResponseBytes = 1 << 20
)

// RemoteOption configures a Remote predictor.
type RemoteOption func(*Remote)

// WithTimeout sets the HTTP request timeout.
func WithTimeout(d time.Duration) RemoteOption {
	return func(r *Remote) {
		r.timeout = d
	}
}

// WithHTTPClient overrides the default HTTP client (useful for testing).
func WithHTTPClient(client *http.Client) RemoteOption {
	return func(r *Remote) {
		r.client = client
	}
}

// Remote asks an external model server for the anchor. The server is
// called with room_width and room_height query parameters and must answer
// with a JSON object {"x": ..., "y": ...}. Each prediction is a single
// attempt; failures are returned to the caller as is.
type Remote struct {
	endpoint string
	timeout  time.Duration
	client   *http.Client
}

// NewRemote creates a predictor for the given endpoint URL.
func NewRemote(endpoint string, opts ...RemoteOption) (*Remote, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("remote predictor: %w: endpoint is empty", ErrUnavailable)
	}
	if _, err := url.Parse(endpoint); err != nil {
		return nil, fmt.Errorf("remote predictor: invalid endpoint: %w", err)
	}
	r := &Remote{endpoint: endpoint, timeout: DefaultRemoteTimeout}
	for _, opt := range opts {
		opt(r)
	}
	if r.client == nil {
		r.client = &http.Client{Timeout: r.timeout}
	}
	return r, nil
}

type anchorResponse struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

// PredictAnchor implements Predictor.
func (r *Remote) PredictAnchor(ctx context.Context, width, height float64) (model.Point2D, error) {
	u, err := url.Parse(r.endpoint)
	if err != nil {
		return model.Point2D{}, fmt.Errorf("remote predictor: %w", err)
	}
	q := u.Query()
	q.Set("room_width", strconv.FormatFloat(width, 'f', -1, 64))
	q.Set("room_height", strconv.FormatFloat(height, 'f', -1, 64))
	u.RawQuery = q.Encode()

	body, err := doFetch(ctx, r.client, u.String())
	if err != nil {
		return model.Point2D{}, fmt.Errorf("remote predictor: %w", err)
	}

	var resp anchorResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return model.Point2D{}, fmt.Errorf("remote predictor: decoding response: %w", err)
	}
	if resp.X == nil || resp.Y == nil {
		return model.Point2D{}, fmt.Errorf("remote predictor: response is missing x or y")
	}
	return model.Point2D{X: *resp.X, Y: *resp.Y}, nil
}

// doFetch performs a single HTTP GET and returns the response body bytes.
func doFetch(ctx context.Context, client *http.Client, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP GET %s: %w", target, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP GET %s: status %d", target, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", target, err)
	}
	return body, nil
}
