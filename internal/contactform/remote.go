package contactform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/shandysiswandi/folio/internal/pkg/uid"
)

const (
	// DefaultEndpoint is the path the remote strategy posts to.
	DefaultEndpoint = "/send-message"

	// HeaderIdempotencyKey lets the server drop duplicate deliveries of one submission.
	HeaderIdempotencyKey = "Idempotency-Key"

	maxResponseBytes = 64 * 1024
)

// ErrMalformedResponse is returned when the endpoint answers with anything
// other than a JSON object holding a boolean "success".
var ErrMalformedResponse = errors.New("contactform: malformed response")

// Doer sends HTTP requests; *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Remote posts the submission as JSON to an endpoint.
type Remote struct {
	endpoint string
	client   Doer
	ids      uid.StringID
}

// NewRemote returns a Remote strategy. An empty endpoint means DefaultEndpoint.
// ids may be nil, in which case no idempotency key is sent.
func NewRemote(endpoint string, client Doer, ids uid.StringID) *Remote {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &Remote{endpoint: endpoint, client: client, ids: ids}
}

type remoteResponse struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
}

// Dispatch sends one POST request and decodes the {success, message} reply.
func (r *Remote) Dispatch(ctx context.Context, s Submission) (Result, error) {
	body, err := json.Marshal(s)
	if err != nil {
		return Result{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if r.ids != nil {
		req.Header.Set(HeaderIdempotencyKey, r.ids.Generate())
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()

	var out remoteResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&out); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if out.Success == nil {
		return Result{}, fmt.Errorf("%w: missing success (status %d)", ErrMalformedResponse, resp.StatusCode)
	}

	return Result{Success: *out.Success, Message: out.Message}, nil
}
