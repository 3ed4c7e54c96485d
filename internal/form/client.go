package form

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go-portfolio-backend/pkg/validation"
)

// ErrTransport marks network failures calling the endpoint. The entered
// values are kept so the user can simply resubmit.
var ErrTransport = errors.New("form: could not reach the server, please try again")

// ErrRateLimited is returned when the endpoint rejects the submission for
// sending too many requests; the caller should back off.
var ErrRateLimited = errors.New("form: too many requests, please wait before retrying")

// SubmitResult reports what the endpoint did with a submission.
type SubmitResult struct {
	// Sent is true when the server accepted the submission (201, or 204
	// for a silent discard, which the client cannot distinguish from a
	// normal send by design).
	Sent bool
	// ID is the identifier of the persisted message, when one was created.
	ID string
	// FieldErrors carries the server's structured validation errors keyed
	// by field, for mapping back onto the form.
	FieldErrors map[string]string
}

// serverErrorBody mirrors the endpoint's error envelope.
type serverErrorBody struct {
	Message string                  `json:"message"`
	Error   []validation.FieldError `json:"error"`
}

type serverCreatedBody struct {
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

// Client posts validated form values to the contact endpoint. The honeypot
// field is transmitted as-is: a populated honeypot is discarded silently
// by the server, so bots inspecting client behavior see a normal send.
type Client struct {
	endpoint string
	httpc    *http.Client
}

// NewClient returns a client for the given messages endpoint URL.
// A nil httpc uses a client with a 10s timeout.
func NewClient(endpoint string, httpc *http.Client) *Client {
	if httpc == nil {
		httpc = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{endpoint: endpoint, httpc: httpc}
}

// Submit serializes values and posts them to the endpoint.
func (cl *Client) Submit(ctx context.Context, values Values) (*SubmitResult, error) {
	payload, err := json.Marshal(values.trimmed())
	if err != nil {
		return nil, fmt.Errorf("form: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cl.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("form: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := cl.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated:
		var body serverCreatedBody
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return nil, fmt.Errorf("form: decode response: %w", err)
		}
		return &SubmitResult{Sent: true, ID: body.Data.ID}, nil

	case http.StatusNoContent:
		return &SubmitResult{Sent: true}, nil

	case http.StatusBadRequest:
		var body serverErrorBody
		fieldErrs := map[string]string{}
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
			for _, fe := range body.Error {
				fieldErrs[fe.Field] = fe.Message
			}
		}
		return &SubmitResult{Sent: false, FieldErrors: fieldErrs}, nil

	case http.StatusTooManyRequests:
		return nil, ErrRateLimited

	default:
		return nil, fmt.Errorf("form: server responded %d", resp.StatusCode)
	}
}

// SubmitForm runs the full hard-gated submission: validate everything,
// send through the client, and apply the outcome to the controller state.
func (c *Controller) SubmitForm(ctx context.Context, cl *Client) (*SubmitResult, error) {
	if !c.Validate() {
		return &SubmitResult{Sent: false, FieldErrors: c.FieldErrors()}, nil
	}
	if !c.beginSubmit() {
		return nil, errors.New("form: submission already in flight")
	}

	result, err := cl.Submit(ctx, c.Values())
	c.finishSubmit(result)
	if err != nil {
		return nil, err
	}
	return result, nil
}
