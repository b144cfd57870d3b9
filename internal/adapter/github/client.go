package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"github.com/m-zajac/ghcard/internal/app"
)

const userAgent = "ghcard/1.0"

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client returns github profile data from graphql api.
// This struct is an adapter for app.ProfileClient.
type Client struct {
	doer      HTTPDoer
	address   string
	authToken string

	responseMaxSize int
	retryAttempts   uint
	retryDelay      time.Duration
}

var _ app.ProfileClient = &Client{}

// NewClient creates new github client.
// Graphql api doesn't accept anonymous calls, authToken is required.
func NewClient(doer HTTPDoer, address string, authToken string) *Client {
	c := Client{
		doer:      doer,
		address:   address,
		authToken: authToken,

		responseMaxSize: 1024 * 1024 * 10,
		retryAttempts:   2,
		retryDelay:      200 * time.Millisecond,
	}

	return &c
}

// Profile returns user profile, repositories with languages and contributions calendar.
func (c *Client) Profile(ctx context.Context, login string) (*app.RawProfile, error) {
	if login == "" {
		return nil, app.InvalidRequestError("login cannot be empty")
	}
	if c.authToken == "" {
		return nil, errors.New("github auth token is missing")
	}

	reqBody, err := json.Marshal(graphqlRequest{
		Query: profileQuery,
		Variables: map[string]interface{}{
			"login": login,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("marshalling graphql request: %w", err)
	}

	body, err := c.post(ctx, c.address+"/graphql", reqBody)
	if err != nil {
		return nil, fmt.Errorf("making http request: %w", err)
	}

	var resp profileResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshalling response: %w", err)
	}

	return resp.ToProfile(login)
}

// post sends request, retrying once on network errors and 5xx responses.
func (c *Client) post(ctx context.Context, url string, reqBody []byte) ([]byte, error) {
	// retry collects attempt errors in its own type, app error kinds are checked on the last one.
	var lastErr error
	body, err := retry.DoWithData(
		func() ([]byte, error) {
			req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(reqBody))
			if err != nil {
				return nil, fmt.Errorf("creating http request: %w", err)
			}

			b, err := c.makeRequest(ctx, req, c.responseMaxSize)
			lastErr = err
			return b, err
		},
		retry.Context(ctx),
		retry.Attempts(c.retryAttempts),
		retry.Delay(c.retryDelay),
		retry.MaxJitter(c.retryDelay/2),
		retry.RetryIf(isRetryableError),
	)
	if err != nil {
		if lastErr != nil {
			return nil, lastErr
		}
		return nil, err
	}

	return body, nil
}

func (c *Client) makeRequest(ctx context.Context, req *http.Request, maxBytes int) ([]byte, error) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Authorization", "bearer "+c.authToken)

	resp, err := c.doer.Do(req.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("doing http request: %w", err)
	}
	// Always drain body before close to allow connection reuse.
	defer func() {
		_, _ = io.CopyN(io.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	if resp.StatusCode/100 > 3 {
		if c.checkRateLimitExceeded(&resp.Header) {
			return nil, app.TooManyRequestsError("github rate limit exceeded")
		}
		return nil, &statusError{code: resp.StatusCode}
	}

	// Read one byte more than allowed to detect truncated responses.
	b, err := io.ReadAll(io.LimitReader(resp.Body, int64(maxBytes)+1))
	if err != nil {
		return nil, fmt.Errorf("reading http response body: %w", err)
	}
	if len(b) > maxBytes {
		return nil, &responseSizeError{max: maxBytes}
	}

	return b, nil
}

func (c *Client) checkRateLimitExceeded(h *http.Header) bool {
	if s := h.Get("X-RateLimit-Remaining"); s != "" {
		if limit, err := strconv.Atoi(s); err == nil && limit == 0 {
			return true
		}
	}
	return false
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("got invalid http status code: %d", e.code)
}

// isRetryableError returns true for network errors and server side failures.
func isRetryableError(err error) bool {
	if app.IsTooManyRequestsError(err) || app.IsInvalidRequestError(err) {
		return false
	}

	var se *statusError
	if errors.As(err, &se) {
		return se.code >= http.StatusInternalServerError
	}

	var sizeErr *responseSizeError
	return !errors.As(err, &sizeErr)
}

type responseSizeError struct {
	max int
}

func (e *responseSizeError) Error() string {
	return fmt.Sprintf("response body exceeds %d bytes", e.max)
}
