// Package client implements the send flow against the proxy endpoint: one
// outstanding send at a time, a hard client-side timeout that cancels the
// in-flight request, and classification of every outcome into a user-facing
// chat message. Failed sends are never retried.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
)

// DefaultTimeout bounds a send. On expiry the in-flight request is canceled.
const DefaultTimeout = 20 * time.Second

// ErrInFlight is returned when a send is attempted while another send is
// still outstanding.
var ErrInFlight = errors.New("a send is already in flight")

// Request is the body posted to the proxy.
type Request struct {
	Message string `json:"message"`
}

// Response is the proxy's reply body, success or error.
type Response struct {
	Reply     string `json:"reply"`
	SessionID string `json:"session_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

// QuotaError indicates the proxy answered 429.
type QuotaError struct{}

func (e *QuotaError) Error() string { return "quota exceeded" }

// TimeoutError indicates the client-side timeout fired.
type TimeoutError struct{}

func (e *TimeoutError) Error() string { return "request timed out" }

// ServerError indicates the proxy answered with an error, or with a body the
// client could not use.
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string { return e.Message }

// NetworkError indicates a transport failure other than a timeout.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return e.Err.Error() }

// Client sends chat messages to the proxy.
type Client struct {
	url        string
	timeout    time.Duration
	httpClient *http.Client
	inFlight   atomic.Bool
}

// New client for the given proxy URL.
func New(url string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		url:        url,
		timeout:    timeout,
		httpClient: &http.Client{},
	}
}

// Send posts a message to the proxy and returns the reply text. At most one
// send can be outstanding; the guard is released on every path, so a caller
// can always send again after an outcome has been classified.
func (c *Client) Send(ctx context.Context, message string) (string, error) {
	if !c.inFlight.CompareAndSwap(false, true) {
		return "", ErrInFlight
	}
	defer c.inFlight.Store(false)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(&Request{Message: message})
	if err != nil {
		return "", errors.Wrap(err, "marshaling request")
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "creating request")
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return "", classifyTransportError(err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		return "", classifyTransportError(err)
	}

	if response.StatusCode == http.StatusTooManyRequests {
		return "", &QuotaError{}
	}

	data := &Response{}
	if err := json.Unmarshal(raw, data); err != nil {
		data = &Response{Error: "Invalid JSON from server"}
	}

	ok := response.StatusCode >= 200 && response.StatusCode < 300
	if ok && data.Reply != "" {
		return data.Reply, nil
	}
	if data.Error != "" {
		return "", &ServerError{Message: data.Error}
	}
	return "", &ServerError{
		Message: fmt.Sprintf("Server error: %d %s", response.StatusCode, http.StatusText(response.StatusCode)),
	}
}

func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &TimeoutError{}
	}
	return &NetworkError{Err: err}
}

// Notice returns the chat message rendered for a failed send.
func Notice(err error) string {
	var quotaErr *QuotaError
	var timeoutErr *TimeoutError
	var serverErr *ServerError
	var networkErr *NetworkError
	switch {
	case errors.As(err, &quotaErr):
		return "⚠️ API quota exceeded. Please wait or try tomorrow."
	case errors.As(err, &timeoutErr):
		return "⚠️ Request timed out. Backend may be waking up."
	case errors.As(err, &serverErr):
		return "⚠️ " + serverErr.Message
	case errors.As(err, &networkErr):
		return "⚠️ Network error: " + networkErr.Err.Error()
	default:
		return "⚠️ Network error: " + err.Error()
	}
}
