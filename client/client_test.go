package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSendSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"reply": "hello there", "session_id": "default"}`))
	}))
	defer server.Close()

	c := New(server.URL, DefaultTimeout)
	reply, err := c.Send(context.Background(), "hi")
	require.NoError(t, err)
	require.Equal(t, "hello there", reply)
}

func TestSendQuotaExceeded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	c := New(server.URL, DefaultTimeout)
	_, err := c.Send(context.Background(), "hi")
	require.Error(t, err)
	require.IsType(t, &QuotaError{}, err)
	require.Equal(t, "⚠️ API quota exceeded. Please wait or try tomorrow.", Notice(err))
}

func TestSendServerErrorWithBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "boom"}`))
	}))
	defer server.Close()

	c := New(server.URL, DefaultTimeout)
	_, err := c.Send(context.Background(), "hi")
	require.Error(t, err)
	require.Equal(t, "⚠️ boom", Notice(err))
}

func TestSendMalformedJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	c := New(server.URL, DefaultTimeout)
	_, err := c.Send(context.Background(), "hi")
	require.Error(t, err)
	require.Equal(t, "⚠️ Invalid JSON from server", Notice(err))
}

func TestSendEmptyReplyIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"reply": ""}`))
	}))
	defer server.Close()

	c := New(server.URL, DefaultTimeout)
	_, err := c.Send(context.Background(), "hi")
	require.Error(t, err)
	require.Equal(t, "⚠️ Server error: 200 OK", Notice(err))
}

func TestSendTimeout(t *testing.T) {
	block := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	// Unblock the handler before the server shuts down.
	defer server.Close()
	defer close(block)

	c := New(server.URL, 50*time.Millisecond)
	_, err := c.Send(context.Background(), "hi")
	require.Error(t, err)
	require.IsType(t, &TimeoutError{}, err)
	require.Equal(t, "⚠️ Request timed out. Backend may be waking up.", Notice(err))

	// The in-flight guard must be released even after a timeout.
	require.False(t, c.inFlight.Load())
}

func TestSendInFlightGuard(t *testing.T) {
	c := New("http://localhost:0", DefaultTimeout)
	c.inFlight.Store(true)

	_, err := c.Send(context.Background(), "hi")
	require.ErrorIs(t, err, ErrInFlight)

	c.inFlight.Store(false)
}

func TestNetworkErrorNotice(t *testing.T) {
	// Nothing is listening here.
	c := New("http://127.0.0.1:1", DefaultTimeout)
	_, err := c.Send(context.Background(), "hi")
	require.Error(t, err)
	require.Contains(t, Notice(err), "⚠️ Network error: ")
	require.False(t, c.inFlight.Load())
}
