package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"
)

type upstreamMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type upstreamRequest struct {
	Model    string            `json:"model"`
	Messages []upstreamMessage `json:"messages"`
}

// callUpstream forwards the payload to the completion API and returns the
// raw response body. The upstream HTTP status is deliberately not inspected:
// whatever came back goes through the extraction chain.
func (s *Server) callUpstream(ctx context.Context, payload *upstreamRequest) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "marshaling upstream request")
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.GroqAPIURL, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "creating upstream request")
	}
	request.Header.Set("Authorization", "Bearer "+s.config.GroqAPIKey)
	request.Header.Set("Content-Type", "application/json")

	response, err := s.httpClient.Do(request)
	if err != nil {
		return nil, errors.Wrap(err, "calling upstream")
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading upstream response")
	}
	return raw, nil
}
