// Package server implements the stateless proxy between the chat client and
// the upstream completion API. One request in, one upstream call, one reply
// out; no state survives a request.
package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/chatnex/chatnex/internal/configuration"
)

type chatRequest struct {
	// Message is decoded loosely: a non-string value is rejected the same way
	// a missing one is.
	Message   any              `json:"message"`
	SessionID string           `json:"session_id"`
	History   []historyMessage `json:"history"`
}

type historyMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Reply     string `json:"reply"`
	SessionID string `json:"session_id"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Server proxies chat messages to the upstream completion API.
type Server struct {
	config     *configuration.Config
	logger     *slog.Logger
	httpClient *http.Client
}

// New server. The upstream client carries no timeout: the hosting
// environment's execution limit is the only bound on the outbound call.
func New(config *configuration.Config) *Server {
	return &Server{
		config:     config,
		logger:     slog.New(slog.NewTextHandler(os.Stderr, nil)),
		httpClient: &http.Client{},
	}
}

// NewCmd instantiates and returns the serve command.
func NewCmd(config *configuration.Config) *cobra.Command {
	var opts struct {
		Port int
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the chat proxy server",
		Long:  "Run the chat proxy server",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return New(config).Start(opts.Port)
		},
	}

	cmd.Flags().IntVarP(&opts.Port, "port", "p", 5000, "Port to serve on")
	return cmd
}

// Start listens on the given port until the process is killed.
func (s *Server) Start(port int) error {
	addr := fmt.Sprintf(":%d", port)
	s.logger.Info("chatnex proxy starting", "addr", addr, "model", s.config.Model)
	return http.ListenAndServe(addr, s.Handler())
}

// Handler returns the proxy's HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/chat", s.handleChat)
	mux.HandleFunc("/health", s.handleHealth)
	return s.recovered(mux)
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	request := &chatRequest{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		request = &chatRequest{}
	}
	message, ok := request.Message.(string)
	if !ok || message == "" {
		s.writeError(w, http.StatusBadRequest, "Empty message")
		return
	}
	sessionID := request.SessionID
	if sessionID == "" {
		sessionID = "default"
	}

	if s.config.GroqAPIKey == "" {
		s.writeError(w, http.StatusInternalServerError, "GROQ_API_KEY not configured")
		return
	}

	// Prior history, order preserved, then the new user message.
	messages := make([]upstreamMessage, 0, len(request.History)+1)
	for _, m := range request.History {
		messages = append(messages, upstreamMessage{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, upstreamMessage{Role: "user", Content: message})

	raw, err := s.callUpstream(r.Context(), &upstreamRequest{
		Model:    s.config.Model,
		Messages: messages,
	})
	if err != nil {
		s.logger.Error("chat request failed", "session_id", sessionID, "error", err)
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	reply := ExtractReply(raw)
	s.logger.Info("chat request served",
		"session_id", sessionID,
		"reply_bytes", len(reply),
		"duration", time.Since(start),
	)
	s.writeJSON(w, http.StatusOK, &chatResponse{Reply: reply, SessionID: sessionID})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// recovered keeps a panicking handler from taking down the connection
// without a response.
func (s *Server) recovered(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				s.logger.Error("panic serving request", "path", r.URL.Path, "error", err)
				s.writeError(w, http.StatusInternalServerError, fmt.Sprint(err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, &errorResponse{Error: message})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("writing response", "error", err)
	}
}
