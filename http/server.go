package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/newsdesk"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
)

// Server timeouts. The write timeout covers the outbound fetch and a
// completion call.
const (
	DefaultReadTimeout  = 15 * time.Second
	DefaultWriteTimeout = 60 * time.Second
	DefaultIdleTimeout  = 120 * time.Second
)

// maxRequestBytes caps the size of a request body.
const maxRequestBytes = 1 << 20

// RequestIDHeader carries the request ID on requests and responses.
const RequestIDHeader = "X-Request-ID"

// User-facing error messages.
const (
	msgNoData        = "کوئی ڈیٹا نہیں ملا"
	msgMissingInput  = "براہ کرم خبر کا متن یا لنک داخل کریں"
	msgExtractFailed = "URL سے خبر نکالنے میں خرابی: "
	msgInternal      = "تجزیہ تیار کرنے میں خرابی: "
)

// Server serves the newsdesk JSON API.
type Server struct {
	server *http.Server
	router chi.Router

	summarizer     newsdesk.Summarizer
	logger         *slog.Logger
	allowedOrigins []string
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithAllowedOrigins sets the CORS allowed origins. Defaults to "*".
func WithAllowedOrigins(origins ...string) ServerOption {
	return func(s *Server) {
		s.allowedOrigins = origins
	}
}

// WithReadTimeout overrides DefaultReadTimeout.
func WithReadTimeout(d time.Duration) ServerOption {
	return func(s *Server) {
		s.server.ReadTimeout = d
	}
}

// WithWriteTimeout overrides DefaultWriteTimeout.
func WithWriteTimeout(d time.Duration) ServerOption {
	return func(s *Server) {
		s.server.WriteTimeout = d
	}
}

// WithIdleTimeout overrides DefaultIdleTimeout.
func WithIdleTimeout(d time.Duration) ServerOption {
	return func(s *Server) {
		s.server.IdleTimeout = d
	}
}

// NewServer creates a new Server listening on addr.
func NewServer(addr string, summarizer newsdesk.Summarizer, logger *slog.Logger, opts ...ServerOption) *Server {
	s := &Server{
		server: &http.Server{
			Addr:         addr,
			ReadTimeout:  DefaultReadTimeout,
			WriteTimeout: DefaultWriteTimeout,
			IdleTimeout:  DefaultIdleTimeout,
		},
		summarizer:     summarizer,
		logger:         logger,
		allowedOrigins: []string{"*"},
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(s.requestID, s.logRequests, s.recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	// The bundled frontend calls the API under /api.
	s.routes(r)
	r.Route("/api", s.routes)

	s.router = r
	s.server.Handler = r
	return s
}

func (s *Server) routes(r chi.Router) {
	r.Post("/summarize", s.wrap(s.handleSummarize))
	r.Get("/test", s.wrap(s.handleTest))
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.server.Addr
}

// ListenAndServe serves until Shutdown is called. A clean shutdown
// returns nil.
func (s *Server) ListenAndServe() error {
	s.logger.Info("server listening", "addr", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server, waiting for in-flight requests
// until ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

func (s *Server) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			status, msg := errorResponse(err)
			if status >= http.StatusInternalServerError {
				s.logger.Error("request failed", "request_id", RequestID(r.Context()), "err", err)
			}
			writeJSON(w, status, map[string]string{"error": msg})
		}
	}
}

func errorResponse(err error) (int, string) {
	switch newsdesk.ErrorCode(err) {
	case newsdesk.EINVALID:
		return http.StatusBadRequest, msgMissingInput
	case newsdesk.EEXTRACT:
		return http.StatusBadRequest, msgExtractFailed + newsdesk.ErrorMessage(err)
	}
	var e *newsdesk.Error
	if errors.As(err, &e) {
		return http.StatusInternalServerError, msgInternal + newsdesk.ErrorMessage(err)
	}
	return http.StatusInternalServerError, msgInternal + err.Error()
}

// POST /summarize
// Body: {"type": "url"|"text", "content": "..."}
func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) error {
	req, ok := decodeRequest(w, r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msgNoData})
		return nil
	}

	resp, err := s.summarizer.Summarize(r.Context(), req)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, resp)
	return nil
}

// GET /test
func (s *Server) handleTest(w http.ResponseWriter, r *http.Request) error {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "API is working!",
		"status":  "success",
	})
	return nil
}

// decodeRequest reports false for bodies that are missing, oversized, not
// JSON objects, or empty objects.
func decodeRequest(w http.ResponseWriter, r *http.Request) (*newsdesk.Request, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err != nil {
		return nil, false
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || len(fields) == 0 {
		return nil, false
	}
	var req newsdesk.Request
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, false
	}
	return &req, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type requestIDKey struct{}

// RequestID returns the request ID stored in ctx, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// requestID reuses an incoming X-Request-ID or assigns a new UUID.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		begin := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration", time.Since(begin),
			"request_id", RequestID(r.Context()),
		)
	})
}

func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				s.logger.Error("panic serving request",
					"request_id", RequestID(r.Context()),
					"panic", fmt.Sprint(rec),
				)
				writeJSON(w, http.StatusInternalServerError, map[string]string{
					"error": msgInternal + fmt.Sprint(rec),
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
