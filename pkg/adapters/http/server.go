package http

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"mime"
	"net/http"
	"slices"

	"github.com/aretw0/ordercheck/pkg/adapters/lines"
	"github.com/aretw0/ordercheck/pkg/classifier"
	"github.com/aretw0/ordercheck/pkg/domain"
	"github.com/aretw0/ordercheck/pkg/observability"
	"github.com/aretw0/ordercheck/pkg/runner"
	"github.com/go-chi/chi/v5"
)

// MaxBodyBytes caps the size of a POST /classify body.
const MaxBodyBytes = 1 << 20

// ClassifyRequest is the JSON body accepted by POST /classify.
type ClassifyRequest struct {
	Words []string `json:"words"`
}

// Server classifies words over HTTP.
type Server struct {
	Metrics *observability.Metrics
	Logger  *slog.Logger
}

// NewHandler creates the HTTP handler. metrics may be nil, in which case
// /metrics is not mounted.
func NewHandler(metrics *observability.Metrics, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{Metrics: metrics, Logger: logger}

	r := chi.NewRouter()
	r.Get("/openapi.yaml", s.OpenAPI)
	r.Get("/healthz", s.Health)
	r.Post("/classify", s.ClassifyBatch)
	r.Get("/classify/{word}", s.ClassifyOne)
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler())
	}
	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Health handles GET /healthz.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}

// ClassifyBatch handles POST /classify. The body is either a JSON
// ClassifyRequest or plain text with one word per line; a body without a
// Content-Type is read as plain text.
func (s *Server) ClassifyBatch(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, fmt.Sprintf("Request body exceeds %d bytes", tooLarge.Limit), http.StatusRequestEntityTooLarge)
			s.Logger.Warn("ClassifyBatch: Body too large", "limit", tooLarge.Limit)
			return
		}
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		s.Logger.Warn("ClassifyBatch: Body read failed", "error", err)
		return
	}

	if r.Header.Get("Content-Type") == "" {
		r.Header.Set("Content-Type", "text/plain")
	}
	r.Body = io.NopCloser(bytes.NewReader(data))
	if err := validateRequest(r.Context(), r, http.MethodPost, "/classify", nil); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		s.Logger.Warn("ClassifyBatch: Request rejected", "error", err)
		return
	}

	var words iter.Seq[string]
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var req ClassifyRequest
		if err := json.Unmarshal(data, &req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			s.Logger.Warn("ClassifyBatch: Invalid request body", "error", err)
			return
		}
		words = slices.Values(req.Words)
	} else {
		words = lines.Scan(bufio.NewReader(bytes.NewReader(data)))
	}

	resp := []runner.JSONResult{}
	for res := range runner.Results(words) {
		s.observe(res)
		resp = append(resp, runner.NewJSONResult(res))
	}

	s.writeJSON(w, resp)
}

// ClassifyOne handles GET /classify/{word}.
func (s *Server) ClassifyOne(w http.ResponseWriter, r *http.Request) {
	res := classifier.Result(chi.URLParam(r, "word"))
	s.observe(res)
	s.writeJSON(w, runner.NewJSONResult(res))
}

func (s *Server) observe(res domain.OrderResult) {
	if s.Metrics != nil {
		s.Metrics.Observe(res)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		s.Logger.Error("response encode failed", "error", err)
	}
}
