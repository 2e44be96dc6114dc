// Package serve exposes the counting core over HTTP. The core itself has
// no notion of status codes; the mapping lives entirely in this adapter:
// 400 for "nothing to process", 200 for a completed run, 500 for an
// unexpected internal failure.
package serve

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/textfreq/textfreq/internal/count"
	"github.com/textfreq/textfreq/pkg/scheduler"
	"github.com/urfave/cli/v2"
)

// CountRequest is the JSON body accepted by POST /count.
type CountRequest struct {
	Files        []string `json:"files"`
	MaxWorkers   int      `json:"max_workers,omitempty"`
	TopN         int      `json:"top_n,omitempty"`
	DetectLang   bool     `json:"detect_lang,omitempty"`
	IgnoreCommon bool     `json:"ignore_common,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Server holds the adapter's dependencies.
type Server struct {
	log         *slog.Logger
	defaultTopN int
}

func ServeAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	srv := &Server{log: logger, defaultTopN: c.Int("top")}

	addr := c.String("addr")
	logger.Info("listening", "addr", addr)
	return http.ListenAndServe(addr, srv.Handler())
}

// Handler builds the adapter's routes wrapped in panic recovery.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/count", s.handleCount)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return s.recoverMiddleware(mux)
}

// recoverMiddleware converts an unexpected panic into a 500 response
// instead of tearing the server down.
func (s *Server) recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.log.Error("handler panicked", "path", r.URL.Path, "panic", rec)
				writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleCount(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "POST only"})
		return
	}

	var req CountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body: " + err.Error()})
		return
	}

	files := make([]string, 0, len(req.Files))
	for _, f := range req.Files {
		if f = strings.TrimSpace(f); f != "" {
			files = append(files, f)
		}
	}
	if len(files) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "nothing to process"})
		return
	}

	topN := req.TopN
	if topN <= 0 {
		topN = s.defaultTopN
	}

	start := time.Now()
	agg := scheduler.New(scheduler.Options{
		MaxWorkers:     req.MaxWorkers,
		DetectLanguage: req.DetectLang,
		Logger:         s.log,
	}).Run(files)

	out := count.BuildFinalOutput(agg, topN, time.Since(start).Seconds(), req.IgnoreCommon)
	writeJSON(w, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
