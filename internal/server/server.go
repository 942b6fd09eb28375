package server

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/subsplit/subsplit/internal/logging"
	"github.com/subsplit/subsplit/internal/subtitle"
)

//go:embed index.html
var indexPage []byte

// uploads larger than this are rejected outright
const maxUploadBytes = 32 << 20

// Server is the HTTP upload surface: a form that accepts an SRT file and a
// max line length, and returns the rewritten file as an attachment. Uploads
// are processed entirely in memory; nothing is persisted.
type Server struct {
	router     chi.Router
	httpServer *http.Server
	logger     *logging.Logger
	addr       string
	maxLength  int
}

// New creates a Server listening on addr. defaultMaxLength is used when the
// form omits the max_length field.
func New(addr string, defaultMaxLength int, logger *logging.Logger) *Server {
	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)

	s := &Server{
		router:    router,
		logger:    logger,
		addr:      addr,
		maxLength: defaultMaxLength,
	}

	router.Get("/", s.handleIndex)
	router.Post("/", s.handleSplit)

	return s
}

// Start runs the server until it fails or Shutdown is called.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Infow("Starting HTTP server", "addr", s.addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server error: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	s.logger.Infow("Shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

// Router returns the chi router, for tests.
func (s *Server) Router() chi.Router {
	return s.router
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexPage)
}

func (s *Server) handleSplit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	maxLength := s.maxLength
	if v := r.FormValue("max_length"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			http.Error(w, "max_length must be a positive integer", http.StatusBadRequest)
			return
		}
		maxLength = n
	}

	file, header, err := r.FormFile("srt_file")
	if err != nil {
		http.Error(w, "missing srt_file upload", http.StatusBadRequest)
		return
	}
	defer file.Close()

	input, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "failed to read upload", http.StatusInternalServerError)
		return
	}

	output, err := subtitle.Process(input, maxLength)
	if err != nil {
		s.logger.Warnw("Processing failed",
			"file", header.Filename,
			"error", err,
		)
		http.Error(w, "failed to process subtitle file", http.StatusInternalServerError)
		return
	}

	name := subtitle.SplitName(header.Filename)

	s.logger.Infow("Processed upload",
		"file", header.Filename,
		"max_length", maxLength,
		"bytes_in", len(input),
		"bytes_out", len(output),
	)

	w.Header().Set("Content-Type", "application/x-subrip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Write(output)
}
