package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/Satyam2192/Invoice-Viewer-Backend/internal/entity"
)

// InvoiceProcessor is the single entry point the HTTP layer needs from the
// core pipeline.
type InvoiceProcessor interface {
	ProcessInvoice(ctx context.Context, path string) entity.Result
}

// Server is the thin upload boundary: it owns the uploaded file's lifetime
// (persist, process, delete) and nothing else.
type Server struct {
	logger    *slog.Logger
	processor InvoiceProcessor
	uploadDir string
}

func New(processor InvoiceProcessor, uploadDir string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	return &Server{logger: logger, processor: processor, uploadDir: uploadDir}
}

// Router builds the HTTP routes.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.HandleFunc("/process-invoice", s.handleProcessInvoice).Methods(http.MethodPost, http.MethodOptions)
	return r
}

// handleProcessInvoice accepts a multipart upload (field "invoice"), runs the
// pipeline on it, and always answers 200 with the result object — the error
// field, not the HTTP status, is the discriminator. Only boundary failures
// (missing part, filesystem trouble) use non-200 statuses.
func (s *Server) handleProcessInvoice(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	file, header, err := r.FormFile("invoice")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No file part"})
		return
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			s.logger.Warn("server.upload.close_failed", "error", cerr)
		}
	}()

	path, err := s.saveUpload(file, header.Filename)
	if err != nil {
		s.logger.Error("server.upload.save_failed", "filename", header.Filename, "error", err)
		writeJSON(w, http.StatusInternalServerError,
			map[string]string{"error": "Failed to process invoice: " + err.Error()})
		return
	}
	defer func() {
		if rerr := os.Remove(path); rerr != nil {
			s.logger.Warn("server.upload.cleanup_failed", "path", path, "error", rerr)
		}
	}()

	result := s.processor.ProcessInvoice(r.Context(), path)

	s.logger.Info("server.process_invoice",
		"filename", header.Filename,
		"bytes", header.Size,
		"is_error", result.IsError(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	writeJSON(w, http.StatusOK, result)
}

// saveUpload persists the multipart part under the upload dir. The stored
// name keeps the original basename but is prefixed with a fresh ID so
// concurrent uploads of the same filename cannot collide.
func (s *Server) saveUpload(src io.Reader, filename string) (string, error) {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", err
	}
	name := uuid.New().String() + "_" + filepath.Base(filename)
	path := filepath.Join(s.uploadDir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(path)
		return "", err
	}
	return path, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
