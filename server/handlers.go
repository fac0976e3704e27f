package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gaurav-prasanna/charsheet/core"
	"github.com/gaurav-prasanna/charsheet/core/output"
	"github.com/gaurav-prasanna/charsheet/core/pipeline"
	"github.com/gaurav-prasanna/charsheet/core/render"
)

// maxRequestBytes bounds the JSON request body.
const maxRequestBytes = 1 << 20

type extractRequest struct {
	Query    string `json:"query"`
	URL      string `json:"url"`
	Template string `json:"template"`
	Format   string `json:"format"`
}

var contentTypes = map[string]string{
	".md":   "text/markdown; charset=utf-8",
	".json": "application/json",
	".pdf":  "application/pdf",
}

// handleExtract runs the pipeline for one character and returns the
// rendered sheet in the requested format.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	renderer, err := render.ForFormat(strings.ToLower(strings.TrimSpace(req.Format)))
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	template := req.Template
	if template == "" {
		template = s.defaultTemplate
	}
	if template == "" {
		jsonError(w, "template is required", http.StatusBadRequest)
		return
	}

	result, err := s.runner.Run(r.Context(), pipeline.Request{
		Query:      req.Query,
		URL:        req.URL,
		TemplateID: template,
	})
	if err != nil {
		code := statusFor(err)
		if code >= http.StatusInternalServerError {
			s.log.Error("extract failed", "query", req.Query, "url", req.URL, "error", err)
		}
		jsonError(w, err.Error(), code)
		return
	}

	data, err := renderer.Render(result.Document, result.Character)
	if err != nil {
		s.log.Error("render failed", "format", req.Format, "error", err)
		jsonError(w, "render: "+err.Error(), http.StatusInternalServerError)
		return
	}

	ext := renderer.Extension()
	w.Header().Set("Content-Type", contentTypes[ext])
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("inline; filename=%q", output.Filename(result.Character.Name, ext)))
	w.Header().Set("X-Article-URL", result.URL)
	w.Write(data)
}

// statusFor maps pipeline failures to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, pipeline.ErrNoInput):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrFormat):
		return http.StatusUnprocessableEntity
	case errors.Is(err, core.ErrFetch), errors.Is(err, core.ErrStorage):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
