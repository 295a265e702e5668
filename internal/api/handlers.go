package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dgallion1/slidegest/internal/parser"
	"github.com/dgallion1/slidegest/internal/render"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// handleConvert parses the posted markdown and responds with the deck in
// the requested format (json by default, docx or html via ?format=).
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	text, ok := s.readMarkdown(w, r)
	if !ok {
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}

	d := parser.ParseWith(text, s.parseCfg)

	var buf bytes.Buffer
	var contentType string
	switch strings.ToLower(format) {
	case "html":
		if err := render.Preview(text, &buf); err != nil {
			s.log.Error("preview render failed", "error", err)
			jsonError(w, "render failed", http.StatusInternalServerError)
			return
		}
		contentType = "text/html; charset=utf-8"
	case "docx":
		if err := (&render.DocxRenderer{}).Render(d, &buf); err != nil {
			s.log.Error("docx render failed", "error", err)
			jsonError(w, "render failed", http.StatusInternalServerError)
			return
		}
		contentType = docxContentType
	default:
		rend, err := render.ForFormat(format)
		if err != nil {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := rend.Render(d, &buf); err != nil {
			s.log.Error("render failed", "format", format, "error", err)
			jsonError(w, "render failed", http.StatusInternalServerError)
			return
		}
		contentType = "application/json"
	}

	s.log.Info("converted deck", "slides", len(d.Slides), "format", format, "bytes", buf.Len())

	w.Header().Set("Content-Type", contentType)
	w.Write(buf.Bytes())
}

// handlePreview parses the posted markdown and responds with the HTML
// preview page.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	text, ok := s.readMarkdown(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := render.Preview(text, &buf); err != nil {
		s.log.Error("preview render failed", "error", err)
		jsonError(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// readMarkdown extracts the deck source from the request: either the raw
// body or a multipart "file" field. It writes the error response itself
// when extraction fails.
func (s *Server) readMarkdown(w http.ResponseWriter, r *http.Request) (string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
			return "", false
		}
		defer r.MultipartForm.RemoveAll()

		file, _, err := r.FormFile("file")
		if err != nil {
			jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
			return "", false
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			jsonError(w, "failed to read file", http.StatusInternalServerError)
			return "", false
		}
		return string(data), true
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			jsonError(w, fmt.Sprintf("document exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
			return "", false
		}
		jsonError(w, "failed to read request body", http.StatusBadRequest)
		return "", false
	}
	return string(data), true
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
