package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/JonMunkholm/census/internal/core"
	"github.com/go-chi/chi/v5"
)

// maxLoadBodySize bounds the JSON body of a load request.
const maxLoadBodySize = 4 << 10

// LoadRequest is the body of POST /api/load/{recordType}.
type LoadRequest struct {
	Path string `json:"path"`
}

// CountResponse is the body returned by GET /api/count/{recordType}.
type CountResponse struct {
	RecordType core.RecordType `json:"recordType"`
	Count      int             `json:"count"`
}

// ResetResponse is the body returned by DELETE /api/data/{recordType}.
type ResetResponse struct {
	RecordType core.RecordType `json:"recordType"`
	Discarded  int             `json:"discarded"`
}

// HealthResponse reports liveness and the size of each stored collection.
type HealthResponse struct {
	Status string                  `json:"status"`
	Loaded map[core.RecordType]int `json:"loaded"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	loaded := make(map[core.RecordType]int)
	for _, info := range core.Schemas() {
		loaded[info.Type] = s.service.Loaded(info.Type)
	}
	writeJSON(w, r, http.StatusOK, HealthResponse{Status: "ok", Loaded: loaded})
}

func (s *Server) handleListSchemas(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, core.Schemas())
}

func (s *Server) handleDownloadTemplate(w http.ResponseWriter, r *http.Request) {
	t, err := core.ParseRecordType(chi.URLParam(r, "recordType"))
	if err != nil {
		respondError(w, r, err, 0)
		return
	}

	data, err := core.TemplateCSV(t)
	if err != nil {
		respondError(w, r, err, 0)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", core.TemplateFileName(t)))
	w.Write(data)
}

func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	t, err := core.ParseRecordType(chi.URLParam(r, "recordType"))
	if err != nil {
		respondError(w, r, err, 0)
		return
	}

	var req LoadRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxLoadBodySize)).Decode(&req); err != nil {
		respondError(w, r, fmt.Errorf("decode load request: %w", err), http.StatusBadRequest)
		return
	}

	path, err := s.resolvePath(req.Path)
	if err != nil {
		respondError(w, r, err, http.StatusForbidden)
		return
	}

	res, err := s.service.Load(r.Context(), t, path)
	if err != nil {
		respondError(w, r, err, 0)
		return
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (s *Server) handleCount(w http.ResponseWriter, r *http.Request) {
	t, err := core.ParseRecordType(chi.URLParam(r, "recordType"))
	if err != nil {
		respondError(w, r, err, 0)
		return
	}

	path, err := s.resolvePath(r.URL.Query().Get("path"))
	if err != nil {
		respondError(w, r, err, http.StatusForbidden)
		return
	}

	n, err := s.service.Count(r.Context(), t, path)
	if err != nil {
		respondError(w, r, err, 0)
		return
	}
	writeJSON(w, r, http.StatusOK, CountResponse{RecordType: t, Count: n})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	t, err := core.ParseRecordType(chi.URLParam(r, "recordType"))
	if err != nil {
		respondError(w, r, err, 0)
		return
	}

	n, err := s.service.Reset(r.Context(), t)
	if err != nil {
		respondError(w, r, err, 0)
		return
	}
	writeJSON(w, r, http.StatusOK, ResetResponse{RecordType: t, Discarded: n})
}

// resolvePath maps a client supplied path onto the data directory.
// Absolute paths and paths that climb out with ".." are refused.
func (s *Server) resolvePath(p string) (string, error) {
	if !filepath.IsLocal(p) {
		return "", &core.Error{
			Kind: core.KindSourceUnavailable,
			Op:   "resolve",
			Path: p,
			Msg:  "path is outside the data directory",
		}
	}
	return filepath.Join(s.cfg.DataDir, p), nil
}

func (s *Server) handleSorted(w http.ResponseWriter, r *http.Request) {
	field, err := core.ParseSortField(chi.URLParam(r, "field"))
	if err != nil {
		respondError(w, r, err, 0)
		return
	}

	ser, err := s.serializerFor(r)
	if err != nil {
		respondError(w, r, err, http.StatusBadRequest)
		return
	}

	text, err := s.service.Sorted(field, ser)
	if err != nil {
		respondError(w, r, err, 0)
		return
	}

	if ser.Format == core.FormatYAML {
		w.Header().Set("Content-Type", "application/yaml")
	} else {
		w.Header().Set("Content-Type", "application/json")
	}
	w.Write([]byte(text))
}

// serializerFor applies the format and indent query parameters to the
// service's default serializer.
func (s *Server) serializerFor(r *http.Request) (core.Serializer, error) {
	ser := s.service.Serializer()
	q := r.URL.Query()

	if v := q.Get("format"); v != "" {
		f, err := core.ParseFormat(v)
		if err != nil {
			return core.Serializer{}, err
		}
		ser.Format = f
	}

	if v := q.Get("indent"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > 8 {
			return core.Serializer{}, fmt.Errorf("indent must be 0-8, got %q", v)
		}
		ser.Indent = n
	}

	return ser, nil
}
