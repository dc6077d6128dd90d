package server

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/pace-estimating/pace-cli/internal/model"
	"github.com/pace-estimating/pace-cli/internal/store"
)

// bidRequest is the POST /v1/bids payload. Document text arrives already
// extracted; the server never touches source PDFs.
type bidRequest struct {
	ProjectName   string `json:"project_name"`
	ProjectNumber string `json:"project_number"`
	Documents     []struct {
		Name  string   `json:"name"`
		Type  string   `json:"type"`
		Pages []string `json:"pages"`
	} `json:"documents"`
}

func (s *Server) handleGenerateBid(w http.ResponseWriter, r *http.Request) {
	var req bidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ProjectName == "" {
		respondError(w, http.StatusBadRequest, "project_name is required")
		return
	}
	if len(req.Documents) == 0 {
		respondError(w, http.StatusBadRequest, "at least one document is required")
		return
	}

	docs := make([]model.DocumentText, 0, len(req.Documents))
	for _, d := range req.Documents {
		dt, err := model.ParseDocumentType(d.Type)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		docs = append(docs, model.DocumentText{Name: d.Name, Type: dt, Pages: d.Pages})
	}

	result, err := s.pipeline.Run(r.Context(), req.ProjectName, req.ProjectNumber, docs)
	if err != nil {
		zap.L().Error("server: bid generation failed",
			zap.String("project", req.ProjectName),
			zap.Error(err),
		)
		respondError(w, http.StatusInternalServerError, "bid generation failed")
		return
	}

	if err := s.runs.SaveRun(r.Context(), result.Bid, result.Quality); err != nil {
		zap.L().Error("server: save run failed",
			zap.String("run_id", result.Bid.RunID),
			zap.Error(err),
		)
	}

	respondJSON(w, http.StatusCreated, result)
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	records, err := s.runs.ListRuns(r.Context(), store.RunFilter{
		ProjectName: r.URL.Query().Get("project"),
		Grade:       r.URL.Query().Get("grade"),
	})
	if err != nil {
		zap.L().Error("server: list runs failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "list runs failed")
		return
	}

	// Trim full payloads from the listing.
	for i := range records {
		records[i].Bid = nil
		records[i].Quality = nil
	}
	respondJSON(w, http.StatusOK, records)
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	record, err := s.runs.GetRun(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "run not found")
		return
	}
	respondJSON(w, http.StatusOK, record)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("server: encode response", zap.Error(err))
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// clientIP resolves the caller address, preferring proxy headers.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}
	if ip, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return ip
	}
	return r.RemoteAddr
}
