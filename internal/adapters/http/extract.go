package httpadapter

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/docuparsepro/backend/internal/core/domain"
)

func (rt *Router) extract(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	jobType := strings.TrimPrefix(r.URL.Path, "/api/extract/")
	if jobType == "" || strings.Contains(jobType, "/") {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "job type is required"})
		return
	}
	// Reject unknown types before touching the multipart body.
	if _, err := domain.ParseJobType(jobType); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Unsupported job type"})
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "multipart field 'file' is required"})
		return
	}
	defer file.Close()
	options := r.FormValue("options")

	res, err := rt.extractor.Extract(
		r.Context(),
		jobType,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		options,
		file,
	)
	if err != nil {
		if rt.metrics != nil {
			rt.metrics.RecordExtraction(serviceName, jobType, "error", -1)
		}
		writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
		return
	}

	if rt.metrics != nil {
		rt.metrics.RecordExtraction(serviceName, jobType, "success", res.SizeBytes)
	}
	writeJSON(w, http.StatusOK, res)
}

func (rt *Router) listJobs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	limit := rt.cfg.JobsDefaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	items := rt.jobs.ListJobs(r.Context(), limit)
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}
