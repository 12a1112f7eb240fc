package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/docuparsepro/backend/internal/config"
	"github.com/docuparsepro/backend/internal/core/ports"
	"github.com/docuparsepro/backend/internal/observability/metrics"
)

const serviceName = "api"

type Router struct {
	cfg       config.Config
	extractor ports.DocumentExtractor
	jobs      ports.JobLister
	assistant ports.Assistant
	diag      ports.StoreDiagnostics
	metrics   *metrics.HTTPServerMetrics
}

func NewRouter(
	cfg config.Config,
	extractor ports.DocumentExtractor,
	jobs ports.JobLister,
	assistant ports.Assistant,
	diag ports.StoreDiagnostics,
	m *metrics.HTTPServerMetrics,
) *Router {
	return &Router{
		cfg:       cfg,
		extractor: extractor,
		jobs:      jobs,
		assistant: assistant,
		diag:      diag,
		metrics:   m,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", rt.root)
	mux.HandleFunc("/healthz", rt.healthz)
	mux.HandleFunc("/api/hello", rt.hello)
	mux.HandleFunc("/test", rt.storeDiagnostic)
	mux.HandleFunc("/api/extract/", rt.extract)
	mux.HandleFunc("/api/jobs", rt.listJobs)
	mux.HandleFunc("/api/ai/chat", rt.aiChat)
	mux.HandleFunc("/api/ai/summarize", rt.aiSummarize)
	mux.HandleFunc("/api/ai/translate", rt.aiTranslate)
	mux.HandleFunc("/api/ai/ppt-outline", rt.aiPPTOutline)
	mux.HandleFunc("/api/ai/image-gen", rt.aiImageGen)
	if rt.metrics != nil {
		mux.Handle("/metrics", rt.metrics.Handler())
	}

	var handler http.Handler = mux
	if rt.cfg.APIMaxInFlight > 0 {
		wait := time.Duration(rt.cfg.APIBackpressureWait) * time.Millisecond
		handler = backpressureMiddleware(handler, rt.cfg.APIMaxInFlight, wait)
	}
	if rt.cfg.APIRateLimitRPS > 0 {
		handler = rateLimitMiddleware(handler, rt.cfg.APIRateLimitRPS, rt.cfg.APIRateLimitBurst)
	}
	handler = corsMiddleware(handler, rt.cfg.CORSAllowedOrigins)
	handler = accessLogMiddleware(handler)
	handler = requestIDMiddleware(handler)
	if rt.metrics != nil {
		handler = rt.metrics.Middleware(serviceName, handler)
	}
	return handler
}

func (rt *Router) root(w http.ResponseWriter, r *http.Request) {
	// "/" is the mux catch-all; anything else under it is unknown.
	if r.URL.Path != "/" {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "DocuParse Pro API is running"})
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rt *Router) hello(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Hello from DocuParse Pro backend!"})
}

func (rt *Router) storeDiagnostic(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	writeJSON(w, http.StatusOK, rt.diag.Check(r.Context()))
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
