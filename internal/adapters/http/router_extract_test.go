package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/docuparsepro/backend/internal/config"
	"github.com/docuparsepro/backend/internal/core/domain"
	"github.com/docuparsepro/backend/internal/core/usecase"
)

func testConfig() config.Config {
	return config.Config{
		APIPort:            "8000",
		JobsDefaultLimit:   20,
		CORSAllowedOrigins: "*",
	}
}

// newTestHandler wires the real use cases over a nil store, which is the
// unconfigured-database deployment the demo must tolerate.
func newTestHandler(cfg config.Config) http.Handler {
	audit := usecase.NewAuditUseCase(nil)
	return NewRouter(
		cfg,
		usecase.NewExtractUseCase(audit),
		audit,
		usecase.NewAssistUseCase(),
		usecase.NewDiagnosticsUseCase(nil, false, false),
		nil,
	).Handler()
}

func newUploadRequest(t *testing.T, path, filename, contentType string, content []byte, options string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("CreatePart() error = %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if options != "" {
		if err := writer.WriteField("options", options); err != nil {
			t.Fatalf("WriteField() error = %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestExtractReceiptEndToEnd(t *testing.T) {
	handler := newTestHandler(testConfig())

	req := newUploadRequest(t, "/api/extract/receipt", "a.txt", "text/plain", []byte("0123456789"), "")
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", res.Code, res.Body.String())
	}

	var resp map[string]any
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["tool"] != "Receipt Scanner" {
		t.Fatalf("expected Receipt Scanner, got %v", resp["tool"])
	}
	if resp["size_bytes"] != float64(10) {
		t.Fatalf("expected size_bytes 10, got %v", resp["size_bytes"])
	}
	if resp["summary"] != "Parsed Receipt Scanner for a.txt (demo)" {
		t.Fatalf("unexpected summary %v", resp["summary"])
	}
	if resp["content_type"] != "text/plain" {
		t.Fatalf("expected content_type text/plain, got %v", resp["content_type"])
	}
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %T", resp["data"])
	}
	if data["total"] != 4.26 {
		t.Fatalf("expected data.total 4.26, got %v", data["total"])
	}
	items, ok := data["items"].([]any)
	if !ok || len(items) == 0 {
		t.Fatalf("expected receipt items, got %v", data["items"])
	}
}

func TestExtractAcceptsAndIgnoresOptions(t *testing.T) {
	handler := newTestHandler(testConfig())

	req := newUploadRequest(t, "/api/extract/invoice", "inv.pdf", "application/pdf", []byte("pdf-bytes"), `{"locale":"en"}`)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}

	var resp map[string]any
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["tool"] != "Invoice Scanner" {
		t.Fatalf("options must not vary output, got tool %v", resp["tool"])
	}
}

func TestExtractUnknownJobTypeIs400(t *testing.T) {
	handler := newTestHandler(testConfig())

	req := newUploadRequest(t, "/api/extract/unknown_type", "a.txt", "text/plain", []byte("x"), "")
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.Code)
	}
}

func TestExtractMissingFilePartIs400(t *testing.T) {
	handler := newTestHandler(testConfig())

	req := httptest.NewRequest(http.MethodPost, "/api/extract/receipt", bytes.NewBufferString("plain-text"))
	req.Header.Set("Content-Type", "text/plain")
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.Code)
	}
}

func TestExtractGetIs405(t *testing.T) {
	handler := newTestHandler(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/extract/receipt", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", res.Code)
	}
}

type capturingLister struct {
	gotLimit int
	items    []domain.AuditRecordView
}

func (c *capturingLister) ListJobs(_ context.Context, limit int) []domain.AuditRecordView {
	c.gotLimit = limit
	if c.items == nil {
		return []domain.AuditRecordView{}
	}
	return c.items
}

func TestListJobsUsesDefaultLimit(t *testing.T) {
	lister := &capturingLister{}
	audit := usecase.NewAuditUseCase(nil)
	handler := NewRouter(
		testConfig(),
		usecase.NewExtractUseCase(audit),
		lister,
		usecase.NewAssistUseCase(),
		usecase.NewDiagnosticsUseCase(nil, false, false),
		nil,
	).Handler()

	req := httptest.NewRequest(http.MethodGet, "/api/jobs", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}
	if lister.gotLimit != 20 {
		t.Fatalf("expected default limit 20, got %d", lister.gotLimit)
	}

	var resp struct {
		Items []any `json:"items"`
	}
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Items == nil {
		t.Fatalf("items must serialize as an empty array, not null")
	}
}

func TestListJobsParsesLimitQuery(t *testing.T) {
	lister := &capturingLister{}
	audit := usecase.NewAuditUseCase(nil)
	handler := NewRouter(
		testConfig(),
		usecase.NewExtractUseCase(audit),
		lister,
		usecase.NewAssistUseCase(),
		usecase.NewDiagnosticsUseCase(nil, false, false),
		nil,
	).Handler()

	req := httptest.NewRequest(http.MethodGet, "/api/jobs?limit=5", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if lister.gotLimit != 5 {
		t.Fatalf("expected limit 5, got %d", lister.gotLimit)
	}
}
