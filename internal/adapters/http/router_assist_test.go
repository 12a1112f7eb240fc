package httpadapter

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func postJSON(t *testing.T, handler http.Handler, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)
	return res
}

func decodeBody(t *testing.T, res *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func TestSummarizeEndpointScenario(t *testing.T) {
	handler := newTestHandler(testConfig())

	res := postJSON(t, handler, "/api/ai/summarize", map[string]any{
		"text":          "A. B. C. D.",
		"max_sentences": 2,
	})
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}
	if body := decodeBody(t, res); body["summary"] != "A. B" {
		t.Fatalf("expected summary %q, got %v", "A. B", body["summary"])
	}
}

func TestSummarizeEndpointDefaultsToThreeSentences(t *testing.T) {
	handler := newTestHandler(testConfig())

	res := postJSON(t, handler, "/api/ai/summarize", map[string]any{
		"text": "A. B. C. D. E.",
	})
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}
	if body := decodeBody(t, res); body["summary"] != "A. B. C" {
		t.Fatalf("expected three fragments, got %v", body["summary"])
	}
}

func TestSummarizeEndpointEmptyTextFallback(t *testing.T) {
	handler := newTestHandler(testConfig())

	res := postJSON(t, handler, "/api/ai/summarize", map[string]any{"text": "   "})
	if body := decodeBody(t, res); body["summary"] != "No content provided." {
		t.Fatalf("expected fallback, got %v", body["summary"])
	}
}

func TestTranslateEndpointScenario(t *testing.T) {
	handler := newTestHandler(testConfig())

	res := postJSON(t, handler, "/api/ai/translate", map[string]any{
		"text":        "Hello",
		"target_lang": "fr",
	})
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}
	if body := decodeBody(t, res); body["translated"] != "[Translated to fr] Hello" {
		t.Fatalf("unexpected translation %v", body["translated"])
	}
}

func TestTranslateEndpointRequiresTargetLang(t *testing.T) {
	handler := newTestHandler(testConfig())

	res := postJSON(t, handler, "/api/ai/translate", map[string]any{"text": "Hello"})
	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.Code)
	}
}

func TestChatEndpointEmbedsQuestion(t *testing.T) {
	handler := newTestHandler(testConfig())

	res := postJSON(t, handler, "/api/ai/chat", map[string]any{"question": "What is the total?"})
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}
	body := decodeBody(t, res)
	answer, _ := body["answer"].(string)
	if !strings.Contains(answer, "Question: What is the total?") {
		t.Fatalf("answer must embed the question: %q", answer)
	}
}

func TestChatEndpointRequiresQuestion(t *testing.T) {
	handler := newTestHandler(testConfig())

	res := postJSON(t, handler, "/api/ai/chat", map[string]any{"question": "  "})
	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.Code)
	}
}

func TestPPTOutlineEndpointReturnsFixedOutline(t *testing.T) {
	handler := newTestHandler(testConfig())

	res := postJSON(t, handler, "/api/ai/ppt-outline", map[string]any{"text": "quarterly numbers"})
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}
	body := decodeBody(t, res)
	outline, ok := body["outline"].([]any)
	if !ok || len(outline) != 5 {
		t.Fatalf("expected 5 outline lines, got %v", body["outline"])
	}
	if outline[0] != "Title: Key Insights" {
		t.Fatalf("unexpected first line %v", outline[0])
	}
}

func TestImageGenEndpointEchoesPrompt(t *testing.T) {
	handler := newTestHandler(testConfig())

	res := postJSON(t, handler, "/api/ai/image-gen", map[string]any{"prompt": "a tidy ledger"})
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}
	body := decodeBody(t, res)
	if body["prompt"] != "a tidy ledger" {
		t.Fatalf("expected echoed prompt, got %v", body["prompt"])
	}
	url, _ := body["image_url"].(string)
	if !strings.HasPrefix(url, "https://") {
		t.Fatalf("expected placeholder image url, got %q", url)
	}
}

func TestAIEndpointsRejectMalformedJSON(t *testing.T) {
	handler := newTestHandler(testConfig())

	for _, path := range []string{
		"/api/ai/chat",
		"/api/ai/summarize",
		"/api/ai/translate",
		"/api/ai/ppt-outline",
		"/api/ai/image-gen",
	} {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")
		res := httptest.NewRecorder()
		handler.ServeHTTP(res, req)
		if res.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", path, res.Code)
		}
	}
}
