package httpadapter

import (
	"encoding/json"
	"net/http"
	"strings"
)

const defaultMaxSentences = 3

func (rt *Router) aiChat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Question string `json:"question"`
	}
	if !decodeAIRequest(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "question is required"})
		return
	}

	answer := rt.assistant.Chat(r.Context(), req.Question)
	rt.recordAssist("chat")
	writeJSON(w, http.StatusOK, map[string]string{"answer": answer})
}

func (rt *Router) aiSummarize(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text         string `json:"text"`
		MaxSentences *int   `json:"max_sentences"`
	}
	if !decodeAIRequest(w, r, &req) {
		return
	}
	maxSentences := defaultMaxSentences
	if req.MaxSentences != nil {
		maxSentences = *req.MaxSentences
	}

	summary := rt.assistant.Summarize(r.Context(), req.Text, maxSentences)
	rt.recordAssist("summarize")
	writeJSON(w, http.StatusOK, map[string]string{"summary": summary})
}

func (rt *Router) aiTranslate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text       string `json:"text"`
		TargetLang string `json:"target_lang"`
	}
	if !decodeAIRequest(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.TargetLang) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "target_lang is required"})
		return
	}

	translated := rt.assistant.Translate(r.Context(), req.Text, req.TargetLang)
	rt.recordAssist("translate")
	writeJSON(w, http.StatusOK, map[string]string{"translated": translated})
}

func (rt *Router) aiPPTOutline(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if !decodeAIRequest(w, r, &req) {
		return
	}

	outline := rt.assistant.PPTOutline(r.Context(), req.Text)
	rt.recordAssist("ppt-outline")
	writeJSON(w, http.StatusOK, map[string]any{"outline": outline})
}

func (rt *Router) aiImageGen(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Prompt string `json:"prompt"`
	}
	if !decodeAIRequest(w, r, &req) {
		return
	}

	imageURL, prompt := rt.assistant.ImageGen(r.Context(), req.Prompt)
	rt.recordAssist("image-gen")
	writeJSON(w, http.StatusOK, map[string]string{"image_url": imageURL, "prompt": prompt})
}

func decodeAIRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return false
	}
	return true
}

func (rt *Router) recordAssist(endpoint string) {
	if rt.metrics != nil {
		rt.metrics.RecordAssistRequest(serviceName, endpoint)
	}
}
