package usecase

import (
	"context"
	"fmt"
	"strings"
)

const (
	emptySummaryFallback = "No content provided."
	placeholderImageURL  = "https://picsum.photos/seed/docuparse/1024/768"
)

// AssistUseCase holds the generative-AI demo stubs. Every method is a pure
// transform: no model calls, no shared state, no uploaded data involved.
type AssistUseCase struct{}

func NewAssistUseCase() *AssistUseCase {
	return &AssistUseCase{}
}

func (uc *AssistUseCase) Chat(_ context.Context, question string) string {
	return "This is a demo response. In the full version, the system would index your PDF and answer using its content.\n" +
		"Question: " + question + "\n" +
		"Answer: Based on a quick scan, the document discusses totals, dates, and line items."
}

// Summarize keeps the first maxSentences fragments of the text, split on
// the literal ". " separator.
func (uc *AssistUseCase) Summarize(_ context.Context, text string, maxSentences int) string {
	if maxSentences < 0 {
		maxSentences = 0
	}
	fragments := strings.Split(strings.TrimSpace(text), ". ")
	if len(fragments) > maxSentences {
		fragments = fragments[:maxSentences]
	}
	summary := strings.Join(fragments, ". ")
	if summary == "" {
		return emptySummaryFallback
	}
	return summary
}

func (uc *AssistUseCase) Translate(_ context.Context, text, targetLang string) string {
	return fmt.Sprintf("[Translated to %s] %s", targetLang, text)
}

func (uc *AssistUseCase) PPTOutline(_ context.Context, _ string) []string {
	return []string{
		"Title: Key Insights",
		"Slide 1: Overview",
		"Slide 2: Data Tables",
		"Slide 3: Totals & Trends",
		"Slide 4: Conclusions",
	}
}

func (uc *AssistUseCase) ImageGen(_ context.Context, prompt string) (string, string) {
	return placeholderImageURL, prompt
}
