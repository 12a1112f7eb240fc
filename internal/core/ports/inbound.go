package ports

import (
	"context"
	"io"

	"github.com/docuparsepro/backend/internal/core/domain"
)

// DocumentExtractor is the inbound contract for demo extraction calls.
type DocumentExtractor interface {
	Extract(ctx context.Context, jobType, filename, contentType, options string, body io.Reader) (*domain.ExtractionResult, error)
}

// JobLister is the inbound read model for the audit trail. It never fails;
// an unavailable store degrades to an empty listing.
type JobLister interface {
	ListJobs(ctx context.Context, limit int) []domain.AuditRecordView
}

// Assistant is the inbound contract for the generative-AI demo stubs.
type Assistant interface {
	Chat(ctx context.Context, question string) string
	Summarize(ctx context.Context, text string, maxSentences int) string
	Translate(ctx context.Context, text, targetLang string) string
	PPTOutline(ctx context.Context, text string) []string
	ImageGen(ctx context.Context, prompt string) (imageURL, echoedPrompt string)
}

// StoreDiagnostics reports store reachability for the /test endpoint.
type StoreDiagnostics interface {
	Check(ctx context.Context) domain.StoreDiagnostic
}
