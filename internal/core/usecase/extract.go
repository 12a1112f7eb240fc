package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/docuparsepro/backend/internal/core/domain"
)

// ExtractUseCase routes an upload to its canned demo payload. Uploaded
// content is read once for its byte length and never persisted.
type ExtractUseCase struct {
	audit *AuditUseCase
}

func NewExtractUseCase(audit *AuditUseCase) *ExtractUseCase {
	return &ExtractUseCase{audit: audit}
}

// Extract validates the job type, consumes the upload and assembles the
// response envelope. The options string is accepted for forward
// compatibility and does not vary the output. The only caller-visible
// failure is an unsupported job type, raised before the body is read.
func (uc *ExtractUseCase) Extract(
	ctx context.Context,
	jobType, filename, contentType, options string,
	body io.Reader,
) (*domain.ExtractionResult, error) {
	jt, err := domain.ParseJobType(jobType)
	if err != nil {
		return nil, err
	}

	content, err := io.ReadAll(body)
	if err != nil {
		return nil, domain.WrapError(domain.ErrInvalidInput, "read upload", err)
	}
	size := int64(len(content))

	_ = options

	summary := fmt.Sprintf("Parsed %s for %s (demo)", jt.ToolName(), filename)

	uc.audit.Record(ctx, &domain.AuditRecord{
		JobType:       jt,
		Filename:      filename,
		SizeBytes:     size,
		Status:        domain.StatusSuccess,
		ResultSummary: summary,
		Meta:          map[string]any{"content_type": contentType},
		CreatedAt:     time.Now().UTC(),
	})

	return &domain.ExtractionResult{
		Tool:        jt.ToolName(),
		Filename:    filename,
		SizeBytes:   size,
		ContentType: contentType,
		Summary:     summary,
		Data:        domain.DemoPayload(jt),
	}, nil
}
