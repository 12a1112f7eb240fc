package domain

import (
	"fmt"
	"time"
)

type JobType string

const (
	JobBankStatement JobType = "bank_statement"
	JobInvoice       JobType = "invoice"
	JobReceipt       JobType = "receipt"
	JobSalarySlip    JobType = "salary_slip"
	JobCreditCard    JobType = "credit_card"
	JobTableExtract  JobType = "table_extract"
)

// toolNames is the closed allow-list of extraction tools. The display name
// is embedded verbatim in response summaries.
var toolNames = map[JobType]string{
	JobBankStatement: "Bank Statement Converter",
	JobInvoice:       "Invoice Scanner",
	JobReceipt:       "Receipt Scanner",
	JobSalarySlip:    "Salary Slip Converter",
	JobCreditCard:    "Credit Card Statement Converter",
	JobTableExtract:  "Document Table Extractor",
}

// ParseJobType validates a raw path segment against the allow-list.
func ParseJobType(raw string) (JobType, error) {
	jt := JobType(raw)
	if _, ok := toolNames[jt]; !ok {
		return "", WrapError(ErrInvalidInput, "parse job type", fmt.Errorf("unsupported job type %q", raw))
	}
	return jt, nil
}

func (t JobType) ToolName() string {
	return toolNames[t]
}

type JobStatus string

const (
	StatusSuccess JobStatus = "success"
	StatusError   JobStatus = "error"
)

// ExtractionResult is the response envelope returned by every extraction
// call. Data is type-erased per-tool demo output.
type ExtractionResult struct {
	Tool        string `json:"tool"`
	Filename    string `json:"filename"`
	SizeBytes   int64  `json:"size_bytes"`
	ContentType string `json:"content_type"`
	Summary     string `json:"summary"`
	Data        any    `json:"data"`
}

// AuditRecord is the append-only log entry for one extraction job. Records
// are created once and never mutated.
type AuditRecord struct {
	ID            string
	JobType       JobType
	Filename      string
	SizeBytes     int64
	Status        JobStatus
	ResultSummary string
	Meta          map[string]any
	CreatedAt     time.Time
}

// AuditRecordView is the listing shape: identifiers and timestamps coerced
// to text so callers never see store-internal types.
type AuditRecordView struct {
	ID            string         `json:"id"`
	JobType       string         `json:"job_type"`
	Filename      string         `json:"filename"`
	SizeBytes     int64          `json:"size_bytes"`
	Status        string         `json:"status"`
	ResultSummary string         `json:"result_summary"`
	Meta          map[string]any `json:"meta,omitempty"`
	CreatedAt     string         `json:"created_at"`
}

// View coerces a record into its listing representation.
func (r AuditRecord) View() AuditRecordView {
	return AuditRecordView{
		ID:            r.ID,
		JobType:       string(r.JobType),
		Filename:      r.Filename,
		SizeBytes:     r.SizeBytes,
		Status:        string(r.Status),
		ResultSummary: r.ResultSummary,
		Meta:          r.Meta,
		CreatedAt:     r.CreatedAt.UTC().Format(time.RFC3339),
	}
}
