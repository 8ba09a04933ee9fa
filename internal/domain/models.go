package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const DefaultCurrency = "USD"

type TransactionType string

const (
	TransactionTypeCredit TransactionType = "credit"
	TransactionTypeDebit  TransactionType = "debit"
)

type Source string

const (
	SourcePDF  Source = "pdf"
	SourceJSON Source = "json"
)

type Transaction struct {
	ID          string          `json:"id" validate:"required"`
	Timestamp   time.Time       `json:"timestamp" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Type        TransactionType `json:"type" validate:"required,oneof=debit credit"`
	Description string          `json:"description"`
	Channel     string          `json:"channel"`
}

func (t Transaction) IsDebit() bool {
	return t.Type == TransactionTypeDebit
}

func (t Transaction) IsCredit() bool {
	return t.Type == TransactionTypeCredit
}

type DocumentMeta struct {
	DocumentID             string           `json:"document_id" validate:"required"`
	DocumentType           string           `json:"document_type"`
	PeriodStart            *time.Time       `json:"period_start,omitempty"`
	PeriodEnd              *time.Time       `json:"period_end,omitempty"`
	GeneratedTimestamp     *time.Time       `json:"generated_timestamp,omitempty"`
	ReportedOpeningBalance *decimal.Decimal `json:"reported_opening_balance,omitempty"`
	ReportedClosingBalance *decimal.Decimal `json:"reported_closing_balance,omitempty"`

	// Populated only when the source was a PDF file.
	PDFAuthor    string `json:"pdf_author,omitempty"`
	PDFCreator   string `json:"pdf_creator,omitempty"`
	PDFProducer  string `json:"pdf_producer,omitempty"`
	PDFEncrypted *bool  `json:"pdf_encrypted,omitempty"`
}

// BankDocument is the aggregate every check reads. Identifier fields use the
// empty string for "unset"; Transactions keep the order of the source.
type BankDocument struct {
	Meta          DocumentMeta  `json:"meta"`
	AccountNumber string        `json:"account_number,omitempty"`
	CustomerID    string        `json:"customer_id,omitempty"`
	Institution   string        `json:"institution,omitempty"`
	IFSCCode      string        `json:"ifsc_code,omitempty"`
	Branch        string        `json:"branch,omitempty"`
	Transactions  []Transaction `json:"transactions" validate:"dive"`
	RawText       string        `json:"raw_text,omitempty"`
	Source        Source        `json:"source,omitempty"`
}

// Clone returns a copy whose header fields can be changed without touching d.
// Transactions are shared since nothing rewrites them after parsing.
func (d *BankDocument) Clone() *BankDocument {
	clone := *d
	return &clone
}

type Severity string

const (
	SeverityInfo  Severity = "INFO"
	SeverityWarn  Severity = "WARN"
	SeverityError Severity = "ERROR"
)

// Rank orders severities for display grouping only.
func (s Severity) Rank() int {
	switch s {
	case SeverityError:
		return 2
	case SeverityWarn:
		return 1
	default:
		return 0
	}
}

type ValidationIssue struct {
	Code        string   `json:"code"`
	Message     string   `json:"message"`
	Severity    Severity `json:"severity"`
	ScoreImpact float64  `json:"score_impact"`
}

type Classification string

const (
	ClassificationValid       Classification = "VALID"
	ClassificationSuspicious  Classification = "SUSPICIOUS"
	ClassificationFraudLikely Classification = "FRAUD_LIKELY"
)

type DetectionResult struct {
	DocumentID        string            `json:"document_id"`
	BaseRiskScore     float64           `json:"base_risk_score"`
	LLMRiskScore      *float64          `json:"llm_risk_score"`
	CombinedRiskScore float64           `json:"combined_risk_score"`
	Issues            []ValidationIssue `json:"issues"`
	LLMReasoning      string            `json:"llm_reasoning,omitempty"`
	Classification    Classification    `json:"classification"`
}

type JobStatus string

const (
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

type Job struct {
	ID          string     `json:"id"`
	Status      JobStatus  `json:"status"`
	FileName    string     `json:"file_name,omitempty"`
	DocumentID  string     `json:"document_id,omitempty"`
	Error       string     `json:"error,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
