// Package validation holds the rule checks run against a BankDocument.
//
// Checks run in two phases. Enrich fills missing identifiers from the raw
// text on a copy of the document; the read-only validators then run in a
// fixed order against that copy, with the source-specific validator last.
package validation

import (
	"time"

	"github.com/grachmannico95/statement-fraud-detector/internal/domain"
)

const (
	CodeAutoFilledField           = "AUTO_FILLED_FIELD"
	CodeMissingAccountIdentifier  = "MISSING_ACCOUNT_IDENTIFIER"
	CodeMissingCustomerIdentifier = "MISSING_CUSTOMER_IDENTIFIER"
	CodeMissingIFSC               = "MISSING_IFSC"
	CodeMissingBranch             = "MISSING_BRANCH"
	CodeMissingField              = "MISSING_FIELD"
	CodeBalanceMismatch           = "BALANCE_MISMATCH"
	CodeDocTypeMismatch           = "DOC_TYPE_MISMATCH"
	CodeDuplicateTimestamps       = "DUPLICATE_TIMESTAMPS"
	CodeFutureDates               = "FUTURE_DATES"
	CodeOutOfPeriod               = "OUT_OF_PERIOD"
	CodeSuspiciousTerms           = "SUSPICIOUS_TERMS"
	CodeFormatMissingHeaders      = "FORMAT_MISSING_HEADERS"
)

// Validator inspects a document and reports findings. Implementations must
// not modify the document.
type Validator interface {
	Validate(doc *domain.BankDocument) []domain.ValidationIssue
}

type Func func(doc *domain.BankDocument) []domain.ValidationIssue

func (f Func) Validate(doc *domain.BankDocument) []domain.ValidationIssue {
	return f(doc)
}

// NopValidator is the default source-specific validator.
type NopValidator struct{}

func (NopValidator) Validate(*domain.BankDocument) []domain.ValidationIssue {
	return nil
}

type Set struct {
	now             func() time.Time
	sourceValidator Validator
	validators      []Validator
}

type Option func(*Set)

func WithSourceValidator(v Validator) Option {
	return func(s *Set) {
		if v != nil {
			s.sourceValidator = v
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Set) {
		if now != nil {
			s.now = now
		}
	}
}

func NewSet(opts ...Option) *Set {
	s := &Set{
		now:             func() time.Time { return time.Now().UTC() },
		sourceValidator: NopValidator{},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.validators = []Validator{
		Func(MissingFields),
		Func(BalanceMismatch),
		Func(DocumentTypeConsistency),
		DateIrregularities(s.now),
		Func(SuspiciousKeywords),
		Func(StructuralFormat),
		s.sourceValidator,
	}
	return s
}

// Run enriches a copy of doc and evaluates every validator against it. The
// input document is left untouched; the enriched copy is returned alongside
// the issues in evaluation order.
func (s *Set) Run(doc *domain.BankDocument) (*domain.BankDocument, []domain.ValidationIssue) {
	enriched, issues := Enrich(doc)
	for _, v := range s.validators {
		issues = append(issues, v.Validate(enriched)...)
	}
	return enriched, issues
}

func issue(code string, severity domain.Severity, impact float64, message string) domain.ValidationIssue {
	return domain.ValidationIssue{
		Code:        code,
		Message:     message,
		Severity:    severity,
		ScoreImpact: impact,
	}
}
