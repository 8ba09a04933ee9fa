// Package extractor recovers a best-effort BankDocument from raw statement
// text. Extraction never fails: anything it cannot recognise is left unset.
package extractor

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/grachmannico95/statement-fraud-detector/internal/domain"
	"github.com/grachmannico95/statement-fraud-detector/pkg/logger"
	"github.com/shopspring/decimal"
)

// minTransactionLineLen skips headers, page numbers and other short noise.
const minTransactionLineLen = 10

var transactionLinePattern = regexp.MustCompile(
	`(?i)^(\d{4}-\d{2}-\d{2}|\d{2}/\d{2}/\d{4}|[A-Za-z]{3,9}\s+\d{1,2},?\s+\d{4})\s+` +
		`(debit|credit)\s+` +
		`(-?\d+(?:\.\d+)?)\s+` +
		`(.+)$`,
)

// MetadataHints is what an external model may contribute for fields the
// regular expressions find ambiguous. Nil fields leave the document as is.
type MetadataHints struct {
	DocumentType           *string          `json:"document_type"`
	ReportedOpeningBalance *decimal.Decimal `json:"reported_opening_balance"`
	ReportedClosingBalance *decimal.Decimal `json:"reported_closing_balance"`
}

type Refiner interface {
	RefineMetadata(ctx context.Context, rawText string) (*MetadataHints, error)
}

// NopRefiner never has anything to add.
type NopRefiner struct{}

func (NopRefiner) RefineMetadata(context.Context, string) (*MetadataHints, error) {
	return nil, nil
}

type Options struct {
	DocumentID string
	Source     domain.Source
	EnableLLM  bool
}

type Extractor struct {
	refiner Refiner
	logger  *logger.Logger
}

func New(refiner Refiner, log *logger.Logger) *Extractor {
	if refiner == nil {
		refiner = NopRefiner{}
	}
	return &Extractor{
		refiner: refiner,
		logger:  log,
	}
}

func (e *Extractor) Extract(ctx context.Context, text string, opts Options) *domain.BankDocument {
	documentID := opts.DocumentID
	if documentID == "" {
		documentID = fmt.Sprintf("PDF_%s", uuid.New().String())
	}
	source := opts.Source
	if source == "" {
		source = domain.SourcePDF
	}

	ctx = logger.WithDocumentID(ctx, documentID)

	opening, closing := FindBalances(text)
	periodStart, periodEnd := FindPeriod(text)

	doc := &domain.BankDocument{
		Meta: domain.DocumentMeta{
			DocumentID:             documentID,
			DocumentType:           GuessDocumentType(text),
			PeriodStart:            periodStart,
			PeriodEnd:              periodEnd,
			ReportedOpeningBalance: opening,
			ReportedClosingBalance: closing,
		},
		AccountNumber: FindAccountNumber(text),
		CustomerID:    FindCustomerID(text),
		IFSCCode:      FindIFSC(text),
		Branch:        FindBranch(text),
		Transactions:  ParseTransactions(text),
		RawText:       text,
		Source:        source,
	}

	if opts.EnableLLM {
		e.refine(ctx, doc)
	}

	e.logger.Debug(ctx, "Statement text extracted",
		"document_type", doc.Meta.DocumentType,
		"transaction_count", len(doc.Transactions),
		"has_account_number", doc.AccountNumber != "",
		"has_balances", opening != nil && closing != nil,
	)

	return doc
}

func (e *Extractor) refine(ctx context.Context, doc *domain.BankDocument) {
	hints, err := e.refiner.RefineMetadata(ctx, doc.RawText)
	if err != nil {
		e.logger.Warn(ctx, "Metadata refinement failed, keeping extracted values",
			"error", err,
		)
		return
	}
	if hints == nil {
		return
	}

	if hints.DocumentType != nil && strings.TrimSpace(*hints.DocumentType) != "" {
		doc.Meta.DocumentType = strings.TrimSpace(*hints.DocumentType)
	}
	if hints.ReportedOpeningBalance != nil {
		doc.Meta.ReportedOpeningBalance = hints.ReportedOpeningBalance
	}
	if hints.ReportedClosingBalance != nil {
		doc.Meta.ReportedClosingBalance = hints.ReportedClosingBalance
	}
}

// ParseTransactions reads lines of the form "<date> <debit|credit> <amount>
// <description>". Lines that do not match are ignored; ids are assigned in
// parse order.
func ParseTransactions(text string) []domain.Transaction {
	txs := []domain.Transaction{}

	for raw := range strings.Lines(text) {
		line := strings.TrimSpace(raw)
		if len(line) < minTransactionLineLen {
			continue
		}

		m := transactionLinePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		timestamp, ok := NormalizeDate(m[1])
		if !ok {
			continue
		}

		amount, err := decimal.NewFromString(m[3])
		if err != nil {
			continue
		}

		txs = append(txs, domain.Transaction{
			ID:          fmt.Sprintf("TX%d", len(txs)+1),
			Timestamp:   timestamp,
			Amount:      amount,
			Currency:    domain.DefaultCurrency,
			Type:        domain.TransactionType(strings.ToLower(m[2])),
			Description: strings.TrimSpace(m[4]),
		})
	}

	return txs
}
