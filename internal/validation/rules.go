package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/grachmannico95/statement-fraud-detector/internal/domain"
	"github.com/shopspring/decimal"
)

var balanceTolerance = decimal.RequireFromString("0.01")

var suspiciousKeywords = []string{"manual override", "adjustment", "force post", "backdated"}

var requiredHeaderTokens = []string{"statement", "account", "date"}

func MissingFields(doc *domain.BankDocument) []domain.ValidationIssue {
	if len(doc.Transactions) == 0 {
		return []domain.ValidationIssue{
			issue(CodeMissingField, domain.SeverityError, 8.0, "Missing required field: transactions"),
		}
	}
	return nil
}

// BalanceMismatch recomputes the closing balance from the opening balance and
// the transaction list. It only runs when both balances were reported.
func BalanceMismatch(doc *domain.BankDocument) []domain.ValidationIssue {
	opening := doc.Meta.ReportedOpeningBalance
	closing := doc.Meta.ReportedClosingBalance
	if opening == nil || closing == nil {
		return nil
	}

	credits, debits := decimal.Zero, decimal.Zero
	for _, tx := range doc.Transactions {
		switch tx.Type {
		case domain.TransactionTypeCredit:
			credits = credits.Add(tx.Amount)
		case domain.TransactionTypeDebit:
			debits = debits.Add(tx.Amount)
		}
	}

	computed := opening.Add(credits).Sub(debits)
	if computed.Sub(*closing).Abs().GreaterThan(balanceTolerance) {
		return []domain.ValidationIssue{
			issue(CodeBalanceMismatch, domain.SeverityError, 15.0,
				fmt.Sprintf("Computed closing %s != reported %s", computed.StringFixed(2), closing.StringFixed(2))),
		}
	}
	return nil
}

func DocumentTypeConsistency(doc *domain.BankDocument) []domain.ValidationIssue {
	if len(doc.Transactions) == 0 || !strings.Contains(strings.ToLower(doc.Meta.DocumentType), "credit") {
		return nil
	}

	for _, tx := range doc.Transactions {
		if !tx.IsDebit() {
			return nil
		}
	}

	return []domain.ValidationIssue{
		issue(CodeDocTypeMismatch, domain.SeverityWarn, 6.0,
			"Document labeled as credit but contains only debit transactions."),
	}
}

// DateIrregularities flags duplicate timestamps, future-dated entries and
// entries outside the stated period. now is read once per document.
func DateIrregularities(now func() time.Time) Validator {
	return Func(func(doc *domain.BankDocument) []domain.ValidationIssue {
		if len(doc.Transactions) == 0 {
			return nil
		}

		var issues []domain.ValidationIssue

		distinct := make(map[time.Time]struct{}, len(doc.Transactions))
		for _, tx := range doc.Transactions {
			distinct[tx.Timestamp.UTC()] = struct{}{}
		}
		if duplicates := len(doc.Transactions) - len(distinct); duplicates > 0 {
			issues = append(issues, issue(CodeDuplicateTimestamps, domain.SeverityWarn, 5.0,
				fmt.Sprintf("%d duplicate transaction timestamps detected.", duplicates)))
		}

		current := now()
		future := 0
		for _, tx := range doc.Transactions {
			if tx.Timestamp.After(current) {
				future++
			}
		}
		if future > 0 {
			issues = append(issues, issue(CodeFutureDates, domain.SeverityError, 12.0,
				fmt.Sprintf("%d future-dated transactions.", future)))
		}

		start, end := doc.Meta.PeriodStart, doc.Meta.PeriodEnd
		if start != nil && end != nil {
			outside := 0
			for _, tx := range doc.Transactions {
				if tx.Timestamp.Before(*start) || tx.Timestamp.After(*end) {
					outside++
				}
			}
			if outside > 0 {
				issues = append(issues, issue(CodeOutOfPeriod, domain.SeverityWarn, 7.0,
					fmt.Sprintf("%d transactions outside stated period.", outside)))
			}
		}

		return issues
	})
}

func SuspiciousKeywords(doc *domain.BankDocument) []domain.ValidationIssue {
	text := strings.ToLower(doc.RawText)

	var hits []string
	for _, kw := range suspiciousKeywords {
		if strings.Contains(text, kw) {
			hits = append(hits, kw)
		}
	}
	if len(hits) == 0 {
		return nil
	}

	return []domain.ValidationIssue{
		issue(CodeSuspiciousTerms, domain.SeverityWarn, 10.0,
			"Suspicious keywords present: "+strings.Join(hits, ", ")),
	}
}

func StructuralFormat(doc *domain.BankDocument) []domain.ValidationIssue {
	text := strings.ToLower(doc.RawText)

	var missing []string
	for _, token := range requiredHeaderTokens {
		if !strings.Contains(text, token) {
			missing = append(missing, token)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	return []domain.ValidationIssue{
		issue(CodeFormatMissingHeaders, domain.SeverityWarn, 5.0,
			"Missing expected header tokens: "+strings.Join(missing, ", ")),
	}
}
