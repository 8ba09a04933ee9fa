package detection

import (
	"time"

	"github.com/grachmannico95/statement-fraud-detector/internal/domain"
	"github.com/shopspring/decimal"
)

const sampleRawText = `
    STATEMENT OF ACCOUNT
    Account: 123456789
    Date Range: Sep 01 - Sep 30 2025
    Manual Override applied
    `

// SampleDocument is a deliberately inconsistent statement used by the CLI
// when no input is given. Its closing balance does not reconcile and two
// debits share a timestamp.
func SampleDocument() *domain.BankDocument {
	at := func(day, hour int) time.Time {
		return time.Date(2025, 9, day, hour, 0, 0, 0, time.UTC)
	}
	amount := func(s string) decimal.Decimal {
		return decimal.RequireFromString(s)
	}

	periodStart, periodEnd := at(1, 0), at(30, 0)
	generated := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	opening, closing := amount("1000.00"), amount("300.00")

	return &domain.BankDocument{
		Meta: domain.DocumentMeta{
			DocumentID:             "DOC123",
			DocumentType:           "Credit Statement",
			PeriodStart:            &periodStart,
			PeriodEnd:              &periodEnd,
			GeneratedTimestamp:     &generated,
			ReportedOpeningBalance: &opening,
			ReportedClosingBalance: &closing,
		},
		AccountNumber: "123456789",
		CustomerID:    "CUST55",
		Institution:   "BankCorp",
		Transactions: []domain.Transaction{
			{ID: "T1", Timestamp: at(1, 10), Amount: amount("500.00"), Currency: domain.DefaultCurrency, Type: domain.TransactionTypeCredit, Description: "Salary"},
			{ID: "T2", Timestamp: at(2, 9), Amount: amount("200.00"), Currency: domain.DefaultCurrency, Type: domain.TransactionTypeDebit, Description: "ATM withdrawal"},
			{ID: "T3", Timestamp: at(2, 9), Amount: amount("200.00"), Currency: domain.DefaultCurrency, Type: domain.TransactionTypeDebit, Description: "Duplicate timestamp"},
			{ID: "T4", Timestamp: at(30, 20), Amount: amount("9999.00"), Currency: domain.DefaultCurrency, Type: domain.TransactionTypeDebit, Description: "Manual Override adjustment"},
		},
		RawText: sampleRawText,
		Source:  domain.SourceJSON,
	}
}
