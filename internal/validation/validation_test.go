package validation

import (
	"testing"
	"time"

	"github.com/grachmannico95/statement-fraud-detector/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func day(d int) time.Time {
	return time.Date(2025, 9, d, 10, 0, 0, 0, time.UTC)
}

func dec(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

func tx(id string, ts time.Time, amount string, typ domain.TransactionType) domain.Transaction {
	return domain.Transaction{
		ID:        id,
		Timestamp: ts,
		Amount:    decimal.RequireFromString(amount),
		Currency:  domain.DefaultCurrency,
		Type:      typ,
	}
}

func cleanDocument() *domain.BankDocument {
	start, end := day(1), time.Date(2025, 9, 30, 23, 59, 59, 0, time.UTC)
	return &domain.BankDocument{
		Meta: domain.DocumentMeta{
			DocumentID:             "DOC1",
			DocumentType:           "Account Statement",
			PeriodStart:            &start,
			PeriodEnd:              &end,
			ReportedOpeningBalance: dec("1000.00"),
			ReportedClosingBalance: dec("1300.00"),
		},
		AccountNumber: "0012345678",
		CustomerID:    "CUST55",
		IFSCCode:      "HDFC0001234",
		Branch:        "MG Road",
		Transactions: []domain.Transaction{
			tx("T1", day(2), "500.00", domain.TransactionTypeCredit),
			tx("T2", day(3), "200.00", domain.TransactionTypeDebit),
		},
		RawText: "Account Statement\nDate Description Amount",
		Source:  domain.SourceJSON,
	}
}

func codes(issues []domain.ValidationIssue) []string {
	out := make([]string, 0, len(issues))
	for _, i := range issues {
		out = append(out, i.Code)
	}
	return out
}

func total(issues []domain.ValidationIssue) float64 {
	sum := 0.0
	for _, i := range issues {
		sum += i.ScoreImpact
	}
	return sum
}

func TestSet_CleanDocumentHasNoIssues(t *testing.T) {
	set := NewSet(WithClock(fixedClock))

	_, issues := set.Run(cleanDocument())

	assert.Empty(t, issues)
}

func TestEnrich_RecoversIdentifiersFromText(t *testing.T) {
	doc := cleanDocument()
	doc.AccountNumber, doc.CustomerID, doc.IFSCCode, doc.Branch = "", "", "", ""
	doc.RawText = "Statement\nAccount No. 99-1234-AB\nCIF ID: C77\nIFSC SBIN0000999\nBranch: Fort"

	enriched, issues := Enrich(doc)

	assert.Equal(t, "99-1234-AB", enriched.AccountNumber)
	assert.Equal(t, "C77", enriched.CustomerID)
	assert.Equal(t, "SBIN0000999", enriched.IFSCCode)
	assert.Equal(t, "Fort", enriched.Branch)
	require.Len(t, issues, 4)
	for _, i := range issues {
		assert.Equal(t, CodeAutoFilledField, i.Code)
		assert.Equal(t, domain.SeverityInfo, i.Severity)
		assert.Equal(t, 0.5, i.ScoreImpact)
	}

	// input is left untouched
	assert.Empty(t, doc.AccountNumber)
	assert.Empty(t, doc.Branch)
}

func TestEnrich_ReportsUnrecoverableIdentifiers(t *testing.T) {
	doc := cleanDocument()
	doc.AccountNumber, doc.CustomerID, doc.IFSCCode, doc.Branch = "", "", "", ""
	doc.RawText = "nothing useful"

	_, issues := Enrich(doc)

	assert.Equal(t, []string{
		CodeMissingAccountIdentifier,
		CodeMissingCustomerIdentifier,
		CodeMissingIFSC,
		CodeMissingBranch,
	}, codes(issues))
	assert.Equal(t, 18.0, total(issues))
}

func TestEnrich_IsIdempotent(t *testing.T) {
	doc := cleanDocument()
	doc.AccountNumber = ""
	doc.RawText = "Account Number: 555666777"

	once, _ := Enrich(doc)
	twice, issues := Enrich(once)

	assert.Equal(t, once, twice)
	for _, i := range issues {
		assert.NotEqual(t, CodeAutoFilledField, i.Code)
	}
}

func TestEnrich_AccountRequiresLabel(t *testing.T) {
	doc := cleanDocument()
	doc.AccountNumber = ""
	doc.RawText = "Acct # 123456789"

	enriched, issues := Enrich(doc)

	assert.Empty(t, enriched.AccountNumber)
	assert.Equal(t, []string{CodeMissingAccountIdentifier}, codes(issues))
}

func TestMissingFields(t *testing.T) {
	doc := cleanDocument()
	assert.Empty(t, MissingFields(doc))

	doc.Transactions = nil
	issues := MissingFields(doc)
	require.Len(t, issues, 1)
	assert.Equal(t, "Missing required field: transactions", issues[0].Message)
	assert.Equal(t, domain.SeverityError, issues[0].Severity)
}

func TestBalanceMismatch(t *testing.T) {
	tests := []struct {
		name    string
		closing *decimal.Decimal
		opening *decimal.Decimal
		want    string
	}{
		{name: "exact", opening: dec("1000.00"), closing: dec("1300.00")},
		{name: "within tolerance", opening: dec("1000.00"), closing: dec("1300.01")},
		{name: "beyond tolerance", opening: dec("1000.00"), closing: dec("1300.02"), want: "Computed closing 1300.00 != reported 1300.02"},
		{name: "opening unset", closing: dec("1.00")},
		{name: "closing unset", opening: dec("1.00")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := cleanDocument()
			doc.Meta.ReportedOpeningBalance = tt.opening
			doc.Meta.ReportedClosingBalance = tt.closing

			issues := BalanceMismatch(doc)

			if tt.want == "" {
				assert.Empty(t, issues)
				return
			}
			require.Len(t, issues, 1)
			assert.Equal(t, CodeBalanceMismatch, issues[0].Code)
			assert.Equal(t, 15.0, issues[0].ScoreImpact)
			assert.Equal(t, tt.want, issues[0].Message)
		})
	}
}

func TestBalanceMismatch_ConsistentBalancesNeverFlag(t *testing.T) {
	amounts := []string{"0.01", "19.99", "1234.56", "0.10", "0.20", "7"}
	doc := cleanDocument()
	doc.Transactions = nil

	running := decimal.RequireFromString("250.75")
	doc.Meta.ReportedOpeningBalance = dec("250.75")
	for i, a := range amounts {
		typ := domain.TransactionTypeCredit
		amount := decimal.RequireFromString(a)
		if i%2 == 1 {
			typ = domain.TransactionTypeDebit
			running = running.Sub(amount)
		} else {
			running = running.Add(amount)
		}
		doc.Transactions = append(doc.Transactions, tx("T", day(i+1), a, typ))

		closing := running
		doc.Meta.ReportedClosingBalance = &closing
		assert.Empty(t, BalanceMismatch(doc), "after %d transactions", i+1)
	}
}

func TestDocumentTypeConsistency(t *testing.T) {
	doc := cleanDocument()
	doc.Meta.DocumentType = "CREDIT CARD statement"
	assert.Empty(t, DocumentTypeConsistency(doc), "mixed types pass")

	doc.Transactions = []domain.Transaction{
		tx("T1", day(2), "10", domain.TransactionTypeDebit),
		tx("T2", day(3), "20", domain.TransactionTypeDebit),
	}
	issues := DocumentTypeConsistency(doc)
	require.Len(t, issues, 1)
	assert.Equal(t, CodeDocTypeMismatch, issues[0].Code)
	assert.Equal(t, 6.0, issues[0].ScoreImpact)

	doc.Transactions = nil
	assert.Empty(t, DocumentTypeConsistency(doc), "empty list is not all-debit")
}

func TestDateIrregularities(t *testing.T) {
	validate := DateIrregularities(fixedClock)

	doc := cleanDocument()
	sameInstant := day(2).In(time.FixedZone("IST", 5*3600+1800))
	doc.Transactions = []domain.Transaction{
		tx("T1", day(2), "1", domain.TransactionTypeCredit),
		tx("T2", sameInstant, "1", domain.TransactionTypeCredit),
		tx("T3", fixedNow.Add(time.Hour), "1", domain.TransactionTypeDebit),
		tx("T4", time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC), "1", domain.TransactionTypeDebit),
	}

	issues := validate.Validate(doc)

	require.Len(t, issues, 3)
	assert.Equal(t, "1 duplicate transaction timestamps detected.", issues[0].Message)
	assert.Equal(t, "1 future-dated transactions.", issues[1].Message)
	assert.Equal(t, domain.SeverityError, issues[1].Severity)
	// the future entry is also past the period end
	assert.Equal(t, "2 transactions outside stated period.", issues[2].Message)
}

func TestDateIrregularities_PeriodBoundsInclusive(t *testing.T) {
	doc := cleanDocument()
	doc.Transactions = []domain.Transaction{
		tx("T1", *doc.Meta.PeriodStart, "1", domain.TransactionTypeCredit),
		tx("T2", *doc.Meta.PeriodEnd, "1", domain.TransactionTypeCredit),
	}

	assert.Empty(t, DateIrregularities(fixedClock).Validate(doc))

	doc.Meta.PeriodEnd = nil
	doc.Transactions = append(doc.Transactions, tx("T3", day(1).AddDate(0, -1, 0), "1", domain.TransactionTypeDebit))
	assert.Empty(t, DateIrregularities(fixedClock).Validate(doc), "period check needs both bounds")
}

func TestSuspiciousKeywords(t *testing.T) {
	doc := cleanDocument()
	doc.RawText = "BACKDATED entry after Manual Override"

	issues := SuspiciousKeywords(doc)

	require.Len(t, issues, 1)
	assert.Equal(t, "Suspicious keywords present: manual override, backdated", issues[0].Message)
	assert.Equal(t, 10.0, issues[0].ScoreImpact)
}

func TestStructuralFormat(t *testing.T) {
	doc := cleanDocument()
	doc.RawText = "Account summary"

	issues := StructuralFormat(doc)

	require.Len(t, issues, 1)
	assert.Equal(t, "Missing expected header tokens: statement, date", issues[0].Message)
}

func TestSet_EmptyDocument(t *testing.T) {
	doc := &domain.BankDocument{
		Meta:   domain.DocumentMeta{DocumentID: "EMPTY"},
		Source: domain.SourceJSON,
	}

	_, issues := NewSet(WithClock(fixedClock)).Run(doc)

	assert.Contains(t, codes(issues), CodeMissingField)
	assert.Contains(t, codes(issues), CodeMissingAccountIdentifier)
	assert.Contains(t, codes(issues), CodeMissingCustomerIdentifier)
	assert.GreaterOrEqual(t, total(issues), 21.0)
}

func TestSet_TamperedStatementScoresHigh(t *testing.T) {
	doc := cleanDocument()
	doc.Meta.DocumentType = "Credit Statement"
	doc.Meta.ReportedClosingBalance = dec("5000.00")
	doc.Transactions = []domain.Transaction{
		tx("T1", day(2), "100.00", domain.TransactionTypeDebit),
		tx("T2", day(2), "50.00", domain.TransactionTypeDebit),
	}
	doc.RawText = "Credit Statement\nAccount\nDate\nmanual override applied"

	enriched, issues := NewSet(WithClock(fixedClock)).Run(doc)

	assert.Equal(t, []string{
		CodeBalanceMismatch,
		CodeDocTypeMismatch,
		CodeDuplicateTimestamps,
		CodeSuspiciousTerms,
	}, codes(issues))
	assert.GreaterOrEqual(t, total(issues), 30.0)
	assert.Equal(t, doc.AccountNumber, enriched.AccountNumber)
}

func TestSet_SourceValidatorRunsLast(t *testing.T) {
	marker := domain.ValidationIssue{Code: "CUSTOM", Severity: domain.SeverityInfo}
	set := NewSet(
		WithClock(fixedClock),
		WithSourceValidator(Func(func(*domain.BankDocument) []domain.ValidationIssue {
			return []domain.ValidationIssue{marker}
		})),
	)
	doc := cleanDocument()
	doc.RawText = "nothing"

	_, issues := set.Run(doc)

	require.NotEmpty(t, issues)
	assert.Equal(t, marker, issues[len(issues)-1])
}

func TestPDFProvenance(t *testing.T) {
	encrypted := true
	doc := cleanDocument()
	doc.Source = domain.SourcePDF
	doc.Meta.PDFEncrypted = &encrypted
	doc.Meta.PDFCreator = "iLovePDF"

	issues := PDFProvenance{}.Validate(doc)

	assert.Equal(t, []string{CodePDFEncrypted, CodePDFMissingProducer, CodePDFEditingTool}, codes(issues))
	assert.Equal(t, 13.0, total(issues))
	assert.Contains(t, issues[2].Message, "ilovepdf")
}

func TestPDFProvenance_IgnoresOtherSources(t *testing.T) {
	doc := cleanDocument()
	doc.Meta.PDFCreator = "Sejda"

	assert.Empty(t, PDFProvenance{}.Validate(doc))

	doc.Source = domain.SourcePDF
	doc.Meta.PDFProducer = "Bank Core Reporting 4.2"
	doc.Meta.PDFCreator = ""
	assert.Empty(t, PDFProvenance{}.Validate(doc))
}
