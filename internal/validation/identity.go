package validation

import (
	"github.com/grachmannico95/statement-fraud-detector/internal/domain"
	"github.com/grachmannico95/statement-fraud-detector/internal/extractor"
)

const autoFilledImpact = 0.5

type identityField struct {
	get     func(*domain.BankDocument) string
	set     func(*domain.BankDocument, string)
	find    func(string) string
	filled  string
	missing domain.ValidationIssue
}

var identityFields = []identityField{
	{
		get:     func(d *domain.BankDocument) string { return d.AccountNumber },
		set:     func(d *domain.BankDocument, v string) { d.AccountNumber = v },
		find:    extractor.FindLabeledAccountNumber,
		filled:  "Auto-filled account_number from text.",
		missing: issue(CodeMissingAccountIdentifier, domain.SeverityError, 7.0, "No 'Account Number' or 'Account No.' found."),
	},
	{
		get:     func(d *domain.BankDocument) string { return d.CustomerID },
		set:     func(d *domain.BankDocument, v string) { d.CustomerID = v },
		find:    extractor.FindCustomerID,
		filled:  "Auto-filled customer_id (Customer/CIF ID) from text.",
		missing: issue(CodeMissingCustomerIdentifier, domain.SeverityError, 6.0, "No 'Customer ID' or 'CIF ID' found."),
	},
	{
		get:     func(d *domain.BankDocument) string { return d.IFSCCode },
		set:     func(d *domain.BankDocument, v string) { d.IFSCCode = v },
		find:    extractor.FindIFSC,
		filled:  "Auto-filled IFSC code.",
		missing: issue(CodeMissingIFSC, domain.SeverityWarn, 3.0, "No IFSC code detected."),
	},
	{
		get:     func(d *domain.BankDocument) string { return d.Branch },
		set:     func(d *domain.BankDocument, v string) { d.Branch = v },
		find:    extractor.FindBranch,
		filled:  "Auto-filled branch name.",
		missing: issue(CodeMissingBranch, domain.SeverityWarn, 2.0, "No Branch label found."),
	},
}

// Enrich returns a copy of doc with unset identifiers recovered from the raw
// text where possible. Each recovered field yields an AUTO_FILLED_FIELD
// issue; each field still unset yields its missing-identifier issue. Fields
// that were already set produce nothing, so enriching an enriched document
// recovers nothing new.
func Enrich(doc *domain.BankDocument) (*domain.BankDocument, []domain.ValidationIssue) {
	enriched := doc.Clone()
	var issues []domain.ValidationIssue

	for _, f := range identityFields {
		if f.get(enriched) != "" {
			continue
		}

		if value := f.find(enriched.RawText); value != "" {
			f.set(enriched, value)
			issues = append(issues, issue(CodeAutoFilledField, domain.SeverityInfo, autoFilledImpact, f.filled))
			continue
		}

		issues = append(issues, f.missing)
	}

	return enriched, issues
}
