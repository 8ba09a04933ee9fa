package extractor

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	accountPattern = regexp.MustCompile(`(?i)(?:Account|Acct)[^\d]{0,10}(\d{6,20})`)
	// Stricter form used when enriching an already-built document.
	labeledAccountPattern = regexp.MustCompile(`(?i)Account\s+(?:Number|No\.?)[:\s]*([A-Z0-9\-]{6,})`)
	customerPattern       = regexp.MustCompile(`(?i)(?:Customer\s*ID|Customer\s*No\.?|CIF\s*ID|CIF\s*No\.?)[:\s]*([A-Z0-9\-]{3,})`)
	ifscPattern           = regexp.MustCompile(`\b([A-Z]{4}0[0-9A-Z]{6})\b`)
	branchPattern         = regexp.MustCompile(`(?i)Branch(?:\s+Name)?[:\s]+([A-Za-z0-9 ,.\-&]{3,50})`)

	openingBalancePattern = regexp.MustCompile(`(?i)Opening\s+Balance[:\s]+(-?\d+(?:\.\d+)?)`)
	closingBalancePattern = regexp.MustCompile(`(?i)Closing\s+Balance[:\s]+(-?\d+(?:\.\d+)?)`)
	periodPattern         = regexp.MustCompile(`(?i)Period[:\s]+(.+?)\bto\b(.+)`)

	creditStatementPattern  = regexp.MustCompile(`(?i)credit statement`)
	accountStatementPattern = regexp.MustCompile(`(?i)account statement`)
)

func firstGroup(re *regexp.Regexp, text string) string {
	if m := re.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

// FindAccountNumber returns the digits following an "Account"/"Acct" label.
func FindAccountNumber(text string) string {
	return firstGroup(accountPattern, text)
}

// FindLabeledAccountNumber only accepts an explicit "Account Number" or
// "Account No." label.
func FindLabeledAccountNumber(text string) string {
	return firstGroup(labeledAccountPattern, text)
}

func FindCustomerID(text string) string {
	return firstGroup(customerPattern, text)
}

func FindIFSC(text string) string {
	return firstGroup(ifscPattern, text)
}

func FindBranch(text string) string {
	return strings.TrimSpace(firstGroup(branchPattern, text))
}

// FindBalances returns the first opening and closing balances printed on the
// statement; either may be nil.
func FindBalances(text string) (opening, closing *decimal.Decimal) {
	return findDecimal(openingBalancePattern, text), findDecimal(closingBalancePattern, text)
}

func findDecimal(re *regexp.Regexp, text string) *decimal.Decimal {
	raw := firstGroup(re, text)
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	return &d
}

// FindPeriod reads "Period: <start> to <end>". The end token only comes from
// the line the label is on.
func FindPeriod(text string) (start, end *time.Time) {
	m := periodPattern.FindStringSubmatch(text)
	if m == nil {
		return nil, nil
	}

	if t, ok := NormalizeDate(m[1]); ok {
		start = &t
	}

	endCandidate := strings.SplitN(m[2], "\n", 2)[0]
	if t, ok := NormalizeDate(endCandidate); ok {
		end = &t
	}

	return start, end
}

func GuessDocumentType(text string) string {
	switch {
	case creditStatementPattern.MatchString(text):
		return "Credit Statement"
	case accountStatementPattern.MatchString(text):
		return "Account Statement"
	default:
		return "Statement"
	}
}
