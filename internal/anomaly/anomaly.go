// Package anomaly runs statistical checks over a document's transaction list.
package anomaly

import (
	"fmt"
	"math"

	"github.com/grachmannico95/statement-fraud-detector/internal/domain"
)

const (
	CodeAmountOutliers   = "AMOUNT_OUTLIERS"
	CodeChannelDominance = "CHANNEL_DOMINANCE"
)

const (
	minOutlierSample    = 5
	outlierSigma        = 3.0
	minChannelSample    = 10
	dominanceShareLimit = 0.9
)

type Detector interface {
	Detect(txs []domain.Transaction) []domain.ValidationIssue
}

type DetectorFunc func(txs []domain.Transaction) []domain.ValidationIssue

func (f DetectorFunc) Detect(txs []domain.Transaction) []domain.ValidationIssue {
	return f(txs)
}

// Set runs its detectors in declaration order.
type Set struct {
	detectors []Detector
}

func NewSet(detectors ...Detector) *Set {
	if len(detectors) == 0 {
		detectors = []Detector{DetectorFunc(AmountOutliers), DetectorFunc(ChannelDominance)}
	}
	return &Set{detectors: detectors}
}

func (s *Set) Run(doc *domain.BankDocument) []domain.ValidationIssue {
	var issues []domain.ValidationIssue
	for _, d := range s.detectors {
		issues = append(issues, d.Detect(doc.Transactions)...)
	}
	return issues
}

// AmountOutliers counts amounts further than three population standard
// deviations from the mean.
func AmountOutliers(txs []domain.Transaction) []domain.ValidationIssue {
	if len(txs) < minOutlierSample {
		return nil
	}

	amounts := make([]float64, len(txs))
	sum := 0.0
	for i, tx := range txs {
		amounts[i] = tx.Amount.InexactFloat64()
		sum += amounts[i]
	}
	mean := sum / float64(len(amounts))

	variance := 0.0
	for _, a := range amounts {
		variance += (a - mean) * (a - mean)
	}
	stddev := math.Sqrt(variance / float64(len(amounts)))
	if stddev == 0 {
		return nil
	}

	outliers := 0
	for _, a := range amounts {
		if math.Abs(a-mean) > outlierSigma*stddev {
			outliers++
		}
	}
	if outliers == 0 {
		return nil
	}

	return []domain.ValidationIssue{{
		Code:        CodeAmountOutliers,
		Message:     fmt.Sprintf("%d amount outliers vs distribution.", outliers),
		Severity:    domain.SeverityWarn,
		ScoreImpact: 9.0,
	}}
}

// ChannelDominance reports a single channel carrying more than 90% of the
// channel-tagged transactions. Untagged transactions are ignored.
func ChannelDominance(txs []domain.Transaction) []domain.ValidationIssue {
	counts := make(map[string]int)
	var order []string
	tagged := 0
	for _, tx := range txs {
		if tx.Channel == "" {
			continue
		}
		if counts[tx.Channel] == 0 {
			order = append(order, tx.Channel)
		}
		counts[tx.Channel]++
		tagged++
	}
	if tagged < minChannelSample {
		return nil
	}

	// ties go to the channel seen first
	dominant, freq := "", 0
	for _, ch := range order {
		if counts[ch] > freq {
			dominant, freq = ch, counts[ch]
		}
	}

	if float64(freq)/float64(tagged) <= dominanceShareLimit {
		return nil
	}

	return []domain.ValidationIssue{{
		Code:        CodeChannelDominance,
		Message:     fmt.Sprintf("Single channel '%s' dominates %d/%d.", dominant, freq, tagged),
		Severity:    domain.SeverityInfo,
		ScoreImpact: 4.0,
	}}
}
