// Package report renders a DetectionResult as a Markdown document.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/grachmannico95/statement-fraud-detector/internal/domain"
	"github.com/grachmannico95/statement-fraud-detector/internal/risk"
)

var classificationLabels = map[domain.Classification]string{
	domain.ClassificationValid:       "✅ VALID (No significant fraud indicators)",
	domain.ClassificationSuspicious:  "⚠️ SUSPICIOUS (Further review recommended)",
	domain.ClassificationFraudLikely: "🚨 FRAUD LIKELY (High risk of manipulation)",
}

type Renderer struct {
	thresholds risk.Thresholds
	now        func() time.Time
}

func NewRenderer(thresholds risk.Thresholds) *Renderer {
	return &Renderer{
		thresholds: thresholds,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (r *Renderer) Render(result *domain.DetectionResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Fraud Activity Report\nGenerated: %s\n\n", r.now().Format(time.RFC3339))

	adjustment := 0.0
	if result.LLMRiskScore != nil {
		adjustment = *result.LLMRiskScore
	}
	label, ok := classificationLabels[result.Classification]
	if !ok {
		label = string(result.Classification)
	}

	b.WriteString("## Document\n")
	fmt.Fprintf(&b, "- Document ID: %s\n", result.DocumentID)
	fmt.Fprintf(&b, "- Classification: %s\n", label)
	fmt.Fprintf(&b, "- Risk Level: %s\n", r.thresholds.RiskLevel(result.CombinedRiskScore))
	fmt.Fprintf(&b, "- Base Risk Score: %.2f\n", result.BaseRiskScore)
	fmt.Fprintf(&b, "- LLM Adjustment: %.2f\n", adjustment)
	fmt.Fprintf(&b, "- Combined Risk Score: %.2f\n\n", result.CombinedRiskScore)

	b.WriteString("## Summary\n")
	b.WriteString("This report consolidates rule-based validation and anomaly detection to assess document integrity and potential fraud signals.\n\n")

	b.WriteString("## Issue Breakdown\n")
	writeIssues(&b, result.Issues)

	if result.LLMReasoning != "" {
		fmt.Fprintf(&b, "### LLM Reasoning\n%s\n\n", result.LLMReasoning)
	}

	b.WriteString("## Interpretation Guide\n")
	b.WriteString("- Base Risk: Deterministic rules (missing fields, mismatches, anomalies)\n")
	b.WriteString("- LLM Adjustment: Contextual refinement\n")
	b.WriteString("- Combined Risk: Base + adjustment (floored at 0)\n")

	return b.String()
}

// writeIssues groups by severity, most severe tier first. Issues keep their
// evaluation order inside a tier.
func writeIssues(b *strings.Builder, issues []domain.ValidationIssue) {
	if len(issues) == 0 {
		b.WriteString("No issues detected.\n\n")
		return
	}

	grouped := make(map[domain.Severity][]domain.ValidationIssue)
	var severities []domain.Severity
	for _, i := range issues {
		if _, seen := grouped[i.Severity]; !seen {
			severities = append(severities, i.Severity)
		}
		grouped[i.Severity] = append(grouped[i.Severity], i)
	}
	sort.SliceStable(severities, func(a, c int) bool {
		return severities[a].Rank() > severities[c].Rank()
	})

	for _, sev := range severities {
		fmt.Fprintf(b, "### %s Issues (%d)\n", sev, len(grouped[sev]))
		for _, i := range grouped[sev] {
			fmt.Fprintf(b, "- %s: %s (impact %g)\n", i.Code, i.Message, i.ScoreImpact)
		}
		b.WriteString("\n")
	}
}

// WriteFile renders result to path, creating parent directories as needed.
func (r *Renderer) WriteFile(result *domain.DetectionResult, path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(r.Render(result)), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
