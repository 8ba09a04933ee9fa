// Package risk turns an issue list into scores and a classification.
package risk

import (
	"context"
	"math"
	"time"

	"github.com/grachmannico95/statement-fraud-detector/internal/domain"
	"github.com/grachmannico95/statement-fraud-detector/pkg/logger"
)

const (
	DefaultSuspiciousThreshold  = 18.0
	DefaultFraudLikelyThreshold = 40.0
	DefaultAdjustTimeout        = 20 * time.Second
)

type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "LOW"
	RiskLevelMedium RiskLevel = "MEDIUM"
	RiskLevelHigh   RiskLevel = "HIGH"
)

type AdjustmentRequest struct {
	RawText   string
	Issues    []domain.ValidationIssue
	BaseScore float64
}

// Adjustment is an external opinion on the base score. Score is a signed
// delta; a nil Score or empty Reasoning leaves that part of the result unset.
type Adjustment struct {
	Score     *float64
	Reasoning string
}

type Adjuster interface {
	Adjust(ctx context.Context, req AdjustmentRequest) (*Adjustment, error)
}

type NopAdjuster struct{}

func (NopAdjuster) Adjust(context.Context, AdjustmentRequest) (*Adjustment, error) {
	return nil, nil
}

// Thresholds are the lower bounds of the SUSPICIOUS and FRAUD_LIKELY bands.
type Thresholds struct {
	Suspicious  float64
	FraudLikely float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		Suspicious:  DefaultSuspiciousThreshold,
		FraudLikely: DefaultFraudLikelyThreshold,
	}
}

func (t Thresholds) Classify(score float64) domain.Classification {
	switch {
	case score >= t.FraudLikely:
		return domain.ClassificationFraudLikely
	case score >= t.Suspicious:
		return domain.ClassificationSuspicious
	default:
		return domain.ClassificationValid
	}
}

func (t Thresholds) RiskLevel(score float64) RiskLevel {
	switch {
	case score >= t.FraudLikely:
		return RiskLevelHigh
	case score >= t.Suspicious:
		return RiskLevelMedium
	default:
		return RiskLevelLow
	}
}

// Classify uses the default thresholds.
func Classify(score float64) domain.Classification {
	return DefaultThresholds().Classify(score)
}

func LevelOf(score float64) RiskLevel {
	return DefaultThresholds().RiskLevel(score)
}

func BaseScore(issues []domain.ValidationIssue) float64 {
	sum := 0.0
	for _, i := range issues {
		sum += i.ScoreImpact
	}
	return sum
}

type Engine struct {
	adjuster   Adjuster
	logger     *logger.Logger
	timeout    time.Duration
	thresholds Thresholds
}

type Option func(*Engine)

func WithTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.timeout = d
		}
	}
}

func WithThresholds(t Thresholds) Option {
	return func(e *Engine) {
		if t.Suspicious > 0 && t.FraudLikely > t.Suspicious {
			e.thresholds = t
		}
	}
}

func NewEngine(adjuster Adjuster, log *logger.Logger, opts ...Option) *Engine {
	if adjuster == nil {
		adjuster = NopAdjuster{}
	}
	e := &Engine{
		adjuster:   adjuster,
		logger:     log,
		timeout:    DefaultAdjustTimeout,
		thresholds: DefaultThresholds(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Thresholds() Thresholds {
	return e.thresholds
}

// Score builds the final result for doc. The adjuster is consulted only when
// enableAdjust is set; its failure or timeout leaves the adjustment unset.
func (e *Engine) Score(ctx context.Context, doc *domain.BankDocument, issues []domain.ValidationIssue, enableAdjust bool) *domain.DetectionResult {
	if issues == nil {
		issues = []domain.ValidationIssue{}
	}

	result := &domain.DetectionResult{
		DocumentID:    doc.Meta.DocumentID,
		BaseRiskScore: BaseScore(issues),
		Issues:        issues,
	}

	if enableAdjust {
		e.adjust(ctx, doc, result)
	}

	combined := result.BaseRiskScore
	if result.LLMRiskScore != nil {
		combined += *result.LLMRiskScore
	}
	result.CombinedRiskScore = math.Max(0, combined)
	result.Classification = e.thresholds.Classify(result.CombinedRiskScore)

	return result
}

func (e *Engine) adjust(ctx context.Context, doc *domain.BankDocument, result *domain.DetectionResult) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	type outcome struct {
		adj *Adjustment
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		adj, err := e.adjuster.Adjust(ctx, AdjustmentRequest{
			RawText:   doc.RawText,
			Issues:    result.Issues,
			BaseScore: result.BaseRiskScore,
		})
		done <- outcome{adj: adj, err: err}
	}()

	var adj *Adjustment
	var err error
	select {
	case out := <-done:
		adj, err = out.adj, out.err
	case <-ctx.Done():
		err = ctx.Err()
	}
	if err != nil {
		e.logger.Warn(ctx, "Risk adjustment unavailable, using base score",
			"error", err,
		)
		return
	}
	if adj == nil {
		return
	}

	if adj.Score != nil && !math.IsNaN(*adj.Score) && !math.IsInf(*adj.Score, 0) {
		score := *adj.Score
		result.LLMRiskScore = &score
	}
	result.LLMReasoning = adj.Reasoning
}
