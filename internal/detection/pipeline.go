// Package detection wires the validator set, the anomaly detectors and the
// risk engine into a single synchronous run over one document.
package detection

import (
	"context"
	"fmt"

	"github.com/grachmannico95/statement-fraud-detector/internal/anomaly"
	"github.com/grachmannico95/statement-fraud-detector/internal/domain"
	"github.com/grachmannico95/statement-fraud-detector/internal/risk"
	"github.com/grachmannico95/statement-fraud-detector/internal/validation"
	"github.com/grachmannico95/statement-fraud-detector/pkg/logger"
)

// Options are per-call settings.
type Options struct {
	EnableLLM bool
}

type Pipeline struct {
	validators *validation.Set
	detectors  *anomaly.Set
	engine     *risk.Engine
	logger     *logger.Logger
}

func NewPipeline(validators *validation.Set, detectors *anomaly.Set, engine *risk.Engine, log *logger.Logger) *Pipeline {
	if validators == nil {
		validators = validation.NewSet()
	}
	if detectors == nil {
		detectors = anomaly.NewSet()
	}
	if engine == nil {
		engine = risk.NewEngine(nil, log)
	}
	return &Pipeline{
		validators: validators,
		detectors:  detectors,
		engine:     engine,
		logger:     log,
	}
}

// Run rejects a malformed document before any check runs. The caller's
// document is never modified; enrichment happens on a copy.
func (p *Pipeline) Run(ctx context.Context, doc *domain.BankDocument, opts Options) (*domain.DetectionResult, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: document is nil", domain.ErrMalformedDocument)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	ctx = logger.WithDocumentID(ctx, doc.Meta.DocumentID)

	enriched, issues := p.validators.Run(doc)
	issues = append(issues, p.detectors.Run(enriched)...)

	result := p.engine.Score(ctx, enriched, issues, opts.EnableLLM)

	p.logger.Info(ctx, "Detection completed",
		"issues", len(result.Issues),
		"base_score", result.BaseRiskScore,
		"combined_score", result.CombinedRiskScore,
		"classification", result.Classification,
	)

	return result, nil
}

func (p *Pipeline) Thresholds() risk.Thresholds {
	return p.engine.Thresholds()
}
