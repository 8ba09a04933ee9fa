package detection

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/grachmannico95/statement-fraud-detector/internal/anomaly"
	"github.com/grachmannico95/statement-fraud-detector/internal/domain"
	"github.com/grachmannico95/statement-fraud-detector/internal/risk"
	"github.com/grachmannico95/statement-fraud-detector/internal/validation"
	"github.com/grachmannico95/statement-fraud-detector/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedAdjuster struct {
	score float64
}

func (f fixedAdjuster) Adjust(context.Context, risk.AdjustmentRequest) (*risk.Adjustment, error) {
	score := f.score
	return &risk.Adjustment{Score: &score, Reasoning: "model view"}, nil
}

func newTestPipeline(adjuster risk.Adjuster) *Pipeline {
	log := logger.NewNop()
	clock := func() time.Time { return time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC) }
	return NewPipeline(
		validation.NewSet(validation.WithClock(clock), validation.WithSourceValidator(validation.PDFProvenance{})),
		anomaly.NewSet(),
		risk.NewEngine(adjuster, log),
		log,
	)
}

func codes(issues []domain.ValidationIssue) []string {
	out := make([]string, 0, len(issues))
	for _, i := range issues {
		out = append(out, i.Code)
	}
	return out
}

func TestPipeline_SampleDocument(t *testing.T) {
	p := newTestPipeline(nil)

	result, err := p.Run(context.Background(), SampleDocument(), Options{})

	require.NoError(t, err)
	assert.Equal(t, "DOC123", result.DocumentID)
	assert.Equal(t, []string{
		validation.CodeMissingIFSC,
		validation.CodeMissingBranch,
		validation.CodeBalanceMismatch,
		validation.CodeDuplicateTimestamps,
		validation.CodeOutOfPeriod,
		validation.CodeSuspiciousTerms,
	}, codes(result.Issues))
	assert.Equal(t, "Computed closing -8899.00 != reported 300.00", result.Issues[2].Message)
	assert.Equal(t, 42.0, result.BaseRiskScore)
	assert.Equal(t, 42.0, result.CombinedRiskScore)
	assert.Nil(t, result.LLMRiskScore)
	assert.Equal(t, domain.ClassificationFraudLikely, result.Classification)
}

func TestPipeline_LeavesInputUntouched(t *testing.T) {
	doc := SampleDocument()
	doc.AccountNumber = ""
	doc.RawText += "\nAccount Number: 99887766"

	_, err := newTestPipeline(nil).Run(context.Background(), doc, Options{})

	require.NoError(t, err)
	assert.Empty(t, doc.AccountNumber)
}

func TestPipeline_RejectsMalformedDocument(t *testing.T) {
	doc := SampleDocument()
	doc.Transactions[1].Type = "refund"

	result, err := newTestPipeline(nil).Run(context.Background(), doc, Options{})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrMalformedDocument)

	result, err = newTestPipeline(nil).Run(context.Background(), nil, Options{})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrMalformedDocument)
}

func TestPipeline_EmptyDocumentIsAtLeastSuspicious(t *testing.T) {
	doc := &domain.BankDocument{Meta: domain.DocumentMeta{DocumentID: "EMPTY"}}

	result, err := newTestPipeline(nil).Run(context.Background(), doc, Options{})

	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.BaseRiskScore, 21.0)
	assert.NotEqual(t, domain.ClassificationValid, result.Classification)
}

func TestPipeline_PerCallAdjustment(t *testing.T) {
	p := newTestPipeline(fixedAdjuster{score: -100})

	withModel, err := p.Run(context.Background(), SampleDocument(), Options{EnableLLM: true})
	require.NoError(t, err)
	withoutModel, err := p.Run(context.Background(), SampleDocument(), Options{EnableLLM: false})
	require.NoError(t, err)

	require.NotNil(t, withModel.LLMRiskScore)
	assert.Equal(t, 0.0, withModel.CombinedRiskScore)
	assert.Equal(t, domain.ClassificationValid, withModel.Classification)
	assert.Equal(t, "model view", withModel.LLMReasoning)

	assert.Nil(t, withoutModel.LLMRiskScore)
	assert.Equal(t, domain.ClassificationFraudLikely, withoutModel.Classification)
}

func TestPipeline_ConcurrentRunsAreIsolated(t *testing.T) {
	p := newTestPipeline(fixedAdjuster{score: 10})

	var wg sync.WaitGroup
	results := make([]*domain.DetectionResult, 20)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = p.Run(context.Background(), SampleDocument(), Options{EnableLLM: i%2 == 0})
		}(i)
	}
	wg.Wait()

	for i, r := range results {
		require.NotNil(t, r)
		if i%2 == 0 {
			assert.Equal(t, 52.0, r.CombinedRiskScore)
		} else {
			assert.Equal(t, 42.0, r.CombinedRiskScore)
		}
	}
}
