// Package llm adapts a Gemini model to the two optional hooks of the
// detection flow: metadata refinement during extraction and risk score
// adjustment. Every failure is returned as an error for the caller to absorb.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/grachmannico95/statement-fraud-detector/internal/config"
	"github.com/grachmannico95/statement-fraud-detector/internal/domain"
	"github.com/grachmannico95/statement-fraud-detector/internal/extractor"
	"github.com/grachmannico95/statement-fraud-detector/internal/risk"
	"github.com/grachmannico95/statement-fraud-detector/pkg/logger"
	"github.com/grachmannico95/statement-fraud-detector/pkg/retry"
	"google.golang.org/genai"
)

var errEmptyResponse = errors.New("empty response from model")

// generator is the subset of *genai.Models the client needs.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type Client struct {
	models      generator
	model       string
	charLimit   int
	maxAttempts int
	baseDelay   time.Duration
	logger      *logger.Logger
}

var (
	_ extractor.Refiner = (*Client)(nil)
	_ risk.Adjuster     = (*Client)(nil)
)

func NewClient(ctx context.Context, cfg config.LLMConfig, log *logger.Logger) (*Client, error) {
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return newClient(gc.Models, cfg, log), nil
}

func newClient(models generator, cfg config.LLMConfig, log *logger.Logger) *Client {
	c := &Client{
		models:      models,
		model:       cfg.Model,
		charLimit:   cfg.PromptCharLimit,
		maxAttempts: cfg.MaxAttempts,
		baseDelay:   500 * time.Millisecond,
		logger:      log,
	}
	if c.charLimit <= 0 {
		c.charLimit = 6000
	}
	if c.maxAttempts <= 0 {
		c.maxAttempts = 1
	}
	return c
}

type refinement struct {
	DocumentType           *string          `json:"document_type"`
	ReportedOpeningBalance *json.RawMessage `json:"reported_opening_balance"`
	ReportedClosingBalance *json.RawMessage `json:"reported_closing_balance"`
}

func (c *Client) RefineMetadata(ctx context.Context, rawText string) (*extractor.MetadataHints, error) {
	var parsed refinement
	if err := c.generateJSON(ctx, refinePrompt(truncate(rawText, c.charLimit)), &parsed); err != nil {
		return nil, fmt.Errorf("refine metadata: %w", err)
	}

	hints := &extractor.MetadataHints{}
	if parsed.DocumentType != nil && strings.TrimSpace(*parsed.DocumentType) != "" {
		docType := strings.TrimSpace(*parsed.DocumentType)
		hints.DocumentType = &docType
	}
	hints.ReportedOpeningBalance = parseAmount(parsed.ReportedOpeningBalance)
	hints.ReportedClosingBalance = parseAmount(parsed.ReportedClosingBalance)

	return hints, nil
}

type scoring struct {
	Adjustment *float64 `json:"adjustment"`
	Reasoning  *string  `json:"reasoning"`
}

func (c *Client) Adjust(ctx context.Context, req risk.AdjustmentRequest) (*risk.Adjustment, error) {
	prompt := scorePrompt(truncate(req.RawText, c.charLimit), req.Issues, req.BaseScore)

	var parsed scoring
	if err := c.generateJSON(ctx, prompt, &parsed); err != nil {
		return nil, fmt.Errorf("adjust risk: %w", err)
	}

	adj := &risk.Adjustment{Score: parsed.Adjustment}
	if parsed.Reasoning != nil {
		adj.Reasoning = strings.TrimSpace(*parsed.Reasoning)
	}
	return adj, nil
}

// generateJSON retries transport failures only. A response that arrives but
// cannot be decoded is final.
func (c *Client) generateJSON(ctx context.Context, prompt string, out any) error {
	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}
	genCfg := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](0),
		ResponseMIMEType: "application/json",
	}

	attempt := 0
	return retry.Do(ctx, func() error {
		attempt++
		resp, err := c.models.GenerateContent(ctx, c.model, contents, genCfg)
		if err != nil {
			c.logger.Debug(ctx, "Model call failed",
				"attempt", attempt,
				"error", err,
			)
			return err
		}

		raw := resp.Text()
		if strings.TrimSpace(raw) == "" {
			return retry.Permanent(errEmptyResponse)
		}
		if err := json.Unmarshal([]byte(cleanModelJSON(raw)), out); err != nil {
			return retry.Permanent(fmt.Errorf("decode model response: %w", err))
		}
		return nil
	}, retry.WithMaxAttempts(c.maxAttempts), retry.WithBaseDelay(c.baseDelay), retry.WithMaxDelay(5*time.Second))
}

func refinePrompt(text string) string {
	return "You are extracting normalized fields from a bank statement text.\n" +
		"Return JSON with keys: document_type, reported_opening_balance, reported_closing_balance.\n" +
		"Balances are plain numbers without currency symbols or thousands separators.\n" +
		"If a value is absent, use null.\n" +
		"Text:\n\"\"\"" + text + "\"\"\"\n"
}

func scorePrompt(text string, issues []domain.ValidationIssue, base float64) string {
	var b strings.Builder
	b.WriteString("You review bank statements for signs of tampering.\n")
	b.WriteString("A rule engine already produced the findings below and a base risk score.\n")
	fmt.Fprintf(&b, "Base risk score: %.2f\n", base)
	b.WriteString("Findings:\n")
	if len(issues) == 0 {
		b.WriteString("- none\n")
	}
	for _, i := range issues {
		fmt.Fprintf(&b, "- %s [%s] %s (impact %.1f)\n", i.Code, i.Severity, i.Message, i.ScoreImpact)
	}
	b.WriteString("\nReturn STRICT JSON only with keys:\n")
	b.WriteString("- \"adjustment\": number, a signed change to the base score, usually between -15 and 15\n")
	b.WriteString("- \"reasoning\": string, two to four sentences\n")
	b.WriteString("Do NOT wrap the response in code fences.\n")
	b.WriteString("Statement text:\n\"\"\"" + text + "\"\"\"\n")
	return b.String()
}
