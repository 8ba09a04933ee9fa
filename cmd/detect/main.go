// Command detect runs a single detection from the command line.
//
//	detect                      analyse the built-in sample document
//	detect -file doc.json       analyse a JSON document
//	detect -pdf statement.pdf   analyse a text-based PDF statement
//	detect -report out/r.md     also write a Markdown report
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/grachmannico95/statement-fraud-detector/internal/anomaly"
	"github.com/grachmannico95/statement-fraud-detector/internal/config"
	"github.com/grachmannico95/statement-fraud-detector/internal/detection"
	"github.com/grachmannico95/statement-fraud-detector/internal/domain"
	"github.com/grachmannico95/statement-fraud-detector/internal/extractor"
	"github.com/grachmannico95/statement-fraud-detector/internal/llm"
	"github.com/grachmannico95/statement-fraud-detector/internal/report"
	"github.com/grachmannico95/statement-fraud-detector/internal/risk"
	"github.com/grachmannico95/statement-fraud-detector/internal/validation"
	"github.com/grachmannico95/statement-fraud-detector/pkg/logger"
)

func main() {
	jsonPath := flag.String("file", "", "path to a JSON document")
	pdfPath := flag.String("pdf", "", "path to a text-based PDF statement")
	reportPath := flag.String("report", "", "path to write a Markdown report")
	useLLM := flag.Bool("llm", false, "consult the external model when configured")
	flag.Parse()

	if err := run(*jsonPath, *pdfPath, *reportPath, *useLLM, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(jsonPath, pdfPath, reportPath string, useLLM bool, out io.Writer) error {
	cfg := config.Load()
	log := logger.New(cfg.Logging.Level)
	defer log.Sync()

	ctx := context.Background()

	var refiner extractor.Refiner = extractor.NopRefiner{}
	var adjuster risk.Adjuster = risk.NopAdjuster{}
	if useLLM && cfg.LLM.Available() {
		client, err := llm.NewClient(ctx, cfg.LLM, log)
		if err != nil {
			return err
		}
		refiner, adjuster = client, client
	}

	engine := risk.NewEngine(adjuster, log,
		risk.WithTimeout(cfg.LLM.Timeout),
		risk.WithThresholds(risk.Thresholds{
			Suspicious:  cfg.Risk.SuspiciousThreshold,
			FraudLikely: cfg.Risk.FraudLikelyThreshold,
		}),
	)
	pipeline := detection.NewPipeline(
		validation.NewSet(validation.WithSourceValidator(validation.PDFProvenance{})),
		anomaly.NewSet(),
		engine,
		log,
	)

	doc, err := loadDocument(ctx, extractor.New(refiner, log), jsonPath, pdfPath, useLLM)
	if err != nil {
		return err
	}

	result, err := pipeline.Run(ctx, doc, detection.Options{EnableLLM: useLLM})
	if err != nil {
		return err
	}
	printResult(out, result)

	if reportPath != "" {
		if err := report.NewRenderer(engine.Thresholds()).WriteFile(result, reportPath); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nReport written: %s\n", reportPath)
	}
	return nil
}

func loadDocument(ctx context.Context, ext *extractor.Extractor, jsonPath, pdfPath string, useLLM bool) (*domain.BankDocument, error) {
	switch {
	case pdfPath != "":
		f, err := os.Open(pdfPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			return nil, err
		}
		content, err := extractor.ReadPDF(f, info.Size())
		if err != nil {
			return nil, err
		}
		return ext.ExtractPDF(ctx, content, extractor.Options{EnableLLM: useLLM}), nil

	case jsonPath != "":
		data, err := os.ReadFile(jsonPath)
		if err != nil {
			return nil, err
		}
		return domain.DecodeDocument(data)

	default:
		return detection.SampleDocument(), nil
	}
}

func printResult(out io.Writer, result *domain.DetectionResult) {
	fmt.Fprintln(out, "Document ID:", result.DocumentID)
	fmt.Fprintln(out, "Classification:", result.Classification)
	fmt.Fprintf(out, "Base Risk: %.2f\n", result.BaseRiskScore)
	if result.LLMRiskScore != nil {
		fmt.Fprintf(out, "LLM Risk Adj: %.2f\n", *result.LLMRiskScore)
	}
	fmt.Fprintf(out, "Combined Risk: %.2f\n", result.CombinedRiskScore)

	fmt.Fprintln(out, "Issues:")
	if len(result.Issues) == 0 {
		fmt.Fprintln(out, "  (none)")
	}
	for _, i := range result.Issues {
		fmt.Fprintf(out, " - %s [%s] %s (impact %g)\n", i.Code, i.Severity, i.Message, i.ScoreImpact)
	}

	if result.LLMReasoning != "" {
		fmt.Fprintf(out, "\nLLM Reasoning:\n%s\n", result.LLMReasoning)
	}
}
