package validation

import (
	"fmt"
	"strings"

	"github.com/grachmannico95/statement-fraud-detector/internal/domain"
)

const (
	CodePDFEncrypted       = "PDF_ENCRYPTED"
	CodePDFMissingProducer = "PDF_MISSING_PRODUCER"
	CodePDFEditingTool     = "PDF_EDITING_TOOL"
)

// Lower-case fragments of Creator/Producer values written by tools commonly
// used to edit an already issued statement.
var editingTools = []string{
	"ilovepdf",
	"sejda",
	"pdfescape",
	"smallpdf",
	"photoshop",
	"foxit phantompdf",
	"pdf-xchange editor",
	"nitro pro",
}

// PDFProvenance checks the Info dictionary of PDF-sourced documents.
// Documents from any other source pass untouched.
type PDFProvenance struct{}

func (PDFProvenance) Validate(doc *domain.BankDocument) []domain.ValidationIssue {
	if doc.Source != domain.SourcePDF {
		return nil
	}

	meta := doc.Meta
	var issues []domain.ValidationIssue

	if meta.PDFEncrypted != nil && *meta.PDFEncrypted {
		issues = append(issues, issue(CodePDFEncrypted, domain.SeverityWarn, 4.0,
			"PDF is encrypted; text and metadata may be incomplete."))
	}

	if strings.TrimSpace(meta.PDFProducer) == "" {
		issues = append(issues, issue(CodePDFMissingProducer, domain.SeverityInfo, 1.0,
			"PDF has no Producer metadata."))
	}

	if tool := findEditingTool(meta.PDFCreator, meta.PDFProducer); tool != "" {
		issues = append(issues, issue(CodePDFEditingTool, domain.SeverityWarn, 8.0,
			fmt.Sprintf("PDF metadata names an editing tool: %s", tool)))
	}

	return issues
}

func findEditingTool(values ...string) string {
	for _, v := range values {
		lower := strings.ToLower(v)
		for _, tool := range editingTools {
			if strings.Contains(lower, tool) {
				return tool
			}
		}
	}
	return ""
}
