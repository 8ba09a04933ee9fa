package extractor

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/grachmannico95/statement-fraud-detector/internal/domain"
	"github.com/ledongthuc/pdf"
)

// PDFContent is the text and provenance metadata read from a PDF file.
type PDFContent struct {
	Text      string
	Author    string
	Creator   string
	Producer  string
	Encrypted bool
	Pages     int
}

// ReadPDF returns the text of every page, one line per text row, plus the
// document Info dictionary. Image-only pages contribute nothing.
func ReadPDF(r io.ReaderAt, size int64) (content *PDFContent, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			content = nil
			err = fmt.Errorf("%w: pdf library panic: %v", domain.ErrPDFUnreadable, rec)
		}
	}()

	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPDFUnreadable, err)
	}

	trailer := reader.Trailer()
	info := trailer.Key("Info")

	content = &PDFContent{
		Author:    strings.TrimSpace(info.Key("Author").Text()),
		Creator:   strings.TrimSpace(info.Key("Creator").Text()),
		Producer:  strings.TrimSpace(info.Key("Producer").Text()),
		Encrypted: !trailer.Key("Encrypt").IsNull(),
		Pages:     reader.NumPage(),
	}

	pages := make([]string, 0, content.Pages)
	for i := 1; i <= content.Pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}

		lines := make([]string, 0, len(rows))
		for _, row := range rows {
			words := make([]string, 0, len(row.Content))
			for _, word := range row.Content {
				words = append(words, word.S)
			}
			if line := strings.TrimSpace(strings.Join(words, " ")); line != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, strings.Join(lines, "\n"))
	}

	content.Text = strings.Join(pages, "\n")
	return content, nil
}

// ExtractPDF runs Extract over the PDF text and records its provenance.
func (e *Extractor) ExtractPDF(ctx context.Context, content *PDFContent, opts Options) *domain.BankDocument {
	opts.Source = domain.SourcePDF
	doc := e.Extract(ctx, content.Text, opts)

	encrypted := content.Encrypted
	doc.Meta.PDFAuthor = content.Author
	doc.Meta.PDFCreator = content.Creator
	doc.Meta.PDFProducer = content.Producer
	doc.Meta.PDFEncrypted = &encrypted

	return doc
}
