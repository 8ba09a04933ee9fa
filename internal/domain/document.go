package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// The payload types mirror the persisted format with pointers, so a field that
// is absent can be told apart from one that holds its zero value.
type documentPayload struct {
	Meta          *metaPayload         `json:"meta" validate:"required"`
	AccountNumber string               `json:"account_number"`
	CustomerID    string               `json:"customer_id"`
	Institution   string               `json:"institution"`
	IFSCCode      string               `json:"ifsc_code"`
	Branch        string               `json:"branch"`
	Transactions  []transactionPayload `json:"transactions" validate:"dive"`
	RawText       string               `json:"raw_text"`
	Source        string               `json:"source" validate:"omitempty,oneof=pdf json"`
}

type metaPayload struct {
	DocumentID             string           `json:"document_id" validate:"required"`
	DocumentType           string           `json:"document_type"`
	PeriodStart            json.RawMessage `json:"period_start"`
	PeriodEnd              json.RawMessage `json:"period_end"`
	GeneratedTimestamp     json.RawMessage `json:"generated_timestamp"`
	ReportedOpeningBalance json.RawMessage `json:"reported_opening_balance"`
	ReportedClosingBalance json.RawMessage `json:"reported_closing_balance"`
	PDFAuthor              string          `json:"pdf_author"`
	PDFCreator             string          `json:"pdf_creator"`
	PDFProducer            string          `json:"pdf_producer"`
	PDFEncrypted           *bool           `json:"pdf_encrypted"`

	periodStart, periodEnd, generated *time.Time
	opening, closing                  *decimal.Decimal
}

func (m *metaPayload) parse() error {
	var err error
	if m.periodStart, err = optionalTime(m.PeriodStart, "meta.period_start"); err != nil {
		return err
	}
	if m.periodEnd, err = optionalTime(m.PeriodEnd, "meta.period_end"); err != nil {
		return err
	}
	if m.generated, err = optionalTime(m.GeneratedTimestamp, "meta.generated_timestamp"); err != nil {
		return err
	}
	if m.opening, err = optionalAmount(m.ReportedOpeningBalance, "meta.reported_opening_balance"); err != nil {
		return err
	}
	m.closing, err = optionalAmount(m.ReportedClosingBalance, "meta.reported_closing_balance")
	return err
}

func optionalTime(raw json.RawMessage, field string) (*time.Time, error) {
	if isJSONNull(raw) {
		return nil, nil
	}
	var t time.Time
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("%s: %s", field, describeValueError(err))
	}
	return &t, nil
}

func optionalAmount(raw json.RawMessage, field string) (*decimal.Decimal, error) {
	if isJSONNull(raw) {
		return nil, nil
	}
	var d decimal.Decimal
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("%s: not a number: %s", field, raw)
	}
	return &d, nil
}

// Timestamp and Amount stay raw until parse so a bad value can be reported
// with its index.
type transactionPayload struct {
	ID          string          `json:"id" validate:"required"`
	Timestamp   json.RawMessage `json:"timestamp" validate:"required"`
	Amount      json.RawMessage `json:"amount" validate:"required"`
	Currency    string          `json:"currency"`
	Type        string          `json:"type" validate:"required,oneof=debit credit"`
	Description string          `json:"description"`
	Channel     string          `json:"channel"`

	timestamp time.Time
	amount    decimal.Decimal
}

func (p *transactionPayload) parse(i int) error {
	if isJSONNull(p.Timestamp) {
		return fmt.Errorf("transactions[%d].timestamp: is required", i)
	}
	if err := json.Unmarshal(p.Timestamp, &p.timestamp); err != nil {
		return fmt.Errorf("transactions[%d].timestamp: %s", i, describeValueError(err))
	}

	if isJSONNull(p.Amount) {
		return fmt.Errorf("transactions[%d].amount: is required", i)
	}
	if err := json.Unmarshal(p.Amount, &p.amount); err != nil {
		return fmt.Errorf("transactions[%d].amount: not a number: %s", i, p.Amount)
	}

	return nil
}

func isJSONNull(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return trimmed == "" || trimmed == "null"
}

// DecodeDocument builds a BankDocument from its JSON encoding. Unknown fields
// are ignored. Any shape violation is reported as ErrMalformedDocument naming
// the offending field.
func DecodeDocument(data []byte) (*BankDocument, error) {
	var payload documentPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedDocument, describeDecodeError(err))
	}

	for i := range payload.Transactions {
		payload.Transactions[i].Type = strings.ToLower(strings.TrimSpace(payload.Transactions[i].Type))
	}

	if err := validate.Struct(payload); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedDocument, describeValidationError(err))
	}

	if err := payload.Meta.parse(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedDocument, err)
	}
	for i := range payload.Transactions {
		if err := payload.Transactions[i].parse(i); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrMalformedDocument, err)
		}
	}

	doc := payload.toDocument()
	if doc.Source == "" {
		doc.Source = SourceJSON
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return doc, nil
}

func (p documentPayload) toDocument() *BankDocument {
	m := p.Meta
	doc := &BankDocument{
		Meta: DocumentMeta{
			DocumentID:             m.DocumentID,
			DocumentType:           m.DocumentType,
			PeriodStart:            m.periodStart,
			PeriodEnd:              m.periodEnd,
			GeneratedTimestamp:     m.generated,
			ReportedOpeningBalance: m.opening,
			ReportedClosingBalance: m.closing,
			PDFAuthor:              m.PDFAuthor,
			PDFCreator:             m.PDFCreator,
			PDFProducer:            m.PDFProducer,
			PDFEncrypted:           m.PDFEncrypted,
		},
		AccountNumber: p.AccountNumber,
		CustomerID:    p.CustomerID,
		Institution:   p.Institution,
		IFSCCode:      p.IFSCCode,
		Branch:        p.Branch,
		RawText:       p.RawText,
		Source:        Source(p.Source),
		Transactions:  make([]Transaction, 0, len(p.Transactions)),
	}

	for _, tx := range p.Transactions {
		currency := tx.Currency
		if currency == "" {
			currency = DefaultCurrency
		}
		doc.Transactions = append(doc.Transactions, Transaction{
			ID:          tx.ID,
			Timestamp:   tx.timestamp,
			Amount:      tx.amount,
			Currency:    currency,
			Type:        TransactionType(tx.Type),
			Description: tx.Description,
			Channel:     tx.Channel,
		})
	}

	return doc
}

// Validate checks the shape constraints every check downstream relies on.
func (d *BankDocument) Validate() error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("%w: %s", ErrMalformedDocument, describeValidationError(err))
	}

	seen := make(map[string]int, len(d.Transactions))
	for i, tx := range d.Transactions {
		if first, ok := seen[tx.ID]; ok {
			return fmt.Errorf("%w: transactions[%d].id: duplicate of transactions[%d].id %q",
				ErrMalformedDocument, i, first, tx.ID)
		}
		seen[tx.ID] = i
	}

	return nil
}

func describeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fieldPath(fe.Namespace()), ruleMessage(fe)))
	}
	return strings.Join(msgs, "; ")
}

// fieldPath drops the root type name from a validator namespace.
func fieldPath(namespace string) string {
	if idx := strings.Index(namespace, "."); idx != -1 {
		return namespace[idx+1:]
	}
	return namespace
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %q", fe.Param(), fmt.Sprint(fe.Value()))
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}

func describeDecodeError(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fmt.Sprintf("%s: expected %s, got JSON %s", typeErr.Field, typeErr.Type, typeErr.Value)
	}

	return describeValueError(err)
}

func describeValueError(err error) string {
	var parseErr *time.ParseError
	if errors.As(err, &parseErr) {
		return fmt.Sprintf("unparseable timestamp %q, want RFC3339", parseErr.Value)
	}
	return err.Error()
}
