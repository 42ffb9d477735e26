package billing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Form field names accepted for invoice create/update. The id and date
// fields are never read from input: the id is assigned at creation and the
// date is stamped internally.
const (
	FieldCustomerID = "customerId"
	FieldAmount     = "amount"
	FieldStatus     = "status"
)

// User-facing validation messages, one per field rule.
const (
	MsgCustomerIDInvalid = "Customer ID must be a string"
	MsgAmountInvalid     = "Amount must be greater than $0"
	MsgStatusInvalid     = `Status must be either "pending" or "paid"`
)

// FieldErrors maps a form field name to the ordered list of validation
// messages reported against it.
type FieldErrors map[string][]string

// Add appends a message to the given field
func (e FieldErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// InvoiceInput is the validated, typed form subset used by create and
// update. Amount is still in major units here; conversion to minor units
// happens through AmountInCents at write time.
type InvoiceInput struct {
	CustomerID string
	Amount     decimal.Decimal
	Status     InvoiceStatus
}

// AmountInCents converts the major-unit amount to minor units, rounding to
// the nearest cent.
func (in *InvoiceInput) AmountInCents() int64 {
	return in.Amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// ParseInvoiceForm validates raw form values for the invoice mutation
// pipeline. It is a pure function: every rule runs independently so the
// caller can report all problems in a single pass, and exactly one of the
// two results is non-nil.
func ParseInvoiceForm(values map[string]string) (*InvoiceInput, FieldErrors) {
	errs := FieldErrors{}
	input := &InvoiceInput{}

	customerID := strings.TrimSpace(values[FieldCustomerID])
	if customerID == "" {
		errs.Add(FieldCustomerID, MsgCustomerIDInvalid)
	} else {
		input.CustomerID = customerID
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(values[FieldAmount]))
	if err != nil || !amount.IsPositive() {
		errs.Add(FieldAmount, MsgAmountInvalid)
	} else {
		input.Amount = amount
	}

	status := InvoiceStatus(values[FieldStatus])
	if !ValidStatus(status) {
		errs.Add(FieldStatus, MsgStatusInvalid)
	} else {
		input.Status = status
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return input, nil
}
