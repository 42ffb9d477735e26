package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() map[string]string {
	return map[string]string{
		FieldCustomerID: "3958dc9e-712f-4377-85e9-fec4b6a6442a",
		FieldAmount:     "50",
		FieldStatus:     "paid",
	}
}

func TestParseInvoiceForm_Valid(t *testing.T) {
	input, errs := ParseInvoiceForm(validForm())

	require.Nil(t, errs)
	require.NotNil(t, input)
	assert.Equal(t, "3958dc9e-712f-4377-85e9-fec4b6a6442a", input.CustomerID)
	assert.True(t, input.Amount.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, InvoiceStatusPaid, input.Status)
}

func TestParseInvoiceForm_Amount(t *testing.T) {
	rejected := []string{"0", "-1", "-0.01", "abc", "", "12abc"}
	for _, raw := range rejected {
		t.Run("rejects "+raw, func(t *testing.T) {
			values := validForm()
			values[FieldAmount] = raw

			input, errs := ParseInvoiceForm(values)

			assert.Nil(t, input)
			require.NotNil(t, errs)
			assert.Equal(t, []string{MsgAmountInvalid}, errs[FieldAmount])
		})
	}

	accepted := []string{"0.01", "1", "50", "3.99", "10000.50"}
	for _, raw := range accepted {
		t.Run("accepts "+raw, func(t *testing.T) {
			values := validForm()
			values[FieldAmount] = raw

			input, errs := ParseInvoiceForm(values)

			assert.Nil(t, errs)
			require.NotNil(t, input)
			assert.True(t, input.Amount.IsPositive())
		})
	}
}

func TestParseInvoiceForm_Status(t *testing.T) {
	for _, raw := range []string{"", "draft", "PAID", "Pending", "cancelled"} {
		t.Run("rejects "+raw, func(t *testing.T) {
			values := validForm()
			values[FieldStatus] = raw

			input, errs := ParseInvoiceForm(values)

			assert.Nil(t, input)
			require.NotNil(t, errs)
			assert.Equal(t, []string{MsgStatusInvalid}, errs[FieldStatus])
		})
	}

	for _, raw := range []string{"pending", "paid"} {
		t.Run("accepts "+raw, func(t *testing.T) {
			values := validForm()
			values[FieldStatus] = raw

			_, errs := ParseInvoiceForm(values)
			assert.Nil(t, errs)
		})
	}
}

func TestParseInvoiceForm_CustomerID(t *testing.T) {
	values := validForm()
	values[FieldCustomerID] = "  "

	input, errs := ParseInvoiceForm(values)

	assert.Nil(t, input)
	require.NotNil(t, errs)
	assert.Equal(t, []string{MsgCustomerIDInvalid}, errs[FieldCustomerID])
}

func TestParseInvoiceForm_ReportsAllFieldsAtOnce(t *testing.T) {
	input, errs := ParseInvoiceForm(map[string]string{
		FieldCustomerID: "",
		FieldAmount:     "0",
		FieldStatus:     "draft",
	})

	assert.Nil(t, input)
	require.NotNil(t, errs)
	assert.Len(t, errs, 3)
	assert.Equal(t, []string{MsgCustomerIDInvalid}, errs[FieldCustomerID])
	assert.Equal(t, []string{MsgAmountInvalid}, errs[FieldAmount])
	assert.Equal(t, []string{MsgStatusInvalid}, errs[FieldStatus])
}

func TestParseInvoiceForm_IgnoresIDAndDate(t *testing.T) {
	values := validForm()
	values["id"] = "caller-supplied"
	values["date"] = "1999-12-31"

	input, errs := ParseInvoiceForm(values)

	assert.Nil(t, errs)
	require.NotNil(t, input)
}

func TestAmountInCents(t *testing.T) {
	cases := map[string]int64{
		"50":      5000,
		"0.01":    1,
		"3.99":    399,
		"10.555":  1056,
		"1234.56": 123456,
	}
	for raw, want := range cases {
		values := validForm()
		values[FieldAmount] = raw

		input, errs := ParseInvoiceForm(values)
		require.Nil(t, errs)
		assert.Equal(t, want, input.AmountInCents(), "amount %s", raw)
		assert.Positive(t, input.AmountInCents())
	}
}
