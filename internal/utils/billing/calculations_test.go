package billing

import (
	"testing"

	"github.com/gstbill/gst_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestLineAmounts(t *testing.T) {
	gst, total := LineAmounts(dec("1000"), dec("18"))
	assert.True(t, dec("180").Equal(gst), "gst = %s", gst)
	assert.True(t, dec("1180").Equal(total), "total = %s", total)

	// Rounding happens at the line level.
	gst, total = LineAmounts(dec("999.99"), dec("18"))
	assert.True(t, dec("180.00").Equal(gst), "gst = %s", gst)
	assert.True(t, dec("1179.99").Equal(total), "total = %s", total)

	gst, total = LineAmounts(dec("100"), dec("0"))
	assert.True(t, gst.IsZero())
	assert.True(t, dec("100").Equal(total))
}

func TestInvoiceTotal(t *testing.T) {
	lines := []LineInput{
		{Amount: dec("1000"), Rate: dec("18")},
		{Amount: dec("500"), Rate: dec("5")},
	}
	assert.True(t, dec("1705").Equal(InvoiceTotal(lines)))

	assert.True(t, InvoiceTotal(nil).IsZero())
}

func TestPaymentStatusFor(t *testing.T) {
	invoice := dec("1180")

	assert.Equal(t, domain.PaymentStatusUnpaid, PaymentStatusFor(decimal.Zero, invoice))
	assert.Equal(t, domain.PaymentStatusPartial, PaymentStatusFor(dec("0.01"), invoice))
	assert.Equal(t, domain.PaymentStatusPartial, PaymentStatusFor(dec("1179.99"), invoice))
	assert.Equal(t, domain.PaymentStatusPaid, PaymentStatusFor(dec("1180"), invoice))

	// A draft edit can shrink the invoice below what is already collected;
	// the recorded ledger then fully covers the bill.
	assert.Equal(t, domain.PaymentStatusPaid, PaymentStatusFor(dec("500"), dec("400")))
	assert.Equal(t, domain.PaymentStatusPartial, PaymentStatusFor(dec("500"), dec("1000")))
}

func TestBalance(t *testing.T) {
	assert.True(t, dec("180").Equal(Balance(dec("1180"), dec("1000"))))
	assert.True(t, Balance(dec("1180"), dec("1180")).IsZero())
}
