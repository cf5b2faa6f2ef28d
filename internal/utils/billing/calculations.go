package billing

import (
	"github.com/gstbill/gst_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LineInput is the monetary portion of a bill line: the pre-tax amount and
// the GST percentage applied to it.
type LineInput struct {
	Amount decimal.Decimal
	Rate   decimal.Decimal
}

// LineAmounts derives the tax and total for one line. The GST amount is
// rounded to 2 decimal places before the total is formed, which matches how
// each line prints on the invoice.
func LineAmounts(amount, ratePct decimal.Decimal) (gstAmount, totalAmount decimal.Decimal) {
	gstAmount = amount.Mul(ratePct).Div(decimal.NewFromInt(100)).Round(2)
	totalAmount = amount.Add(gstAmount)
	return gstAmount, totalAmount
}

// InvoiceTotal sums the tax-inclusive totals of all lines. All monetary
// summation for a bill happens here so that stored totals and read-time line
// derivations can never drift apart.
func InvoiceTotal(lines []LineInput) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		_, lineTotal := LineAmounts(l.Amount, l.Rate)
		total = total.Add(lineTotal)
	}
	return total.Round(2)
}

// PaymentStatusFor classifies a bill by its paid-vs-invoiced position.
// Invariants: PAID means totalPaid == totalInvoiceValue, PARTIAL means
// 0 < totalPaid < totalInvoiceValue, UNPAID means totalPaid == 0.
func PaymentStatusFor(totalPaid, totalInvoiceValue decimal.Decimal) domain.PaymentStatus {
	switch {
	case totalPaid.LessThanOrEqual(decimal.Zero):
		return domain.PaymentStatusUnpaid
	case totalPaid.GreaterThanOrEqual(totalInvoiceValue):
		return domain.PaymentStatusPaid
	default:
		return domain.PaymentStatusPartial
	}
}

// Balance returns the outstanding amount of a bill, treating a missing
// total_paid as zero.
func Balance(totalInvoiceValue, totalPaid decimal.Decimal) decimal.Decimal {
	return totalInvoiceValue.Sub(totalPaid)
}
