package mapping

import (
	"github.com/gstbill/gst_billing_app/internal/core/domain"
	"github.com/gstbill/gst_billing_app/internal/models"
)

// ToModelBillPayment converts a domain payment to a model row
func ToModelBillPayment(d domain.BillPayment) models.BillPayment {
	return models.BillPayment{
		PaymentID:   d.PaymentID,
		BillID:      d.BillID,
		PaymentDate: d.PaymentDate,
		AmountPaid:  d.AmountPaid,
		Notes:       d.Notes,
		RecordedBy:  d.RecordedBy,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainBillPayment converts a model row to a domain payment
func ToDomainBillPayment(m models.BillPayment) domain.BillPayment {
	return domain.BillPayment{
		PaymentID:      m.PaymentID,
		BillID:         m.BillID,
		PaymentDate:    m.PaymentDate,
		AmountPaid:     m.AmountPaid,
		Notes:          m.Notes,
		RecordedBy:     m.RecordedBy,
		RecordedByName: m.RecordedByName,
		CreatedAt:      m.CreatedAt,
	}
}

// ToDomainBillPaymentSlice converts model rows to domain payments
func ToDomainBillPaymentSlice(ms []models.BillPayment) []domain.BillPayment {
	ds := make([]domain.BillPayment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBillPayment(m)
	}
	return ds
}
