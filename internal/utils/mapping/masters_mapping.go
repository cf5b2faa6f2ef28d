package mapping

import (
	"github.com/gstbill/gst_billing_app/internal/core/domain"
	"github.com/gstbill/gst_billing_app/internal/models"
)

func ToModelParticulars(d domain.Particulars) models.Particulars {
	return models.Particulars{
		ParticularsID: d.ParticularsID,
		Name:          d.Name,
		IsOther:       d.IsOther,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainParticulars(m models.Particulars) domain.Particulars {
	return domain.Particulars{
		ParticularsID: m.ParticularsID,
		Name:          m.Name,
		IsOther:       m.IsOther,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelGSTRate(d domain.GSTRate) models.GSTRate {
	return models.GSTRate{
		GSTRateID:   d.GSTRateID,
		Rate:        d.Rate,
		Description: d.Description,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainGSTRate(m models.GSTRate) domain.GSTRate {
	return domain.GSTRate{
		GSTRateID:   m.GSTRateID,
		Rate:        m.Rate,
		Description: m.Description,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelPaymentTerm(d domain.PaymentTerm) models.PaymentTerm {
	return models.PaymentTerm{
		PaymentTermID: d.PaymentTermID,
		Name:          d.Name,
		DaysToAdd:     d.DaysToAdd,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainPaymentTerm(m models.PaymentTerm) domain.PaymentTerm {
	return domain.PaymentTerm{
		PaymentTermID: m.PaymentTermID,
		Name:          m.Name,
		DaysToAdd:     m.DaysToAdd,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainParticularsSlice(ms []models.Particulars) []domain.Particulars {
	ds := make([]domain.Particulars, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainParticulars(m)
	}
	return ds
}

func ToDomainGSTRateSlice(ms []models.GSTRate) []domain.GSTRate {
	ds := make([]domain.GSTRate, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainGSTRate(m)
	}
	return ds
}

func ToDomainPaymentTermSlice(ms []models.PaymentTerm) []domain.PaymentTerm {
	ds := make([]domain.PaymentTerm, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPaymentTerm(m)
	}
	return ds
}
