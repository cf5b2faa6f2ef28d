package mapping

import (
	"github.com/gstbill/gst_billing_app/internal/core/domain"
	"github.com/gstbill/gst_billing_app/internal/models"
	"github.com/gstbill/gst_billing_app/internal/utils/billing"
)

// ToModelBill converts a domain Bill to a model Bill
func ToModelBill(d domain.Bill) models.Bill {
	return models.Bill{
		BillID:            d.BillID,
		HeaderID:          d.HeaderID,
		ClientID:          d.ClientID,
		BillDate:          d.BillDate,
		PaymentTermID:     d.PaymentTermID,
		BillNo:            d.BillNo,
		BillSeq:           d.BillSeq,
		FinancialYear:     d.FinancialYear,
		DueDate:           d.DueDate,
		Status:            string(d.Status),
		TotalInvoiceValue: d.TotalInvoiceValue,
		TotalPaid:         d.TotalPaid,
		PaymentStatus:     string(d.PaymentStatus),
		Notes:             d.Notes,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBill converts a model Bill to a domain Bill
func ToDomainBill(m models.Bill) domain.Bill {
	return domain.Bill{
		BillID:            m.BillID,
		HeaderID:          m.HeaderID,
		ClientID:          m.ClientID,
		BillDate:          m.BillDate,
		PaymentTermID:     m.PaymentTermID,
		BillNo:            m.BillNo,
		BillSeq:           m.BillSeq,
		FinancialYear:     m.FinancialYear,
		DueDate:           m.DueDate,
		Status:            domain.BillStatus(m.Status),
		TotalInvoiceValue: m.TotalInvoiceValue,
		TotalPaid:         m.TotalPaid,
		PaymentStatus:     domain.PaymentStatus(m.PaymentStatus),
		Notes:             m.Notes,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelBillService converts a domain line item to a model row
func ToModelBillService(d domain.BillService) models.BillService {
	return models.BillService{
		BillServiceID:    d.BillServiceID,
		BillID:           d.BillID,
		SrNo:             d.SrNo,
		ParticularsID:    d.ParticularsID,
		ParticularsOther: d.ParticularsOther,
		ServiceDate:      d.ServiceDate,
		ServiceYear:      d.ServiceYear,
		Amount:           d.Amount,
		GSTRateID:        d.GSTRateID,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBillServiceDetail converts a joined model row into the read shape,
// deriving gst_amount and total_amount from the base amount and rate.
func ToDomainBillServiceDetail(m models.BillService) domain.BillServiceDetail {
	gstAmount, totalAmount := billing.LineAmounts(m.Amount, m.GSTRate)
	return domain.BillServiceDetail{
		BillService: domain.BillService{
			BillServiceID:    m.BillServiceID,
			BillID:           m.BillID,
			SrNo:             m.SrNo,
			ParticularsID:    m.ParticularsID,
			ParticularsOther: m.ParticularsOther,
			ServiceDate:      m.ServiceDate,
			ServiceYear:      m.ServiceYear,
			Amount:           m.Amount,
			GSTRateID:        m.GSTRateID,
			AuditFields:      ToDomainAuditFields(m.AuditFields),
		},
		ParticularsName: m.ParticularsName,
		GSTRate:         m.GSTRate,
		GSTAmount:       gstAmount,
		TotalAmount:     totalAmount,
	}
}

// ToDomainBillServiceDetailSlice converts joined model rows to the read shape
func ToDomainBillServiceDetailSlice(ms []models.BillService) []domain.BillServiceDetail {
	ds := make([]domain.BillServiceDetail, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBillServiceDetail(m)
	}
	return ds
}

// ToDomainBillHistory converts a model audit row to the domain shape
func ToDomainBillHistory(m models.BillHistory) domain.BillHistory {
	return domain.BillHistory{
		HistoryID:   m.HistoryID,
		BillID:      m.BillID,
		Action:      domain.BillHistoryAction(m.Action),
		Outcome:     m.Outcome,
		ActorUserID: m.ActorUserID,
		CreatedAt:   m.CreatedAt,
	}
}
