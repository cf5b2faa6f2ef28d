package mapping

import (
	"github.com/gstbill/gst_billing_app/internal/core/domain"
	"github.com/gstbill/gst_billing_app/internal/models"
)

// ToModelHeader converts a domain Header to a model Header
func ToModelHeader(d domain.Header) models.Header {
	return models.Header{
		HeaderID:    d.HeaderID,
		Name:        d.Name,
		Code:        d.Code,
		Address:     d.Address,
		GSTIN:       d.GSTIN,
		PAN:         d.PAN,
		Email:       d.Email,
		Phone:       d.Phone,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainHeader converts a model Header to a domain Header
func ToDomainHeader(m models.Header) domain.Header {
	return domain.Header{
		HeaderID:    m.HeaderID,
		Name:        m.Name,
		Code:        m.Code,
		Address:     m.Address,
		GSTIN:       m.GSTIN,
		PAN:         m.PAN,
		Email:       m.Email,
		Phone:       m.Phone,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelHeaderBankDetails converts domain bank details to the model shape
func ToModelHeaderBankDetails(d domain.HeaderBankDetails) models.HeaderBankDetails {
	return models.HeaderBankDetails{
		HeaderID:      d.HeaderID,
		BankName:      d.BankName,
		AccountNumber: d.AccountNumber,
		IFSCCode:      d.IFSCCode,
		UPIID:         d.UPIID,
		UPIQRImageURL: d.UPIQRImageURL,
	}
}

// ToDomainHeaderBankDetails converts model bank details to the domain shape
func ToDomainHeaderBankDetails(m models.HeaderBankDetails) domain.HeaderBankDetails {
	return domain.HeaderBankDetails{
		HeaderID:      m.HeaderID,
		BankName:      m.BankName,
		AccountNumber: m.AccountNumber,
		IFSCCode:      m.IFSCCode,
		UPIID:         m.UPIID,
		UPIQRImageURL: m.UPIQRImageURL,
	}
}

// ToDomainHeaderSlice converts a slice of model Headers to domain Headers
func ToDomainHeaderSlice(ms []models.Header) []domain.Header {
	ds := make([]domain.Header, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainHeader(m)
	}
	return ds
}
