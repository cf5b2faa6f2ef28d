package dto

import "github.com/shopspring/decimal"

// CreateParticularsRequest adds an entry to the service catalog.
type CreateParticularsRequest struct {
	Name    string `json:"name" binding:"required"`
	IsOther bool   `json:"isOther"`
}

// UpdateParticularsRequest is a partial catalog-entry update.
type UpdateParticularsRequest struct {
	Name    *string `json:"name"`
	IsOther *bool   `json:"isOther"`
}

// CreateGSTRateRequest adds a tax rate.
type CreateGSTRateRequest struct {
	Rate        decimal.Decimal `json:"rate" binding:"required"`
	Description string          `json:"description"`
}

// UpdateGSTRateRequest is a partial tax-rate update.
type UpdateGSTRateRequest struct {
	Rate        *decimal.Decimal `json:"rate"`
	Description *string          `json:"description"`
}

// CreatePaymentTermRequest adds a payment term.
type CreatePaymentTermRequest struct {
	Name      string `json:"name" binding:"required"`
	DaysToAdd *int   `json:"daysToAdd" binding:"required,min=0"`
}

// UpdatePaymentTermRequest is a partial payment-term update.
type UpdatePaymentTermRequest struct {
	Name      *string `json:"name"`
	DaysToAdd *int    `json:"daysToAdd" binding:"omitempty,min=0"`
}
