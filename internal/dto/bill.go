package dto

import (
	"github.com/gstbill/gst_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BillServiceRequest is one submitted line item. ParticularsOther is
// required only when the selected particulars entry is the "Other" category.
type BillServiceRequest struct {
	ParticularsID    string          `json:"particularsID" binding:"required"`
	ParticularsOther *string         `json:"particularsOther"`
	ServiceDate      string          `json:"serviceDate" binding:"required,datetime=2006-01-02"`
	ServiceYear      string          `json:"serviceYear" binding:"required"`
	Amount           decimal.Decimal `json:"amount" binding:"required"`
	GSTRateID        string          `json:"gstRateID" binding:"required"`
}

// CreateBillRequest defines the payload for creating a bill. The services
// array must be non-empty; sr_no is assigned from submission order.
type CreateBillRequest struct {
	HeaderID      string               `json:"headerID" binding:"required"`
	BillDate      string               `json:"billDate" binding:"required,datetime=2006-01-02"`
	PaymentTermID string               `json:"paymentTermID" binding:"required"`
	ClientID      *string              `json:"clientID"`
	Notes         string               `json:"notes"`
	Services      []BillServiceRequest `json:"services" binding:"required,min=1,dive"`
}

// UpdateBillRequest is a partial bill update; omitted fields keep their
// stored values. When Services is non-nil the entire line-item set is
// replaced with sr_no reassigned 1..N.
type UpdateBillRequest struct {
	ClientID      *string               `json:"clientID"`
	BillDate      *string               `json:"billDate" binding:"omitempty,datetime=2006-01-02"`
	PaymentTermID *string               `json:"paymentTermID"`
	Notes         *string               `json:"notes"`
	Services      *[]BillServiceRequest `json:"services" binding:"omitempty,min=1,dive"`
}

// AddBillServiceRequest appends a single line to a DRAFT bill.
type AddBillServiceRequest struct {
	BillServiceRequest
}

// ListBillsParams defines list filters; all set filters combine with AND.
type ListBillsParams struct {
	Status        string `form:"status" binding:"omitempty,oneof=DRAFT FINALIZED SENT PAID"`
	HeaderID      string `form:"header_id"`
	ClientID      string `form:"client_id"`
	PaymentStatus string `form:"payment_status" binding:"omitempty,oneof=UNPAID PARTIAL PAID"`
	FromDate      string `form:"from_date" binding:"omitempty,datetime=2006-01-02"`
	ToDate        string `form:"to_date" binding:"omitempty,datetime=2006-01-02"`
	Limit         int    `form:"limit,default=20"`
	Offset        int    `form:"offset,default=0"`
}

// ListBillsResponse wraps a page of bills with the total match count so
// callers can detect exhaustion without an extra request.
type ListBillsResponse struct {
	Bills      []domain.BillDetails `json:"bills"`
	TotalCount int64                `json:"totalCount"`
	Limit      int                  `json:"limit"`
	Offset     int                  `json:"offset"`
}
