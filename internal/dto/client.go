package dto

import "github.com/gstbill/gst_billing_app/internal/core/domain"

// CreateClientRequest defines the payload for creating a client. When
// Confirmed is false and similar active client names exist, the create is
// withheld and the candidates are returned as a warning; resubmitting with
// Confirmed set inserts regardless.
type CreateClientRequest struct {
	Name          string `json:"name" binding:"required"`
	ContactPerson string `json:"contactPerson" binding:"required"`
	Phone         string `json:"phone" binding:"required,len=10,numeric"`
	Email         string `json:"email" binding:"omitempty,email"`
	GSTIN         string `json:"gstin" binding:"omitempty,gstin"`
	Address       string `json:"address"`
	Confirmed     bool   `json:"confirmed"`
}

// UpdateClientRequest is a partial client update.
type UpdateClientRequest struct {
	Name          *string `json:"name"`
	ContactPerson *string `json:"contactPerson"`
	Phone         *string `json:"phone" binding:"omitempty,len=10,numeric"`
	Email         *string `json:"email" binding:"omitempty,email"`
	GSTIN         *string `json:"gstin" binding:"omitempty,gstin"`
	Address       *string `json:"address"`
}

// ListClientsParams defines query parameters for listing clients.
type ListClientsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// SearchClientsParams defines the typeahead query.
type SearchClientsParams struct {
	Q string `form:"q" binding:"required,min=2"`
}

// BulkImportClientsRequest carries parsed CSV rows for bulk import.
type BulkImportClientsRequest struct {
	Clients []domain.ClientImportRow `json:"clients" binding:"required,min=1"`
}

// DuplicateWarningResponse is the non-error response returned when a create
// matches existing client names.
type DuplicateWarningResponse struct {
	Warning    string          `json:"warning"`
	Candidates []domain.Client `json:"candidates"`
}
