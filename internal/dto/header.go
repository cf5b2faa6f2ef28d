package dto

// BankDetailsRequest is the one-to-one bank profile of a header.
type BankDetailsRequest struct {
	BankName      string `json:"bankName" binding:"required"`
	AccountNumber string `json:"accountNumber" binding:"required"`
	IFSCCode      string `json:"ifscCode" binding:"required"`
	UPIID         string `json:"upiID"`
	UPIQRImageURL string `json:"upiQRImageURL"`
}

// CreateHeaderRequest defines the payload for creating an issuing company.
type CreateHeaderRequest struct {
	Name    string              `json:"name" binding:"required"`
	Code    string              `json:"code" binding:"required,alphanum,uppercase,max=10"`
	Address string              `json:"address"`
	GSTIN   string              `json:"gstin" binding:"omitempty,gstin"`
	PAN     string              `json:"pan" binding:"omitempty,len=10"`
	Email   string              `json:"email" binding:"omitempty,email"`
	Phone   string              `json:"phone" binding:"omitempty,len=10,numeric"`
	Bank    *BankDetailsRequest `json:"bank"`
}

// UpdateHeaderRequest is a partial header update; omitted fields keep their
// stored values.
type UpdateHeaderRequest struct {
	Name    *string             `json:"name"`
	Address *string             `json:"address"`
	GSTIN   *string             `json:"gstin" binding:"omitempty,gstin"`
	PAN     *string             `json:"pan" binding:"omitempty,len=10"`
	Email   *string             `json:"email" binding:"omitempty,email"`
	Phone   *string             `json:"phone" binding:"omitempty,len=10,numeric"`
	Bank    *BankDetailsRequest `json:"bank"`
}
