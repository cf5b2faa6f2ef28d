package domain

// Header is the issuing-company profile on whose letterhead bills are printed.
type Header struct {
	HeaderID string `json:"headerID"`
	Name     string `json:"name"`
	// Code is the short prefix used in bill numbers, e.g. "ACME" in ACME/2024-25/0001.
	Code    string `json:"code"`
	Address string `json:"address"`
	GSTIN   string `json:"gstin"`
	PAN     string `json:"pan"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Bank    *HeaderBankDetails `json:"bank,omitempty"`
	AuditFields
}

// HeaderBankDetails is the one-to-one bank profile printed on invoices.
type HeaderBankDetails struct {
	HeaderID      string `json:"headerID"`
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	IFSCCode      string `json:"ifscCode"`
	UPIID         string `json:"upiID"`
	UPIQRImageURL string `json:"upiQRImageURL"`
}
