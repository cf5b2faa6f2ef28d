package models

// Header is the headers table row (issuing company).
type Header struct {
	HeaderID string `db:"header_id"`
	Name     string `db:"name"`
	Code     string `db:"code"`
	Address  string `db:"address"`
	GSTIN    string `db:"gstin"`
	PAN      string `db:"pan"`
	Email    string `db:"email"`
	Phone    string `db:"phone"`
	AuditFields
}

// HeaderBankDetails is the header_bank_details table row, one-to-one with headers.
type HeaderBankDetails struct {
	HeaderID      string `db:"header_id"`
	BankName      string `db:"bank_name"`
	AccountNumber string `db:"account_number"`
	IFSCCode      string `db:"ifsc_code"`
	UPIID         string `db:"upi_id"`
	UPIQRImageURL string `db:"upi_qr_image_url"`
}
