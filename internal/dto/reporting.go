package dto

// ReportQueryParams are the shared reporting filters; all set filters
// combine with AND. month pairs with year.
type ReportQueryParams struct {
	FinancialYear string `form:"financial_year"`
	FromDate      string `form:"from_date" binding:"omitempty,datetime=2006-01-02"`
	ToDate        string `form:"to_date" binding:"omitempty,datetime=2006-01-02"`
	Month         int    `form:"month" binding:"omitempty,min=1,max=12"`
	Year          int    `form:"year" binding:"omitempty,min=2000,max=2100"`
	HeaderID      string `form:"header_id"`
	ClientID      string `form:"client_id"`
	PaymentStatus string `form:"payment_status" binding:"omitempty,oneof=UNPAID PARTIAL PAID"`
}
