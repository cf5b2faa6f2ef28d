package billing

import (
	"fmt"
	"time"
)

// FinancialYear returns the Indian financial-year label (April 1 to March 31)
// for a date, e.g. "2024-25" for any date from 2024-04-01 through 2025-03-31.
func FinancialYear(t time.Time) string {
	startYear := t.Year()
	if t.Month() < time.April {
		startYear--
	}
	return fmt.Sprintf("%d-%02d", startYear, (startYear+1)%100)
}

// DueDate returns billDate plus the payment term's day count.
func DueDate(billDate time.Time, daysToAdd int) time.Time {
	return billDate.AddDate(0, 0, daysToAdd)
}

// BillNumber formats a bill number as CODE/FY/NNNN. Once assigned it is
// stable for the life of the bill.
func BillNumber(headerCode, financialYear string, seq int) string {
	return fmt.Sprintf("%s/%s/%04d", headerCode, financialYear, seq)
}
