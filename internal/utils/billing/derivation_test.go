package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFinancialYear(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		{date(2024, time.June, 15), "2024-25"},
		{date(2024, time.April, 1), "2024-25"},
		{date(2024, time.March, 31), "2023-24"},
		{date(2025, time.January, 10), "2024-25"},
		{date(2023, time.December, 31), "2023-24"},
		{date(1999, time.May, 1), "1999-00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FinancialYear(tt.in), "date %s", tt.in)
	}
}

func TestDueDate(t *testing.T) {
	// Net 30 from mid-June lands on 15 July.
	assert.Equal(t, date(2024, time.July, 15), DueDate(date(2024, time.June, 15), 30))
	// Zero-day terms are due same day.
	assert.Equal(t, date(2024, time.June, 15), DueDate(date(2024, time.June, 15), 0))
	// Month rollover across year end.
	assert.Equal(t, date(2025, time.January, 14), DueDate(date(2024, time.December, 30), 15))
}

func TestBillNumber(t *testing.T) {
	assert.Equal(t, "ACME/2024-25/0001", BillNumber("ACME", "2024-25", 1))
	assert.Equal(t, "ACME/2024-25/0042", BillNumber("ACME", "2024-25", 42))
	assert.Equal(t, "ACME/2024-25/12345", BillNumber("ACME", "2024-25", 12345))
}
