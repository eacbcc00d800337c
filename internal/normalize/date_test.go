package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"dash dmy", "25-12-2023", "2023-12-25", true},
		{"slash dmy", "25/12/2023", "2023-12-25", true},
		{"dot dmy", "25.12.2023", "2023-12-25", true},
		{"month name short", "05 Nov 2025", "2025-11-05", true},
		{"month name long", "5 November 2025", "2025-11-05", true},
		{"dash month name", "25-Dec-2023", "2023-12-25", true},
		{"us style", "Dec 25, 2023", "2023-12-25", true},
		{"two digit year low pivots to 2000s", "25/12/23", "2023-12-25", true},
		{"two digit year high pivots to 1900s", "25/12/98", "1998-12-25", true},
		{"two digit year 49 stays 2000s", "25/12/49", "2049-12-25", true},
		{"two digit year 50 pivots to 1900s", "25/12/50", "1950-12-25", true},
		{"two digit year 55 pivots to 1900s", "25/12/55", "1955-12-25", true},
		{"two digit year 68 pivots to 1900s", "25/12/68", "1968-12-25", true},
		{"two digit year month name", "2 Jan 55", "1955-01-02", true},
		{"four digit year 2055 untouched", "25/12/2055", "2055-12-25", true},
		{"prefixed", "Date: 25-12-2023", "2023-12-25", true},
		{"doubled separators", "25--12--2023", "2023-12-25", true},
		{"garbage", "not a date", "", false},
		{"empty", "", "", false},
		{"bare number", "1234", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Date(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDate_Idempotent(t *testing.T) {
	iso, ok := Date("05 Nov 2025")
	assert.True(t, ok)
	assert.Equal(t, "2025-11-05", iso)

	again, ok := Date(iso)
	assert.True(t, ok)
	assert.Equal(t, iso, again)
}

func TestDateInText(t *testing.T) {
	got, ok := DateInText("Payment Due Date: 05 Nov 2025")
	assert.True(t, ok)
	assert.Equal(t, "2025-11-05", got)

	got, ok = DateInText("Statement period 12/07/2025 to 11/08/2025")
	assert.True(t, ok)
	assert.Equal(t, "2025-07-12", got)

	_, ok = DateInText("no dates here")
	assert.False(t, ok)
}
