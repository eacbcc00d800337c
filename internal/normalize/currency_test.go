package normalize

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCurrency(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"plain", "1234.50", "1234.50", true},
		{"thousands western", "1,234.50", "1234.50", true},
		{"thousands indian", "1,23,456.78", "123456.78", true},
		{"rupee symbol", "₹1,234.50", "1234.50", true},
		{"rs prefix", "Rs. 1,234.50", "1234.50", true},
		{"inr prefix", "INR 500", "500", true},
		{"credit suffix", "1,234.50 CR", "-1234.50", true},
		{"credit suffix lowercase", "1,234.50 cr", "-1234.50", true},
		{"debit suffix", "1,234.50 Dr", "1234.50", true},
		{"db suffix", "900 DB", "900", true},
		{"parentheses negative", "(1,234.56)", "-1234.56", true},
		{"leading minus", "-250.00", "-250", true},
		{"lakh words", "5.5 lakhs", "550000", true},
		{"crore words", "1.2 crores", "12000000", true},
		{"prefixed label", "Total: 99.95", "99.95", true},
		{"garbage", "no amount", "", false},
		{"two numbers glued by words", "12 and 34", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Currency(tt.in)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, got.Equal(dec(tt.want)), "got %s want %s", got, tt.want)
			}
		})
	}
}

func TestCurrency_SignRoundTrip(t *testing.T) {
	cr, ok := Currency("1,234.50 CR")
	require.True(t, ok)
	assert.True(t, cr.Equal(dec("-1234.50")))

	plain, ok := Currency("1,234.50")
	require.True(t, ok)
	assert.True(t, plain.Equal(dec("1234.50")))
	assert.True(t, plain.Equal(cr.Neg()))
}

func TestCurrencyInText(t *testing.T) {
	got, ok := CurrencyInText("Total Amount Due ₹45,320.00 by 05/11/2025")
	require.True(t, ok)
	assert.True(t, got.Equal(dec("45320")))

	got, ok = CurrencyInText("Refund 1,200.00 CR posted")
	require.True(t, ok)
	assert.True(t, got.Equal(dec("-1200")))

	_, ok = CurrencyInText("nothing numeric")
	assert.False(t, ok)
}

func TestCardTail(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"XXXX XXXX XXXX 1234", "1234", true},
		{"**** **** **** 9876", "9876", true},
		{"4375 1100 2200 3344", "3344", true},
		{"Card ending 5521", "5521", true},
		{"no digits here", "", false},
	}
	for _, tt := range tests {
		got, ok := CardTail(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
