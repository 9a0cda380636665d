package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatReply(t *testing.T) {
	t.Run("mixed crypto and fiat targets", func(t *testing.T) {
		reply := FormatReply(100, "USD", []Result{
			{Code: "BTC", Value: 0.0025},
			{Code: "CAD", Value: 136.3636363636},
			{Code: "EUR", Value: 90.9090909090},
		})
		assert.Equal(t, "100.0 USD is 0.00250 BTC, 136.36 CAD, 90.91 EUR", reply)
	})

	t.Run("single target", func(t *testing.T) {
		reply := FormatReply(1, "EUR", []Result{{Code: "USD", Value: 1.1}})
		assert.Equal(t, "1.0 EUR is 1.10 USD", reply)
	})

	t.Run("fractional amount is printed as given", func(t *testing.T) {
		reply := FormatReply(12.5, "GBP", []Result{{Code: "EUR", Value: 14.2}})
		assert.Equal(t, "12.5 GBP is 14.20 EUR", reply)
	})
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "100.0", FormatAmount(100))
	assert.Equal(t, "0.0", FormatAmount(0))
	assert.Equal(t, "12.5", FormatAmount(12.5))
	assert.Equal(t, "0.001", FormatAmount(0.001))
}
