package utils_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/accuflow/accuflow/internal/utils"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		symbol string
		want   string
	}{
		{"whole amount", "1234", "$", "$1234.00"},
		{"fractional amount", "1234.5", "$", "$1234.50"},
		{"negative amount", "-42.75", "$", "-$42.75"},
		{"zero", "0", "৳", "৳0.00"},
		{"taka symbol", "500", "৳", "৳500.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := utils.FormatAmount(decimal.RequireFromString(tt.amount), tt.symbol)
			assert.Equal(t, tt.want, got)
		})
	}
}
