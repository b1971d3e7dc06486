package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSalePrice(t *testing.T) {
	tests := []struct {
		name  string
		price *float64
		want  string
	}{
		{"Nil price", nil, "Price on request"},
		{"Zero price", float64Ptr(0), "Price on request"},
		{"Small price", float64Ptr(950), "€950"},
		{"Thousands grouping", float64Ptr(1250000), "€1,250,000"},
		{"Fraction truncated", float64Ptr(425999.99), "€425,999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSalePrice(tt.price))
		})
	}
}

func TestFormatRentalPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    *float64
		currency string
		want     string
	}{
		{"Nil price", nil, "EUR", "Price on request"},
		{"Euro", float64Ptr(1200), "EUR", "€1,200 (for 7 nights)"},
		{"Pound", float64Ptr(1200), "GBP", "£1,200 (for 7 nights)"},
		{"Unknown currency falls back to dollar", float64Ptr(1500), "USD", "$1,500 (for 7 nights)"},
		{"Empty currency treated as euro", float64Ptr(800), "", "€800 (for 7 nights)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRentalPrice(tt.price, tt.currency))
		})
	}
}

func TestGroupThousands(t *testing.T) {
	assert.Equal(t, "0", groupThousands(0))
	assert.Equal(t, "999", groupThousands(999))
	assert.Equal(t, "1,000", groupThousands(1000))
	assert.Equal(t, "12,345,678", groupThousands(12345678))
	assert.Equal(t, "-1,234", groupThousands(-1234))
}

// Helper functions

func float64Ptr(v float64) *float64 {
	return &v
}

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}
