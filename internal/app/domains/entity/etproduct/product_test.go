package etproduct

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNewProduct(t *testing.T) {
	p, err := NewProduct(1, "  SKU-1 ", " Maize 5kg ", d("2500"), d("5"), d("40"), d("30"), d("10"), true)
	require.NoError(t, err)

	assert.Equal(t, "SKU-1", p.SKU)
	assert.Equal(t, "Maize 5kg", p.Name)
	assert.True(t, p.Active)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestNewProduct_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		sku     string
		pname   string
		price   string
		weight  string
		wantErr error
	}{
		{"empty sku", " ", "Maize", "1", "1", ErrInvalidSKU},
		{"empty name", "SKU", "", "1", "1", ErrInvalidName},
		{"negative price", "SKU", "Maize", "-1", "1", ErrNegativeAttribute},
		{"negative weight", "SKU", "Maize", "1", "-0.5", ErrNegativeAttribute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProduct(1, tt.sku, tt.pname, d(tt.price), d(tt.weight), d("1"), d("1"), d("1"), true)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProduct_Line(t *testing.T) {
	p, err := NewProduct(1, "SKU", "Maize", d("2500"), d("5"), d("40"), d("30"), d("10"), true)
	require.NoError(t, err)

	line := p.Line(3)
	assert.Equal(t, int64(3), line.Quantity)
	assert.True(t, line.UnitPrice.Equal(d("2500")))
	assert.True(t, line.Weight.Equal(d("5")))
	assert.True(t, line.Length.Equal(d("40")))
	assert.True(t, line.Width.Equal(d("30")))
	assert.True(t, line.Height.Equal(d("10")))
}
