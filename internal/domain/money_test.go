package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCents_Decimal(t *testing.T) {
	assert.Equal(t, "19.99", Cents(1999).Decimal())
	assert.Equal(t, "29.50", Cents(2950).Decimal())
	assert.Equal(t, "1.00", Cents(100).Decimal())
	assert.Equal(t, "0.00", Cents(0).Decimal())
	assert.Equal(t, "0.05", Cents(5).Decimal())
	assert.Equal(t, "123456.78", Cents(12345678).Decimal())
}
