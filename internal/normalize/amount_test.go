package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmountLocaleFormats(t *testing.T) {
	assert.Equal(t, 1234.56, ParseAmount("1.234,56"))
	assert.Equal(t, 1234.56, ParseAmount("1234.56"))
	assert.Equal(t, 1234.56, ParseAmount("1234,56"))
	assert.Equal(t, 50.0, ParseAmount("50,00"))
	assert.Equal(t, 50.0, ParseAmount("R$ 50,00"))
	assert.Equal(t, 1997.0, ParseAmount("R$ 1.997,00"))
}

func TestParseAmountNumericPassthrough(t *testing.T) {
	assert.Equal(t, 42.5, ParseAmount(42.5))
	assert.Equal(t, 10.0, ParseAmount(10))
	// negatives pass through; filtering is the caller's job
	assert.Equal(t, -3.0, ParseAmount(-3.0))
}

func TestParseAmountInvalidInput(t *testing.T) {
	assert.Equal(t, 0.0, ParseAmount(nil))
	assert.Equal(t, 0.0, ParseAmount(""))
	assert.Equal(t, 0.0, ParseAmount("abc"))
	assert.Equal(t, 0.0, ParseAmount("   "))
	assert.Equal(t, 0.0, ParseAmount("R$"))
}

func TestParseAmountPeriodThreeDigitsAmbiguity(t *testing.T) {
	// "1.250" stays a decimal point, matching the feeds' historical
	// interpretation.
	assert.Equal(t, 1.25, ParseAmount("1.250"))
}
