package document_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factuurdesk/facturatie-api/internal/domain/document"
	"github.com/factuurdesk/facturatie-api/internal/domain/entity"
)

func item(price, qty, rate float64) entity.LineItem {
	return entity.LineItem{
		Description: "item",
		UnitPrice:   entity.AmountFromFloat(price),
		Quantity:    entity.AmountFromFloat(qty),
		VATRate:     entity.AmountFromFloat(rate),
	}
}

func TestLineTotal(t *testing.T) {
	got := document.LineTotal(item(100, 2, 21))
	assert.True(t, got.Equal(decimal.NewFromInt(200)), "expected 200, got %s", got)
}

func TestLineTotal_ZeroQuantityCountsAsOne(t *testing.T) {
	got := document.LineTotal(item(50, 0, 21))
	assert.True(t, got.Equal(decimal.NewFromInt(50)), "missing quantity must count as 1, got %s", got)
}

func TestTotals_MixedRates(t *testing.T) {
	items := []entity.LineItem{
		item(100, 2, 21),
		item(50, 1, 9),
	}
	subtotal, vat, total := document.Totals(items, nil, nil)

	assert.True(t, subtotal.Equal(decimal.NewFromInt(250)), "subtotal: got %s", subtotal)
	assert.True(t, vat.Equal(decimal.NewFromFloat(46.5)), "vat: got %s", vat)
	assert.True(t, total.Equal(decimal.NewFromFloat(296.5)), "total: got %s", total)
}

func TestTotals_SubtotalPlusVATEqualsTotal(t *testing.T) {
	items := []entity.LineItem{
		item(19.99, 3, 21),
		item(7.5, 2, 9),
		item(120, 1, 0),
	}
	subtotal, vat, total := document.Totals(items, nil, nil)
	assert.True(t, subtotal.Add(vat).Equal(total), "subtotal+vat must equal total")
}

func TestTotals_LegacyFlatAmount(t *testing.T) {
	amount := entity.AmountFromInt(1000)
	rate := entity.AmountFromInt(21)
	subtotal, vat, total := document.Totals(nil, &amount, &rate)

	assert.True(t, subtotal.Equal(decimal.NewFromInt(1000)), "subtotal: got %s", subtotal)
	assert.True(t, vat.Equal(decimal.NewFromInt(210)), "vat: got %s", vat)
	assert.True(t, total.Equal(decimal.NewFromInt(1210)), "total: got %s", total)
}

func TestTotals_NilLegacyFieldsAreZero(t *testing.T) {
	subtotal, vat, total := document.Totals(nil, nil, nil)
	assert.True(t, subtotal.IsZero())
	assert.True(t, vat.IsZero())
	assert.True(t, total.IsZero())
}

func TestVATByRate_InsertionOrder(t *testing.T) {
	items := []entity.LineItem{
		item(100, 1, 21),
		item(200, 1, 9),
		item(300, 1, 21),
	}
	rates := document.VATByRate(items)
	require.Len(t, rates, 2)

	assert.True(t, rates[0].Rate.Equal(decimal.NewFromInt(21)), "first rate must be 21 (first occurrence)")
	assert.True(t, rates[0].Amount.Equal(decimal.NewFromInt(84)), "21%% over 400: got %s", rates[0].Amount)
	assert.True(t, rates[1].Rate.Equal(decimal.NewFromInt(9)))
	assert.True(t, rates[1].Amount.Equal(decimal.NewFromInt(18)), "9%% over 200: got %s", rates[1].Amount)
}

func TestVATByRate_ZeroRateKeptSeparate(t *testing.T) {
	items := []entity.LineItem{
		item(100, 1, 0),
		item(100, 1, 21),
	}
	rates := document.VATByRate(items)
	require.Len(t, rates, 2)
	assert.True(t, rates[0].Rate.IsZero())
	assert.True(t, rates[0].Amount.IsZero())
}

func TestCalculateVAT(t *testing.T) {
	got := document.CalculateVAT(decimal.NewFromInt(200), decimal.NewFromInt(21))
	assert.True(t, got.Equal(decimal.NewFromInt(42)), "got %s", got)
}

func TestCalculateTotal(t *testing.T) {
	got := document.CalculateTotal(decimal.NewFromInt(200), decimal.NewFromInt(21))
	assert.True(t, got.Equal(decimal.NewFromInt(242)), "got %s", got)
}
