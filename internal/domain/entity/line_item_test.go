package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factuurdesk/facturatie-api/internal/domain/entity"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want decimal.Decimal
	}{
		{"number", `12.5`, decimal.NewFromFloat(12.5)},
		{"integer", `100`, decimal.NewFromInt(100)},
		{"quoted number", `"42.75"`, decimal.NewFromFloat(42.75)},
		{"null", `null`, decimal.Decimal{}},
		{"empty string", `""`, decimal.Decimal{}},
		{"garbage", `"abc"`, decimal.Decimal{}},
		{"negative", `-3`, decimal.NewFromInt(-3)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var a entity.Amount
			err := json.Unmarshal([]byte(tc.in), &a)
			require.NoError(t, err, "tolerant decoding must never fail")
			assert.True(t, a.Decimal.Equal(tc.want), "got %s, want %s", a.Decimal, tc.want)
		})
	}
}

func TestLineItem_UnmarshalGarbageBecomesZero(t *testing.T) {
	raw := `{"description":"werk","unit_price":"veel","quantity":null,"vat_rate":"21"}`
	var it entity.LineItem
	require.NoError(t, json.Unmarshal([]byte(raw), &it))

	assert.True(t, it.UnitPrice.Decimal.IsZero(), "unparseable price must decode to zero")
	assert.True(t, it.Quantity.Decimal.IsZero())
	assert.True(t, it.VATRate.Decimal.Equal(decimal.NewFromInt(21)))
}
