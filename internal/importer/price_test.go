package importer_test

import (
	"testing"

	"github.com/MichalMitros/catalog-importer/internal/importer"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitParseAmount(t *testing.T) {
	tests := map[string]struct {
		value   string
		want    string
		wantErr bool
	}{
		"comma separator":  {value: "19,99", want: "19.99"},
		"dot separator":    {value: "19.99", want: "19.99"},
		"whitespace":       {value: "  7,5 \t", want: "7.5"},
		"integer":          {value: "120", want: "120"},
		"empty error":      {value: "", wantErr: true},
		"not number error": {value: "abc", wantErr: true},
		"thousands error":  {value: "1.234,56", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := importer.ParseAmount(tt.value)

			if tt.wantErr {
				require.Error(t, err, "should return error")
				return
			}
			require.NoError(t, err, "shouldn't return any error")
			assert.Equal(t, tt.want, got.String(), "should return correct amount")
		})
	}
}

func TestUnitNetPrice(t *testing.T) {
	taxRate := decimal.NewFromInt(21)

	tests := map[string]struct {
		listPrice string
		taxRate   decimal.Decimal
		want      string
	}{
		"rounded down":  {listPrice: "19.99", taxRate: taxRate, want: "16.52"},
		"exact":         {listPrice: "121", taxRate: taxRate, want: "100.00"},
		"fraction":      {listPrice: "10", taxRate: taxRate, want: "8.26"},
		"zero":          {listPrice: "0", taxRate: taxRate, want: "0.00"},
		"other rate":    {listPrice: "110", taxRate: decimal.NewFromInt(10), want: "100.00"},
		"zero tax rate": {listPrice: "9.999", taxRate: decimal.Zero, want: "10.00"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := importer.NetPrice(decimal.RequireFromString(tt.listPrice), tt.taxRate)

			assert.Equal(t, tt.want, got.StringFixed(2), "should return correct net price")
		})
	}
}
