package importer

import (
	"fmt"
	"strings"

	"github.com/MichalMitros/catalog-importer/internal/platform"
	"github.com/shopspring/decimal"
)

// ParseError is returned when price or cost field can't be parsed into decimal.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("can't parse %s %q: %s", e.Field, e.Value, e.Err)
}

// Unwrap makes ParseError match platform.ErrMalformedPrice and underlying decimal error.
func (e *ParseError) Unwrap() []error {
	return []error{platform.ErrMalformedPrice, e.Err}
}

// ParseAmount parses decimal amount, accepting comma as decimal separator and surrounding whitespace.
func ParseAmount(value string) (decimal.Decimal, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(value), ",", ".")
	return decimal.NewFromString(normalized)
}

// NetPrice removes tax with rate in percents from list price and rounds result to 2 decimal places.
func NetPrice(listPrice, taxRate decimal.Decimal) decimal.Decimal {
	divisor := decimal.NewFromInt(1).Add(taxRate.Div(decimal.NewFromInt(100)))
	return listPrice.DivRound(divisor, 2)
}

// derivePrices returns net price and cost of record.
// Empty cost is treated as zero.
func derivePrices(listPrice, cost string, taxRate decimal.Decimal) (decimal.Decimal, decimal.Decimal, error) {
	gross, err := ParseAmount(listPrice)
	if err != nil {
		return decimal.Zero, decimal.Zero, &ParseError{Field: "list price", Value: listPrice, Err: err}
	}

	if strings.TrimSpace(cost) == "" {
		return NetPrice(gross, taxRate), decimal.Zero, nil
	}

	wholesale, err := ParseAmount(cost)
	if err != nil {
		return decimal.Zero, decimal.Zero, &ParseError{Field: "cost", Value: cost, Err: err}
	}

	return NetPrice(gross, taxRate), wholesale, nil
}
