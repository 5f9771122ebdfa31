package position

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestSalaryRangeLabel(t *testing.T) {
	assert.Equal(t, "$1500.00 - $2500.00", SalaryRangeLabel(decPtr("1500"), decPtr("2500")))
	assert.Equal(t, "From $1500.00", SalaryRangeLabel(decPtr("1500"), nil))
	assert.Equal(t, "Up to $2500.00", SalaryRangeLabel(nil, decPtr("2500")))
	assert.Equal(t, "Not defined", SalaryRangeLabel(nil, nil))
}
