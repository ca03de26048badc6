package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCalculator_LoadsTable(t *testing.T) {
	calculator, err := NewCalculator()
	require.NoError(t, err)

	table := calculator.Table()
	assert.Equal(t, 20.0, table.BasePrice)
	assert.Len(t, table.CPU, 5)
	assert.Len(t, table.Memory, 7)
	assert.Len(t, table.Storage, 7)
	assert.Equal(t, 1.1, table.Multipliers["azure"])
}

func TestQuote_Aws(t *testing.T) {
	calculator, err := NewCalculator()
	require.NoError(t, err)

	quote := calculator.Quote(2, 4, 50, "aws")

	assert.Equal(t, 1.0, quote.Multiplier)
	assert.Equal(t, 10.0, quote.CPUPrice)
	assert.Equal(t, 20.0, quote.MemPrice)
	assert.Equal(t, 12.0, quote.DiskPrice)
	// 20 + 10 + 20 + 12
	assert.Equal(t, 62.0, quote.Total)
	assert.Empty(t, quote.Unmatched)
}

func TestQuote_AzureMultiplierAndRounding(t *testing.T) {
	calculator, err := NewCalculator()
	require.NoError(t, err)

	quote := calculator.Quote(1, 1, 10, "azure")

	// (20 + 5 + 5 + 2.5) * 1.1 = 35.75
	assert.Equal(t, 1.1, quote.Multiplier)
	assert.Equal(t, 35.75, quote.Total)
}

func TestQuote_GcpMultiplier(t *testing.T) {
	calculator, err := NewCalculator()
	require.NoError(t, err)

	quote := calculator.Quote(4, 8, 100, "gcp")

	// (20 + 18 + 35 + 22) * 0.95 = 90.25
	assert.Equal(t, 90.25, quote.Total)
}

func TestQuote_UnknownProviderUsesNeutralMultiplier(t *testing.T) {
	calculator, err := NewCalculator()
	require.NoError(t, err)

	quote := calculator.Quote(1, 1, 10, "on-prem")

	assert.Equal(t, 1.0, quote.Multiplier)
	assert.Equal(t, 32.5, quote.Total)
}

func TestQuote_OffBreakpointValuesAreUnmatched(t *testing.T) {
	calculator, err := NewCalculator()
	require.NoError(t, err)

	quote := calculator.Quote(3, 7, 42, "aws")

	assert.Equal(t, 0.0, quote.CPUPrice)
	assert.Equal(t, 0.0, quote.MemPrice)
	assert.Equal(t, 0.0, quote.DiskPrice)
	assert.Equal(t, []string{"cpu:3", "memory:7", "storage:42"}, quote.Unmatched)
	// only base survives
	assert.Equal(t, 20.0, quote.Total)
}

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, 1.01, roundHalfUp(1.0051))
	assert.Equal(t, 1.0, roundHalfUp(1.0049))
	assert.Equal(t, 35.75, roundHalfUp(35.750000000000004))
}
