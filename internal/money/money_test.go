package money

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDollarsToCents(t *testing.T) {
	cents, err := DollarsToCents(12.34)
	assert.NoError(t, err)
	assert.Equal(t, int64(1234), cents)

	cents, err = DollarsToCents(0)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), cents)

	// Half-cent values round
	cents, err = DollarsToCents(0.005)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), cents)
}

func TestDollarsToCentsRejectsInvalid(t *testing.T) {
	_, err := DollarsToCents(-1)
	assert.ErrorIs(t, err, ErrInvalidAmount)
	_, err = DollarsToCents(math.NaN())
	assert.ErrorIs(t, err, ErrInvalidAmount)
	_, err = DollarsToCents(math.Inf(1))
	assert.ErrorIs(t, err, ErrInvalidAmount)
	_, err = DollarsToCents(1e17)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestCentsToDollarsString(t *testing.T) {
	assert.Equal(t, "$12.34", CentsToDollarsString(1234))
	assert.Equal(t, "$0.05", CentsToDollarsString(5))
	assert.Equal(t, "-$1.00", CentsToDollarsString(-100))
}
