package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 2.68, RoundWithTwoDecimalPlace(2.675))
	assert.Equal(t, 10.13, RoundWithTwoDecimalPlace(10.125))
	assert.Equal(t, -1.5, RoundWithTwoDecimalPlace(-1.499999))
}

func TestMultiply(t *testing.T) {
	assert.Equal(t, 59.97, Multiply(3, 19.99))
	assert.Equal(t, 0.0, Multiply(0, 19.99))
	assert.Equal(t, 1.1, Multiply(11, 0.1))
}

func TestPercentageChange(t *testing.T) {
	assert.Nil(t, PercentageChange(10, 0))

	change := PercentageChange(150, 100)
	if assert.NotNil(t, change) {
		assert.Equal(t, 0.5, *change)
	}

	change = PercentageChange(0, 40)
	if assert.NotNil(t, change) {
		assert.Equal(t, -1.0, *change)
	}

	change = PercentageChange(1, 3)
	if assert.NotNil(t, change) {
		assert.Equal(t, -0.67, *change)
	}
}
