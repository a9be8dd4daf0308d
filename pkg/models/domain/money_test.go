package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoneyFromFloat(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected Money
	}{
		{name: "zero", input: 0, expected: "0.00"},
		{name: "rounds half up", input: 12.345, expected: "12.35"},
		{name: "rounds down", input: 7.014, expected: "7.01"},
		{name: "negative amount", input: -3.005, expected: "-3.00"},
		{name: "integral value", input: 42, expected: "42.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MoneyFromFloat(tt.input))
		})
	}
}

func TestMoneyFromString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Money
	}{
		{name: "empty input defaults", input: "", expected: ZeroMoney},
		{name: "non numeric defaults", input: "n/a", expected: ZeroMoney},
		{name: "normalizes precision", input: "7", expected: "7.00"},
		{name: "keeps two decimals", input: "19.90", expected: "19.90"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MoneyFromString(tt.input))
		})
	}
}

func TestMoneyFloat64(t *testing.T) {
	assert.InDelta(t, 19.9, Money("19.90").Float64(), 1e-9)
	assert.Zero(t, Money("garbage").Float64())
}
