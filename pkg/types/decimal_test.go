package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareDecimal(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.00", "1", 0},
		{"4.999", "5.00", -1},
		{"5.001", "5.00", 1},
		{"0", "1.00", -1},
		{"-0.01", "0", -1},
		{"0e-2000000000", "0", 0},
		{"10", "9.99", 1},
		{"1e2000000000", "5.00", 1},
		{"1e-2000000000", "1.00", -1},
		{"1e-2000000000", "0", 1},
		{"-1e2000000000", "0", -1},
		{"-1e2000000000", "-5.00", -1},
		{"-1e-2000000000", "-5.00", 1},
		{"2e2000000000", "1e2000000000", 1},
	}
	for _, tt := range tests {
		t.Run(tt.a+" vs "+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, CompareDecimal(price(tt.a), price(tt.b)))
			assert.Equal(t, -tt.want, CompareDecimal(price(tt.b), price(tt.a)))
		})
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"5.5", "5.5"},
		{"100", "100"},
		{"-0.01", "-0.01"},
		{"1e2000000000", "1e2000000000"},
		{"-3e-2000000000", "-3e-2000000000"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(price(tt.in)))
		})
	}
}
