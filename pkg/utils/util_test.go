package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecimal(t *testing.T) {
	assert.Equal(t, 88.59, Decimal(88.59375, 2))
	assert.Equal(t, 88.6, Decimal(88.59375, 1))
	assert.Equal(t, 2.5, Decimal(2.45, 1))
	assert.Equal(t, -1.0, Decimal(-0.5, 0))
	assert.True(t, math.IsInf(Decimal(math.Inf(1), 2), 1))
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		value  float64
		digits int32
		want   string
	}{
		{value: 90720, digits: 1, want: "90,720.0"},
		{value: 88.59375, digits: 2, want: "88.59"},
		{value: 21015, digits: 0, want: "21,015"},
		{value: 31.5797, digits: 4, want: "31.5797"},
		{value: 1234567.891, digits: 3, want: "1,234,567.891"},
		{value: -1234.56, digits: 1, want: "-1,234.6"},
		{value: 0.05, digits: 1, want: "0.1"},
		{value: 0, digits: 3, want: "0.000"},
		{value: 1e19, digits: 0, want: "10,000,000,000,000,000,000"},
		{value: -2.5e19, digits: 1, want: "-25,000,000,000,000,000,000.0"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFloat(tt.value, tt.digits))
		})
	}
	assert.Equal(t, "+Inf", FormatFloat(math.Inf(1), 1))
}

func TestIBytes(t *testing.T) {
	assert.Equal(t, "0 B", IBytes(0))
	assert.Equal(t, "1.0 GiB", IBytes(1024))
	assert.Equal(t, "89 GiB", IBytes(90720))
	assert.Equal(t, "16 EiB", IBytes(16*1024*1024*1024*1024))
	assert.Equal(t, "87 YiB", IBytes(1e20))
}
