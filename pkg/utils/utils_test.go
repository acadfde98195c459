package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatKRW(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{amount: 0, want: "0 KRW"},
		{amount: 500, want: "500 KRW"},
		{amount: 71_000, want: "71,000 KRW"},
		{amount: 1_234_567, want: "1,234,567 KRW"},
		{amount: -43_000, want: "-43,000 KRW"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatKRW(tt.amount))
	}
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "+5.6%", FormatPercentage(5.63))
	assert.Equal(t, "-2.0%", FormatPercentage(-2.04))
	assert.Equal(t, "+0.0%", FormatPercentage(0))
}

func TestContainsString(t *testing.T) {
	assert.True(t, ContainsString([]string{"a", "b"}, "b"))
	assert.False(t, ContainsString([]string{"a", "b"}, "c"))
	assert.False(t, ContainsString(nil, "a"))
}
