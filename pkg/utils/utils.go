package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ContainsString checks if a slice of strings contains a specific string.
func ContainsString(slice []string, str string) bool {
	for _, item := range slice {
		if item == str {
			return true
		}
	}
	return false
}

func ToPointer[T any](value T) *T {
	return &value
}

// FormatPercentage formats a percentage with an explicit sign, one decimal.
func FormatPercentage(value float64) string {
	return fmt.Sprintf("%+.1f%%", value)
}

// FormatKRW renders a won amount with thousands separators, e.g. 71,000 KRW.
func FormatKRW(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', 0, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := b.String() + " KRW"
	if neg {
		return "-" + out
	}
	return out
}
