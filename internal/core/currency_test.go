package core

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "600", want: "R$ 600,00"},
		{in: "1234567.89", want: "R$ 1.234.567,89"},
		{in: "0.5", want: "R$ 0,50"},
	}
	for _, tt := range tests {
		got := FormatBRL(decimal.RequireFromString(tt.in))
		if got != tt.want {
			t.Fatalf("FormatBRL(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
