package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitColumns(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "instrument line",
			line: "16,000   DEUTSCHE TELEKOM AG            555750",
			want: []string{"16,000", "DEUTSCHE TELEKOM AG", "555750"},
		},
		{
			name: "single spaces stay inside a column",
			line: "Tagesgeld PLUS           1234567891              +10.000,00",
			want: []string{"Tagesgeld PLUS", "1234567891", "+10.000,00"},
		},
		{
			name: "leading and trailing padding",
			line: "         NAMENS-AKTIEN O.N.     DE0005557508   ",
			want: []string{"NAMENS-AKTIEN O.N.", "DE0005557508"},
		},
		{
			name: "tabs split too",
			line: "Girokonto\t1234567890\t+3.445,68",
			want: []string{"Girokonto", "1234567890", "+3.445,68"},
		},
		{
			name: "empty line",
			line: "   ",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitColumns(tt.line))
		})
	}
}
