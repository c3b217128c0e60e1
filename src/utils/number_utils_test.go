package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseGermanNumber(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "thousands separator and decimal comma", input: "1.234,56", want: 1234.56},
		{name: "negative zero", input: "-0,00", want: 0.0},
		{name: "plain integer part", input: "150,00", want: 150.0},
		{name: "multiple thousands groups", input: "12.345.678,90", want: 12345678.9},
		{name: "fractional shares", input: "16,000", want: 16.0},
		{name: "negative amount", input: "-54,32", want: -54.32},
		{name: "surrounding whitespace", input: " 1,10 ", want: 1.1},
		{name: "no digits", input: "-,", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGermanNumber(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseGermanDecimalExactness(t *testing.T) {
	d, err := ParseGermanDecimal("0,1")
	assert.NoError(t, err)
	sum := d.Add(d).Add(d)
	assert.Equal(t, "0.3", sum.String())
}
