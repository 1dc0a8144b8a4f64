package model

import (
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "integer", raw: "100", want: "100"},
		{name: "two decimals", raw: "0.01", want: "0.01"},
		{name: "trimmed", raw: " 12.50 ", want: "12.5"},
		{name: "negative left to the ledger", raw: "-5", want: "-5"},
		{name: "positive exponent", raw: "5e3", want: "5000"},
		{name: "at the cap", raw: "1000000000000", want: "1000000000000"},
		{name: "empty", raw: "", wantErr: true},
		{name: "letters", raw: "abc", wantErr: true},
		{name: "three decimals", raw: "1.001", wantErr: true},
		{name: "tiny exponent", raw: "1e-1000000", wantErr: true},
		{name: "huge exponent", raw: "1e1000000", wantErr: true},
		{name: "above the cap", raw: "1000000000000.01", wantErr: true},
		{name: "too long", raw: "1" + "000000000000000000000000000000000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAmount) {
					t.Errorf("ParseAmount(%q) error = %v, want ErrInvalidAmount", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q) unexpected error: %v", tt.raw, err)
			}
			if got.String() != tt.want {
				t.Errorf("ParseAmount(%q) = %s, want %s", tt.raw, got.String(), tt.want)
			}
		})
	}
}
