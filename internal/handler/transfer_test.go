package handler

import (
	"testing"

	"github.com/simonkvalheim/bankist/internal/model"
)

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		want    string
		wantErr bool
	}{
		{
			name:   "valid positive amount",
			amount: "100.00",
			want:   "100",
		},
		{
			name:   "valid small amount",
			amount: "0.01",
			want:   "0.01",
		},
		{
			name:   "valid integer amount",
			amount: "100",
			want:   "100",
		},
		{
			name:   "zero is left to the ledger",
			amount: "0",
			want:   "0",
		},
		{
			name:   "negative is left to the ledger",
			amount: "-100.00",
			want:   "-100",
		},
		{
			name:    "empty amount",
			amount:  "",
			wantErr: true,
		},
		{
			name:    "whitespace only",
			amount:  "   ",
			wantErr: true,
		},
		{
			name:    "invalid format - letters",
			amount:  "abc",
			wantErr: true,
		},
		{
			name:    "invalid format - mixed",
			amount:  "100abc",
			wantErr: true,
		},
		{
			name:    "more than two decimals",
			amount:  "10.001",
			wantErr: true,
		},
		{
			name:    "tiny exponent",
			amount:  "1e-1000000",
			wantErr: true,
		},
		{
			name:    "huge exponent",
			amount:  "1e1000000",
			wantErr: true,
		},
		{
			name:    "above the cap",
			amount:  "5000000000000",
			wantErr: true,
		},
		{
			name:   "amount with spaces - trimmed",
			amount: " 100.00 ",
			want:   "100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validateAmount(tt.amount)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateAmount(%q) error = %v, wantErr %v", tt.amount, err, tt.wantErr)
			}
			if tt.wantErr {
				if err != model.ErrInvalidAmount {
					t.Errorf("validateAmount(%q) error = %v, want ErrInvalidAmount", tt.amount, err)
				}
				return
			}
			if got.String() != tt.want {
				t.Errorf("validateAmount(%q) = %s, want %s", tt.amount, got, tt.want)
			}
		})
	}
}
