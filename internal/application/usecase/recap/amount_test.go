package recap

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestResolveAmount(t *testing.T) {
	seventyFive := decimal.NewFromInt(75000)

	tests := []struct {
		name         string
		provided     *decimal.Decimal
		periodAmount decimal.Decimal
		want         decimal.Decimal
	}{
		{
			name:         "explicit amount wins",
			provided:     &seventyFive,
			periodAmount: decimal.NewFromInt(50000),
			want:         decimal.NewFromInt(75000),
		},
		{
			name:         "missing amount falls back to period default",
			provided:     nil,
			periodAmount: decimal.NewFromInt(50000),
			want:         decimal.NewFromInt(50000),
		},
		{
			name:         "missing amount and zero default yields zero",
			provided:     nil,
			periodAmount: decimal.Zero,
			want:         decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveAmount(tt.provided, tt.periodAmount)
			if !got.Equal(tt.want) {
				t.Errorf("ResolveAmount() = %s, want %s", got, tt.want)
			}
		})
	}
}
