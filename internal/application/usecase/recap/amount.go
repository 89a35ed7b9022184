package recap

import "github.com/shopspring/decimal"

// ResolveAmount picks the effective amount for a ledger entry. An
// explicitly provided amount wins; otherwise the period default is
// used, which is zero for synthesized year windows.
func ResolveAmount(provided *decimal.Decimal, periodDefault decimal.Decimal) decimal.Decimal {
	if provided != nil {
		return *provided
	}
	return periodDefault
}
