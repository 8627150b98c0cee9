// Package reconcile computes outstanding debt balances and settlement
// decisions. Everything here is pure; write-backs belong to the service.
package reconcile

import (
	"github.com/smallbiznis/fiado/internal/debt/domain"
	"github.com/smallbiznis/fiado/pkg/money"
)

// PaidTotals sums payment amounts per debt identifier. Amounts that do
// not parse contribute zero so one bad row cannot poison the totals of
// other debts. The result has an entry only for identifiers seen in at
// least one payment.
func PaidTotals(payments []*domain.Payment) map[string]money.Amount {
	totals := make(map[string]money.Amount, len(payments))
	for _, p := range payments {
		if p == nil {
			continue
		}
		totals[p.DebtID] += money.ParseLenient(p.Amount)
	}
	return totals
}

// CurrentBalance derives the outstanding balance from the stored
// original amount and the paid total, clamped at zero. A stored amount
// that does not parse counts as zero here; the raw text stays untouched
// for display.
func CurrentBalance(rawAmount string, paid money.Amount) money.Amount {
	balance := money.ParseLenient(rawAmount) - paid
	if balance < 0 {
		return 0
	}
	return balance
}

// NeedsSettlement reports whether a debt must be flipped to settled:
// the balance reached zero and the status does not say so yet. This is
// the only automatic transition, and it is one-way; a debt already
// settled is never reopened no matter what its balance computes to.
func NeedsSettlement(debt *domain.Debt, balance money.Amount) bool {
	return balance == 0 && debt.Status != domain.DebtStatusSettled
}

// SettlementRemainder is the amount a manual settlement still has to
// cover so that the payment history sums to the full original amount.
func SettlementRemainder(rawAmount string, paid money.Amount) money.Amount {
	return CurrentBalance(rawAmount, paid)
}
