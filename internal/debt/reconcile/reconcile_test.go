package reconcile

import (
	"testing"

	"github.com/smallbiznis/fiado/internal/debt/domain"
	"github.com/smallbiznis/fiado/pkg/money"
)

func pay(debtID, amount string) *domain.Payment {
	return &domain.Payment{DebtID: debtID, Amount: amount}
}

func TestPaidTotals(t *testing.T) {
	totals := PaidTotals([]*domain.Payment{
		pay("a", "60.00"),
		pay("a", "40.00"),
		pay("b", "10.50"),
	})

	if got := totals["a"]; got != 10000 {
		t.Fatalf("expected 100.00 for a, got %s", got)
	}
	if got := totals["b"]; got != 1050 {
		t.Fatalf("expected 10.50 for b, got %s", got)
	}
	if _, ok := totals["c"]; ok {
		t.Fatal("expected no entry for unseen identifier")
	}
}

func TestPaidTotalsMalformedRowContributesZero(t *testing.T) {
	totals := PaidTotals([]*domain.Payment{
		pay("a", "30.00"),
		pay("a", "trinta reais"),
		pay("b", ""),
	})

	if got := totals["a"]; got != 3000 {
		t.Fatalf("malformed row must not disturb the total, got %s", got)
	}
	if got := totals["b"]; got != 0 {
		t.Fatalf("expected zero total for b, got %s", got)
	}
}

func TestPaidTotalsOrderIndependent(t *testing.T) {
	forward := PaidTotals([]*domain.Payment{pay("a", "1.10"), pay("a", "2.20"), pay("a", "3.30")})
	backward := PaidTotals([]*domain.Payment{pay("a", "3.30"), pay("a", "2.20"), pay("a", "1.10")})
	if forward["a"] != backward["a"] {
		t.Fatalf("sum depends on order: %s vs %s", forward["a"], backward["a"])
	}
}

func TestCurrentBalance(t *testing.T) {
	cases := []struct {
		raw  string
		paid money.Amount
		want money.Amount
	}{
		{"100.00", 6000, 4000},
		{"100.00", 10000, 0},
		{"100.00", 15000, 0}, // overpaid clamps at zero
		{"100.00", 0, 10000},
		{"sem valor", 2000, 0}, // malformed original counts as zero
	}
	for _, tc := range cases {
		if got := CurrentBalance(tc.raw, tc.paid); got != tc.want {
			t.Fatalf("CurrentBalance(%q, %s) = %s, want %s", tc.raw, tc.paid, got, tc.want)
		}
	}
}

func TestNeedsSettlement(t *testing.T) {
	pending := &domain.Debt{Status: domain.DebtStatusPending}
	settled := &domain.Debt{Status: domain.DebtStatusSettled}

	if !NeedsSettlement(pending, 0) {
		t.Fatal("pending debt at zero balance must settle")
	}
	if NeedsSettlement(pending, 1) {
		t.Fatal("pending debt with balance left must stay pending")
	}
	if NeedsSettlement(settled, 0) {
		t.Fatal("settled debt must not settle twice")
	}
}

func TestSettlementRemainder(t *testing.T) {
	if got := SettlementRemainder("50.00", 0); got != 5000 {
		t.Fatalf("expected 50.00, got %s", got)
	}
	if got := SettlementRemainder("100.00", 3000); got != 7000 {
		t.Fatalf("expected 70.00, got %s", got)
	}
	if got := SettlementRemainder("100.00", 12000); got != 0 {
		t.Fatalf("expected 0.00 for overpaid debt, got %s", got)
	}
}
