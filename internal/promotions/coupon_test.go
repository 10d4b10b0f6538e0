package promotions

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/velamart/saferoute-bridge/pkg/db/models"
)

type stubCouponRepo struct {
	coupon *models.Coupon
	err    error
	calls  int
}

func (s *stubCouponRepo) GetCouponByCode(ctx context.Context, code string) (*models.Coupon, error) {
	s.calls++
	return s.coupon, s.err
}

func TestCouponTotalsPercentage(t *testing.T) {
	repo := &stubCouponRepo{coupon: &models.Coupon{
		Code:     "SAVE10",
		Type:     models.CouponTypePercentage,
		Discount: decimal.NewFromInt(10),
		Enabled:  true,
	}}
	calc, err := NewCalculator(repo)
	if err != nil {
		t.Fatalf("setup error: %v", err)
	}

	lines, err := calc.CouponTotals(context.Background(), "SAVE10", decimal.NewFromInt(200))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected one totals line, got %d", len(lines))
	}
	if !lines[0].Value.Equal(decimal.NewFromInt(-20)) {
		t.Fatalf("expected -20, got %s", lines[0].Value)
	}
}

func TestCouponTotalsFixedClampsToCartTotal(t *testing.T) {
	repo := &stubCouponRepo{coupon: &models.Coupon{
		Code:     "MINUS500",
		Type:     models.CouponTypeFixed,
		Discount: decimal.NewFromInt(500),
		Enabled:  true,
	}}
	calc, _ := NewCalculator(repo)

	lines, err := calc.CouponTotals(context.Background(), "MINUS500", decimal.NewFromInt(300))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !lines[0].Value.Equal(decimal.NewFromInt(-300)) {
		t.Fatalf("expected clamp to -300, got %s", lines[0].Value)
	}
}

func TestCouponTotalsUnknownCouponContributesNothing(t *testing.T) {
	calc, _ := NewCalculator(&stubCouponRepo{})

	lines, err := calc.CouponTotals(context.Background(), "GONE", decimal.NewFromInt(300))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected no lines, got %d", len(lines))
	}
}

func TestCouponTotalsDisabledCouponContributesNothing(t *testing.T) {
	repo := &stubCouponRepo{coupon: &models.Coupon{
		Code:     "OLD",
		Type:     models.CouponTypeFixed,
		Discount: decimal.NewFromInt(50),
		Enabled:  false,
	}}
	calc, _ := NewCalculator(repo)

	lines, err := calc.CouponTotals(context.Background(), "OLD", decimal.NewFromInt(300))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected no lines, got %d", len(lines))
	}
}

func TestCouponTotalsEmptyCodeSkipsLookup(t *testing.T) {
	repo := &stubCouponRepo{}
	calc, _ := NewCalculator(repo)

	if _, err := calc.CouponTotals(context.Background(), "  ", decimal.NewFromInt(100)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.calls != 0 {
		t.Fatal("expected no repo lookup for blank code")
	}
}
