package promotions

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/velamart/saferoute-bridge/pkg/db/models"
	pkgerrors "github.com/velamart/saferoute-bridge/pkg/errors"
)

// TotalLine is one row of a totals computation. Discount lines carry
// negative values, mirroring how the storefront renders order totals.
type TotalLine struct {
	Code  string
	Title string
	Value decimal.Decimal
}

// Calculator computes the totals lines a coupon contributes for a cart.
type Calculator interface {
	CouponTotals(ctx context.Context, code string, cartTotal decimal.Decimal) ([]TotalLine, error)
}

// Repository loads coupons by code.
type Repository interface {
	GetCouponByCode(ctx context.Context, code string) (*models.Coupon, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a coupon repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetCouponByCode(ctx context.Context, code string) (*models.Coupon, error) {
	var coupon models.Coupon
	err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&coupon).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &coupon, nil
}

type calculator struct {
	repo Repository
}

// NewCalculator constructs a coupon totals calculator.
func NewCalculator(repo Repository) (*calculator, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "coupon repo required")
	}
	return &calculator{repo: repo}, nil
}

// CouponTotals returns the totals lines for the named coupon seeded with
// the cart's grand total. Unknown or disabled coupons contribute nothing.
func (c *calculator) CouponTotals(ctx context.Context, code string, cartTotal decimal.Decimal) ([]TotalLine, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, nil
	}

	coupon, err := c.repo.GetCouponByCode(ctx, code)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load coupon")
	}
	if coupon == nil || !coupon.Enabled {
		return nil, nil
	}

	var amount decimal.Decimal
	switch coupon.Type {
	case models.CouponTypePercentage:
		amount = cartTotal.Mul(coupon.Discount).Div(decimal.NewFromInt(100))
	case models.CouponTypeFixed:
		amount = coupon.Discount
		if amount.GreaterThan(cartTotal) {
			amount = cartTotal
		}
	default:
		return nil, nil
	}

	title := coupon.Name
	if title == "" {
		title = coupon.Code
	}

	return []TotalLine{
		{Code: "coupon", Title: title, Value: amount.Neg()},
	}, nil
}
