package cart

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/velamart/saferoute-bridge/internal/catalog"
	"github.com/velamart/saferoute-bridge/internal/promotions"
	"github.com/velamart/saferoute-bridge/internal/session"
	"github.com/velamart/saferoute-bridge/pkg/db/models"
	pkgerrors "github.com/velamart/saferoute-bridge/pkg/errors"
)

// Service builds the provider-facing cart payload for a widget session.
type Service interface {
	Serialize(ctx context.Context, sessionID string) (*SerializedCart, error)
}

type catalogReader interface {
	Product(ctx context.Context, id uuid.UUID) (*models.Product, error)
	Attributes(ctx context.Context, productID uuid.UUID) (catalog.AttributeSet, error)
}

type sessionReader interface {
	Get(ctx context.Context, sessionID string) (*session.WidgetSession, error)
}

// ServiceParams groups dependencies for the cart serializer.
type ServiceParams struct {
	Sessions  sessionReader
	Catalog   catalogReader
	Discounts promotions.Calculator
}

type service struct {
	sessions  sessionReader
	catalog   catalogReader
	discounts promotions.Calculator
}

// NewService constructs a cart serializer.
func NewService(params ServiceParams) (*service, error) {
	if params.Sessions == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "session store required")
	}
	if params.Catalog == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "catalog reader required")
	}
	if params.Discounts == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "discount calculator required")
	}
	return &service{
		sessions:  params.Sessions,
		catalog:   params.Catalog,
		discounts: params.Discounts,
	}, nil
}

// Serialize composes the session's cart lines with resolved attributes,
// normalized dimensions and product detail into the provider format.
func (s *service) Serialize(ctx context.Context, sessionID string) (*SerializedCart, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	out := &SerializedCart{
		Products: []ProviderLineItem{},
		Discount: decimal.Zero,
	}

	weight := decimal.Zero
	grandTotal := decimal.Zero

	for _, line := range sess.Cart {
		product, err := s.catalog.Product(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		attrs, err := s.catalog.Attributes(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		dims := catalog.NormalizeDimensions(product)

		out.Products = append(out.Products, ProviderLineItem{
			Name:             product.Name,
			VendorCode:       product.SKU,
			Brand:            product.Manufacturer,
			Barcode:          attrs.Barcode,
			VAT:              attrs.VATRate(),
			TNVED:            attrs.TNVED,
			NameEn:           attrs.NameEn,
			ProducingCountry: attrs.ProducingCountry,
			Price:            product.Price,
			Count:            line.Quantity,
			Width:            dims.Width,
			Height:           dims.Height,
			Length:           dims.Length,
		})

		qty := decimal.NewFromInt(int64(line.Quantity))
		weight = weight.Add(product.Weight.Mul(qty))
		grandTotal = grandTotal.Add(product.Price.Mul(qty))
	}

	out.Weight, _ = weight.Float64()

	if sess.Coupon != "" {
		totals, err := s.discounts.CouponTotals(ctx, sess.Coupon, grandTotal)
		if err != nil {
			return nil, err
		}
		for _, total := range totals {
			out.Discount = out.Discount.Add(total.Value.Abs())
		}
	}

	return out, nil
}
