package cart

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/velamart/saferoute-bridge/internal/catalog"
	"github.com/velamart/saferoute-bridge/internal/promotions"
	"github.com/velamart/saferoute-bridge/internal/session"
	"github.com/velamart/saferoute-bridge/pkg/db/models"
)

type stubSessions struct {
	sess *session.WidgetSession
}

func (s *stubSessions) Get(ctx context.Context, sessionID string) (*session.WidgetSession, error) {
	return s.sess, nil
}

type stubCatalog struct {
	products   map[uuid.UUID]*models.Product
	attributes map[uuid.UUID]catalog.AttributeSet
}

func (s *stubCatalog) Product(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	return s.products[id], nil
}

func (s *stubCatalog) Attributes(ctx context.Context, productID uuid.UUID) (catalog.AttributeSet, error) {
	return s.attributes[productID], nil
}

type stubDiscounts struct {
	lines     []promotions.TotalLine
	calls     int
	seenTotal decimal.Decimal
}

func (s *stubDiscounts) CouponTotals(ctx context.Context, code string, cartTotal decimal.Decimal) ([]promotions.TotalLine, error) {
	s.calls++
	s.seenTotal = cartTotal
	return s.lines, nil
}

func testService(t *testing.T, sess *session.WidgetSession, cat *stubCatalog, disc *stubDiscounts) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Sessions:  &stubSessions{sess: sess},
		Catalog:   cat,
		Discounts: disc,
	})
	if err != nil {
		t.Fatalf("setup error: %v", err)
	}
	return svc
}

func TestSerializeComposesLineItems(t *testing.T) {
	productID := uuid.New()
	cat := &stubCatalog{
		products: map[uuid.UUID]*models.Product{
			productID: {
				ID:           productID,
				Name:         "Boots",
				SKU:          "BT-01",
				Manufacturer: "Bootmaker",
				Price:        decimal.NewFromInt(150),
				Weight:       decimal.NewFromFloat(0.5),
				Width:        250,
				Height:       120,
				Length:       400,
				LengthClass:  catalog.LengthClassMillimeter,
			},
		},
		attributes: map[uuid.UUID]catalog.AttributeSet{
			productID: {Barcode: "4600000000017", VAT: "20", TNVED: "6403", NameEn: "Boots", ProducingCountry: "RU"},
		},
	}
	svc := testService(t, &session.WidgetSession{
		Cart: []session.CartLine{{ProductID: productID, Quantity: 2}},
	}, cat, &stubDiscounts{})

	out, err := svc.Serialize(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.Products) != 1 {
		t.Fatalf("expected one line item, got %d", len(out.Products))
	}
	item := out.Products[0]
	if item.Name != "Boots" || item.VendorCode != "BT-01" || item.Brand != "Bootmaker" {
		t.Fatalf("unexpected detail fields: %+v", item)
	}
	if item.VAT == nil || *item.VAT != 20 {
		t.Fatalf("expected vat 20, got %v", item.VAT)
	}
	if item.Count != 2 {
		t.Fatalf("expected count 2, got %d", item.Count)
	}
	if item.Width != 25 || item.Height != 12 || item.Length != 40 {
		t.Fatalf("expected mm dimensions normalized to cm, got %+v", item)
	}
	if out.Weight != 1 {
		t.Fatalf("expected weight 1, got %v", out.Weight)
	}
}

func TestSerializeEmptyVATIsNull(t *testing.T) {
	productID := uuid.New()
	cat := &stubCatalog{
		products: map[uuid.UUID]*models.Product{
			productID: {ID: productID, Name: "Socks", Price: decimal.NewFromInt(5)},
		},
		attributes: map[uuid.UUID]catalog.AttributeSet{productID: {}},
	}
	svc := testService(t, &session.WidgetSession{
		Cart: []session.CartLine{{ProductID: productID, Quantity: 1}},
	}, cat, &stubDiscounts{})

	out, err := svc.Serialize(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Products[0].VAT != nil {
		t.Fatalf("expected nil vat, got %v", *out.Products[0].VAT)
	}
}

func TestSerializeSumsAbsoluteDiscountValues(t *testing.T) {
	productID := uuid.New()
	cat := &stubCatalog{
		products: map[uuid.UUID]*models.Product{
			productID: {ID: productID, Name: "Hat", Price: decimal.NewFromInt(100)},
		},
		attributes: map[uuid.UUID]catalog.AttributeSet{productID: {}},
	}
	disc := &stubDiscounts{lines: []promotions.TotalLine{
		{Code: "coupon", Value: decimal.NewFromInt(-10)},
		{Code: "handling", Value: decimal.NewFromInt(5)},
		{Code: "coupon", Value: decimal.NewFromInt(-3)},
	}}
	svc := testService(t, &session.WidgetSession{
		Coupon: "SAVE",
		Cart:   []session.CartLine{{ProductID: productID, Quantity: 1}},
	}, cat, disc)

	out, err := svc.Serialize(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Discount.Equal(decimal.NewFromInt(18)) {
		t.Fatalf("expected discount 18, got %s", out.Discount)
	}
	if !disc.seenTotal.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected calculator seeded with grand total 100, got %s", disc.seenTotal)
	}
}

func TestSerializeWithoutCouponSkipsCalculator(t *testing.T) {
	productID := uuid.New()
	cat := &stubCatalog{
		products: map[uuid.UUID]*models.Product{
			productID: {ID: productID, Name: "Hat", Price: decimal.NewFromInt(100)},
		},
		attributes: map[uuid.UUID]catalog.AttributeSet{productID: {}},
	}
	disc := &stubDiscounts{lines: []promotions.TotalLine{{Value: decimal.NewFromInt(-10)}}}
	svc := testService(t, &session.WidgetSession{
		Cart: []session.CartLine{{ProductID: productID, Quantity: 1}},
	}, cat, disc)

	out, err := svc.Serialize(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Discount.IsZero() {
		t.Fatalf("expected zero discount, got %s", out.Discount)
	}
	if disc.calls != 0 {
		t.Fatal("expected discount calculator to stay untouched without a coupon")
	}
}

func TestSerializeEmptyCartYieldsEmptyProducts(t *testing.T) {
	svc := testService(t, &session.WidgetSession{}, &stubCatalog{}, &stubDiscounts{})

	out, err := svc.Serialize(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Products == nil || len(out.Products) != 0 {
		t.Fatalf("expected empty (non-nil) products, got %v", out.Products)
	}
	if out.Weight != 0 {
		t.Fatalf("expected zero weight, got %v", out.Weight)
	}
}
