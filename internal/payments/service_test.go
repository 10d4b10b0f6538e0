package payments

import (
	"testing"

	"github.com/velamart/saferoute-bridge/internal/locales"
)

func TestListMethodsLocalizesTitles(t *testing.T) {
	svc, err := NewService(ServiceParams{
		Registry: NewRegistry([]string{"cod", "card"}),
		Titles:   locales.PaymentMethods,
	})
	if err != nil {
		t.Fatalf("setup error: %v", err)
	}

	methods := svc.ListMethods("en")
	if len(methods) != 2 {
		t.Fatalf("expected two methods, got %d", len(methods))
	}
	if methods["cod"] != "Cash on delivery" {
		t.Fatalf("unexpected cod title: %q", methods["cod"])
	}
	if methods["card"] != "Card payment" {
		t.Fatalf("unexpected card title: %q", methods["card"])
	}
}

func TestListMethodsFallsBackToCode(t *testing.T) {
	svc, err := NewService(ServiceParams{
		Registry: NewRegistry([]string{"crypto"}),
		Titles:   locales.PaymentMethods,
	})
	if err != nil {
		t.Fatalf("setup error: %v", err)
	}

	methods := svc.ListMethods("ru")
	if methods["crypto"] != "crypto" {
		t.Fatalf("expected raw code fallback, got %q", methods["crypto"])
	}
}

func TestRegistryDedupesAndKeepsOrder(t *testing.T) {
	reg := NewRegistry([]string{"cod", "card", "cod", ""})

	exts := reg.List()
	if len(exts) != 2 {
		t.Fatalf("expected two extensions, got %d", len(exts))
	}
	if exts[0].Code != "cod" || exts[1].Code != "card" {
		t.Fatalf("unexpected order: %+v", exts)
	}
}
