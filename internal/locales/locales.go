package locales

// Table maps a language code to payment-method titles keyed by method code.
type Table map[string]map[string]string

// Title resolves the localized title for a payment method code.
func (t Table) Title(lang, code string) (string, bool) {
	methods, ok := t[lang]
	if !ok {
		return "", false
	}
	title, ok := methods[code]
	return title, ok
}

// PaymentMethods holds the built-in payment method titles. The storefront
// ships ru and en catalogs; codes without a translation fall back to the
// raw code at the call site.
var PaymentMethods = Table{
	"ru": {
		"cod":           "Оплата при получении",
		"card":          "Оплата картой",
		"online":        "Онлайн-оплата",
		"bank_transfer": "Банковский перевод",
	},
	"en": {
		"cod":           "Cash on delivery",
		"card":          "Card payment",
		"online":        "Online payment",
		"bank_transfer": "Bank transfer",
	},
}
