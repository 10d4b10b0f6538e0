package cart

import (
	"github.com/shopspring/decimal"
)

// ProviderLineItem is the provider-facing shape of one cart line. Field
// names follow the SafeRoute widget contract.
type ProviderLineItem struct {
	Name             string          `json:"name"`
	VendorCode       string          `json:"vendorCode"`
	Brand            string          `json:"brand"`
	Barcode          string          `json:"barcode"`
	VAT              *int            `json:"vat"`
	TNVED            string          `json:"tnved"`
	NameEn           string          `json:"nameEn"`
	ProducingCountry string          `json:"producingCountry"`
	Price            decimal.Decimal `json:"price"`
	Count            int             `json:"count"`
	Width            float64         `json:"width"`
	Height           float64         `json:"height"`
	Length           float64         `json:"length"`
}

// SerializedCart is the payload the widget fetches from the cart endpoint.
type SerializedCart struct {
	Products []ProviderLineItem `json:"products"`
	Weight   float64            `json:"weight"`
	Discount decimal.Decimal    `json:"discount"`
}
