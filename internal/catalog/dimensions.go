package catalog

import (
	"github.com/velamart/saferoute-bridge/pkg/db/models"
)

// LengthClassMillimeter marks products whose dimensions are stored in
// millimeters instead of centimeters.
const LengthClassMillimeter = "2"

// Dimensions are product measurements in centimeters.
type Dimensions struct {
	Width  float64
	Height float64
	Length float64
}

// NormalizeDimensions converts a product's stored dimensions to
// centimeters. The conversion is not idempotent: apply it exactly once per
// product snapshot.
func NormalizeDimensions(product *models.Product) Dimensions {
	dims := Dimensions{
		Width:  product.Width,
		Height: product.Height,
		Length: product.Length,
	}
	if product.LengthClass == LengthClassMillimeter {
		dims.Width /= 10
		dims.Height /= 10
		dims.Length /= 10
	}
	return dims
}
