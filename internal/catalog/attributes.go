package catalog

import (
	"strconv"
	"strings"
)

// Attribute names the provider payload requires. Only these survive
// resolution; anything else on the product is dropped.
const (
	attrBarcode          = "barcode"
	attrVAT              = "vat"
	attrTNVED            = "tnved"
	attrNameEn           = "nameEn"
	attrProducingCountry = "producingCountry"
)

// AttributeSet holds the fixed set of provider-required product fields.
// The zero value is the template: every field defaults to the empty string.
type AttributeSet struct {
	Barcode          string
	VAT              string
	TNVED            string
	NameEn           string
	ProducingCountry string
}

// merge overwrites the field whose template key matches name, trimming the
// value. Names outside the template are ignored.
func (s *AttributeSet) merge(name, text string) {
	switch name {
	case attrBarcode:
		s.Barcode = strings.TrimSpace(text)
	case attrVAT:
		s.VAT = strings.TrimSpace(text)
	case attrTNVED:
		s.TNVED = strings.TrimSpace(text)
	case attrNameEn:
		s.NameEn = strings.TrimSpace(text)
	case attrProducingCountry:
		s.ProducingCountry = strings.TrimSpace(text)
	}
}

// VATRate returns the vat attribute parsed to an integer rate. An empty
// attribute yields nil; a non-numeric one falls back to 0.
func (s AttributeSet) VATRate() *int {
	if s.VAT == "" {
		return nil
	}
	rate, err := strconv.Atoi(s.VAT)
	if err != nil {
		rate = 0
	}
	return &rate
}

// Attribute is one named custom field as stored on the product.
type Attribute struct {
	Name string
	Text string
}

// AttributeGroup is an ordered collection of attributes.
type AttributeGroup struct {
	Name       string
	Attributes []Attribute
}

// ResolveAttributes folds the product's attribute groups into the fixed
// template. When the same key appears more than once across groups, the
// last occurrence in iteration order wins.
func ResolveAttributes(groups []AttributeGroup) AttributeSet {
	var set AttributeSet
	for _, group := range groups {
		for _, attr := range group.Attributes {
			set.merge(attr.Name, attr.Text)
		}
	}
	return set
}
