package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	ProductListing    = "listing"
	ProductSmartCopy  = "smart_copy"
	ProductBrandGuard = "brand_guard"
)

// Product describes one billable storefront feature: its price and the
// backend that fulfills it ("" for non-AI features).
type Product struct {
	Key            string
	Label          string
	Backend        string
	Price          decimal.Decimal
	ProcessingTime time.Duration
}

var products = map[string]Product{
	ProductListing: {
		Key:            ProductListing,
		Label:          "product listing creation",
		Backend:        "",
		Price:          decimal.RequireFromString("0.10"),
		ProcessingTime: 500 * time.Millisecond,
	},
	ProductSmartCopy: {
		Key:            ProductSmartCopy,
		Label:          "smart copy generation",
		Backend:        "llama-3",
		Price:          decimal.RequireFromString("1.00"),
		ProcessingTime: 1500 * time.Millisecond,
	},
	ProductBrandGuard: {
		Key:            ProductBrandGuard,
		Label:          "brand safety check",
		Backend:        "gpt-4o",
		Price:          decimal.RequireFromString("5.00"),
		ProcessingTime: 2 * time.Second,
	},
}

func ProductByKey(key string) (Product, error) {
	product, ok := products[key]
	if !ok {
		return Product{}, ErrUnknownProduct
	}
	return product, nil
}

func ProductKeys() []string {
	return []string{ProductListing, ProductSmartCopy, ProductBrandGuard}
}
