package products

import (
	"context"
	"errors"

	"github.com/nutriscan/nutrition-scanner/internal/nutrition"
)

// ErrNotFound is returned when a barcode has no catalog entry.
var ErrNotFound = errors.New("product not found")

// Product is one catalog entry: descriptors plus label facts already
// in canonical units.
type Product struct {
	Barcode  string
	Name     string
	Brand    string
	Category string
	Facts    nutrition.Facts
}

// Catalog resolves barcodes into products. A miss is ErrNotFound; any
// other error means the catalog itself was unreachable.
type Catalog interface {
	Lookup(ctx context.Context, barcode string) (*Product, error)
}

// StaticCatalog is an in-memory Catalog, loaded once at startup.
// It stands in until a real product-database integration lands.
type StaticCatalog struct {
	byBarcode map[string]Product
}

func NewStaticCatalog(products ...Product) *StaticCatalog {
	m := make(map[string]Product, len(products))
	for _, p := range products {
		m[p.Barcode] = p
	}
	return &StaticCatalog{byBarcode: m}
}

func (c *StaticCatalog) Lookup(_ context.Context, barcode string) (*Product, error) {
	p, ok := c.byBarcode[barcode]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}
