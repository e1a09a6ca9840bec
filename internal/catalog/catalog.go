package catalog

import "github.com/shopspring/decimal"

// Category groups products into the three storefront collections.
type Category string

const (
	CategoryFragrance Category = "fragrance"
	CategoryPerfumery Category = "perfumery"
	CategoryDiffuser  Category = "diffuser"
)

// Intensity describes how pronounced a scent is.
type Intensity string

const (
	IntensityLight    Intensity = "Light"
	IntensityModerate Intensity = "Moderate"
	IntensityIntense  Intensity = "Intense"
)

// Notes is the olfactory pyramid of a fragrance.
type Notes struct {
	Top   []string `json:"top"`
	Heart []string `json:"heart"`
	Base  []string `json:"base"`
}

// Product is one catalog entry. Prices are denominated in the base
// currency (USD); display conversion happens elsewhere.
type Product struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Category         Category        `json:"category"`
	Price            decimal.Decimal `json:"price"`
	Description      string          `json:"description"`
	ShortDescription string          `json:"short_description"`
	Story            string          `json:"story"`
	Mood             string          `json:"mood"`
	Ingredients      []string        `json:"ingredients"`
	Usage            string          `json:"usage"`
	Notes            Notes           `json:"notes"`
	Volume           string          `json:"volume"`
	Intensity        Intensity       `json:"intensity"`
	Featured         bool            `json:"featured"`
	ImageURL         string          `json:"image_url"`
}

// Catalog is the fixed product list. It is read-only after construction,
// so lookups need no synchronization.
type Catalog struct {
	products []Product
	byID     map[string]Product
}

// New builds a catalog from an ordered product list. Order is preserved
// by List and the category views.
func New(products []Product) *Catalog {
	byID := make(map[string]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Catalog{products: products, byID: byID}
}

// Default returns the catalog seeded with the TopBreeze range.
func Default() *Catalog {
	return New(products)
}

// List returns all products in catalog order.
func (c *Catalog) List() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Get looks a product up by ID.
func (c *Catalog) Get(id string) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// ByCategory returns the products of one collection in catalog order.
func (c *Catalog) ByCategory(cat Category) []Product {
	out := make([]Product, 0)
	for _, p := range c.products {
		if p.Category == cat {
			out = append(out, p)
		}
	}
	return out
}

// Featured returns the curated products shown on the home page.
func (c *Catalog) Featured() []Product {
	out := make([]Product, 0)
	for _, p := range c.products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// Related returns up to n other products from the same category as the
// given product. Unknown IDs yield an empty slice.
func (c *Catalog) Related(id string, n int) []Product {
	p, ok := c.byID[id]
	if !ok {
		return []Product{}
	}
	out := make([]Product, 0, n)
	for _, other := range c.products {
		if len(out) == n {
			break
		}
		if other.Category == p.Category && other.ID != p.ID {
			out = append(out, other)
		}
	}
	return out
}
