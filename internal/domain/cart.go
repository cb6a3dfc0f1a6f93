package domain

// NoVariant is the selected variant recorded for products whose catalog entry
// carries no sizes, so every cart line keys on a (productID, variant) pair.
const NoVariant = "one-size"

// CartLine is one (product, variant, quantity) record in the cart. It carries
// the product fields the cart needs to render and price itself, so a persisted
// cart survives catalog changes between sessions.
type CartLine struct {
	ProductID       string  `json:"_id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	ImageURL        string  `json:"imageUrl,omitempty"`
	Quantity        int     `json:"quantity"`
	SelectedVariant string  `json:"selectedSize"`
}

// NewCartLine builds a line for product with the chosen variant and quantity 1.
// An empty variant falls back to NoVariant.
func NewCartLine(p Product, variant string) CartLine {
	if variant == "" {
		variant = NoVariant
	}
	return CartLine{
		ProductID:       p.ID,
		Name:            p.Name,
		Price:           p.Price,
		ImageURL:        p.ImageURL,
		Quantity:        1,
		SelectedVariant: variant,
	}
}

// Matches reports whether the line belongs to the given (productID, variant)
// pair. An empty variant matches NoVariant.
func (l CartLine) Matches(productID, variant string) bool {
	if variant == "" {
		variant = NoVariant
	}
	return l.ProductID == productID && l.SelectedVariant == variant
}
