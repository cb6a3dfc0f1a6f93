package domain

// Product mirrors the catalog entity owned by the remote API. The backend
// assigns IDs, so the field is empty on create payloads.
type Product struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Sizes       []string `json:"sizes,omitempty"`
}

// HasVariants reports whether the product offers selectable sizes.
func (p Product) HasVariants() bool {
	return len(p.Sizes) > 0
}
