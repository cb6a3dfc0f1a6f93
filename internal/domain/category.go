package domain

type Category struct {
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl,omitempty"`
}
