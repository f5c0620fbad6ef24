package model

// CartLine is one line of a guest cart. It is not a database table: carts
// live wholesale in the cart store as a JSON array, one entry per product.
// Display fields are snapshots taken when the product was first added, so
// later catalog edits do not rewrite carts.
type CartLine struct {
	ProductID   uint     `json:"id"`
	ProductCode string   `json:"productCode,omitempty"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Image       string   `json:"image,omitempty"`
	Images      []string `json:"images,omitempty"`
	Category    string   `json:"category"`
	Quantity    int      `json:"quantity"`
	IsUsed      bool     `json:"isUsed,omitempty"`
}
