// Package cart implements the guest shopping cart: pure list transformations
// over cart lines, a session that owns one cart at a time, and the store
// that persists the serialized line list.
package cart

import "github.com/jmlee/storefront-backend/internal/app/model"

// The functions below are total and side-effect free. They never mutate the
// input slice; every call returns a fresh slice, so callers can compare old
// and new values to detect changes.

// AddItem returns items with product added. A cart holds at most one line
// per product: adding a product already present increments that line's
// quantity by one, otherwise a new quantity-1 line is appended with the
// product's display fields snapshotted as they are right now.
func AddItem(items []model.CartLine, product *model.Product) []model.CartLine {
	next := make([]model.CartLine, len(items))
	copy(next, items)

	for i := range next {
		if next[i].ProductID == product.ID {
			next[i].Quantity++
			return next
		}
	}

	return append(next, model.CartLine{
		ProductID:   product.ID,
		ProductCode: product.ProductCode,
		Name:        product.Name,
		Price:       product.Price,
		Image:       product.Image,
		Images:      append([]string(nil), product.Images...),
		Category:    product.Category,
		Quantity:    1,
		IsUsed:      product.IsUsed,
	})
}

// RemoveItem returns items without the line for productID. Removing an
// absent product is a no-op, not an error.
func RemoveItem(items []model.CartLine, productID uint) []model.CartLine {
	next := make([]model.CartLine, 0, len(items))
	for _, item := range items {
		if item.ProductID != productID {
			next = append(next, item)
		}
	}
	return next
}

// UpdateQuantity returns items with the line for productID set to exactly
// quantity. A quantity of zero or less removes the line. Updating an absent
// product is a no-op.
func UpdateQuantity(items []model.CartLine, productID uint, quantity int) []model.CartLine {
	if quantity <= 0 {
		return RemoveItem(items, productID)
	}

	next := make([]model.CartLine, len(items))
	copy(next, items)
	for i := range next {
		if next[i].ProductID == productID {
			next[i].Quantity = quantity
			break
		}
	}
	return next
}

// ClearItems returns an empty cart.
func ClearItems() []model.CartLine {
	return []model.CartLine{}
}

// TotalItems is the sum of all line quantities.
func TotalItems(items []model.CartLine) int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total
}

// TotalPrice is the sum of price times quantity over all lines. Currency
// formatting is the caller's concern.
func TotalPrice(items []model.CartLine) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
