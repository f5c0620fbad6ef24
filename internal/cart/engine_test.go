package cart

import (
	"testing"

	"github.com/jmlee/storefront-backend/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProduct(id uint, name string, price float64) *model.Product {
	p := &model.Product{
		Name:     name,
		Price:    price,
		Category: "Electronics",
		Image:    "/uploads/sample.jpg",
		Images:   []string{"/uploads/sample.jpg"},
	}
	p.ID = id
	return p
}

func TestAddItem_NewProduct(t *testing.T) {
	items := AddItem(nil, sampleProduct(1, "Keyboard", 45000))

	require.Len(t, items, 1)
	assert.Equal(t, uint(1), items[0].ProductID)
	assert.Equal(t, "Keyboard", items[0].Name)
	assert.Equal(t, 45000.0, items[0].Price)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, "Electronics", items[0].Category)
	assert.Equal(t, "/uploads/sample.jpg", items[0].Image)
}

func TestAddItem_ExistingProductIncrements(t *testing.T) {
	product := sampleProduct(1, "Keyboard", 45000)

	items := AddItem(nil, product)
	items = AddItem(items, product)
	items = AddItem(items, product)

	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestAddItem_MultipleProducts(t *testing.T) {
	items := AddItem(nil, sampleProduct(1, "Keyboard", 45000))
	items = AddItem(items, sampleProduct(2, "Mouse", 25000))

	require.Len(t, items, 2)
	assert.Equal(t, uint(1), items[0].ProductID)
	assert.Equal(t, uint(2), items[1].ProductID)
}

func TestAddItem_DoesNotMutateInput(t *testing.T) {
	product := sampleProduct(1, "Keyboard", 45000)
	original := AddItem(nil, product)

	updated := AddItem(original, product)

	assert.Equal(t, 1, original[0].Quantity)
	assert.Equal(t, 2, updated[0].Quantity)
}

func TestRemoveItem(t *testing.T) {
	items := AddItem(nil, sampleProduct(1, "Keyboard", 45000))
	items = AddItem(items, sampleProduct(2, "Mouse", 25000))

	items = RemoveItem(items, 1)

	require.Len(t, items, 1)
	assert.Equal(t, uint(2), items[0].ProductID)
}

func TestRemoveItem_MissingProductIsNoop(t *testing.T) {
	items := AddItem(nil, sampleProduct(1, "Keyboard", 45000))

	result := RemoveItem(items, 99)

	assert.Equal(t, items, result)
}

func TestRemoveItem_DoesNotMutateInput(t *testing.T) {
	items := AddItem(nil, sampleProduct(1, "Keyboard", 45000))
	items = AddItem(items, sampleProduct(2, "Mouse", 25000))

	_ = RemoveItem(items, 1)

	require.Len(t, items, 2)
}

func TestUpdateQuantity(t *testing.T) {
	items := AddItem(nil, sampleProduct(1, "Keyboard", 45000))

	items = UpdateQuantity(items, 1, 5)

	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestUpdateQuantity_ZeroRemovesLine(t *testing.T) {
	items := AddItem(nil, sampleProduct(1, "Keyboard", 45000))
	items = AddItem(items, sampleProduct(2, "Mouse", 25000))

	items = UpdateQuantity(items, 1, 0)

	require.Len(t, items, 1)
	assert.Equal(t, uint(2), items[0].ProductID)
}

func TestUpdateQuantity_NegativeRemovesLine(t *testing.T) {
	items := AddItem(nil, sampleProduct(1, "Keyboard", 45000))

	items = UpdateQuantity(items, 1, -3)

	assert.Empty(t, items)
}

func TestUpdateQuantity_MissingProductIsNoop(t *testing.T) {
	items := AddItem(nil, sampleProduct(1, "Keyboard", 45000))

	result := UpdateQuantity(items, 99, 5)

	assert.Equal(t, items, result)
}

func TestClearItems(t *testing.T) {
	assert.Empty(t, ClearItems())
}

func TestTotalItems(t *testing.T) {
	items := AddItem(nil, sampleProduct(1, "Keyboard", 45000))
	items = AddItem(items, sampleProduct(1, "Keyboard", 45000))
	items = AddItem(items, sampleProduct(2, "Mouse", 25000))

	assert.Equal(t, 3, TotalItems(items))
	assert.Equal(t, 0, TotalItems(nil))
}

func TestTotalPrice(t *testing.T) {
	items := AddItem(nil, sampleProduct(1, "Keyboard", 45000))
	items = UpdateQuantity(items, 1, 2)
	items = AddItem(items, sampleProduct(2, "Mouse", 25000))

	assert.Equal(t, 115000.0, TotalPrice(items))
	assert.Equal(t, 0.0, TotalPrice(nil))
}

func TestSnapshotPreservedAfterProductChange(t *testing.T) {
	product := sampleProduct(1, "Keyboard", 45000)
	items := AddItem(nil, product)

	// Catalog edits after the line was added must not affect the cart line.
	product.Name = "Renamed"
	product.Price = 99999

	assert.Equal(t, "Keyboard", items[0].Name)
	assert.Equal(t, 45000.0, items[0].Price)
}
