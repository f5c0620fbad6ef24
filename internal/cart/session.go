package cart

import (
	"context"

	"github.com/jmlee/storefront-backend/internal/app/model"
)

// Session owns the cart of one client at a time. It loads the line list
// once at construction and saves after every mutation; the pure engine
// functions are its only mutators.
type Session struct {
	cartID string
	store  Store
	items  []model.CartLine
}

// OpenSession loads the cart for cartID from the store.
func OpenSession(ctx context.Context, store Store, cartID string) (*Session, error) {
	items, err := store.Load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	return &Session{cartID: cartID, store: store, items: items}, nil
}

// Items returns the current line list. Callers must not mutate it.
func (s *Session) Items() []model.CartLine {
	return s.items
}

func (s *Session) TotalItems() int {
	return TotalItems(s.items)
}

func (s *Session) TotalPrice() float64 {
	return TotalPrice(s.items)
}

func (s *Session) AddItem(ctx context.Context, product *model.Product) error {
	return s.commit(ctx, AddItem(s.items, product))
}

func (s *Session) RemoveItem(ctx context.Context, productID uint) error {
	return s.commit(ctx, RemoveItem(s.items, productID))
}

func (s *Session) UpdateQuantity(ctx context.Context, productID uint, quantity int) error {
	return s.commit(ctx, UpdateQuantity(s.items, productID, quantity))
}

func (s *Session) Clear(ctx context.Context) error {
	return s.commit(ctx, ClearItems())
}

func (s *Session) commit(ctx context.Context, next []model.CartLine) error {
	if err := s.store.Save(ctx, s.cartID, next); err != nil {
		return err
	}
	s.items = next
	return nil
}
