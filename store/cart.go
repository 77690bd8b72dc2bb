package store

import (
	"context"

	"printverse/domain"
)

// Cart lists the current cart lines.
func (s *Store) Cart(ctx context.Context) ([]domain.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return data.Cart, nil
}

// AddToCart adds quantity of a product to the cart. An existing line
// for the product is incremented; the cart never holds two lines for
// the same product. The product must exist in the catalog.
func (s *Store) AddToCart(ctx context.Context, productID string, quantity int) error {
	if quantity <= 0 {
		return domain.NewValidationError("quantity", "must be positive", quantity)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.load(ctx)
	if err != nil {
		return err
	}
	if !productExists(data.Products, productID) {
		return domain.NewNotFoundError(domain.KindProduct, productID)
	}
	for i := range data.Cart {
		if data.Cart[i].ProductID == productID {
			data.Cart[i].Quantity += quantity
			return s.save(ctx, data)
		}
	}
	data.Cart = append(data.Cart, domain.CartItem{ProductID: productID, Quantity: quantity})
	return s.save(ctx, data)
}

// UpdateCartItem sets the quantity of an existing cart line. A
// quantity of zero or less removes the line. An absent line is an
// error, not a silent no-op.
func (s *Store) UpdateCartItem(ctx context.Context, productID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.load(ctx)
	if err != nil {
		return err
	}
	for i := range data.Cart {
		if data.Cart[i].ProductID != productID {
			continue
		}
		if quantity <= 0 {
			data.Cart = append(data.Cart[:i], data.Cart[i+1:]...)
		} else {
			data.Cart[i].Quantity = quantity
		}
		return s.save(ctx, data)
	}
	return domain.NewNotFoundError(domain.KindCartItem, productID)
}

// RemoveFromCart removes the cart line for a product.
func (s *Store) RemoveFromCart(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.load(ctx)
	if err != nil {
		return err
	}
	for i := range data.Cart {
		if data.Cart[i].ProductID == productID {
			data.Cart = append(data.Cart[:i], data.Cart[i+1:]...)
			return s.save(ctx, data)
		}
	}
	return domain.NewNotFoundError(domain.KindCartItem, productID)
}

// ClearCart empties the cart.
func (s *Store) ClearCart(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.load(ctx)
	if err != nil {
		return err
	}
	data.Cart = []domain.CartItem{}
	return s.save(ctx, data)
}

func productExists(products []domain.Product, id string) bool {
	for _, p := range products {
		if p.ID == id {
			return true
		}
	}
	return false
}
