package store

import (
	"context"

	"printverse/domain"
)

// Orders lists all placed orders.
func (s *Store) Orders(ctx context.Context) ([]domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return data.Orders, nil
}

// Order fetches one order by id.
func (s *Store) Order(ctx context.Context, id string) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.load(ctx)
	if err != nil {
		return domain.Order{}, err
	}
	for _, o := range data.Orders {
		if o.ID == id {
			return o, nil
		}
	}
	return domain.Order{}, domain.NewNotFoundError(domain.KindOrder, id)
}

// AddOrder appends a placed order. Orders are immutable once stored,
// except for their status.
func (s *Store) AddOrder(ctx context.Context, o domain.Order) error {
	if err := domain.ValidateOrder(o); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.load(ctx)
	if err != nil {
		return err
	}
	for _, existing := range data.Orders {
		if existing.ID == o.ID {
			return domain.NewDuplicateError(domain.KindOrder, o.ID)
		}
	}
	data.Orders = append(data.Orders, o)
	return s.save(ctx, data)
}

// UpdateOrderStatus advances the status of an order.
func (s *Store) UpdateOrderStatus(ctx context.Context, id, status string) error {
	if err := domain.ValidateStatus(status); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.load(ctx)
	if err != nil {
		return err
	}
	for i := range data.Orders {
		if data.Orders[i].ID == id {
			data.Orders[i].Status = status
			return s.save(ctx, data)
		}
	}
	return domain.NewNotFoundError(domain.KindOrder, id)
}
