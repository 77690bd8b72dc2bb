package store

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"printverse/domain"
)

// Products lists the whole catalog.
func (s *Store) Products(ctx context.Context) ([]domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return data.Products, nil
}

// ProductsFiltered lists the catalog with page-style filtering and
// sorting applied.
func (s *Store) ProductsFiltered(ctx context.Context, filter domain.Filter) ([]domain.Product, error) {
	all, err := s.Products(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Product, 0, len(all))
	for _, p := range all {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.MinPrice != nil && p.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
			continue
		}
		out = append(out, p)
	}
	switch filter.SortBy {
	case "name":
		sort.Slice(out, func(i, j int) bool {
			if filter.Order == "desc" {
				return out[i].Name > out[j].Name
			}
			return out[i].Name < out[j].Name
		})
	case "price":
		sort.Slice(out, func(i, j int) bool {
			if filter.Order == "desc" {
				return out[i].Price > out[j].Price
			}
			return out[i].Price < out[j].Price
		})
	case "stock":
		sort.Slice(out, func(i, j int) bool {
			if filter.Order == "desc" {
				return out[i].InStock > out[j].InStock
			}
			return out[i].InStock < out[j].InStock
		})
	}
	return out, nil
}

// Product fetches one product by id.
func (s *Store) Product(ctx context.Context, id string) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.load(ctx)
	if err != nil {
		return domain.Product{}, err
	}
	for _, p := range data.Products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, domain.NewNotFoundError(domain.KindProduct, id)
}

// AddProduct appends a new product to the catalog.
func (s *Store) AddProduct(ctx context.Context, p domain.Product) error {
	if err := domain.ValidateProduct(p); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.load(ctx)
	if err != nil {
		return err
	}
	for _, existing := range data.Products {
		if existing.ID == p.ID {
			return domain.NewDuplicateError(domain.KindProduct, p.ID)
		}
	}
	if p.Reviews == nil {
		p.Reviews = []domain.Review{}
	}
	data.Products = append(data.Products, p)
	return s.save(ctx, data)
}

// UpdateProduct replaces the product with the given id.
func (s *Store) UpdateProduct(ctx context.Context, id string, p domain.Product) error {
	p.ID = id
	if err := domain.ValidateProduct(p); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.load(ctx)
	if err != nil {
		return err
	}
	for i := range data.Products {
		if data.Products[i].ID == id {
			if p.Reviews == nil {
				// replacing a product never discards its reviews
				p.Reviews = data.Products[i].Reviews
			}
			data.Products[i] = p
			return s.save(ctx, data)
		}
	}
	return domain.NewNotFoundError(domain.KindProduct, id)
}

// DeleteProduct removes the product with the given id.
func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.load(ctx)
	if err != nil {
		return err
	}
	kept := data.Products[:0]
	found := false
	for _, p := range data.Products {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return domain.NewNotFoundError(domain.KindProduct, id)
	}
	data.Products = kept
	return s.save(ctx, data)
}

// AddReview appends a customer review to a product. The review id and
// date are assigned here; reviews are never edited or removed.
func (s *Store) AddReview(ctx context.Context, productID string, r domain.Review) (domain.Review, error) {
	if err := domain.ValidateReview(r); err != nil {
		return domain.Review{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.load(ctx)
	if err != nil {
		return domain.Review{}, err
	}
	for i := range data.Products {
		if data.Products[i].ID != productID {
			continue
		}
		r.ID = uuid.NewString()
		r.Date = time.Now().Format("2006-01-02")
		data.Products[i].Reviews = append(data.Products[i].Reviews, r)
		if err := s.save(ctx, data); err != nil {
			return domain.Review{}, err
		}
		return r, nil
	}
	return domain.Review{}, domain.NewNotFoundError(domain.KindProduct, productID)
}
