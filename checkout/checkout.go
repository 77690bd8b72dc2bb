// Package checkout implements the order-placement workflow: it gates a
// submission on required customer, recipient, delivery and payment
// fields, recomputes the total against current catalog prices, appends
// the order and empties the cart.
package checkout

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"printverse/domain"
	"printverse/store"
)

// Options tune the checkout behavior.
type Options struct {
	// DecrementStock makes checkout reduce each product's stock by
	// the ordered quantity and reject orders exceeding availability.
	// Off by default: stock counts are informational only.
	DecrementStock bool
}

// Service places orders against a store.
type Service struct {
	store *store.Store
	opts  Options
	log   *slog.Logger
}

// NewService constructs a checkout Service. A nil logger defaults to
// slog.Default().
func NewService(s *store.Store, opts Options, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: s, opts: opts, log: logger}
}

// Request is one checkout submission.
type Request struct {
	Customer      domain.CustomerInfo
	Delivery      domain.DeliveryInfo
	PaymentMethod string
}

// validate runs the submission gate. It checks only the request
// fields; cart and catalog checks happen in PlaceOrder.
func validate(req Request) error {
	c := req.Customer
	if c.FirstName == "" {
		return domain.NewValidationError("firstName", "cannot be empty", c.FirstName)
	}
	if c.LastName == "" {
		return domain.NewValidationError("lastName", "cannot be empty", c.LastName)
	}
	if c.Phone == "" {
		return domain.NewValidationError("phone", "cannot be empty", c.Phone)
	}
	if c.Address == "" {
		return domain.NewValidationError("address", "cannot be empty", c.Address)
	}
	if c.DifferentRecipient {
		r := c.Recipient
		if r == nil || r.FirstName == "" || r.LastName == "" || r.Phone == "" {
			return domain.NewValidationError("recipientInfo", "recipient name and phone required", r)
		}
	}

	d := req.Delivery
	switch d.Method {
	case domain.DeliveryCarrier:
		if d.City == "" || d.Branch == "" {
			return domain.NewValidationError("delivery", "carrier delivery requires city and branch", d)
		}
		switch d.CarrierOption {
		case domain.CarrierBranch, domain.CarrierLocker, domain.CarrierCourier:
		default:
			return domain.NewValidationError("carrierOption", "must be branch, locker or courier", d.CarrierOption)
		}
		// carrier orders are prepaid by card only
		if req.PaymentMethod != domain.PaymentCard {
			return domain.NewValidationError("paymentMethod", "carrier delivery requires card payment", req.PaymentMethod)
		}
	case domain.DeliveryPickup:
		if d.Location == "" || d.Contact == "" {
			return domain.NewValidationError("delivery", "pickup requires location and contact", d)
		}
		if req.PaymentMethod != domain.PaymentCash && req.PaymentMethod != domain.PaymentCard {
			return domain.NewValidationError("paymentMethod", "must be cash or card", req.PaymentMethod)
		}
	default:
		return domain.NewValidationError("delivery.method", "must be carrier or pickup", d.Method)
	}
	return nil
}

// PlaceOrder validates the submission, freezes the current cart into a
// pending order priced at current catalog prices, stores it, and
// clears the cart. A rejected submission leaves cart and orders
// untouched.
func (s *Service) PlaceOrder(ctx context.Context, req Request) (domain.Order, error) {
	if err := validate(req); err != nil {
		return domain.Order{}, err
	}

	cart, err := s.store.Cart(ctx)
	if err != nil {
		return domain.Order{}, err
	}
	if len(cart) == 0 {
		return domain.Order{}, domain.NewValidationError("cart", "cannot be empty", 0)
	}

	// total uses current prices, not prices at add-to-cart time
	var total float64
	products := make(map[string]domain.Product, len(cart))
	for _, line := range cart {
		p, err := s.store.Product(ctx, line.ProductID)
		if err != nil {
			return domain.Order{}, fmt.Errorf("cart line %s: %w", line.ProductID, err)
		}
		if s.opts.DecrementStock && p.InStock < line.Quantity {
			return domain.Order{}, domain.NewValidationError("quantity",
				fmt.Sprintf("only %d of %s in stock", p.InStock, p.ID), line.Quantity)
		}
		products[p.ID] = p
		total += p.Price * float64(line.Quantity)
	}

	order := domain.Order{
		ID:            uuid.NewString(),
		Items:         append([]domain.CartItem(nil), cart...),
		Customer:      req.Customer,
		Delivery:      req.Delivery,
		PaymentMethod: req.PaymentMethod,
		Total:         total,
		Status:        domain.StatusPending,
		Date:          time.Now().Format(time.RFC3339),
	}
	if err := s.store.AddOrder(ctx, order); err != nil {
		return domain.Order{}, err
	}

	if s.opts.DecrementStock {
		for _, line := range cart {
			p := products[line.ProductID]
			p.InStock -= line.Quantity
			if err := s.store.UpdateProduct(ctx, p.ID, p); err != nil {
				return domain.Order{}, fmt.Errorf("adjusting stock for %s: %w", p.ID, err)
			}
		}
	}

	if err := s.store.ClearCart(ctx); err != nil {
		return domain.Order{}, err
	}

	s.log.Info("order placed",
		"order_id", order.ID,
		"items", len(order.Items),
		"total", order.Total,
		"payment", order.PaymentMethod,
		"delivery", order.Delivery.Method)
	return order, nil
}
