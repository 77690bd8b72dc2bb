package store

import (
	"context"
	"testing"

	"printverse/domain"
)

func sampleOrder(id string, total float64) domain.Order {
	return domain.Order{
		ID:    id,
		Items: []domain.CartItem{{ProductID: "3", Quantity: 3}},
		Customer: domain.CustomerInfo{
			FirstName: "Taras",
			LastName:  "Koval",
			Phone:     "+380501234567",
			Address:   "Kyiv, Khreshchatyk 1",
		},
		Delivery: domain.DeliveryInfo{
			Method:        domain.DeliveryCarrier,
			CarrierOption: domain.CarrierBranch,
			City:          "Kyiv",
			Branch:        "12",
		},
		PaymentMethod: domain.PaymentCard,
		Total:         total,
		Status:        domain.StatusPending,
		Date:          "2026-08-27T10:00:00Z",
	}
}

func TestOrders_AddListStatus(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.AddOrder(ctx, sampleOrder("o-1", 360)); err != nil {
		t.Fatalf("add order failed: %v", err)
	}
	orders, err := s.Orders(ctx)
	if err != nil {
		t.Fatalf("orders failed: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != "o-1" {
		t.Fatalf("unexpected orders: %+v", orders)
	}

	if err := s.UpdateOrderStatus(ctx, "o-1", domain.StatusShipped); err != nil {
		t.Fatalf("status update failed: %v", err)
	}
	got, err := s.Order(ctx, "o-1")
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if got.Status != domain.StatusShipped {
		t.Fatalf("status not updated: %+v", got)
	}
	// everything else stays frozen
	if got.Total != 360 || len(got.Items) != 1 || got.Items[0].Quantity != 3 {
		t.Fatalf("order mutated beyond status: %+v", got)
	}
}

func TestOrders_Errors(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.UpdateOrderStatus(ctx, "no-such", domain.StatusShipped); !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if err := s.UpdateOrderStatus(ctx, "no-such", "teleported"); !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError for bad status, got %v", err)
	}
	if _, err := s.Order(ctx, "no-such"); !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}

	o := sampleOrder("o-dup", 100)
	if err := s.AddOrder(ctx, o); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := s.AddOrder(ctx, o); !domain.IsDuplicate(err) {
		t.Fatalf("expected DuplicateError, got %v", err)
	}

	empty := sampleOrder("o-empty", 0)
	empty.Items = nil
	if err := s.AddOrder(ctx, empty); !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError for empty items, got %v", err)
	}
}

func TestStats(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	stats, err := s.Stats(ctx)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.TotalProducts != 6 || stats.TotalOrders != 0 || stats.TotalRevenue != 0 {
		t.Fatalf("unexpected fresh stats: %+v", stats)
	}

	_ = s.AddOrder(ctx, sampleOrder("o-1", 360))
	_ = s.AddOrder(ctx, sampleOrder("o-2", 150))
	_ = s.UpdateOrderStatus(ctx, "o-2", domain.StatusDelivered)

	stats, _ = s.Stats(ctx)
	if stats.TotalOrders != 2 || stats.TotalRevenue != 510 || stats.PendingOrders != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
