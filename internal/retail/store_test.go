package retail

import (
	"strings"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
}

func TestNewStore_SeedData(t *testing.T) {
	s := NewStore()

	if got := len(s.ListOrders()); got != 2 {
		t.Fatalf("expected 2 seed orders, got %d", got)
	}
	if got := len(s.ListProducts()); got != 4 {
		t.Fatalf("expected 4 seed products, got %d", got)
	}
	if got := len(s.ListCustomers()); got != 2 {
		t.Fatalf("expected 2 seed customers, got %d", got)
	}
	if got := len(s.ListPurchases()); got != 1 {
		t.Fatalf("expected 1 seed purchase, got %d", got)
	}

	o, ok := s.GetOrder("ord_001")
	if !ok {
		t.Fatalf("seed order ord_001 missing")
	}
	if o.Total != 1059.97 || o.Status != StatusCompleted {
		t.Fatalf("unexpected seed order: %+v", o)
	}
}

func TestCreateOrder_ComputesTotal(t *testing.T) {
	s := NewStore()
	s.nowFunc = fixedClock

	o := s.CreateOrder("cust_001", []LineItem{
		{ProductID: "prod_002", Name: "Mouse", Quantity: 2, Price: 10},
	})

	if o.Total != 20.0 {
		t.Fatalf("expected total 20.0, got %v", o.Total)
	}
	if o.Status != StatusPending {
		t.Fatalf("expected status pending, got %q", o.Status)
	}
	if !strings.HasPrefix(o.ID, "ord_") {
		t.Fatalf("unexpected order id %q", o.ID)
	}
	if o.CreatedAt != "2024-03-01T12:00:00Z" {
		t.Fatalf("unexpected created_at %q", o.CreatedAt)
	}

	// the new order must show up in a subsequent listing
	got, ok := s.GetOrder(o.ID)
	if !ok {
		t.Fatalf("created order not found")
	}
	if got.Total != 20.0 {
		t.Fatalf("stored total mismatch: %v", got.Total)
	}
	if len(s.ListOrders()) != 3 {
		t.Fatalf("expected 3 orders after create, got %d", len(s.ListOrders()))
	}
}

func TestCreateOrder_EmptyItems(t *testing.T) {
	s := NewStore()

	o := s.CreateOrder("cust_002", nil)
	if o.Total != 0 {
		t.Fatalf("expected zero total for empty items, got %v", o.Total)
	}
	if o.Status != StatusPending {
		t.Fatalf("expected pending, got %q", o.Status)
	}
}

func TestGetOrder_Unknown(t *testing.T) {
	s := NewStore()
	if _, ok := s.GetOrder("ord_nope"); ok {
		t.Fatalf("expected lookup miss for unknown order id")
	}
}

func TestCreatePurchase_Defaults(t *testing.T) {
	s := NewStore()
	s.nowFunc = fixedClock

	p := s.CreatePurchase("ord_999", 50, "")

	if p.PaymentMethod != DefaultPaymentMethod {
		t.Fatalf("expected default payment method, got %q", p.PaymentMethod)
	}
	if p.PaymentStatus != PaymentCompleted {
		t.Fatalf("expected payment status completed, got %q", p.PaymentStatus)
	}
	if p.Amount != 50 {
		t.Fatalf("amount mismatch: %v", p.Amount)
	}
	if !strings.HasPrefix(p.ID, "pur_") || !strings.HasPrefix(p.TransactionID, "txn_") {
		t.Fatalf("unexpected identifiers: id=%q txn=%q", p.ID, p.TransactionID)
	}
	// order existence is deliberately not checked
	if len(s.ListPurchases()) != 2 {
		t.Fatalf("expected 2 purchases, got %d", len(s.ListPurchases()))
	}
}

func TestAnalytics_Seeded(t *testing.T) {
	s := NewStore()
	a := s.Analytics()
	if a.CompletedOrders != 1 {
		t.Fatalf("expected 1 completed order, got %d", a.CompletedOrders)
	}
	if a.TotalSales != 1059.97 {
		t.Fatalf("expected total 1059.97, got %v", a.TotalSales)
	}
	if a.AverageOrderValue != 1059.97 {
		t.Fatalf("expected average 1059.97, got %v", a.AverageOrderValue)
	}
}

func TestAnalytics_NoCompletedOrders(t *testing.T) {
	s := &Store{
		orders: []Order{
			{ID: "ord_a", Status: StatusPending, Total: 10},
			{ID: "ord_b", Status: StatusCancelled, Total: 20},
		},
	}

	a := s.Analytics()
	if a.CompletedOrders != 0 || a.TotalSales != 0 {
		t.Fatalf("expected empty aggregate, got %+v", a)
	}
	if a.AverageOrderValue != 0 {
		t.Fatalf("expected average 0 with no completed orders, got %v", a.AverageOrderValue)
	}
}

func TestStockNeverDecremented(t *testing.T) {
	s := NewStore()
	before, _ := s.GetProduct("prod_002")

	s.CreateOrder("cust_001", []LineItem{{ProductID: "prod_002", Quantity: 5, Price: 29.99}})
	s.CreatePurchase("ord_002", 149.95, "debit_card")

	after, _ := s.GetProduct("prod_002")
	if after.Stock != before.Stock {
		t.Fatalf("stock changed from %d to %d", before.Stock, after.Stock)
	}
}
