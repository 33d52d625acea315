package retail

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store holds the four in-memory collections behind the demo API. Gin serves
// requests concurrently, so every access goes through the mutex; this is the
// only synchronization in the system.
type Store struct {
	mu        sync.RWMutex
	orders    []Order
	products  []Product
	customers []Customer
	purchases []Purchase

	nowFunc func() time.Time
	idFunc  func() string
}

// NewStore returns a Store pre-loaded with the demo seed data.
func NewStore() *Store {
	return &Store{
		orders: []Order{
			{
				ID:         "ord_001",
				CustomerID: "cust_001",
				Items: []LineItem{
					{ProductID: "prod_001", Name: "Laptop", Quantity: 1, Price: 999.99},
					{ProductID: "prod_002", Name: "Mouse", Quantity: 2, Price: 29.99},
				},
				Total:     1059.97,
				Status:    StatusCompleted,
				CreatedAt: "2024-01-15T10:30:00Z",
			},
			{
				ID:         "ord_002",
				CustomerID: "cust_002",
				Items: []LineItem{
					{ProductID: "prod_003", Name: "Keyboard", Quantity: 1, Price: 79.99},
				},
				Total:     79.99,
				Status:    StatusPending,
				CreatedAt: "2024-01-16T14:20:00Z",
			},
		},
		products: []Product{
			{ID: "prod_001", Name: "Laptop", Price: 999.99, Category: "Electronics", Stock: 50},
			{ID: "prod_002", Name: "Mouse", Price: 29.99, Category: "Electronics", Stock: 100},
			{ID: "prod_003", Name: "Keyboard", Price: 79.99, Category: "Electronics", Stock: 75},
			{ID: "prod_004", Name: "Monitor", Price: 299.99, Category: "Electronics", Stock: 30},
		},
		customers: []Customer{
			{ID: "cust_001", Name: "John Doe", Email: "john@example.com", Phone: "+1-555-0123"},
			{ID: "cust_002", Name: "Jane Smith", Email: "jane@example.com", Phone: "+1-555-0124"},
		},
		purchases: []Purchase{
			{
				ID:            "pur_001",
				OrderID:       "ord_001",
				PaymentMethod: "credit_card",
				PaymentStatus: PaymentCompleted,
				Amount:        1059.97,
				TransactionID: "txn_abc123",
				ProcessedAt:   "2024-01-15T10:35:00Z",
			},
		},
		nowFunc: time.Now,
		idFunc:  shortID,
	}
}

// shortID returns the first 8 hex characters of a random UUID.
func shortID() string {
	return uuid.NewString()[:8]
}

func (s *Store) now() string {
	if s.nowFunc == nil {
		s.nowFunc = time.Now
	}
	return s.nowFunc().UTC().Format(time.RFC3339)
}

func (s *Store) newID() string {
	if s.idFunc == nil {
		s.idFunc = shortID
	}
	return s.idFunc()
}

// ListOrders returns a copy of all orders.
func (s *Store) ListOrders() []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Order{}, s.orders...)
}

// GetOrder returns the order with the given id, if present.
func (s *Store) GetOrder(id string) (Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return Order{}, false
}

// CreateOrder appends a new pending order. The total is the sum of
// price*quantity over the submitted items.
func (s *Store) CreateOrder(customerID string, items []LineItem) Order {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	o := Order{
		ID:         "ord_" + s.newID(),
		CustomerID: customerID,
		Items:      append([]LineItem{}, items...),
		Total:      total,
		Status:     StatusPending,
		CreatedAt:  s.now(),
	}
	s.orders = append(s.orders, o)
	return o
}

// ListProducts returns a copy of the catalog.
func (s *Store) ListProducts() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Product{}, s.products...)
}

// GetProduct returns the product with the given id, if present.
func (s *Store) GetProduct(id string) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// ListCustomers returns a copy of all customers.
func (s *Store) ListCustomers() []Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Customer{}, s.customers...)
}

// GetCustomer returns the customer with the given id, if present.
func (s *Store) GetCustomer(id string) (Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.customers {
		if c.ID == id {
			return c, true
		}
	}
	return Customer{}, false
}

// Inventory projects the catalog onto stock levels.
func (s *Store) Inventory() []InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	inv := make([]InventoryItem, 0, len(s.products))
	for _, p := range s.products {
		inv = append(inv, InventoryItem{ProductID: p.ID, Name: p.Name, Stock: p.Stock})
	}
	return inv
}

// Analytics aggregates completed orders. The average is 0 when there are no
// completed orders.
func (s *Store) Analytics() SalesAnalytics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var a SalesAnalytics
	for _, o := range s.orders {
		if o.Status == StatusCompleted {
			a.TotalSales += o.Total
			a.CompletedOrders++
		}
	}
	if a.CompletedOrders > 0 {
		a.AverageOrderValue = a.TotalSales / float64(a.CompletedOrders)
	}
	return a
}

// ListPurchases returns a copy of all purchases.
func (s *Store) ListPurchases() []Purchase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Purchase{}, s.purchases...)
}

// CreatePurchase appends a purchase record. The payment method defaults to
// credit_card and the payment status is always completed. The order id is
// recorded as given and deliberately not checked against existing orders.
func (s *Store) CreatePurchase(orderID string, amount float64, paymentMethod string) Purchase {
	if paymentMethod == "" {
		paymentMethod = DefaultPaymentMethod
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p := Purchase{
		ID:            "pur_" + s.newID(),
		OrderID:       orderID,
		PaymentMethod: paymentMethod,
		PaymentStatus: PaymentCompleted,
		Amount:        amount,
		TransactionID: "txn_" + s.newID(),
		ProcessedAt:   s.now(),
	}
	s.purchases = append(s.purchases, p)
	return p
}
