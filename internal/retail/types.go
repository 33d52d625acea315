package retail

// Order statuses
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Purchase payment statuses
const (
	PaymentCompleted = "completed"
)

// DefaultPaymentMethod is used when a purchase request omits payment_method.
const DefaultPaymentMethod = "credit_card"

// LineItem is a single ordered item.
type LineItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Order represents a customer order. Total is computed once at creation from
// the submitted items and never recomputed afterwards.
type Order struct {
	ID         string     `json:"id"`
	CustomerID string     `json:"customer_id"`
	Items      []LineItem `json:"items"`
	Total      float64    `json:"total"`
	Status     string     `json:"status"` // pending | completed | cancelled
	CreatedAt  string     `json:"created_at"`
}

// Product is static catalog data; no endpoint mutates it.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Stock    int     `json:"stock"`
}

// Customer is static seed data.
type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Purchase is a payment record. OrderID is a soft reference: it is not
// validated against existing orders, and stock is never decremented.
type Purchase struct {
	ID            string  `json:"id"`
	OrderID       string  `json:"order_id"`
	PaymentMethod string  `json:"payment_method"`
	PaymentStatus string  `json:"payment_status"` // always completed on creation
	Amount        float64 `json:"amount"`
	TransactionID string  `json:"transaction_id"`
	ProcessedAt   string  `json:"processed_at"`
}

// InventoryItem is the stock projection of a product.
type InventoryItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Stock     int    `json:"stock"`
}

// SalesAnalytics aggregates completed orders.
type SalesAnalytics struct {
	TotalSales        float64 `json:"total_sales"`
	CompletedOrders   int     `json:"completed_orders"`
	AverageOrderValue float64 `json:"average_order_value"`
}
