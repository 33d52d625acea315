package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/imrishuroy/retail-gateway/internal/retail"
)

// CreateOrderRequest is the payload for POST /order. Fields are accepted as
// submitted; an omitted quantity defaults to 1, everything else to its zero
// value.
type CreateOrderRequest struct {
	CustomerID string             `json:"customer_id"`
	Items      []OrderItemRequest `json:"items"`
}

// OrderItemRequest is one line of an order payload. Quantity is a pointer so
// an absent field can be told apart from an explicit zero.
type OrderItemRequest struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  *int    `json:"quantity"`
	Price     float64 `json:"price"`
}

func (r OrderItemRequest) lineItem() retail.LineItem {
	qty := 1
	if r.Quantity != nil {
		qty = *r.Quantity
	}
	return retail.LineItem{ProductID: r.ProductID, Name: r.Name, Quantity: qty, Price: r.Price}
}

// CreatePurchaseRequest is the payload for POST /purchase.
type CreatePurchaseRequest struct {
	OrderID       string  `json:"order_id"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
}

// RegisterRetailRoutes registers the demo API surface on the router.
func RegisterRetailRoutes(r *gin.Engine, store *retail.Store) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	r.GET("/orders", func(c *gin.Context) {
		orders := store.ListOrders()
		c.JSON(http.StatusOK, gin.H{"orders": orders, "count": len(orders)})
	})

	r.GET("/order/:id", func(c *gin.Context) {
		o, ok := store.GetOrder(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, o)
	})

	r.POST("/order", func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request_body", "msg": err.Error()})
			return
		}
		items := make([]retail.LineItem, 0, len(req.Items))
		for _, it := range req.Items {
			items = append(items, it.lineItem())
		}
		o := store.CreateOrder(req.CustomerID, items)
		c.JSON(http.StatusCreated, o)
	})

	r.GET("/products", func(c *gin.Context) {
		products := store.ListProducts()
		c.JSON(http.StatusOK, gin.H{"products": products, "count": len(products)})
	})

	r.GET("/product/:id", func(c *gin.Context) {
		p, ok := store.GetProduct(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, p)
	})

	r.GET("/customers", func(c *gin.Context) {
		customers := store.ListCustomers()
		c.JSON(http.StatusOK, gin.H{"customers": customers, "count": len(customers)})
	})

	r.GET("/customer/:id", func(c *gin.Context) {
		cu, ok := store.GetCustomer(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		c.JSON(http.StatusOK, cu)
	})

	r.GET("/inventory", func(c *gin.Context) {
		inv := store.Inventory()
		c.JSON(http.StatusOK, gin.H{"inventory": inv, "total_products": len(inv)})
	})

	r.GET("/analytics/sales", func(c *gin.Context) {
		c.JSON(http.StatusOK, store.Analytics())
	})

	r.GET("/purchases", func(c *gin.Context) {
		purchases := store.ListPurchases()
		c.JSON(http.StatusOK, gin.H{"purchases": purchases, "count": len(purchases)})
	})

	r.POST("/purchase", func(c *gin.Context) {
		var req CreatePurchaseRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request_body", "msg": err.Error()})
			return
		}
		p := store.CreatePurchase(req.OrderID, req.Amount, req.PaymentMethod)
		c.JSON(http.StatusCreated, p)
	})
}
