// Package openapi builds the OpenAPI 3.0 description of the retail demo API.
// The document is the contract handed to the gateway target as an inline
// payload, so it is constructed programmatically rather than derived from the
// running server.
package openapi

import "encoding/json"

// NewDocument returns the OpenAPI document with the given server base URL.
func NewDocument(baseURL string) map[string]any {
	return map[string]any{
		"openapi": "3.0.0",
		"info": map[string]any{
			"title":       "Retail Demo API",
			"description": "Comprehensive retail management API with orders, products, customers, and analytics",
			"version":     "1.0.0",
		},
		"servers": []any{
			map[string]any{
				"url":         baseURL,
				"description": "EKS Retail API Server",
			},
		},
		"paths": map[string]any{
			"/health": map[string]any{
				"get": map[string]any{
					"operationId": "checkHealth",
					"summary":     "Health check endpoint",
					"description": "Check if the retail API service is healthy",
					"responses": map[string]any{
						"200": jsonResponse("Service is healthy", object(map[string]any{
							"status":    map[string]any{"type": "string", "example": "healthy"},
							"timestamp": map[string]any{"type": "string", "format": "date-time"},
						})),
					},
				},
			},
			"/orders": map[string]any{
				"get": listOperation("listOrders", "List all orders",
					"Retrieve a list of all orders in the system",
					"List of orders", "orders", "Order"),
			},
			"/order/{orderId}": map[string]any{
				"get": lookupOperation("getOrder", "Get specific order",
					"Retrieve details of a specific order by ID",
					"orderId", "The order ID", "Order details", "Order", "Order not found"),
			},
			"/order": map[string]any{
				"post": map[string]any{
					"operationId": "createOrder",
					"summary":     "Create new order",
					"description": "Create a new order with customer and item information",
					"requestBody": jsonRequestBody(map[string]any{
						"type": "object",
						"properties": map[string]any{
							"customer_id": map[string]any{"type": "string", "description": "Customer identifier"},
							"items":       array(lineItemSchema()),
						},
						"required": []any{"customer_id", "items"},
					}),
					"responses": map[string]any{
						"201": jsonResponse("Order created successfully", ref("Order")),
					},
				},
			},
			"/products": map[string]any{
				"get": listOperation("listProducts", "List all products",
					"Retrieve a list of all products in the catalog",
					"List of products", "products", "Product"),
			},
			"/product/{productId}": map[string]any{
				"get": lookupOperation("getProduct", "Get specific product",
					"Retrieve details of a specific product by ID",
					"productId", "The product ID", "Product details", "Product", "Product not found"),
			},
			"/customers": map[string]any{
				"get": listOperation("listCustomers", "List all customers",
					"Retrieve a list of all customers",
					"List of customers", "customers", "Customer"),
			},
			"/customer/{customerId}": map[string]any{
				"get": lookupOperation("getCustomer", "Get specific customer",
					"Retrieve details of a specific customer by ID",
					"customerId", "The customer ID", "Customer details", "Customer", "Customer not found"),
			},
			"/inventory": map[string]any{
				"get": map[string]any{
					"operationId": "getInventory",
					"summary":     "Check inventory levels",
					"description": "Retrieve current inventory levels for all products",
					"responses": map[string]any{
						"200": jsonResponse("Inventory information", object(map[string]any{
							"inventory": array(object(map[string]any{
								"product_id": map[string]any{"type": "string"},
								"name":       map[string]any{"type": "string"},
								"stock":      map[string]any{"type": "integer"},
							})),
							"total_products": map[string]any{"type": "integer"},
						})),
					},
				},
			},
			"/analytics/sales": map[string]any{
				"get": map[string]any{
					"operationId": "getSalesAnalytics",
					"summary":     "Get sales analytics",
					"description": "Retrieve sales analytics and metrics",
					"responses": map[string]any{
						"200": jsonResponse("Sales analytics data", object(map[string]any{
							"total_sales":         map[string]any{"type": "number", "description": "Total sales amount"},
							"completed_orders":    map[string]any{"type": "integer", "description": "Number of completed orders"},
							"average_order_value": map[string]any{"type": "number", "description": "Average order value"},
						})),
					},
				},
			},
			"/purchase": map[string]any{
				"post": map[string]any{
					"operationId": "createPurchase",
					"summary":     "Process purchase",
					"description": "Process a purchase transaction for an order",
					"requestBody": jsonRequestBody(map[string]any{
						"type": "object",
						"properties": map[string]any{
							"order_id":       map[string]any{"type": "string", "description": "Order identifier"},
							"amount":         map[string]any{"type": "number", "description": "Purchase amount"},
							"payment_method": map[string]any{"type": "string", "description": "Payment method (e.g., credit_card)"},
						},
						"required": []any{"order_id", "amount"},
					}),
					"responses": map[string]any{
						"201": jsonResponse("Purchase processed successfully", ref("Purchase")),
					},
				},
			},
			"/purchases": map[string]any{
				"get": listOperation("listPurchases", "List all purchases",
					"Retrieve a list of all purchase transactions",
					"List of purchases", "purchases", "Purchase"),
			},
		},
		"components": map[string]any{
			"schemas": map[string]any{
				"Order": object(map[string]any{
					"id":          map[string]any{"type": "string", "description": "Order identifier"},
					"customer_id": map[string]any{"type": "string", "description": "Customer identifier"},
					"items":       array(lineItemSchema()),
					"total":       map[string]any{"type": "number", "description": "Total order amount"},
					"status":      map[string]any{"type": "string", "enum": []any{"pending", "completed", "cancelled"}},
					"created_at":  map[string]any{"type": "string", "format": "date-time"},
				}),
				"Product": object(map[string]any{
					"id":       map[string]any{"type": "string", "description": "Product identifier"},
					"name":     map[string]any{"type": "string", "description": "Product name"},
					"price":    map[string]any{"type": "number", "description": "Product price"},
					"category": map[string]any{"type": "string", "description": "Product category"},
					"stock":    map[string]any{"type": "integer", "description": "Available stock quantity"},
				}),
				"Customer": object(map[string]any{
					"id":    map[string]any{"type": "string", "description": "Customer identifier"},
					"name":  map[string]any{"type": "string", "description": "Customer name"},
					"email": map[string]any{"type": "string", "format": "email", "description": "Customer email"},
					"phone": map[string]any{"type": "string", "description": "Customer phone number"},
				}),
				"Purchase": object(map[string]any{
					"id":             map[string]any{"type": "string", "description": "Purchase identifier"},
					"order_id":       map[string]any{"type": "string", "description": "Associated order ID"},
					"payment_method": map[string]any{"type": "string", "description": "Payment method used"},
					"payment_status": map[string]any{"type": "string", "enum": []any{"pending", "completed", "failed"}},
					"amount":         map[string]any{"type": "number", "description": "Purchase amount"},
					"transaction_id": map[string]any{"type": "string", "description": "Transaction identifier"},
					"processed_at":   map[string]any{"type": "string", "format": "date-time"},
				}),
			},
		},
	}
}

// MarshalDocument serializes the document for use as an inline target payload.
func MarshalDocument(baseURL string) ([]byte, error) {
	return json.Marshal(NewDocument(baseURL))
}

func ref(name string) map[string]any {
	return map[string]any{"$ref": "#/components/schemas/" + name}
}

func object(props map[string]any) map[string]any {
	return map[string]any{"type": "object", "properties": props}
}

func array(items map[string]any) map[string]any {
	return map[string]any{"type": "array", "items": items}
}

func lineItemSchema() map[string]any {
	return object(map[string]any{
		"product_id": map[string]any{"type": "string"},
		"name":       map[string]any{"type": "string"},
		"quantity":   map[string]any{"type": "integer"},
		"price":      map[string]any{"type": "number"},
	})
}

func jsonResponse(desc string, schema map[string]any) map[string]any {
	return map[string]any{
		"description": desc,
		"content": map[string]any{
			"application/json": map[string]any{"schema": schema},
		},
	}
}

func jsonRequestBody(schema map[string]any) map[string]any {
	return map[string]any{
		"required": true,
		"content": map[string]any{
			"application/json": map[string]any{"schema": schema},
		},
	}
}

// listOperation describes a GET collection endpoint returning the items under
// field plus a count.
func listOperation(opID, summary, desc, respDesc, field, schemaName string) map[string]any {
	return map[string]any{
		"operationId": opID,
		"summary":     summary,
		"description": desc,
		"responses": map[string]any{
			"200": jsonResponse(respDesc, object(map[string]any{
				field:   array(ref(schemaName)),
				"count": map[string]any{"type": "integer"},
			})),
		},
	}
}

// lookupOperation describes a GET-by-id endpoint with a 404 alternative.
func lookupOperation(opID, summary, desc, paramName, paramDesc, respDesc, schemaName, notFound string) map[string]any {
	return map[string]any{
		"operationId": opID,
		"summary":     summary,
		"description": desc,
		"parameters": []any{
			map[string]any{
				"name":        paramName,
				"in":          "path",
				"required":    true,
				"schema":      map[string]any{"type": "string"},
				"description": paramDesc,
			},
		},
		"responses": map[string]any{
			"200": jsonResponse(respDesc, ref(schemaName)),
			"404": map[string]any{"description": notFound},
		},
	}
}
