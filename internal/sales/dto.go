package sales

// CreateOrderRequest carries the fields for a new sales order. Products
// default to an empty sequence when omitted.
type CreateOrderRequest struct {
	OrderNumber    string         `json:"order_number" validate:"required"`
	Client         string         `json:"client" validate:"required"`
	Products       []OrderProduct `json:"products"`
	TotalAmount    *float64       `json:"total_amount" validate:"required,gte=0"`
	OrderDate      string         `json:"order_date" validate:"required"`
	DueDate        string         `json:"due_date" validate:"required"`
	PaymentStatus  string         `json:"payment_status" validate:"required"`
	DeliveryStatus string         `json:"delivery_status" validate:"required"`
}

// UpdateOrderRequest replaces the scalar fields of an order. The stored
// products list carries over unchanged.
type UpdateOrderRequest struct {
	OrderNumber    string   `json:"order_number" validate:"required"`
	Client         string   `json:"client" validate:"required"`
	TotalAmount    *float64 `json:"total_amount" validate:"required,gte=0"`
	OrderDate      string   `json:"order_date" validate:"required"`
	DueDate        string   `json:"due_date" validate:"required"`
	PaymentStatus  string   `json:"payment_status" validate:"required"`
	DeliveryStatus string   `json:"delivery_status" validate:"required"`
}
