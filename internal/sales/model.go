// Package sales manages the sales order collection.
package sales

// OrderProduct is one product position on a sales order.
type OrderProduct struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Order is a customer sales order. Payment and delivery statuses are
// free-form labels (e.g. Paid/Pending/Overdue, Processing/Shipped/Delivered).
type Order struct {
	ID             int64          `json:"id"`
	OrderNumber    string         `json:"order_number"`
	Client         string         `json:"client"`
	Products       []OrderProduct `json:"products"`
	TotalAmount    float64        `json:"total_amount"`
	OrderDate      string         `json:"order_date"`
	DueDate        string         `json:"due_date"`
	PaymentStatus  string         `json:"payment_status"`
	DeliveryStatus string         `json:"delivery_status"`
}
