package sales

// DemoOrders returns the demo sales orders loaded at startup when demo
// seeding is enabled.
func DemoOrders() []Order {
	return []Order{
		{
			OrderNumber: "ORD-2025-001",
			Client:      "BeautyMart Retail Chain",
			Products: []OrderProduct{
				{Name: "Lavender Dreams Shampoo", Quantity: 500, Price: 24.99},
				{Name: "Coconut Oil Conditioner", Quantity: 500, Price: 28.99},
			},
			TotalAmount:    26990.00,
			OrderDate:      "2025-10-15",
			DueDate:        "2025-10-30",
			PaymentStatus:  "Paid",
			DeliveryStatus: "Delivered",
		},
		{
			OrderNumber: "ORD-2025-002",
			Client:      "Luxury Spa International",
			Products: []OrderProduct{
				{Name: "Rose Garden Perfume", Quantity: 200, Price: 89.99},
			},
			TotalAmount:    17998.00,
			OrderDate:      "2025-10-18",
			DueDate:        "2025-11-05",
			PaymentStatus:  "Pending",
			DeliveryStatus: "Processing",
		},
		{
			OrderNumber: "ORD-2025-003",
			Client:      "Online Beauty Store",
			Products: []OrderProduct{
				{Name: "Anti-Aging Serum", Quantity: 150, Price: 125.99},
			},
			TotalAmount:    18898.50,
			OrderDate:      "2025-10-10",
			DueDate:        "2025-10-25",
			PaymentStatus:  "Overdue",
			DeliveryStatus: "Shipped",
		},
	}
}
