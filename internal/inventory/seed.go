package inventory

// DemoItems returns the demo stock catalogue loaded at startup when demo
// seeding is enabled.
func DemoItems() []Item {
	return []Item{
		{
			SKU:         "SHP-001",
			Name:        "Lavender Dreams Shampoo",
			Category:    "Shampoos",
			Quantity:    850,
			MinQuantity: 500,
			Price:       24.99,
			Supplier:    "Botanical Supplies Co",
			ExpiryDate:  "2026-08-15",
			TotalSold:   2450,
		},
		{
			SKU:         "PRF-102",
			Name:        "Rose Garden Perfume",
			Category:    "Perfumes",
			Quantity:    320,
			MinQuantity: 200,
			Price:       89.99,
			Supplier:    "Essence International",
			ExpiryDate:  "2027-12-31",
			TotalSold:   1850,
		},
		{
			SKU:         "CRM-203",
			Name:        "Vitamin C Face Cream",
			Category:    "Creams",
			Quantity:    0,
			MinQuantity: 300,
			Price:       45.99,
			Supplier:    "Derma Solutions Ltd",
			ExpiryDate:  "2026-03-20",
			TotalSold:   3200,
		},
		{
			SKU:         "LOT-304",
			Name:        "Hydrating Body Lotion",
			Category:    "Lotions",
			Quantity:    1250,
			MinQuantity: 600,
			Price:       18.99,
			Supplier:    "Natural Ingredients Inc",
			ExpiryDate:  "2026-06-10",
			TotalSold:   4100,
		},
		{
			SKU:         "SER-405",
			Name:        "Anti-Aging Serum",
			Category:    "Serums",
			Quantity:    180,
			MinQuantity: 150,
			Price:       125.99,
			Supplier:    "Premium Beauty Supply",
			ExpiryDate:  "2026-02-28",
			TotalSold:   1680,
		},
	}
}
