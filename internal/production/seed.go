package production

// DemoLines returns the demo production lines loaded at startup when demo
// seeding is enabled.
func DemoLines() []Line {
	return []Line{
		{
			Name:    "Shampoo Production Line",
			Product: "Lavender Dreams Shampoo",
			Materials: []Material{
				{Name: "Lavender Extract", Quantity: 50, Unit: "ml"},
				{Name: "Surfactant Base", Quantity: 200, Unit: "ml"},
				{Name: "Preservatives", Quantity: 5, Unit: "ml"},
			},
			OutputRate:       450,
			OutputUnit:       "bottles",
			Status:           StatusActive,
			Efficiency:       92.5,
			TodayProduced:    3325,
			TargetProduction: 3600,
		},
		{
			Name:    "Perfume Blending Line",
			Product: "Rose Garden Perfume",
			Materials: []Material{
				{Name: "Rose Essence", Quantity: 30, Unit: "ml"},
				{Name: "Alcohol Base", Quantity: 40, Unit: "ml"},
				{Name: "Fixative", Quantity: 5, Unit: "ml"},
			},
			OutputRate:       180,
			OutputUnit:       "bottles",
			Status:           StatusActive,
			Efficiency:       88.7,
			TodayProduced:    1276,
			TargetProduction: 1440,
		},
		{
			Name:    "Cream Manufacturing Line",
			Product: "Vitamin C Face Cream",
			Materials: []Material{
				{Name: "Vitamin C Powder", Quantity: 10, Unit: "g"},
				{Name: "Emulsion Base", Quantity: 45, Unit: "ml"},
			},
			OutputRate:       300,
			OutputUnit:       "jars",
			Status:           "maintenance",
			Efficiency:       0,
			TodayProduced:    0,
			TargetProduction: 2400,
		},
	}
}
