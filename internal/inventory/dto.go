package inventory

// CreateItemRequest carries the fields for a new item. Numeric fields are
// pointers so that a legitimate zero (e.g. quantity 0) is distinguishable
// from an omitted field.
type CreateItemRequest struct {
	SKU         string   `json:"sku" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Quantity    *int     `json:"quantity" validate:"required,gte=0"`
	MinQuantity *int     `json:"min_quantity" validate:"required,gte=0"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Supplier    string   `json:"supplier" validate:"required"`
	ExpiryDate  string   `json:"expiry_date"`
}

// UpdateItemRequest replaces every mutable field of an item. Partial updates
// are not supported; id and total_sold are preserved by the service.
type UpdateItemRequest struct {
	SKU         string   `json:"sku" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Quantity    *int     `json:"quantity" validate:"required,gte=0"`
	MinQuantity *int     `json:"min_quantity" validate:"required,gte=0"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Supplier    string   `json:"supplier" validate:"required"`
	ExpiryDate  string   `json:"expiry_date"`
}
