// Package inventory manages the finished-goods stock collection.
package inventory

// Stock status labels derived from quantity versus minimum quantity. The
// status is never persisted; it is recomputed on every read.
const (
	StatusOutOfStock = "Out of Stock"
	StatusLowStock   = "Low Stock"
	StatusInStock    = "In Stock"
)

// Item is a stocked product.
type Item struct {
	ID          int64   `json:"id"`
	SKU         string  `json:"sku"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Quantity    int     `json:"quantity"`
	MinQuantity int     `json:"min_quantity"`
	Price       float64 `json:"price"`
	Supplier    string  `json:"supplier"`
	ExpiryDate  string  `json:"expiry_date"`
	TotalSold   int     `json:"total_sold"`
}

// StatusOf derives the display status of an item from its quantities.
func StatusOf(item Item) string {
	switch {
	case item.Quantity == 0:
		return StatusOutOfStock
	case item.Quantity < item.MinQuantity:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// ItemView is an Item enriched with its derived status for read responses.
type ItemView struct {
	Item
	Status string `json:"status"`
}

// ViewOf attaches the derived status without touching the stored record.
func ViewOf(item Item) ItemView {
	return ItemView{Item: item, Status: StatusOf(item)}
}
