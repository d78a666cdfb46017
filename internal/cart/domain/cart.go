package domain

// Entry is the server's sparse cart representation: which product, how many.
// The server guarantees at most one entry per product.
type Entry struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"qty"`
}

// LineItem is an Entry joined with its product's display fields. Line items
// are always rebuilt from the latest server cart plus the loaded catalog,
// never edited in place.
type LineItem struct {
	ProductID string
	Quantity  int
	Name      string
	Category  string
	Cost      int64
	Rating    int
	ImageURL  string
}

// TotalValue sums quantity times cost over all items.
func TotalValue(items []LineItem) int64 {
	var total int64
	for _, it := range items {
		total += int64(it.Quantity) * it.Cost
	}
	return total
}

// TotalItems counts units across all line items.
func TotalItems(items []LineItem) int {
	count := 0
	for _, it := range items {
		count += it.Quantity
	}
	return count
}
