package domain

// Product is a catalog entry as served by the backend. Cost is a plain
// integer amount; ratings are whole stars out of five. Products are never
// mutated client-side.
type Product struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Cost     int64  `json:"cost"`
	Rating   int    `json:"rating"`
	ImageURL string `json:"image"`
}
