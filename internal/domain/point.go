package domain

// Store represents a retail store
type Store struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// Warehouse represents a warehouse
type Warehouse struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Phone   string  `json:"phone"`
	Area    float64 `json:"area"`
}

// Point is the part of a store or warehouse shown in lists and forms
type Point struct {
	Kind    Kind
	ID      int64
	Name    string
	Address string
	Phone   string
	Area    float64
}

// Point converts the store for display
func (s Store) Point() Point {
	return Point{Kind: KindStore, ID: s.ID, Name: s.Name, Address: s.Address, Phone: s.Phone}
}

// Point converts the warehouse for display
func (w Warehouse) Point() Point {
	return Point{Kind: KindWarehouse, ID: w.ID, Name: w.Name, Address: w.Address, Phone: w.Phone, Area: w.Area}
}
