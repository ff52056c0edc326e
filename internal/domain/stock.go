package domain

// StockRow is the quantity of one product at a point
type StockRow struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

// Product is a catalogue item that can be received
type Product struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Unit          string  `json:"unit"`
	PurchasePrice float64 `json:"purchase_price"`
	RetailPrice   float64 `json:"retail_price"`
	MinStock      int     `json:"min_stock"`
}

// Receipt adds quantity of a product to exactly one point
type Receipt struct {
	ProductID   int64  `json:"product_id"`
	Quantity    int    `json:"quantity"`
	StoreID     *int64 `json:"store_id,omitempty"`
	WarehouseID *int64 `json:"warehouse_id,omitempty"`
}

// NewReceipt builds a receipt addressed to target
func NewReceipt(target StockTarget, productID int64, quantity int) Receipt {
	r := Receipt{ProductID: productID, Quantity: quantity}
	id := target.ID
	if target.Kind == KindWarehouse {
		r.WarehouseID = &id
	} else {
		r.StoreID = &id
	}
	return r
}

// StockTarget identifies the point whose stock is being viewed
type StockTarget struct {
	Kind  Kind
	ID    int64
	Title string
}
