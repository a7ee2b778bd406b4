package dto

// AddInventoryProductRequest is the payload for adding a stock-bearing
// product to the inventory.
type AddInventoryProductRequest struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Stock        int32   `json:"stock"`
	MinimumStock int32   `json:"minimumStock"`
}

// CreateCatalogProductRequest is the payload for adding a catalog entry.
type CreateCatalogProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
}
