package catalog

// Variant is one purchasable pack size of a product.
type Variant struct {
	WeightValue float64 `json:"weightValue"`
	WeightUnit  string  `json:"weightUnit"`
	Price       float64 `json:"price"`
	Discount    float64 `json:"discount"`
	InStock     bool    `json:"inStock"`
}

// Product is a search result row.
type Product struct {
	ProductCode string    `json:"productCode"`
	ProductName string    `json:"productName"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"imageUrl"`
	Variants    []Variant `json:"variants"`
}
