package domain

// DefaultSlotKey names the durable slot that holds the whole collection.
const DefaultSlotKey = "productos"

// Product is a catalog record keyed by Code.
//
// JSON keys follow the persisted blob layout, which predates this package.
type Product struct {
	Code  string  `json:"codigo"`
	Name  string  `json:"nombre"`
	Cost  float64 `json:"costo"`
	Price float64 `json:"precio"`
	Value float64 `json:"valor"`
}

// BlankProduct returns the empty draft template: empty code and name, zero numbers.
func BlankProduct() Product {
	return Product{}
}

// SeedProducts returns the records stored on first run, when the slot is absent.
func SeedProducts() []Product {
	return []Product{
		{Code: "A001", Name: `Monitor 27"`, Cost: 350, Price: 99.99, Value: 120},
		{Code: "B023", Name: "Teclado Mecánico", Cost: 40, Price: 75.00, Value: 85},
	}
}

// CloneProducts copies a slice of products so the result never aliases src.
func CloneProducts(src []Product) []Product {
	if src == nil {
		return nil
	}
	out := make([]Product, len(src))
	copy(out, src)
	return out
}

// IndexOf returns the position of the product with the given code, or -1.
func IndexOf(products []Product, code string) int {
	for i := range products {
		if products[i].Code == code {
			return i
		}
	}
	return -1
}
