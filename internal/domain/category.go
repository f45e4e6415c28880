package domain

// Category groups aid requests. The set is seeded at startup and read-only.
type Category struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// DefaultCategories is the fixed seed set, in id order.
var DefaultCategories = []Category{
	{Name: "Food"},
	{Name: "Medicine"},
	{Name: "Clothing"},
	{Name: "Hygiene"},
	{Name: "Household"},
	{Name: "Other"},
}
