package domain

// Category groups products for the catalog.
type Category struct {
	ID   int64
	Name string
}
