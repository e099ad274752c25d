package domain

// Product is a sellable catalog item. Price is stored in minor units.
type Product struct {
	ID         int64
	Name       string
	Price      int64
	CategoryID int64
}

// ProductWithCategory is the catalog projection joining the category name.
// CategoryName is nil when the category row is gone (left join).
type ProductWithCategory struct {
	ID           int64
	Name         string
	Price        int64
	CategoryID   int64
	CategoryName *string
}
