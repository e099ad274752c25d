package domain

import "time"

// Customer is the profile a storefront account belongs to.
type Customer struct {
	ID        int64
	Name      string
	Phone     string
	Address   *string
	CreatedAt time.Time
}
