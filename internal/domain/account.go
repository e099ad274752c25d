package domain

// Account is a login credential bound one-to-one to a customer.
type Account struct {
	ID           int64
	CustomerID   int64
	UserName     string
	PasswordHash string
}

// AccountWithCustomer is the admin listing projection joining customer details.
type AccountWithCustomer struct {
	ID            int64
	CustomerID    int64
	UserName      string
	CustomerName  *string
	CustomerPhone *string
}

// AccountProfile is the self-view projection returned by the profile
// endpoint, joining the full customer record.
type AccountProfile struct {
	ID              int64
	CustomerID      int64
	UserName        string
	CustomerName    string
	CustomerPhone   string
	CustomerAddress *string
}
