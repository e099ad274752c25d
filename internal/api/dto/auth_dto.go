package dto

// LoginRequest payload for login.
type LoginRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

// SignupRequest payload for opening a customer account.
type SignupRequest struct {
	UserName string  `json:"userName"`
	Password string  `json:"password"`
	Name     string  `json:"name"`
	Phone    string  `json:"phone"`
	Address  *string `json:"address,omitempty"`
}

// AuthUser is the identity summary returned alongside a token. ID and
// CustomerID are omitted for the admin override identity.
type AuthUser struct {
	ID         *int64 `json:"id,omitempty"`
	CustomerID *int64 `json:"customerId,omitempty"`
	UserName   string `json:"userName"`
	Name       string `json:"name,omitempty"`
	Phone      string `json:"phone,omitempty"`
	IsAdmin    bool   `json:"isAdmin"`
}

// AuthResponse is the login/signup response body.
type AuthResponse struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}

// ProfileResponse is the /auth/me response for account-backed callers.
type ProfileResponse struct {
	ID         int64   `json:"id"`
	UserName   string  `json:"userName"`
	CustomerID int64   `json:"customerId"`
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	Address    *string `json:"address"`
	IsAdmin    bool    `json:"isAdmin"`
}
