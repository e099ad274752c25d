package auth

// AdminOverride holds the configured break-glass credentials. Matching them
// yields admin claims with no backing account row. The password is compared
// in plain text, unlike stored account passwords; kept as-is for parity
// with existing deployments.
type AdminOverride struct {
	UserName string
	Password string
}

// Check reports whether the presented pair matches the configured one.
func (a AdminOverride) Check(userName, password string) bool {
	return userName == a.UserName && password == a.Password
}
