package auth

// Claims es lo que el gate de sesión extrae del token.
type Claims struct {
	UserID string
	Email  string
}
