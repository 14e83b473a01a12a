package accounts

import "time"

// User es la cuenta de login. Email se guarda normalizado (trim + minúsculas).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Session es lo que devuelven register/login: el usuario y su token firmado.
type Session struct {
	User      User
	Token     string
	ExpiresAt time.Time
}
