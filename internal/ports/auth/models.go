package auth

// Claims representa la información extraída del token.
// Email se usa como clave legacy de algunos registros antiguos de plantas.
type Claims struct {
	UserID string
	Email  string
}
