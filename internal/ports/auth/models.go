package auth

// Claims representa la información extraída de un token verificado.
type Claims struct {
	UserID  int64
	TokenID string // jti, único por emisión
}
