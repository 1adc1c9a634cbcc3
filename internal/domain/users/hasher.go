package users

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword aplica sha256 y devuelve el digest en hex.
// Determinístico y sin salt: el login compara hash(input) == hash almacenado.
// Es débil frente a rainbow tables, pero cambiarlo rompe los hashes ya
// guardados; ver DESIGN.md antes de tocar esto.
func HashPassword(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}
