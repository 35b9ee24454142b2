package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash se compara cuando el email no existe.
var dummyHash = mustHash("Dummy#Passw0rd")

// HashPassword genera un hash bcrypt con sal.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword compara password contra el hash; nil si coinciden.
func CheckPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func mustHash(password string) string {
	h, err := HashPassword(password)
	if err != nil {
		panic(err)
	}
	return h
}
