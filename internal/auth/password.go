package auth

import (
	"golang.org/x/crypto/bcrypt"

	"EduAgent/internal/apperr"
)

// padHash is compared against when an account does not exist, so login
// spends the same time on unknown accounts as on wrong passwords.
var padHash = mustHash("eduagent-timing-pad")

func mustHash(password string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(hashed)
}

func HashPassword(password string) (string, error) {
	if password == "" {
		return "", apperr.InvalidCredentials()
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hashed), err
}

// CheckPasswordHash verifies password against hash. An empty hash is
// replaced with the pad hash and always fails.
func CheckPasswordHash(password, hash string) bool {
	if hash == "" {
		hash = padHash
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
