package utils

import "golang.org/x/crypto/bcrypt"

// bcrypt cost used for stored passwords. Intentionally expensive.
const passwordHashCost = 12

// HashPassword hashes the plain password using bcrypt.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	return string(bytes), err
}

// CheckPasswordHash compares a plain password against its bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
