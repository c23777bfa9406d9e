package pkg

import "golang.org/x/crypto/bcrypt"

// PasswordHashCost is kept low enough for request-path registration.
const PasswordHashCost = 12

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	return BytesToString(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
