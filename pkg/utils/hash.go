package utils

import "golang.org/x/crypto/bcrypt"

const passwordCost = 12

func HashPassword(p string) (string, error) {
	return HashPasswordCost(p, passwordCost)
}

// HashPasswordCost lets tests and seeders trade strength for speed.
func HashPasswordCost(p string, cost int) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(p), cost)
	return string(bytes), err
}

func CheckPassword(hash, pass string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pass))
	return err == nil
}
