package helpers

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a salted bcrypt digest using the given cost. The salt
// is embedded in the digest, so the same password hashes differently on
// every call while still verifying.
func HashPassword(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword reports whether plain matches the bcrypt digest. A
// malformed digest is just a mismatch, never an error.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
