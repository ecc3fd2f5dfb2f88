package password

import "golang.org/x/crypto/bcrypt"

// MaxLength is the longest password bcrypt accepts, in bytes.
const MaxLength = 72

// Hash returns the bcrypt hash of password at the library default cost.
func Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether password matches the stored bcrypt hash. Malformed
// hashes never match.
func Verify(password, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
