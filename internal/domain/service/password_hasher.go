package service

// PasswordHasher protects profile passwords. Stored documents only hold the output of Hash.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Check reports whether password matches hash.
	Check(password, hash string) bool
	// IsHash lets an edit keep a previously stored hash untouched.
	IsHash(value string) bool
}
