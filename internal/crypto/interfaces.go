package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into one-way hashes and checks
// candidates against them. Implementations must compare in constant time.
type PasswordHasher interface {
	// Hash returns a salted hash of password suitable for storage.
	Hash(password string) (string, error)

	// Compare reports whether password matches hash. It returns
	// ErrPasswordMismatch on a mismatch. An empty hash never matches but
	// costs the same as a real comparison, so callers may use it when the
	// account does not exist.
	Compare(hash, password string) error
}
