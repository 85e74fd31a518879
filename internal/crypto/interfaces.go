package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_service_mock.go -package=mock

// PasswordService handles server-side password hashing. It knows nothing
// about the network, the database, or users; its only job is to derive and
// verify password hashes.
type PasswordService interface {
	// Hash derives a storable hash from the plaintext password.
	Hash(password string) (string, error)

	// Compare checks password against a previously derived hash.
	// Returns ErrPasswordMismatch when they do not match.
	Compare(hash, password string) error
}
