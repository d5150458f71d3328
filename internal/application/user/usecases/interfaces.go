package usecases

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenIssuer signs the access token handed out at login. It returns
// the signed token and its lifetime in seconds.
type TokenIssuer interface {
	Generate(userUUID string) (string, int64, error)
}
