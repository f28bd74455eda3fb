package service

// SecretService defines the interface for onboarding token secret generation
// and verification.
type SecretService interface {
	// GenerateSecret creates a cryptographically secure random secret and its
	// Argon2id hash. The plain secret is shown once and never stored.
	GenerateSecret() (plainSecret string, hashedSecret string, err error)

	// CompareSecret verifies a plain secret against its stored hash.
	CompareSecret(plainSecret string, hashedSecret string) bool
}
