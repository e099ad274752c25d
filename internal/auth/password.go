package auth

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// CredentialHasher abstracts password digestion so the stored-hash scheme
// can be swapped without touching call sites. Swapping schemes invalidates
// every previously stored digest.
type CredentialHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) bool
}

// SHA256Hasher is a single-round, unsalted SHA-256 hex digest. It exists
// for compatibility with hashes already in the accounts table and is not
// an acceptable scheme for a new credential store.
type SHA256Hasher struct{}

// Hash returns the hex-encoded SHA-256 digest of plain.
func (SHA256Hasher) Hash(plain string) (string, error) {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:]), nil
}

// Verify recomputes the digest and compares.
func (h SHA256Hasher) Verify(plain, digest string) bool {
	computed, _ := h.Hash(plain)
	return computed == digest
}

// BcryptHasher is the opt-in stronger scheme (AUTH_PASSWORD_SCHEME=bcrypt).
type BcryptHasher struct {
	Cost int
}

// Hash generates a bcrypt digest with the configured cost.
func (h BcryptHasher) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.Cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify compares plain against a bcrypt digest.
func (BcryptHasher) Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}

// NewHasher selects the hasher for the configured scheme, defaulting to the
// legacy SHA-256 scheme for any unrecognized value.
func NewHasher(scheme string, bcryptCost int) CredentialHasher {
	if scheme == "bcrypt" {
		return BcryptHasher{Cost: bcryptCost}
	}
	return SHA256Hasher{}
}
