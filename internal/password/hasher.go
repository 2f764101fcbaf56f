package password

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/dtroode/authcore/internal/model"
)

const saltLength = 10

var _ model.PasswordHasher = (*Hasher)(nil)

// Hasher produces "salt:digest" hashes where digest is HMAC-SHA256 of the
// password keyed by the hex encoded salt.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Hash hashes plaintext with a fresh random salt.
func (h *Hasher) Hash(plaintext string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	saltHex := hex.EncodeToString(salt)
	return saltHex + ":" + digest(plaintext, saltHex), nil
}

// Verify reports whether plaintext matches the stored hash.
// It panics if stored is not in "salt:digest" form.
func (h *Hasher) Verify(plaintext, stored string) bool {
	salt, storedDigest, ok := strings.Cut(stored, ":")
	if !ok {
		panic("password: malformed stored hash")
	}

	return digest(plaintext, salt) == storedDigest
}

func digest(plaintext, salt string) string {
	mac := hmac.New(sha256.New, []byte(salt))
	mac.Write([]byte(plaintext))
	return hex.EncodeToString(mac.Sum(nil))
}
