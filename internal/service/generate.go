package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	codeDigits    = 6
	tokenAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// generateCode returns a zero padded six digit confirmation code.
func generateCode() (string, error) {
	limit := big.NewInt(1_000_000)
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", fmt.Errorf("failed to read random code: %w", err)
	}
	return fmt.Sprintf("%0*d", codeDigits, n.Int64()), nil
}

// generateToken returns length characters drawn uniformly from [a-z0-9].
func generateToken(length int) (string, error) {
	alphabetLen := big.NewInt(int64(len(tokenAlphabet)))
	token := make([]byte, length)
	for i := range token {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to read random token: %w", err)
		}
		token[i] = tokenAlphabet[n.Int64()]
	}
	return string(token), nil
}
