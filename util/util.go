package util

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/google/uuid"
)

// Nonce returns a per-request unique token suitable for the oauth_nonce
// parameter.
func Nonce() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// RandomString generates a random base64 string from s bytes of entropy.
func RandomString(s int) (string, error) {
	b := make([]byte, s)

	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(b), nil
}
