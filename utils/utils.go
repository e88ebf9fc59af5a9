package utils

import (
	"crypto/rand"
	"fmt"
)

// Rand returns n cryptographically random bytes, used for the workbench's
// remembered-credential index and any other place a fresh random ID (not
// key material) is needed.
func Rand(n int) ([]byte, error) {
	b := make([]byte, n)
	if read, err := rand.Read(b); err != nil || read != n {
		return nil, fmt.Errorf("failed to generate random bytes: %v", err)
	}
	return b, nil
}
