// Package kdf implements the key/IV derivation functions used by
// PasswordBasedCipher. OpenSSLKdf reproduces OpenSSL's legacy
// EVP_BytesToKey (MD5, one digest round) so cryptocore's
// password-based envelopes are readable by openssl enc and vice versa.
// Argon2Kdf trades that interoperability for a modern, memory-hard KDF.
package kdf

import (
	"crypto/md5"
	"crypto/rand"

	"goxfer/cryptocore/engine"
	"goxfer/cryptocore/wordarray"
)

type opensslKdf struct{}

// OpenSSLKdf derives key and IV material the way OpenSSL's default
// EVP_BytesToKey does: repeated MD5(prev || password || salt), one
// round producing 16 bytes at a time, concatenated until enough key and
// IV material has been produced.
var OpenSSLKdf engine.Kdf = opensslKdf{}

func init() {
	engine.DefaultKdf = OpenSSLKdf
}

// Execute derives keySizeWords+ivSizeWords words of material from
// password and salt via EVP_BytesToKey. If salt is nil, 8 random bytes
// are generated and returned in the result.
func (opensslKdf) Execute(password []byte, keySizeWords, ivSizeWords int, salt *wordarray.WordArray) (*engine.CipherParams, error) {
	if salt == nil {
		saltBytes := make([]byte, 8)
		if _, err := rand.Read(saltBytes); err != nil {
			return nil, err
		}
		salt = wordarray.FromBytes(saltBytes)
	}

	neededBytes := (keySizeWords + ivSizeWords) * 4
	saltBytes := salt.Bytes()

	derived := make([]byte, 0, neededBytes)
	var prev []byte
	for len(derived) < neededBytes {
		h := md5.New()
		h.Write(prev)
		h.Write(password)
		h.Write(saltBytes)
		prev = h.Sum(nil)
		derived = append(derived, prev...)
	}
	derived = derived[:neededBytes]

	keyBytes := derived[:keySizeWords*4]
	ivBytes := derived[keySizeWords*4:]

	return &engine.CipherParams{
		Key:  wordarray.FromBytes(keyBytes),
		IV:   wordarray.FromBytes(ivBytes),
		Salt: salt,
	}, nil
}
