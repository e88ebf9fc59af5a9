package kdf

import (
	"crypto/rand"

	"golang.org/x/crypto/argon2"

	"goxfer/cryptocore/engine"
	"goxfer/cryptocore/wordarray"
)

// Argon2Params tunes Argon2Kdf. Zero values fall back to Time=1,
// Memory=64*1024 (64 MiB), Threads=4 — conservative interactive-use
// defaults, not the higher figures appropriate for a dedicated login path.
type Argon2Params struct {
	Time    uint32
	Memory  uint32
	Threads uint8
}

func (p Argon2Params) withDefaults() Argon2Params {
	if p.Time == 0 {
		p.Time = 1
	}
	if p.Memory == 0 {
		p.Memory = 64 * 1024
	}
	if p.Threads == 0 {
		p.Threads = 4
	}
	return p
}

// Argon2Kdf derives key and IV material with Argon2id. It is not
// wire-compatible with OpenSSL's EVP_BytesToKey: a CipherParams produced
// with Argon2Kdf can only be decrypted by another cryptocore instance
// configured with the same Argon2Kdf, not by openssl enc.
type Argon2Kdf struct {
	Params Argon2Params
}

// Execute derives keySizeWords+ivSizeWords words of material via
// argon2.IDKey. If salt is nil, 16 random bytes are generated and
// returned in the result.
func (k Argon2Kdf) Execute(password []byte, keySizeWords, ivSizeWords int, salt *wordarray.WordArray) (*engine.CipherParams, error) {
	if salt == nil {
		saltBytes := make([]byte, 16)
		if _, err := rand.Read(saltBytes); err != nil {
			return nil, err
		}
		salt = wordarray.FromBytes(saltBytes)
	}

	params := k.Params.withDefaults()
	neededBytes := uint32((keySizeWords + ivSizeWords) * 4)
	derived := argon2.IDKey(password, salt.Bytes(), params.Time, params.Memory, params.Threads, neededBytes)

	keyBytes := derived[:keySizeWords*4]
	ivBytes := derived[keySizeWords*4:]

	return &engine.CipherParams{
		Key:  wordarray.FromBytes(keyBytes),
		IV:   wordarray.FromBytes(ivBytes),
		Salt: salt,
	}, nil
}
