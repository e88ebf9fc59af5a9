package engine

import (
	"goxfer/cryptocore/blockmode"
	"goxfer/cryptocore/padding"
	"goxfer/cryptocore/wordarray"
)

// Formatter serializes/parses a CipherParams to/from a wire string. The
// format package's OpenSSL type is the default implementation; it
// registers itself as DefaultFormatter on import.
type Formatter interface {
	Stringify(c *CipherParams) (string, error)
	Parse(s string) (*CipherParams, error)
}

// Kdf derives key material (and, if salt is nil, a fresh salt) from a
// password. The kdf package's OpenSSLKdf registers itself as DefaultKdf
// on import.
type Kdf interface {
	Execute(password []byte, keySizeWords, ivSizeWords int, salt *wordarray.WordArray) (*CipherParams, error)
}

// DefaultFormatter is used by SerializableConfig when Format is nil. It is
// nil until something imports the format package, whose init registers
// format.OpenSSL here — the same registration pattern database/sql and
// image use to let a leaf package supply a default without an import
// cycle back to the package declaring the interface.
var DefaultFormatter Formatter

// DefaultKdf is used by PasswordBasedConfig when KDF is nil, registered by
// the kdf package's init the same way DefaultFormatter is.
var DefaultKdf Kdf

// Processor is what an AlgorithmHandle hands back: something that can
// consume input incrementally and be finalized exactly once.
type Processor interface {
	Process(input *wordarray.WordArray) (*wordarray.WordArray, error)
	Finalize(input *wordarray.WordArray) (*wordarray.WordArray, error)
	BlockSizeWords() int
}

// AlgorithmHandle is the cipher-primitive contract SerializableCipher and
// PasswordBasedCipher drive: key/IV sizing plus per-message processor
// factories. Concrete primitives (primitive.AES, ...) implement this by
// composing a BlockTransformer with the engine's generic processors —
// they never reimplement the buffered pump themselves.
type AlgorithmHandle interface {
	KeySizeWords() int
	IVSizeWords() int
	CreateEncryptor(key *wordarray.WordArray, cfg BlockCipherConfig) (Processor, error)
	CreateDecryptor(key *wordarray.WordArray, cfg BlockCipherConfig) (Processor, error)
}

// CipherParams is the self-describing record produced by SerializableCipher
// and PasswordBasedCipher: ciphertext plus whatever metadata is needed to
// decrypt and/or re-serialize it. Every field is optional; consumers
// should check for nil before use. Immutable to consumers after creation
// except through MixIn.
type CipherParams struct {
	Ciphertext *wordarray.WordArray
	Key        *wordarray.WordArray
	IV         *wordarray.WordArray
	Salt       *wordarray.WordArray

	Algorithm AlgorithmHandle
	Mode      blockmode.Handle
	Padding   padding.Padding
	BlockSize int
	Formatter Formatter
}

// MixIn overwrites c's fields with any non-nil/non-zero fields set on
// other, and returns c for chaining.
func (c *CipherParams) MixIn(other *CipherParams) *CipherParams {
	if other == nil {
		return c
	}
	if other.Ciphertext != nil {
		c.Ciphertext = other.Ciphertext
	}
	if other.Key != nil {
		c.Key = other.Key
	}
	if other.IV != nil {
		c.IV = other.IV
	}
	if other.Salt != nil {
		c.Salt = other.Salt
	}
	if other.Algorithm != nil {
		c.Algorithm = other.Algorithm
	}
	if other.Mode != nil {
		c.Mode = other.Mode
	}
	if other.Padding != nil {
		c.Padding = other.Padding
	}
	if other.BlockSize != 0 {
		c.BlockSize = other.BlockSize
	}
	if other.Formatter != nil {
		c.Formatter = other.Formatter
	}
	return c
}
