package engine

import (
	"goxfer/cryptocore/blockmode"
	"goxfer/cryptocore/padding"
	"goxfer/cryptocore/wordarray"
)

// XformMode fixes a processor's direction for its whole lifetime.
type XformMode int

const (
	Encrypt XformMode = iota
	Decrypt
)

func (m XformMode) String() string {
	if m == Decrypt {
		return "decrypt"
	}
	return "encrypt"
}

// BlockCipherConfig is the configuration a block-cipher processor
// recognizes: iv, mode (default CBC) and padding (default PKCS7).
// PasswordBasedConfig extends SerializableConfig extends this one by
// composition, not inheritance, per the source's own design notes.
type BlockCipherConfig struct {
	IV      *wordarray.WordArray
	Mode    blockmode.Handle
	Padding padding.Padding
}

func (c BlockCipherConfig) modeOrDefault() blockmode.Handle {
	if c.Mode != nil {
		return c.Mode
	}
	return blockmode.CBC
}

func (c BlockCipherConfig) paddingOrDefault() padding.Padding {
	if c.Padding != nil {
		return c.Padding
	}
	return padding.PKCS7
}

// SerializableConfig adds the formatter used to parse string ciphertexts
// and recorded on the resulting CipherParams. A nil Format uses
// DefaultFormatter (registered by the format package).
type SerializableConfig struct {
	BlockCipherConfig
	Format Formatter
}

func (c SerializableConfig) formatOrDefault() Formatter {
	if c.Format != nil {
		return c.Format
	}
	return DefaultFormatter
}

// PasswordBasedConfig adds the password-to-(key,iv,salt) derivation
// function. A nil KDF uses DefaultKdf (registered by the kdf package).
type PasswordBasedConfig struct {
	SerializableConfig
	KDF Kdf
}

func (c PasswordBasedConfig) kdfOrDefault() Kdf {
	if c.KDF != nil {
		return c.KDF
	}
	return DefaultKdf
}
