// Package format implements the wire formats CipherParams can be
// serialized to and parsed from. OpenSSL reproduces the "Salted__" +
// base64 envelope openssl enc emits and reads, and registers itself as
// engine.DefaultFormatter.
package format

import (
	"encoding/base64"
	"strings"

	"goxfer/cryptocore/engine"
	"goxfer/cryptocore/wordarray"
)

const saltedPrefix = "Salted__"
const saltSizeBytes = 8

type opensslFormatter struct{}

// OpenSSL is the Formatter matching openssl enc's default envelope:
// base64("Salted__" || 8-byte salt || ciphertext) when a salt is present,
// or plain base64(ciphertext) otherwise.
var OpenSSL engine.Formatter = opensslFormatter{}

func init() {
	engine.DefaultFormatter = OpenSSL
}

// Stringify base64-encodes c.Ciphertext, prefixed with the OpenSSL salt
// header when c.Salt is set.
func (opensslFormatter) Stringify(c *engine.CipherParams) (string, error) {
	if c == nil || c.Ciphertext == nil {
		return "", &engine.FormatError{Reason: "ciphertext is required"}
	}

	var raw []byte
	if c.Salt != nil {
		if c.Salt.SigBytes != saltSizeBytes {
			return "", &engine.FormatError{Reason: "salt must be 8 bytes for the OpenSSL format"}
		}
		raw = make([]byte, 0, len(saltedPrefix)+saltSizeBytes+len(c.Ciphertext.Bytes()))
		raw = append(raw, []byte(saltedPrefix)...)
		raw = append(raw, c.Salt.Bytes()...)
		raw = append(raw, c.Ciphertext.Bytes()...)
	} else {
		raw = c.Ciphertext.Bytes()
	}

	return base64.StdEncoding.EncodeToString(raw), nil
}

// Parse decodes s and splits off the OpenSSL salt header if present.
func (opensslFormatter) Parse(s string) (*engine.CipherParams, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, &engine.FormatError{Reason: "invalid base64: " + err.Error()}
	}

	if len(raw) >= len(saltedPrefix) && string(raw[:len(saltedPrefix)]) == saltedPrefix {
		if len(raw) < len(saltedPrefix)+saltSizeBytes {
			return nil, &engine.FormatError{Reason: "truncated salt header"}
		}
		salt := raw[len(saltedPrefix) : len(saltedPrefix)+saltSizeBytes]
		ciphertext := raw[len(saltedPrefix)+saltSizeBytes:]
		return &engine.CipherParams{
			Ciphertext: wordarray.FromBytes(ciphertext),
			Salt:       wordarray.FromBytes(salt),
		}, nil
	}

	return &engine.CipherParams{Ciphertext: wordarray.FromBytes(raw)}, nil
}
