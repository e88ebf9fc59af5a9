package format_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goxfer/cryptocore/engine"
	"goxfer/cryptocore/format"
	"goxfer/cryptocore/wordarray"
)

func TestStringifyParseRoundTripWithSalt(t *testing.T) {
	params := &engine.CipherParams{
		Ciphertext: wordarray.FromBytes([]byte("some ciphertext bytes, arbitrary length")),
		Salt:       wordarray.FromBytes([]byte("12345678")),
	}

	wire, err := format.OpenSSL.Stringify(params)
	require.NoError(t, err)
	assert.Regexp(t, "^U2FsdGVkX1", wire)

	parsed, err := format.OpenSSL.Parse(wire)
	require.NoError(t, err)
	assert.Equal(t, params.Ciphertext.Bytes(), parsed.Ciphertext.Bytes())
	assert.Equal(t, params.Salt.Bytes(), parsed.Salt.Bytes())
}

func TestStringifyParseRoundTripWithoutSalt(t *testing.T) {
	params := &engine.CipherParams{Ciphertext: wordarray.FromBytes([]byte("raw ciphertext, no salt header"))}

	wire, err := format.OpenSSL.Stringify(params)
	require.NoError(t, err)

	parsed, err := format.OpenSSL.Parse(wire)
	require.NoError(t, err)
	assert.Equal(t, params.Ciphertext.Bytes(), parsed.Ciphertext.Bytes())
	assert.Nil(t, parsed.Salt)
}

func TestParseRejectsInvalidBase64(t *testing.T) {
	_, err := format.OpenSSL.Parse("not valid base64 !!!")
	require.Error(t, err)
	var fmtErr *engine.FormatError
	assert.ErrorAs(t, err, &fmtErr)
}

func TestParseRejectsTruncatedSaltHeader(t *testing.T) {
	// "Salted__" followed by only 3 salt bytes: too short for an 8-byte salt.
	encoded := base64.StdEncoding.EncodeToString([]byte("Salted__abc"))

	_, err := format.OpenSSL.Parse(encoded)
	require.Error(t, err)
}

func TestStringifyRejectsMissingCiphertext(t *testing.T) {
	_, err := format.OpenSSL.Stringify(&engine.CipherParams{})
	require.Error(t, err)
}

func TestStringifyRejectsWrongSaltSize(t *testing.T) {
	_, err := format.OpenSSL.Stringify(&engine.CipherParams{
		Ciphertext: wordarray.FromBytes([]byte("x")),
		Salt:       wordarray.FromBytes([]byte("tooshort")[:4]),
	})
	require.Error(t, err)
}
