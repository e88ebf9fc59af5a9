package primitive_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goxfer/cryptocore/engine"
	"goxfer/cryptocore/primitive"
	"goxfer/cryptocore/wordarray"
)

func TestAESByKeySize(t *testing.T) {
	assert.Equal(t, primitive.AES128, primitive.AESByKeySize(4))
	assert.Equal(t, primitive.AES192, primitive.AESByKeySize(6))
	assert.Equal(t, primitive.AES256, primitive.AESByKeySize(8))
	assert.Nil(t, primitive.AESByKeySize(5))
}

func TestAESRejectsWrongKeyLength(t *testing.T) {
	shortKey := wordarray.FromBytes(make([]byte, 8))
	_, err := primitive.AES128.CreateEncryptor(shortKey, engine.BlockCipherConfig{IV: wordarray.FromBytes(make([]byte, 16))})
	require.Error(t, err)
}

func TestAESKnownAnswer(t *testing.T) {
	// FIPS-197 AES-128 test vector, single block under a zero IV.
	keyBytes := []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f}
	plainBytes := []byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}
	wantHex := "69c4e0d86a7b0430d8cdb78070b4c55a"

	proc, err := primitive.AES128.CreateEncryptor(wordarray.FromBytes(keyBytes), engine.BlockCipherConfig{
		IV: wordarray.FromBytes(make([]byte, 16)),
	})
	require.NoError(t, err)

	out, err := proc.Finalize(wordarray.FromBytes(plainBytes))
	require.NoError(t, err)

	got := out.Bytes()[:16] // strip the PKCS7 block appended past the single input block
	assert.Equal(t, wantHex, hex.EncodeToString(got))
}
