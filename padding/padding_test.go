package padding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goxfer/cryptocore/padding"
	"goxfer/cryptocore/wordarray"
)

func TestPKCS7PadUnpadRoundTrip(t *testing.T) {
	cases := []string{"", "a", "exactly16bytes!!", "seventeen bytes!!"}
	for _, s := range cases {
		data := wordarray.FromBytes([]byte(s))
		padding.PKCS7.Pad(data, 4)
		assert.Equal(t, 0, data.SigBytes%16)

		err := padding.PKCS7.Unpad(data)
		require.NoError(t, err)
		assert.Equal(t, s, string(data.Bytes()))
	}
}

func TestPKCS7AlwaysAddsAtLeastOneBlockWhenAligned(t *testing.T) {
	data := wordarray.FromBytes([]byte("sixteen byteslen"))
	require.Equal(t, 16, data.SigBytes)
	padding.PKCS7.Pad(data, 4)
	assert.Equal(t, 32, data.SigBytes)
}

func TestPKCS7UnpadRejectsEmpty(t *testing.T) {
	err := padding.PKCS7.Unpad(&wordarray.WordArray{})
	assert.Error(t, err)
}

func TestPKCS7UnpadRejectsInconsistentPadding(t *testing.T) {
	data := wordarray.FromBytes([]byte("0123456789012345"))
	data.Words[3] = (data.Words[3] &^ 0xff) | 0x05 // tail byte claims 5 bytes of padding, but only 1 matches
	err := padding.PKCS7.Unpad(data)
	assert.Error(t, err)
}

func TestZeroPadUnpadRoundTrip(t *testing.T) {
	data := wordarray.FromBytes([]byte("hello"))
	padding.Zero.Pad(data, 4)
	assert.Equal(t, 16, data.SigBytes)

	err := padding.Zero.Unpad(data)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data.Bytes()))
}

func TestZeroPadNoOpWhenAligned(t *testing.T) {
	data := wordarray.FromBytes([]byte("sixteen byteslen"))
	padding.Zero.Pad(data, 4)
	assert.Equal(t, 16, data.SigBytes)
}
