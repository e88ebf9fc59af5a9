package wordarray

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromBytesRoundTrip(t *testing.T) {
	cases := [][]byte{
		nil,
		{0x01},
		{0x01, 0x02, 0x03},
		{0x01, 0x02, 0x03, 0x04},
		[]byte("Hello, world!"),
	}
	for _, c := range cases {
		wa := FromBytes(c)
		require.Equal(t, len(c), wa.SigBytes)
		require.Equal(t, c, wa.Bytes())
	}
}

func TestClampZeroesTrailingBytes(t *testing.T) {
	wa := &WordArray{Words: []uint32{0xdeadbeef, 0xffffffff}, SigBytes: 5}
	wa.Clamp()
	require.Len(t, wa.Words, 2)
	require.Equal(t, uint32(0xff000000), wa.Words[1])
}

func TestConcat(t *testing.T) {
	a := FromBytes([]byte("abc"))
	b := FromBytes([]byte("de"))
	a.Concat(b)
	require.Equal(t, "abcde", string(a.Bytes()))
}

func TestConcatUnaligned(t *testing.T) {
	a := FromBytes([]byte{0x01, 0x02, 0x03})
	b := FromBytes([]byte{0x04, 0x05, 0x06, 0x07, 0x08})
	a.Concat(b)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}, a.Bytes())
}

func TestDropFrontWords(t *testing.T) {
	wa := FromBytes([]byte("0123456789AB"))
	wa.DropFrontWords(2)
	require.Equal(t, "89AB", string(wa.Bytes()))
}

func TestSlice(t *testing.T) {
	wa := FromBytes([]byte("0123456789"))
	s := wa.Slice(2, 5)
	require.Equal(t, "234", string(s.Bytes()))
}
