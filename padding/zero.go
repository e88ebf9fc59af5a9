package padding

import "goxfer/cryptocore/wordarray"

// zeroPadding fills to the block boundary with zero bytes and unpads by
// trimming trailing zero bytes. Unlike PKCS7 it adds nothing when the
// input is already block aligned, and it cannot round-trip plaintext that
// itself ends in a zero byte followed only by zero bytes — callers that
// need an exact round trip for arbitrary binary content should use PKCS7
// instead. Useful for content with a well-known non-zero trailer.
type zeroPadding struct{}

// Zero is the zero-byte padding handle.
var Zero Padding = zeroPadding{}

func (zeroPadding) Name() string { return "Zero" }

func (zeroPadding) Pad(data *wordarray.WordArray, blockSizeWords int) {
	blockSizeBytes := blockSizeWords * 4
	nPaddingBytes := (blockSizeBytes - data.SigBytes%blockSizeBytes) % blockSizeBytes
	if nPaddingBytes == 0 {
		return
	}
	pad := &wordarray.WordArray{Words: make([]uint32, wordarray.WordsForBytes(nPaddingBytes)), SigBytes: nPaddingBytes}
	data.Concat(pad)
}

func (zeroPadding) Unpad(data *wordarray.WordArray) error {
	full := data.Bytes()
	n := len(full)
	for n > 0 && full[n-1] == 0 {
		n--
	}
	data.SigBytes = n
	return nil
}
