package padding

import "goxfer/cryptocore/wordarray"

// pkcs7 is the default padding scheme: every added byte's value equals
// the number of padding bytes added, per RFC 5652 §6.3. It always adds at
// least one byte, so a plaintext already a multiple of the block size
// gains a whole extra block of padding.
type pkcs7 struct{}

// PKCS7 is the default padding handle.
var PKCS7 Padding = pkcs7{}

func (pkcs7) Name() string { return "PKCS7" }

func (pkcs7) Pad(data *wordarray.WordArray, blockSizeWords int) {
	blockSizeBytes := blockSizeWords * 4
	nPaddingBytes := blockSizeBytes - data.SigBytes%blockSizeBytes

	padWords := make([]uint32, wordarray.WordsForBytes(nPaddingBytes))
	fill := uint32(nPaddingBytes) * 0x01010101
	for i := range padWords {
		padWords[i] = fill
	}
	pad := &wordarray.WordArray{Words: padWords, SigBytes: nPaddingBytes}
	data.Concat(pad)
}

func (pkcs7) Unpad(data *wordarray.WordArray) error {
	if data.SigBytes == 0 {
		return &UnpadError{Reason: "empty ciphertext has no padding"}
	}

	full := data.Bytes()
	n := int(full[len(full)-1])
	if n == 0 || n > len(full) {
		return &UnpadError{Reason: "padding length byte out of range"}
	}
	for _, b := range full[len(full)-n:] {
		if int(b) != n {
			return &UnpadError{Reason: "inconsistent padding bytes"}
		}
	}

	data.SigBytes -= n
	return nil
}
