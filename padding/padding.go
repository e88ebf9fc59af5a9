// Package padding implements the pad/unpad pair the block-cipher
// processor calls at finalize time to align plaintext to a block boundary
// and to strip that alignment back off on decrypt.
package padding

import "goxfer/cryptocore/wordarray"

// Padding pads and unpads a WordArray in place to a multiple of
// blockSizeWords words.
type Padding interface {
	Name() string
	Pad(data *wordarray.WordArray, blockSizeWords int)
	Unpad(data *wordarray.WordArray) error
}

// UnpadError reports padding bytes that fail validation on decrypt: a
// tampered ciphertext, a wrong key, or a plaintext that was never padded
// with this scheme.
type UnpadError struct {
	Reason string
}

func (e *UnpadError) Error() string { return "padding: " + e.Reason }
