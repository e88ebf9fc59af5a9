// Package blockmode implements the block-mode chaining algorithms
// (CBC, ECB, CFB, OFB, CTR) the engine package drives its buffered
// processors with. Each mode transforms one block in place at a given
// word offset, threading whatever chaining state it needs internally —
// the same contract NIST SP 800-38A modes have in crypto/cipher and in
// the reference chunk-cipher mode package this was grounded on.
package blockmode

import "strconv"

// BlockTransformer is a keyed block cipher round function: it encrypts or
// decrypts exactly one block of BlockSizeWords() words in place, at a
// given word offset. Concrete ciphers (AES, ...) implement this; modes
// never construct one themselves.
type BlockTransformer interface {
	BlockSizeWords() int
	Encrypt(words []uint32, offset int)
	Decrypt(words []uint32, offset int)
}

// Processor transforms exactly one block in place at words[offset :
// offset+blockSize], threading whatever chaining state the mode needs.
// Implementations must not retain the slice past the call.
type Processor interface {
	ProcessBlock(words []uint32, offset int)
}

// Handle is a block-mode factory: given a keyed cipher and (if the mode
// needs one) an IV, it yields a per-direction Processor.
type Handle interface {
	Name() string
	RequiresIV() bool
	CreateEncryptor(cipher BlockTransformer, iv []uint32) (Processor, error)
	CreateDecryptor(cipher BlockTransformer, iv []uint32) (Processor, error)
}

func dupWords(w []uint32) []uint32 {
	d := make([]uint32, len(w))
	copy(d, w)
	return d
}

func xorWords(dst, a, b []uint32) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}

func checkIV(name string, iv []uint32, blockSize int) error {
	if len(iv) != blockSize {
		return &IVSizeError{Mode: name, Want: blockSize, Got: len(iv)}
	}
	return nil
}

// IVSizeError reports an IV whose length (in words) does not match the
// cipher's block size.
type IVSizeError struct {
	Mode      string
	Want, Got int
}

func (e *IVSizeError) Error() string {
	return "blockmode: " + e.Mode + ": iv must be " + strconv.Itoa(e.Want) + " words, got " + strconv.Itoa(e.Got)
}
