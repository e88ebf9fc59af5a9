package primitive

import (
	"crypto/aes"

	"goxfer/cryptocore/blockmode"
	"goxfer/cryptocore/engine"
)

// aesTransformer adapts crypto/aes's cipher.Block to blockmode.BlockTransformer,
// which operates on word slices rather than byte slices.
type aesTransformer struct {
	block  cipherBlock
	nWords int
}

// cipherBlock is the subset of crypto/cipher.Block this package depends
// on, named locally so this file doesn't need to import crypto/cipher
// just for the type.
type cipherBlock interface {
	BlockSize() int
	Encrypt(dst, src []byte)
	Decrypt(dst, src []byte)
}

func newAESTransformer(key []byte) (blockmode.BlockTransformer, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return &aesTransformer{block: block, nWords: block.BlockSize() / 4}, nil
}

func (t *aesTransformer) BlockSizeWords() int { return t.nWords }

func (t *aesTransformer) Encrypt(words []uint32, offset int) {
	t.transform(t.block.Encrypt, words, offset)
}

func (t *aesTransformer) Decrypt(words []uint32, offset int) {
	t.transform(t.block.Decrypt, words, offset)
}

func (t *aesTransformer) transform(op func(dst, src []byte), words []uint32, offset int) {
	buf := make([]byte, t.nWords*4)
	for i := 0; i < t.nWords; i++ {
		w := words[offset+i]
		buf[i*4+0] = byte(w >> 24)
		buf[i*4+1] = byte(w >> 16)
		buf[i*4+2] = byte(w >> 8)
		buf[i*4+3] = byte(w)
	}
	op(buf, buf)
	for i := 0; i < t.nWords; i++ {
		words[offset+i] = uint32(buf[i*4+0])<<24 | uint32(buf[i*4+1])<<16 | uint32(buf[i*4+2])<<8 | uint32(buf[i*4+3])
	}
}

// AES128, AES192 and AES256 are engine.AlgorithmHandle values driving
// crypto/aes under the configured block mode and padding. The variant is
// fixed by key length: 4/6/8 words for 128/192/256-bit keys.
var (
	AES128 = engine.NewBlockAlgorithm("AES-128", 4, 4, newAESTransformer)
	AES192 = engine.NewBlockAlgorithm("AES-192", 6, 4, newAESTransformer)
	AES256 = engine.NewBlockAlgorithm("AES-256", 8, 4, newAESTransformer)
)

// AESByKeySize picks the AlgorithmHandle matching a key's length in
// 32-bit words, or nil if the length isn't a valid AES key size.
func AESByKeySize(keySizeWords int) engine.AlgorithmHandle {
	switch keySizeWords {
	case 4:
		return AES128
	case 6:
		return AES192
	case 8:
		return AES256
	default:
		return nil
	}
}

// AES128CTR, AES192CTR and AES256CTR are engine.AlgorithmHandle values
// running AES in blockmode.CTRStream: a keystream generator exposed at
// 1-word granularity, with no padding, matching the core spec's stream
// cipher processor contract.
var (
	AES128CTR = engine.NewStreamAlgorithm("AES-128-CTR", 4, 4, newAESTransformer, blockmode.CTRStream)
	AES192CTR = engine.NewStreamAlgorithm("AES-192-CTR", 6, 4, newAESTransformer, blockmode.CTRStream)
	AES256CTR = engine.NewStreamAlgorithm("AES-256-CTR", 8, 4, newAESTransformer, blockmode.CTRStream)
)
