package blockmode

// Cipher Block Chaining. See NIST SP 800-38A, pp 10-11.

type cbcHandle struct{}

// CBC is the default block mode: each plaintext block is xored with the
// previous ciphertext block before encryption.
var CBC Handle = cbcHandle{}

func (cbcHandle) Name() string     { return "CBC" }
func (cbcHandle) RequiresIV() bool { return true }

func (h cbcHandle) CreateEncryptor(cipher BlockTransformer, iv []uint32) (Processor, error) {
	bs := cipher.BlockSizeWords()
	if err := checkIV(h.Name(), iv, bs); err != nil {
		return nil, err
	}
	return &cbcEncryptor{cipher: cipher, blockSize: bs, iv: dupWords(iv)}, nil
}

func (h cbcHandle) CreateDecryptor(cipher BlockTransformer, iv []uint32) (Processor, error) {
	bs := cipher.BlockSizeWords()
	if err := checkIV(h.Name(), iv, bs); err != nil {
		return nil, err
	}
	return &cbcDecryptor{cipher: cipher, blockSize: bs, iv: dupWords(iv)}, nil
}

type cbcEncryptor struct {
	cipher    BlockTransformer
	blockSize int
	iv        []uint32
}

func (x *cbcEncryptor) ProcessBlock(words []uint32, offset int) {
	block := words[offset : offset+x.blockSize]
	xorWords(block, block, x.iv)
	x.cipher.Encrypt(words, offset)
	copy(x.iv, block)
}

type cbcDecryptor struct {
	cipher    BlockTransformer
	blockSize int
	iv        []uint32
}

func (x *cbcDecryptor) ProcessBlock(words []uint32, offset int) {
	block := words[offset : offset+x.blockSize]
	prevCiphertext := dupWords(block)
	x.cipher.Decrypt(words, offset)
	xorWords(block, block, x.iv)
	x.iv = prevCiphertext
}
