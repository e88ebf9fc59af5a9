package blockmode

// Cipher Feedback, full-block feedback variant (CFB-<blocksize>, i.e. the
// same granularity OpenSSL's "aes-128-cfb" uses): each block of keystream
// is produced by encrypting the previous ciphertext block (or the IV, for
// the first block) under the underlying cipher, then xored with the
// plaintext/ciphertext block.

type cfbHandle struct{}

// CFB is cipher feedback mode operating one full block at a time.
var CFB Handle = cfbHandle{}

func (cfbHandle) Name() string     { return "CFB" }
func (cfbHandle) RequiresIV() bool { return true }

func (h cfbHandle) CreateEncryptor(cipher BlockTransformer, iv []uint32) (Processor, error) {
	bs := cipher.BlockSizeWords()
	if err := checkIV(h.Name(), iv, bs); err != nil {
		return nil, err
	}
	return &cfbEncryptor{cipher: cipher, blockSize: bs, feedback: dupWords(iv)}, nil
}

func (h cfbHandle) CreateDecryptor(cipher BlockTransformer, iv []uint32) (Processor, error) {
	bs := cipher.BlockSizeWords()
	if err := checkIV(h.Name(), iv, bs); err != nil {
		return nil, err
	}
	return &cfbDecryptor{cipher: cipher, blockSize: bs, feedback: dupWords(iv)}, nil
}

type cfbEncryptor struct {
	cipher    BlockTransformer
	blockSize int
	feedback  []uint32
	keystream []uint32
}

func (x *cfbEncryptor) ProcessBlock(words []uint32, offset int) {
	x.keystream = dupWords(x.feedback)
	x.cipher.Encrypt(x.keystream, 0)
	block := words[offset : offset+x.blockSize]
	xorWords(block, block, x.keystream)
	x.feedback = dupWords(block)
}

type cfbDecryptor struct {
	cipher    BlockTransformer
	blockSize int
	feedback  []uint32
	keystream []uint32
}

func (x *cfbDecryptor) ProcessBlock(words []uint32, offset int) {
	x.keystream = dupWords(x.feedback)
	x.cipher.Encrypt(x.keystream, 0)
	block := words[offset : offset+x.blockSize]
	nextFeedback := dupWords(block)
	xorWords(block, block, x.keystream)
	x.feedback = nextFeedback
}
