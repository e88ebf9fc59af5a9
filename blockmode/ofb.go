package blockmode

// Output Feedback, full-block variant: the keystream block is produced by
// repeatedly re-encrypting the previous keystream block (seeded by the
// IV), independent of the plaintext/ciphertext — so encryption and
// decryption are the same operation.

type ofbHandle struct{}

// OFB is output feedback mode operating one full block at a time.
var OFB Handle = ofbHandle{}

func (ofbHandle) Name() string     { return "OFB" }
func (ofbHandle) RequiresIV() bool { return true }

func (h ofbHandle) CreateEncryptor(cipher BlockTransformer, iv []uint32) (Processor, error) {
	return h.newProcessor(cipher, iv)
}

func (h ofbHandle) CreateDecryptor(cipher BlockTransformer, iv []uint32) (Processor, error) {
	return h.newProcessor(cipher, iv)
}

func (h ofbHandle) newProcessor(cipher BlockTransformer, iv []uint32) (Processor, error) {
	bs := cipher.BlockSizeWords()
	if err := checkIV(h.Name(), iv, bs); err != nil {
		return nil, err
	}
	return &ofbProcessor{cipher: cipher, blockSize: bs, keystream: dupWords(iv)}, nil
}

type ofbProcessor struct {
	cipher    BlockTransformer
	blockSize int
	keystream []uint32
}

func (x *ofbProcessor) ProcessBlock(words []uint32, offset int) {
	x.cipher.Encrypt(x.keystream, 0)
	block := words[offset : offset+x.blockSize]
	xorWords(block, block, x.keystream)
}
