package blockmode

// Electronic Codebook. No chaining, no IV; each block is encrypted
// independently. Kept for compatibility with legacy interchange formats —
// callers should prefer CBC or CTR for anything new.

type ecbHandle struct{}

// ECB encrypts each block independently. It ignores the IV entirely.
var ECB Handle = ecbHandle{}

func (ecbHandle) Name() string     { return "ECB" }
func (ecbHandle) RequiresIV() bool { return false }

func (h ecbHandle) CreateEncryptor(cipher BlockTransformer, iv []uint32) (Processor, error) {
	return &ecbProcessor{cipher: cipher, encrypt: true}, nil
}

func (h ecbHandle) CreateDecryptor(cipher BlockTransformer, iv []uint32) (Processor, error) {
	return &ecbProcessor{cipher: cipher, encrypt: false}, nil
}

type ecbProcessor struct {
	cipher  BlockTransformer
	encrypt bool
}

func (x *ecbProcessor) ProcessBlock(words []uint32, offset int) {
	if x.encrypt {
		x.cipher.Encrypt(words, offset)
	} else {
		x.cipher.Decrypt(words, offset)
	}
}
