package blockmode

// Counter mode: turns the block cipher into a stream cipher by encrypting
// a monotonically incrementing counter block and xoring the result with
// the plaintext/ciphertext. Encryption and decryption are the same
// operation.

type ctrHandle struct{}

// CTR is counter mode operating one full block at a time.
var CTR Handle = ctrHandle{}

func (ctrHandle) Name() string     { return "CTR" }
func (ctrHandle) RequiresIV() bool { return true }

func (h ctrHandle) CreateEncryptor(cipher BlockTransformer, iv []uint32) (Processor, error) {
	return h.newProcessor(cipher, iv)
}

func (h ctrHandle) CreateDecryptor(cipher BlockTransformer, iv []uint32) (Processor, error) {
	return h.newProcessor(cipher, iv)
}

func (h ctrHandle) newProcessor(cipher BlockTransformer, iv []uint32) (Processor, error) {
	bs := cipher.BlockSizeWords()
	if err := checkIV(h.Name(), iv, bs); err != nil {
		return nil, err
	}
	return &ctrProcessor{cipher: cipher, blockSize: bs, counter: dupWords(iv)}, nil
}

type ctrProcessor struct {
	cipher    BlockTransformer
	blockSize int
	counter   []uint32
}

func (x *ctrProcessor) ProcessBlock(words []uint32, offset int) {
	keystream := dupWords(x.counter)
	x.cipher.Encrypt(keystream, 0)
	block := words[offset : offset+x.blockSize]
	xorWords(block, block, keystream)
	incrementCounter(x.counter)
}

func incrementCounter(counter []uint32) {
	for i := len(counter) - 1; i >= 0; i-- {
		counter[i]++
		if counter[i] != 0 {
			return
		}
	}
}

// CTRStream is a word-granular keystream generator built the same way as
// the block CTR mode above, but exposed one word at a time so it can back
// engine.StreamCipherProcessor (blockSize == 1 word). It buffers a full
// cipher block of keystream and hands it out a word at a time, refilling
// on exhaustion — the word-oriented analogue of the byte-buffered refill
// loop stream ciphers use to amortize the cost of the block encryption.
type ctrStreamHandle struct{}

// CTRStream is the stream-mode counterpart of CTR: it yields keystream at
// 32-bit-word granularity for stream cipher processors.
var CTRStream Handle = ctrStreamHandle{}

func (ctrStreamHandle) Name() string     { return "CTRStream" }
func (ctrStreamHandle) RequiresIV() bool { return true }

func (h ctrStreamHandle) CreateEncryptor(cipher BlockTransformer, iv []uint32) (Processor, error) {
	return h.newProcessor(cipher, iv)
}

func (h ctrStreamHandle) CreateDecryptor(cipher BlockTransformer, iv []uint32) (Processor, error) {
	return h.newProcessor(cipher, iv)
}

func (h ctrStreamHandle) newProcessor(cipher BlockTransformer, iv []uint32) (Processor, error) {
	bs := cipher.BlockSizeWords()
	if err := checkIV(h.Name(), iv, bs); err != nil {
		return nil, err
	}
	return &ctrStreamProcessor{
		cipher:    cipher,
		blockSize: bs,
		counter:   dupWords(iv),
		keystream: make([]uint32, 0, bs),
		used:      bs,
	}, nil
}

type ctrStreamProcessor struct {
	cipher    BlockTransformer
	blockSize int
	counter   []uint32
	keystream []uint32
	used      int
}

func (x *ctrStreamProcessor) refill() {
	x.keystream = dupWords(x.counter)
	x.cipher.Encrypt(x.keystream, 0)
	incrementCounter(x.counter)
	x.used = 0
}

// ProcessBlock XORs exactly one word of input keystream at words[offset],
// refilling the underlying cipher-block keystream buffer as needed.
func (x *ctrStreamProcessor) ProcessBlock(words []uint32, offset int) {
	if x.used >= x.blockSize {
		x.refill()
	}
	words[offset] ^= x.keystream[x.used]
	x.used++
}
