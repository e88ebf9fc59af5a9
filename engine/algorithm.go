package engine

import (
	"strconv"

	"goxfer/cryptocore/blockmode"
	"goxfer/cryptocore/wordarray"
)

// NewTransformer builds a keyed blockmode.BlockTransformer from raw key
// bytes. Concrete primitives (primitive.AES, ...) supply one of these;
// the engine never constructs a cipher itself.
type NewTransformer func(key []byte) (blockmode.BlockTransformer, error)

// BlockAlgorithm is a generic AlgorithmHandle for any block cipher: it
// turns a key into a BlockTransformer via newTransformer and wraps it in a
// BlockCipherProcessor. This is the shared machinery every concrete block
// algorithm handle (AES-128, AES-192, AES-256, ...) is built from, so
// primitives never reimplement the buffered pump or mode/padding wiring
// themselves.
type BlockAlgorithm struct {
	name           string
	keySizeWords   int
	ivSizeWords    int
	newTransformer NewTransformer
}

// NewBlockAlgorithm returns an AlgorithmHandle for a block cipher whose
// keys are keySizeWords words long and whose IV matches its block size
// (ivSizeWords words).
func NewBlockAlgorithm(name string, keySizeWords, ivSizeWords int, newTransformer NewTransformer) *BlockAlgorithm {
	return &BlockAlgorithm{name: name, keySizeWords: keySizeWords, ivSizeWords: ivSizeWords, newTransformer: newTransformer}
}

func (a *BlockAlgorithm) Name() string      { return a.name }
func (a *BlockAlgorithm) KeySizeWords() int { return a.keySizeWords }
func (a *BlockAlgorithm) IVSizeWords() int  { return a.ivSizeWords }

func (a *BlockAlgorithm) CreateEncryptor(key *wordarray.WordArray, cfg BlockCipherConfig) (Processor, error) {
	return a.createProcessor(Encrypt, key, cfg)
}

func (a *BlockAlgorithm) CreateDecryptor(key *wordarray.WordArray, cfg BlockCipherConfig) (Processor, error) {
	return a.createProcessor(Decrypt, key, cfg)
}

func (a *BlockAlgorithm) createProcessor(xform XformMode, key *wordarray.WordArray, cfg BlockCipherConfig) (Processor, error) {
	if err := a.checkKeySize(key); err != nil {
		return nil, err
	}
	transformer, err := a.newTransformer(key.Bytes())
	if err != nil {
		return nil, &ConfigError{Reason: err.Error()}
	}
	return NewBlockCipherProcessor(xform, transformer, cfg)
}

func (a *BlockAlgorithm) checkKeySize(key *wordarray.WordArray) error {
	if key == nil || key.SigBytes != a.keySizeWords*4 {
		return &ConfigError{Reason: a.name + ": key must be " + strconv.Itoa(a.keySizeWords*4) + " bytes"}
	}
	return nil
}

// StreamAlgorithm is the stream-cipher counterpart of BlockAlgorithm: it
// fixes a stream mode (e.g. blockmode.CTRStream) instead of letting the
// caller pick CBC/ECB/CFB/OFB/CTR, and hands back a StreamCipherProcessor
// with blockSize == 1 word.
type StreamAlgorithm struct {
	name           string
	keySizeWords   int
	ivSizeWords    int
	newTransformer NewTransformer
	mode           blockmode.Handle
}

// NewStreamAlgorithm returns an AlgorithmHandle for a stream cipher built
// by running a block transformer's underlying block cipher in mode
// (typically blockmode.CTRStream).
func NewStreamAlgorithm(name string, keySizeWords, ivSizeWords int, newTransformer NewTransformer, mode blockmode.Handle) *StreamAlgorithm {
	return &StreamAlgorithm{name: name, keySizeWords: keySizeWords, ivSizeWords: ivSizeWords, newTransformer: newTransformer, mode: mode}
}

func (a *StreamAlgorithm) Name() string      { return a.name }
func (a *StreamAlgorithm) KeySizeWords() int { return a.keySizeWords }
func (a *StreamAlgorithm) IVSizeWords() int  { return a.ivSizeWords }

func (a *StreamAlgorithm) CreateEncryptor(key *wordarray.WordArray, cfg BlockCipherConfig) (Processor, error) {
	return a.createProcessor(Encrypt, key, cfg)
}

func (a *StreamAlgorithm) CreateDecryptor(key *wordarray.WordArray, cfg BlockCipherConfig) (Processor, error) {
	return a.createProcessor(Decrypt, key, cfg)
}

func (a *StreamAlgorithm) createProcessor(xform XformMode, key *wordarray.WordArray, cfg BlockCipherConfig) (Processor, error) {
	if key == nil || key.SigBytes != a.keySizeWords*4 {
		return nil, &ConfigError{Reason: a.name + ": key must be " + strconv.Itoa(a.keySizeWords*4) + " bytes"}
	}
	transformer, err := a.newTransformer(key.Bytes())
	if err != nil {
		return nil, &ConfigError{Reason: err.Error()}
	}
	return NewStreamCipherProcessor(xform, transformer, a.mode, cfg)
}

