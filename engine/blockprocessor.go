package engine

import (
	"goxfer/cryptocore/blockmode"
	"goxfer/cryptocore/padding"
	"goxfer/cryptocore/wordarray"
)

// BlockCipherProcessor is a BufferedProcessor specialized for block
// ciphers: it applies the configured padding scheme at finalize time and
// keeps one block buffered on decrypt so the final block is still
// available for unpadding.
type BlockCipherProcessor struct {
	*bufferedProcessor

	xform   XformMode
	cipher  blockmode.BlockTransformer
	mode    blockmode.Processor
	padding padding.Padding
}

// NewBlockCipherProcessor builds a fresh, reset processor bound to cipher
// for the given direction and configuration.
func NewBlockCipherProcessor(xform XformMode, cipher blockmode.BlockTransformer, cfg BlockCipherConfig) (*BlockCipherProcessor, error) {
	blockSizeWords := cipher.BlockSizeWords()
	modeHandle := cfg.modeOrDefault()

	var ivWords []uint32
	if cfg.IV != nil {
		ivClamped := cfg.IV.Clone()
		ivClamped.Clamp()
		ivWords = ivClamped.Words
	}
	if modeHandle.RequiresIV() && cfg.IV == nil {
		return nil, &ConfigError{Reason: modeHandle.Name() + " requires an iv"}
	}

	var mode blockmode.Processor
	var err error
	if xform == Encrypt {
		mode, err = modeHandle.CreateEncryptor(cipher, ivWords)
	} else {
		mode, err = modeHandle.CreateDecryptor(cipher, ivWords)
	}
	if err != nil {
		return nil, &ConfigError{Reason: err.Error()}
	}

	p := &BlockCipherProcessor{
		xform:   xform,
		cipher:  cipher,
		mode:    mode,
		padding: cfg.paddingOrDefault(),
	}
	p.bufferedProcessor = newBufferedProcessor(blockSizeWords, p)
	if xform == Decrypt {
		p.bufferedProcessor.minBufferSizeBlocks = 1
	}
	return p, nil
}

// BlockSizeWords reports the underlying cipher's block size, in 32-bit words.
func (p *BlockCipherProcessor) BlockSizeWords() int { return p.blockSizeWords }

func (p *BlockCipherProcessor) doProcessBlock(words []uint32, offset int) {
	p.mode.ProcessBlock(words, offset)
}

func (p *BlockCipherProcessor) doFinalize(base *bufferedProcessor) (*wordarray.WordArray, error) {
	if p.xform == Encrypt {
		base.data.Clamp()
		p.padding.Pad(base.data, base.blockSizeWords)
		return base.pump(true), nil
	}

	blockSizeBytes := base.blockSizeWords * 4
	if base.data.SigBytes == 0 || base.data.SigBytes%blockSizeBytes != 0 {
		return nil, &FormatError{Reason: "ciphertext length is not a multiple of the block size"}
	}
	result := base.pump(true)
	if err := p.padding.Unpad(result); err != nil {
		return nil, &PaddingError{Err: err}
	}
	return result, nil
}
