package engine

import (
	"goxfer/cryptocore/blockmode"
	"goxfer/cryptocore/wordarray"
)

// StreamCipherProcessor is a BufferedProcessor specialized for stream
// ciphers: blockSize is 1 word (32 bits), no padding is ever applied, and
// finalize is just one last flush of whatever keystream state the mode
// processor is tracking.
type StreamCipherProcessor struct {
	*bufferedProcessor

	mode blockmode.Processor
}

// NewStreamCipherProcessor builds a fresh, reset stream processor. cfg.IV
// is required whenever the underlying mode needs one; cfg.Padding is
// ignored (stream ciphers are never padded).
func NewStreamCipherProcessor(xform XformMode, cipher blockmode.BlockTransformer, modeHandle blockmode.Handle, cfg BlockCipherConfig) (*StreamCipherProcessor, error) {
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

	p := &StreamCipherProcessor{mode: mode}
	p.bufferedProcessor = newBufferedProcessor(1, p)
	return p, nil
}

// BlockSizeWords is always 1 for a stream cipher processor.
func (p *StreamCipherProcessor) BlockSizeWords() int { return 1 }

func (p *StreamCipherProcessor) doProcessBlock(words []uint32, offset int) {
	p.mode.ProcessBlock(words, offset)
}

func (p *StreamCipherProcessor) doFinalize(base *bufferedProcessor) (*wordarray.WordArray, error) {
	return base.pump(true), nil
}
