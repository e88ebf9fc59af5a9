package engine

import "goxfer/cryptocore/wordarray"

// blockDelegate is implemented by BlockCipherProcessor and
// StreamCipherProcessor to supply the two hooks bufferedProcessor cannot
// implement generically: how to transform one block, and what extra work
// finalize needs (padding for block ciphers, nothing for stream ciphers).
// This is the composition-over-inheritance answer to the source's
// BufferedProcessor/BlockCipherProcessor class hierarchy.
type blockDelegate interface {
	doProcessBlock(words []uint32, offset int)
	doFinalize(p *bufferedProcessor) (*wordarray.WordArray, error)
}

// bufferedProcessor is the buffered block pump described by the core
// spec: it accumulates input, hands whole blocks to the mode processor in
// order, and returns the transformed bytes as they become available.
type bufferedProcessor struct {
	data                *wordarray.WordArray
	nDataBytes          int
	minBufferSizeBlocks int
	blockSizeWords      int
	finalized           bool
	delegate            blockDelegate
}

func newBufferedProcessor(blockSizeWords int, delegate blockDelegate) *bufferedProcessor {
	p := &bufferedProcessor{blockSizeWords: blockSizeWords, delegate: delegate}
	p.reset()
	return p
}

func (p *bufferedProcessor) reset() {
	p.data = &wordarray.WordArray{}
	p.nDataBytes = 0
	p.finalized = false
}

// Process appends input to the pending buffer and returns whatever whole
// blocks that made available, retaining minBufferSizeBlocks blocks in the
// buffer for later.
func (p *bufferedProcessor) Process(input *wordarray.WordArray) (*wordarray.WordArray, error) {
	if p.finalized {
		return nil, &UsageError{Reason: "process called after finalize"}
	}
	if input != nil {
		p.data.Concat(input)
		p.nDataBytes += input.SigBytes
	}
	return p.pump(false), nil
}

// Finalize appends input (if any), then asks the delegate to do whatever
// final-block work it needs (padding/unpadding), and returns every byte
// produced across both steps. The processor cannot be reused afterward.
func (p *bufferedProcessor) Finalize(input *wordarray.WordArray) (*wordarray.WordArray, error) {
	if p.finalized {
		return nil, &UsageError{Reason: "finalize called twice"}
	}
	out := &wordarray.WordArray{}
	if input != nil {
		fromInput, err := p.Process(input)
		if err != nil {
			return nil, err
		}
		out.Concat(fromInput)
	}

	final, err := p.delegate.doFinalize(p)
	p.finalized = true
	if err != nil {
		return nil, err
	}
	out.Concat(final)
	return out, nil
}

// pump is the _process(flush) procedure from the core spec: it computes
// how many whole blocks are ready (holding back minBufferSizeBlocks
// unless flushing; when flushing, a trailing partial block counts as one
// more block), drives the delegate over each of them in place, and
// slices the transformed prefix off the front of the pending buffer.
func (p *bufferedProcessor) pump(flush bool) *wordarray.WordArray {
	blockSizeBytes := p.blockSizeWords * 4
	nBytesReady := p.data.SigBytes
	nBlocksReady := nBytesReady / blockSizeBytes

	if flush {
		nBlocksReady = (nBytesReady + blockSizeBytes - 1) / blockSizeBytes
	} else {
		nBlocksReady -= p.minBufferSizeBlocks
		if nBlocksReady < 0 {
			nBlocksReady = 0
		}
	}

	nWordsReady := nBlocksReady * p.blockSizeWords
	if nWordsReady <= 0 {
		return &wordarray.WordArray{}
	}

	nBytesProcessed := nWordsReady * 4
	if nBytesProcessed > nBytesReady {
		nBytesProcessed = nBytesReady
	}

	for offset := 0; offset < nWordsReady; offset += p.blockSizeWords {
		p.delegate.doProcessBlock(p.data.Words, offset)
	}

	processedWords := make([]uint32, nWordsReady)
	copy(processedWords, p.data.Words[:nWordsReady])
	processed := &wordarray.WordArray{Words: processedWords, SigBytes: nBytesProcessed}

	p.data.DropFrontWords(nWordsReady)

	return processed
}
