// Package primitive supplies concrete block-cipher round functions
// (currently AES, via crypto/aes) as engine.AlgorithmHandle values. It
// is the only place in the module that talks to a real cipher
// implementation; everything above it (blockmode, engine) is generic
// over blockmode.BlockTransformer.
package primitive
