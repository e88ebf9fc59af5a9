package engine

import "goxfer/cryptocore/wordarray"

// SerializableCipher is the stateless encrypt/decrypt glue between an
// AlgorithmHandle and a CipherParams record: it builds a processor,
// drives it to completion, and folds the mode/padding/blockSize the
// processor ended up with into the result.
type SerializableCipher struct{}

// Encrypt runs message through algo under key and cfg, returning a
// CipherParams describing the ciphertext and the configuration used to
// produce it.
func (SerializableCipher) Encrypt(algo AlgorithmHandle, message *wordarray.WordArray, key *wordarray.WordArray, cfg SerializableConfig) (*CipherParams, error) {
	if algo == nil {
		return nil, &ConfigError{Reason: "algorithm handle is required"}
	}
	proc, err := algo.CreateEncryptor(key, cfg.BlockCipherConfig)
	if err != nil {
		return nil, err
	}
	ciphertext, err := proc.Finalize(message)
	if err != nil {
		return nil, err
	}
	return &CipherParams{
		Ciphertext: ciphertext,
		Key:        key,
		IV:         cfg.IV,
		Algorithm:  algo,
		Mode:       cfg.modeOrDefault(),
		Padding:    cfg.paddingOrDefault(),
		BlockSize:  proc.BlockSizeWords(),
		Formatter:  cfg.formatOrDefault(),
	}, nil
}

// Decrypt parses ciphertext (a formatted string via cfg.Format, or an
// already-decoded WordArray) and runs it through algo under key and cfg,
// returning the recovered plaintext.
func (SerializableCipher) Decrypt(algo AlgorithmHandle, ciphertext any, key *wordarray.WordArray, cfg SerializableConfig) (*wordarray.WordArray, error) {
	if algo == nil {
		return nil, &ConfigError{Reason: "algorithm handle is required"}
	}
	ct, err := resolveCiphertext(ciphertext, cfg.formatOrDefault())
	if err != nil {
		return nil, err
	}
	proc, err := algo.CreateDecryptor(key, cfg.BlockCipherConfig)
	if err != nil {
		return nil, err
	}
	return proc.Finalize(ct.Ciphertext)
}

func resolveCiphertext(ciphertext any, format Formatter) (*CipherParams, error) {
	switch v := ciphertext.(type) {
	case string:
		if format == nil {
			return nil, &ConfigError{Reason: "a formatter is required to parse a string ciphertext"}
		}
		return format.Parse(v)
	case *wordarray.WordArray:
		return &CipherParams{Ciphertext: v}, nil
	case *CipherParams:
		return v, nil
	default:
		return nil, &ConfigError{Reason: "ciphertext must be a string, *wordarray.WordArray, or *CipherParams"}
	}
}
