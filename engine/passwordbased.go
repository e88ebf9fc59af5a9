package engine

import "goxfer/cryptocore/wordarray"

// PasswordBasedCipher is SerializableCipher for callers who have a
// password instead of a raw key: it derives key/IV/salt via the
// configured Kdf, then delegates the actual transform to
// SerializableCipher.
type PasswordBasedCipher struct{}

// Encrypt derives a key, IV and salt for password via cfg.KDF, encrypts
// message under them, and mixes the salt into the returned CipherParams so
// Decrypt (or a Formatter) can recover it later.
func (PasswordBasedCipher) Encrypt(algo AlgorithmHandle, message *wordarray.WordArray, password []byte, cfg PasswordBasedConfig) (*CipherParams, error) {
	if algo == nil {
		return nil, &ConfigError{Reason: "algorithm handle is required"}
	}
	kdf := cfg.kdfOrDefault()
	if kdf == nil {
		return nil, &ConfigError{Reason: "no kdf configured and no default kdf registered"}
	}

	derived, err := kdf.Execute(password, algo.KeySizeWords(), algo.IVSizeWords(), nil)
	if err != nil {
		return nil, &KdfError{Reason: err.Error()}
	}

	blockCfg := cfg.BlockCipherConfig
	blockCfg.IV = derived.IV

	result, err := (SerializableCipher{}).Encrypt(algo, message, derived.Key, SerializableConfig{
		BlockCipherConfig: blockCfg,
		Format:            cfg.Format,
	})
	if err != nil {
		return nil, err
	}
	return result.MixIn(&CipherParams{Salt: derived.Salt}), nil
}

// Decrypt parses ciphertext, re-derives the key and IV for password using
// the salt embedded in (or accompanying) it, and recovers the plaintext.
func (PasswordBasedCipher) Decrypt(algo AlgorithmHandle, ciphertext any, password []byte, cfg PasswordBasedConfig) (*wordarray.WordArray, error) {
	if algo == nil {
		return nil, &ConfigError{Reason: "algorithm handle is required"}
	}
	kdf := cfg.kdfOrDefault()
	if kdf == nil {
		return nil, &ConfigError{Reason: "no kdf configured and no default kdf registered"}
	}

	ct, err := resolveCiphertext(ciphertext, cfg.formatOrDefault())
	if err != nil {
		return nil, err
	}

	derived, err := kdf.Execute(password, algo.KeySizeWords(), algo.IVSizeWords(), ct.Salt)
	if err != nil {
		return nil, &KdfError{Reason: err.Error()}
	}

	blockCfg := cfg.BlockCipherConfig
	blockCfg.IV = derived.IV
	if ct.IV != nil {
		blockCfg.IV = ct.IV
	}

	return (SerializableCipher{}).Decrypt(algo, ct, derived.Key, SerializableConfig{
		BlockCipherConfig: blockCfg,
		Format:            cfg.Format,
	})
}
