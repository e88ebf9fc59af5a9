// Package workbench is the interactive front end for cryptocore: a
// tview/tcell TUI that lets an operator pick a file, a password, and an
// algorithm/mode/padding combination, and runs it through engine and
// primitive exactly the way cmd/cryptocli does non-interactively.
package workbench

import (
	"fmt"
	"os"

	"goxfer/cryptocore/blockmode"
	"goxfer/cryptocore/engine"
	"goxfer/cryptocore/format"
	"goxfer/cryptocore/kdf"
	"goxfer/cryptocore/padding"
	"goxfer/cryptocore/primitive"
	"goxfer/cryptocore/wordarray"
)

// ModeByName resolves a blockmode.Handle by the name shown in the UI.
func ModeByName(name string) (blockmode.Handle, error) {
	switch name {
	case "CBC":
		return blockmode.CBC, nil
	case "ECB":
		return blockmode.ECB, nil
	case "CFB":
		return blockmode.CFB, nil
	case "OFB":
		return blockmode.OFB, nil
	case "CTR":
		return blockmode.CTR, nil
	default:
		return nil, fmt.Errorf("unknown mode %q", name)
	}
}

// PaddingByName resolves a padding.Padding by the name shown in the UI.
func PaddingByName(name string) (padding.Padding, error) {
	switch name {
	case "PKCS7":
		return padding.PKCS7, nil
	case "Zero":
		return padding.Zero, nil
	default:
		return nil, fmt.Errorf("unknown padding %q", name)
	}
}

// KdfByName resolves an engine.Kdf by the name shown in the UI.
func KdfByName(name string) (engine.Kdf, error) {
	switch name {
	case "OpenSSL":
		return kdf.OpenSSLKdf, nil
	case "Argon2":
		return kdf.Argon2Kdf{}, nil
	default:
		return nil, fmt.Errorf("unknown kdf %q", name)
	}
}

// Options is the operator's choice of algorithm/mode/padding/KDF for one
// encrypt or decrypt run.
type Options struct {
	KeySizeWords int // 4, 6 or 8 -> AES-128/192/256
	Mode         string
	Padding      string
	Kdf          string
}

func (o Options) resolve() (engine.AlgorithmHandle, blockmode.Handle, padding.Padding, engine.Kdf, error) {
	algo := primitive.AESByKeySize(o.KeySizeWords)
	if algo == nil {
		return nil, nil, nil, nil, fmt.Errorf("invalid key size: %d words", o.KeySizeWords)
	}
	mode, err := ModeByName(o.Mode)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	pad, err := PaddingByName(o.Padding)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	kd, err := KdfByName(o.Kdf)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return algo, mode, pad, kd, nil
}

// EncryptFile reads srcPath, encrypts it under password with opts, and
// writes the OpenSSL-formatted result to dstPath.
func EncryptFile(srcPath, dstPath string, password []byte, opts Options) error {
	algo, mode, pad, kd, err := opts.resolve()
	if err != nil {
		return err
	}

	plaintext, err := os.ReadFile(srcPath)
	if err != nil {
		return err
	}

	params, err := (engine.PasswordBasedCipher{}).Encrypt(algo, wordarray.FromBytes(plaintext), password, engine.PasswordBasedConfig{
		SerializableConfig: engine.SerializableConfig{
			BlockCipherConfig: engine.BlockCipherConfig{Mode: mode, Padding: pad},
			Format:            format.OpenSSL,
		},
		KDF: kd,
	})
	if err != nil {
		return err
	}
	params.Formatter = format.OpenSSL

	out, err := format.OpenSSL.Stringify(params)
	if err != nil {
		return err
	}
	return os.WriteFile(dstPath, []byte(out), 0600)
}

// DecryptFile reads srcPath (an OpenSSL-formatted envelope), decrypts it
// under password with opts, and writes the recovered plaintext to
// dstPath.
func DecryptFile(srcPath, dstPath string, password []byte, opts Options) error {
	algo, mode, pad, kd, err := opts.resolve()
	if err != nil {
		return err
	}

	envelope, err := os.ReadFile(srcPath)
	if err != nil {
		return err
	}

	plaintext, err := (engine.PasswordBasedCipher{}).Decrypt(algo, string(envelope), password, engine.PasswordBasedConfig{
		SerializableConfig: engine.SerializableConfig{
			BlockCipherConfig: engine.BlockCipherConfig{Mode: mode, Padding: pad},
			Format:            format.OpenSSL,
		},
		KDF: kd,
	})
	if err != nil {
		return err
	}
	return os.WriteFile(dstPath, plaintext.Bytes(), 0600)
}
