// Command cryptocli is the non-interactive front end for cryptocore,
// mirroring the shape of openssl enc: read a file, apply a password-based
// cipher, write an OpenSSL-formatted (or raw) result.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"goxfer/cryptocore/workbench"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "encrypt":
		runOne(os.Args[2:], true)
	case "decrypt":
		runOne(os.Args[2:], false)
	case "batch":
		runBatch(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: cryptocli <encrypt|decrypt|batch> [flags]")
}

// cipherFlags registers the algorithm/mode/padding/KDF flags on fs and
// returns a func that must be called after fs.Parse to read them back.
func cipherFlags(fs *flag.FlagSet) func() workbench.Options {
	keySize := fs.Int("keysize", 256, "AES key size in bits: 128, 192 or 256")
	mode := fs.String("mode", "CBC", "block mode: CBC, ECB, CFB, OFB, CTR")
	pad := fs.String("padding", "PKCS7", "padding scheme: PKCS7, Zero")
	kd := fs.String("kdf", "OpenSSL", "key derivation function: OpenSSL, Argon2")
	return func() workbench.Options {
		return workbench.Options{
			KeySizeWords: *keySize / 32,
			Mode:         *mode,
			Padding:      *pad,
			Kdf:          *kd,
		}
	}
}

func runOne(args []string, encrypt bool) {
	name := "encrypt"
	if !encrypt {
		name = "decrypt"
	}
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	getOpts := cipherFlags(fs)
	in := fs.String("in", "", "input file")
	out := fs.String("out", "", "output file")
	pass := fs.String("pass", "", "password")
	fs.Parse(args)
	o := getOpts()

	if *in == "" || *out == "" || *pass == "" {
		fmt.Fprintln(os.Stderr, "-in, -out and -pass are required")
		os.Exit(2)
	}

	var err error
	if encrypt {
		err = workbench.EncryptFile(*in, *out, []byte(*pass), o)
	} else {
		err = workbench.DecryptFile(*in, *out, []byte(*pass), o)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runBatch(args []string) {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	getOpts := cipherFlags(fs)
	dir := fs.String("dir", ".", "directory to walk")
	pass := fs.String("pass", "", "password")
	decrypt := fs.Bool("decrypt", false, "decrypt .enc files instead of encrypting")
	workers := fs.Int("workers", 4, "maximum concurrent files")
	fs.Parse(args)
	o := getOpts()

	if *pass == "" {
		fmt.Fprintln(os.Stderr, "-pass is required")
		os.Exit(2)
	}

	var files []string
	err := filepath.WalkDir(*dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		if *decrypt == (filepath.Ext(path) == ".enc") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Each goroutine builds its own encryptor/decryptor from the shared,
	// read-only algorithm handle picked by o.KeySizeWords; no processor is
	// ever shared across goroutines.
	var g errgroup.Group
	g.SetLimit(*workers)
	for _, path := range files {
		path := path
		g.Go(func() error {
			var dst string
			if *decrypt {
				dst = path[:len(path)-len(".enc")]
			} else {
				dst = path + ".enc"
			}
			if *decrypt {
				return workbench.DecryptFile(path, dst, []byte(*pass), o)
			}
			return workbench.EncryptFile(path, dst, []byte(*pass), o)
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
