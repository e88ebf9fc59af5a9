package workbench

import (
	"fmt"
	"path/filepath"

	"github.com/rivo/tview"

	"goxfer/cryptocore/consts/errs"
	"goxfer/cryptocore/workbench/creds"
)

var keySizeChoices = []string{"AES-128", "AES-192", "AES-256"}
var keySizeWords = []int{4, 6, 8}
var modeChoices = []string{"CBC", "ECB", "CFB", "OFB", "CTR"}
var paddingChoices = []string{"PKCS7", "Zero"}
var kdfChoices = []string{"OpenSSL", "Argon2"}

func (f *filesView) showEncryptForm(path string) {
	f.showOperationForm(path, true)
}

func (f *filesView) showDecryptForm(path string) {
	f.showOperationForm(path, false)
}

func (f *filesView) showOperationForm(path string, encrypt bool) {
	title := "Decrypt"
	if encrypt {
		title = "Encrypt"
	}

	keyIdx, modeIdx, padIdx, kdfIdx := 2, 0, 0, 0

	form := tview.NewForm().SetHorizontal(false)
	form.AddTextView("File:", path, 0, 1, true, false)
	form.AddDropDown("Key size:", keySizeChoices, keyIdx, func(_ string, i int) { keyIdx = i })
	form.AddDropDown("Mode:", modeChoices, modeIdx, func(_ string, i int) { modeIdx = i })
	form.AddDropDown("Padding:", paddingChoices, padIdx, func(_ string, i int) { padIdx = i })
	form.AddDropDown("KDF:", kdfChoices, kdfIdx, func(_ string, i int) { kdfIdx = i })
	form.AddPasswordField("Password:", "", 40, '*', nil)
	form.AddCheckbox("Remember password", false, nil)
	form.SetBorder(true).SetTitle(fmt.Sprintf("%s: %s", title, filepath.Base(path)))

	closeOverlay := f.app.showOverlay(form)

	form.AddButton("Cancel", closeOverlay)
	form.AddButton(title, func() {
		pass := []byte(form.GetFormItemByLabel("Password:").(*tview.InputField).GetText())
		remember := form.GetFormItemByLabel("Remember password").(*tview.Checkbox).IsChecked()

		opts := operationOptions(keyIdx, modeIdx, padIdx, kdfIdx)
		dst := destinationPath(path, encrypt)

		closeOverlay()
		go f.runOperation(path, dst, pass, opts, encrypt, remember)
	})
}

func operationOptions(keyIdx, modeIdx, padIdx, kdfIdx int) Options {
	return Options{
		KeySizeWords: keySizeWords[keyIdx],
		Mode:         modeChoices[modeIdx],
		Padding:      paddingChoices[padIdx],
		Kdf:          kdfChoices[kdfIdx],
	}
}

func destinationPath(src string, encrypt bool) string {
	if encrypt {
		return src + ".enc"
	}
	if filepath.Ext(src) == ".enc" {
		return src[:len(src)-len(".enc")]
	}
	return src + ".dec"
}

func (f *filesView) runOperation(src, dst string, pass []byte, opts Options, encrypt, remember bool) {
	f.app.setStatus(fmt.Sprintf("%s %s ...", verb(encrypt), src))

	var err error
	if encrypt {
		err = EncryptFile(src, dst, pass, opts)
	} else {
		err = DecryptFile(src, dst, pass, opts)
	}

	if err != nil {
		clear(pass)
		f.app.emitErr(&errs.Errorf{
			Type:    errs.ErrDependencyFailed,
			Error:   fmt.Errorf("%s %s: %v", verb(encrypt), src, err),
			Message: fmt.Sprintf("%s failed: %v", verb(encrypt), err),
		})
		return
	}

	if remember {
		if err := f.app.pass.Remember(creds.Entry{Label: src, Pass: string(pass)}); err != nil {
			f.app.emitErr(&errs.Errorf{
				Type:    errs.ErrCredsUnavailable,
				Error:   err,
				Message: fmt.Sprintf("remember password: %v", err),
			})
		}
	}
	clear(pass)

	f.app.setStatus(fmt.Sprintf("wrote %s", dst))
	f.reload()
}

func verb(encrypt bool) string {
	if encrypt {
		return "encrypting"
	}
	return "decrypting"
}
