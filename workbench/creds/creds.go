// Package creds remembers passwords the workbench has used, the way
// the donor TUI remembers upload passwords: an index file on disk maps
// a label to an opaque index, and the password itself lives only in
// the OS credential vault via go-keyring, never on disk in the clear.
package creds

import (
	"cmp"
	"encoding/hex"
	"encoding/json"
	"errors"
	"os"
	"slices"
	"time"

	"github.com/zalando/go-keyring"

	"goxfer/cryptocore/consts"
	"goxfer/cryptocore/utils"
)

type Manager struct {
	indexPath string
}

func NewManager() *Manager {
	return &Manager{indexPath: consts.CREDS_FILE_PATH}
}

// Entry is a remembered password for a given label (typically a file
// path or algorithm/mode combination).
type Entry struct {
	Label string
	Pass  string
}

type indexEntry struct {
	Index     string
	Label     string
	CreatedAt int64
	Used      int32
}

func (m *Manager) add(idx []byte, entry Entry) {
	entries := m.read()
	for i, e := range entries {
		if e.Label == entry.Label {
			entries = append(entries[:i], entries[i+1:]...)
			break
		}
	}
	entries = append(entries, indexEntry{
		Index:     hex.EncodeToString(idx),
		Label:     entry.Label,
		CreatedAt: time.Now().Unix(),
		Used:      1,
	})
	m.save(entries)
}

func (m *Manager) read() []indexEntry {
	data, err := os.ReadFile(m.indexPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []indexEntry{}
		}
		return []indexEntry{}
	}

	entries := make([]indexEntry, 0)
	if !json.Valid(data) {
		m.save(entries)
		return entries
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return []indexEntry{}
	}
	return entries
}

func (m *Manager) save(entries []indexEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(m.indexPath, data, 0600)
}

// Remember stores entry.Pass in the OS keyring, keyed by a fresh random
// index recorded (alongside entry.Label) in the plaintext index file.
func (m *Manager) Remember(entry Entry) error {
	idx, err := utils.Rand(16)
	if err != nil {
		return err
	}
	m.add(idx, entry)
	return keyring.Set(consts.SERVICE_NAME_CREDS, hex.EncodeToString(idx), entry.Pass)
}

// List returns every remembered entry whose password is still present in
// the keyring, highest use count first.
func (m *Manager) List() []Entry {
	entries := m.read()
	slices.SortFunc(entries, func(a, b indexEntry) int {
		return cmp.Compare(b.Used, a.Used)
	})

	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		pass, err := keyring.Get(consts.SERVICE_NAME_CREDS, e.Index)
		if err != nil {
			continue
		}
		out = append(out, Entry{Label: e.Label, Pass: pass})
	}
	return out
}

// MarkUsed bumps the use count for label, so List sorts it higher.
func (m *Manager) MarkUsed(label string) {
	entries := m.read()
	for i, e := range entries {
		if e.Label == label {
			entries[i].Used++
			break
		}
	}
	m.save(entries)
}
