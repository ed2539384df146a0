package models

import (
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// SaltRecord pairs an encrypted value with what is needed to decrypt it:
// the key-derivation salt and the AEAD nonce. Both are URL-safe base64
// without padding.
type SaltRecord struct {
	Salt  string `yaml:"salt"`
	Nonce string `yaml:"nonce"`
}

// SaltLedger is the ordered path→[SaltRecord] collection.
//
// A path present in both the [EntryMap] and the ledger marks an encrypted
// entry. The ledger itself does not enforce that pairing; callers do.
type SaltLedger struct {
	salts *orderedmap.OrderedMap[string, SaltRecord]
}

// NewSaltLedger returns an empty [SaltLedger].
func NewSaltLedger() *SaltLedger {
	return &SaltLedger{salts: orderedmap.New[string, SaltRecord]()}
}

func (l *SaltLedger) lazyInit() {
	if l.salts == nil {
		l.salts = orderedmap.New[string, SaltRecord]()
	}
}

// Get returns the record stored at path.
func (l *SaltLedger) Get(path string) (SaltRecord, bool) {
	l.lazyInit()
	return l.salts.Get(path)
}

// Has reports whether a record is stored at path.
func (l *SaltLedger) Has(path string) bool {
	_, ok := l.Get(path)
	return ok
}

// Set inserts or replaces the record at path.
func (l *SaltLedger) Set(path string, record SaltRecord) {
	l.lazyInit()
	l.salts.Set(path, record)
}

// Delete removes the record at path and returns it.
func (l *SaltLedger) Delete(path string) (SaltRecord, bool) {
	l.lazyInit()
	return l.salts.Delete(path)
}

// Len returns the number of records.
func (l *SaltLedger) Len() int {
	l.lazyInit()
	return l.salts.Len()
}

// Paths returns all paths in insertion order.
func (l *SaltLedger) Paths() []string {
	l.lazyInit()
	paths := make([]string, 0, l.salts.Len())
	for pair := l.salts.Oldest(); pair != nil; pair = pair.Next() {
		paths = append(paths, pair.Key)
	}
	return paths
}

// All iterates over path/record pairs in insertion order.
func (l *SaltLedger) All() iter.Seq2[string, SaltRecord] {
	l.lazyInit()
	return func(yield func(string, SaltRecord) bool) {
		for pair := l.salts.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Clone returns a copy of the ledger.
func (l *SaltLedger) Clone() *SaltLedger {
	out := NewSaltLedger()
	for path, record := range l.All() {
		out.salts.Set(path, record)
	}
	return out
}

// MarshalYAML encodes the ledger as a flat mapping.
func (l *SaltLedger) MarshalYAML() (any, error) {
	if l == nil {
		return marshalOrdered[SaltRecord](nil)
	}
	return marshalOrdered(l.salts)
}

// UnmarshalYAML decodes a flat mapping into the ledger.
func (l *SaltLedger) UnmarshalYAML(node *yaml.Node) error {
	salts, err := unmarshalOrdered[SaltRecord](node)
	if err != nil {
		return err
	}
	l.salts = salts
	return nil
}
