// Package institution matches free-text education lines against a curated
// table of academic institutions and flags suspicious or ambiguous names.
package institution

import (
	"sort"
	"strings"
	"sync"

	"github.com/jonathan/jd-matcher/internal/parsing"
	"github.com/jonathan/jd-matcher/internal/types"
)

// Index is an immutable lookup from normalized names and aliases to
// institution records. It is safe for concurrent use.
type Index struct {
	records []types.InstitutionRecord
	byKey   map[string]int
	keys    []string // longest first, then lexical
}

var (
	defaultIndex *Index
	defaultOnce  sync.Once
)

// Default returns the process-wide index built from the built-in table.
func Default() *Index {
	defaultOnce.Do(func() {
		defaultIndex = NewIndex(records)
	})
	return defaultIndex
}

// NewIndex builds an index over the given records. When two records share a
// key the earlier record keeps it.
func NewIndex(recs []types.InstitutionRecord) *Index {
	idx := &Index{
		records: make([]types.InstitutionRecord, len(recs)),
		byKey:   make(map[string]int),
	}

	for i, rec := range recs {
		rec.Aliases = append([]string(nil), rec.Aliases...)
		idx.records[i] = rec

		for _, name := range append([]string{rec.CanonicalName}, rec.Aliases...) {
			key := keyText(name)
			if key == "" {
				continue
			}
			if _, taken := idx.byKey[key]; !taken {
				idx.byKey[key] = i
				idx.keys = append(idx.keys, key)
			}
		}
	}

	sort.Slice(idx.keys, func(i, j int) bool {
		if len(idx.keys[i]) != len(idx.keys[j]) {
			return len(idx.keys[i]) > len(idx.keys[j])
		}
		return idx.keys[i] < idx.keys[j]
	})

	return idx
}

// Len returns the number of records.
func (idx *Index) Len() int {
	return len(idx.records)
}

// Records returns a copy of the indexed records.
func (idx *Index) Records() []types.InstitutionRecord {
	out := make([]types.InstitutionRecord, len(idx.records))
	copy(out, idx.records)
	return out
}

// lookup returns the record of the longest key contained in text, falling
// back to an exact key match.
func (idx *Index) lookup(text string) (*types.InstitutionRecord, bool) {
	for _, key := range idx.keys {
		if parsing.ContainsTerm(text, key) {
			return idx.record(idx.byKey[key]), true
		}
	}
	if i, ok := idx.byKey[text]; ok {
		return idx.record(i), true
	}
	return nil, false
}

func (idx *Index) record(i int) *types.InstitutionRecord {
	rec := idx.records[i]
	rec.Aliases = append([]string(nil), rec.Aliases...)
	return &rec
}

// keyText normalizes a name for matching: punctuation that separates name
// parts (".", "-", "/") becomes a space.
func keyText(s string) string {
	n := parsing.Normalize(s)
	n = strings.NewReplacer(".", " ", "-", " ", "/", " ", "\n", " ").Replace(n)
	return strings.Join(strings.Fields(n), " ")
}
