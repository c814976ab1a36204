// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package vocab is the build-time half of vocabulary interning: it turns an
// unordered list of words into a packed [strtab] table and the enum that
// names each of its entries.
//
// The table and the enum are two views of one [Table] value, so an enum value
// always names the table entry at the same position.
package vocab

import (
	"go/token"
	"strconv"
	"strings"

	"github.com/tidwall/btree"
	"go.trai.ch/zerr"

	"github.com/bufbuild/tagtable/internal/cases"
	"github.com/bufbuild/tagtable/strtab"
)

const (
	notFoundSuffix = "NotFound"
	lastSuffix     = "Last"
)

// Table is a built vocabulary.
type Table struct {
	// The prefix every identifier in Entries starts with.
	Prefix string

	// The entries of the table, in table order. The final entry is always
	// the terminal entry, strtab.Terminal.
	Entries []Entry

	// The packed table, as understood by [strtab.New].
	Packed string
}

// Entry is a single entry in a [Table], or its not-found sentinel.
type Entry struct {
	Name    string // Normalized text; empty for the not-found sentinel.
	Ident   string // Go identifier naming this entry.
	Ordinal int    // Position in the table.
}

// Parse splits a whitespace-separated vocabulary literal into words.
func Parse(text string) []string {
	return strings.Fields(text)
}

// Build builds a table out of words.
//
// Words are folded to lower case and sorted by byte value; each is named by
// prefix followed by its colon-separated parts in PascalCase, so that
// "mbp:pagebreak" with prefix "Tag" becomes TagMbpPagebreak.
//
// Returns an error wrapping one of the Err* values in this package if words
// cannot produce a consistent table.
func Build(words []string, prefix string) (*Table, error) {
	if !token.IsIdentifier(prefix) {
		return nil, zerr.With(zerr.Wrap(ErrBadPrefix, quote(prefix)), "prefix", prefix)
	}
	if len(words) == 0 {
		return nil, zerr.With(zerr.Wrap(ErrEmptyVocabulary, quote(prefix)), "prefix", prefix)
	}

	var names btree.Set[string]
	for i, word := range words {
		if word == "" {
			return nil, zerr.With(zerr.Wrap(ErrEmptyWord, "word "+strconv.Itoa(i)), "index", i)
		}
		if strings.IndexByte(word, strtab.Separator) >= 0 {
			return nil, wordError(ErrSeparator, word)
		}

		name := Fold(word)
		if name == strtab.Terminal {
			return nil, wordError(ErrReserved, word)
		}
		if names.Contains(name) {
			return nil, wordError(ErrDuplicate, word)
		}
		names.Insert(name)
	}

	b := builder{
		table: &Table{
			Prefix:  prefix,
			Entries: make([]Entry, 0, names.Len()+1),
		},
		idents: map[string]string{
			prefix + notFoundSuffix: "",
			prefix + lastSuffix:     strtab.Terminal,
		},
	}

	var err error
	names.Scan(func(name string) bool {
		err = b.add(name)
		return err == nil
	})
	if err != nil {
		return nil, err
	}

	b.table.Entries = append(b.table.Entries, Entry{
		Name:    strtab.Terminal,
		Ident:   prefix + lastSuffix,
		Ordinal: len(b.table.Entries),
	})
	b.pack()

	// The matcher must agree with what was just built.
	if _, err := strtab.New(b.table.Packed); err != nil {
		return nil, zerr.Wrap(err, "built an invalid table")
	}

	return b.table, nil
}

// MustBuild is like [Build], but panics on error.
func MustBuild(words []string, prefix string) *Table {
	t, err := Build(words, prefix)
	if err != nil {
		panic(err)
	}
	return t
}

// NotFound returns the not-found sentinel for this table.
func (t *Table) NotFound() Entry {
	return Entry{
		Ident:   t.Prefix + notFoundSuffix,
		Ordinal: strtab.NotFound,
	}
}

// Last returns the terminal entry of this table.
func (t *Table) Last() Entry {
	return t.Entries[len(t.Entries)-1]
}

// Len returns the number of entries in this table, including the terminal
// entry.
func (t *Table) Len() int {
	return len(t.Entries)
}

// Decls returns every constant the enum for this table declares: the
// not-found sentinel first, followed by the entries in table order.
func (t *Table) Decls() []Entry {
	return append([]Entry{t.NotFound()}, t.Entries...)
}

// Fold folds ASCII letters in s to lower case, the same way [strtab.Find]
// folds candidates.
func Fold(s string) string {
	for i := range len(s) {
		if 'A' <= s[i] && s[i] <= 'Z' {
			goto fold
		}
	}
	return s

fold:
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

type builder struct {
	table  *Table
	idents map[string]string // Identifier -> name that produced it.
}

func (b *builder) add(name string) error {
	suffix := cases.Pascal(name)
	ident := b.table.Prefix + suffix
	if suffix == "" || !token.IsIdentifier(ident) {
		return zerr.With(wordError(ErrBadIdent, name), "ident", ident)
	}
	if other, ok := b.idents[ident]; ok {
		err := zerr.With(wordError(ErrIdentCollision, name), "ident", ident)
		return zerr.With(err, "other", other)
	}
	b.idents[ident] = name

	b.table.Entries = append(b.table.Entries, Entry{
		Name:    name,
		Ident:   ident,
		Ordinal: len(b.table.Entries),
	})
	return nil
}

func (b *builder) pack() {
	var buf strings.Builder
	for _, e := range b.table.Entries {
		buf.WriteString(e.Name)
		buf.WriteByte(strtab.Separator)
	}
	b.table.Packed = buf.String()
}
