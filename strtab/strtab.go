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

// Package strtab implements the run-time half of vocabulary interning: a
// packed, sorted table of NUL-separated strings and a case-insensitive search
// over it that maps a token to its position in the table.
//
// Tables are produced ahead of time by a generator and embedded as string
// constants. A search never allocates, never reads past the end of the
// candidate or the table, and may be run concurrently from any number of
// goroutines.
//
// # Layout
//
// A packed table is a sequence of non-empty, lower-case entries, each followed
// by exactly one [Separator] byte. Entries are in ascending byte order, except
// for the final entry, which is always [Terminal]. For example, the vocabulary
// {"bo", "a", "abba2"} packs as
//
//	"a\x00abba2\x00bo\x00last\x00"
//
// and the ordinal of an entry is its zero-based position in the table.
package strtab

import (
	"fmt"
	"iter"
	"strings"
)

const (
	// Separator follows every entry in a packed table.
	Separator byte = 0

	// Terminal is the reserved final entry of every packed table. It bounds
	// the search and is never a real classification result.
	Terminal = "last"

	// NotFound is the ordinal returned when a candidate is not in a table.
	NotFound = -1
)

// Text is a candidate token: a view into caller-owned text.
type Text interface {
	~string | ~[]byte
}

// Table is a validated packed table.
//
// The zero value is not usable; construct tables with [New] or [Must].
type Table struct {
	packed string
	len    int
}

// New parses and validates a packed table.
func New(packed string) (*Table, error) {
	if packed == "" {
		return nil, fmt.Errorf("strtab: empty table")
	}
	if packed[len(packed)-1] != Separator {
		return nil, fmt.Errorf("strtab: table does not end in a separator")
	}

	var (
		n          int
		prev, last string
	)
	for entry := range strings.SplitSeq(packed[:len(packed)-1], string(Separator)) {
		switch {
		case last == Terminal:
			return nil, fmt.Errorf("strtab: entry %d (%q) follows the terminal entry", n, entry)
		case entry == "":
			return nil, fmt.Errorf("strtab: entry %d is empty", n)
		case entry == Terminal:
			// Exempt from ordering; checked to be last above.
		case hasUpper(entry):
			return nil, fmt.Errorf("strtab: entry %d (%q) is not lower case", n, entry)
		case n > 0 && entry <= prev:
			return nil, fmt.Errorf("strtab: entry %d (%q) is not sorted after %q", n, entry, prev)
		default:
			prev = entry
		}
		last = entry
		n++
	}
	if last != Terminal {
		return nil, fmt.Errorf("strtab: table does not end in %q", Terminal)
	}

	return &Table{packed: packed, len: n}, nil
}

// Must is like [New], but panics on error, or if the table does not have
// exactly n entries (including the terminal entry).
//
// Generated code uses this to bind a table to the enum generated alongside it
// when the package is initialized.
func Must(packed string, n int) *Table {
	t, err := New(packed)
	if err != nil {
		panic(err)
	}
	if t.len != n {
		panic(fmt.Sprintf("strtab: table has %d entries, want %d", t.len, n))
	}
	return t
}

// Len returns the number of entries in t, including the terminal entry.
func (t *Table) Len() int {
	return t.len
}

// Packed returns the packed representation of t.
func (t *Table) Packed() string {
	return t.packed
}

// Entry returns the entry with the given ordinal.
//
// Returns "" if n is out of range.
func (t *Table) Entry(n int) string {
	for i, entry := range t.All() {
		if i == n {
			return entry
		}
	}
	return ""
}

// All returns an iterator over the ordinals and entries of t, in table order.
func (t *Table) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		rest := t.packed
		for n := 0; rest != ""; n++ {
			entry, after, _ := strings.Cut(rest, string(Separator))
			if !yield(n, entry) {
				return
			}
			rest = after
		}
	}
}

// String implements [fmt.Stringer].
func (t *Table) String() string {
	return fmt.Sprintf("strtab.Table(%q)", t.packed)
}

func hasUpper(s string) bool {
	for i := range len(s) {
		if 'A' <= s[i] && s[i] <= 'Z' {
			return true
		}
	}
	return false
}
