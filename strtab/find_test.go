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

package strtab_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/tagtable/strtab"
)

func TestFind(t *testing.T) {
	t.Parallel()

	table := strtab.Must(scenario, 4)
	tests := []struct {
		text   string
		find   int
		lookup int
	}{
		{text: "a", find: 0, lookup: 0},
		{text: "A", find: 0, lookup: 0},
		{text: "abba2", find: 1, lookup: 1},
		{text: "ABBA2", find: 1, lookup: 1},
		{text: "aBbA2", find: 1, lookup: 1},
		{text: "bo", find: 2, lookup: 2},
		{text: "BO", find: 2, lookup: 2},
		{text: "bO", find: 2, lookup: 2},

		// Prefixes of entries, and entries that are prefixes.
		{text: "ab", find: -1, lookup: -1},
		{text: "abba", find: -1, lookup: -1},
		{text: "abba22", find: -1, lookup: -1},
		{text: "b", find: -1, lookup: -1},
		{text: "boo", find: -1, lookup: -1},
		{text: "aa", find: -1, lookup: -1},

		{text: "", find: -1, lookup: -1},
		{text: "c", find: -1, lookup: -1},
		{text: "z", find: -1, lookup: -1},
		{text: "0", find: -1, lookup: -1},
		{text: "\x00", find: -1, lookup: -1},
		{text: "a\x00", find: -1, lookup: -1},
		{text: "\xff", find: -1, lookup: -1},

		// The terminal entry is found structurally, but is never a valid
		// classification.
		{text: "last", find: 3, lookup: -1},
		{text: "LAST", find: 3, lookup: -1},
		{text: "las", find: -1, lookup: -1},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("%q", test.text), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, test.find, strtab.Find(table, test.text))
			assert.Equal(t, test.find, strtab.Find(table, []byte(test.text)))
			assert.Equal(t, test.lookup, strtab.Lookup[int](table, test.text))
			assert.Equal(t, int8(test.lookup), strtab.Lookup[int8](table, []byte(test.text)))
		})
	}
}

func TestFindPrunes(t *testing.T) {
	t.Parallel()

	// Every entry starting after 'l' sorts after the terminal, so the
	// search stops before reaching it.
	table := strtab.Must("a\x00mbp:pagebreak\x00ul\x00last\x00", 4)
	assert.Equal(t, strtab.NotFound, strtab.Find(table, "last"))
	assert.Equal(t, 1, strtab.Find(table, "MBP:PageBreak"))
	assert.Equal(t, 2, strtab.Find(table, "UL"))
	assert.Equal(t, strtab.NotFound, strtab.Find(table, "mbp"))
}

func TestFindBounds(t *testing.T) {
	t.Parallel()

	table := strtab.Must(scenario, 4)

	// The candidate is a window into a larger buffer; bytes past its length
	// must not take part in the comparison.
	buf := []byte("abba2bo")
	assert.Equal(t, 0, strtab.Find(table, buf[:1]))
	assert.Equal(t, strtab.NotFound, strtab.Find(table, buf[:2]))
	assert.Equal(t, 1, strtab.Find(table, buf[:5]))
	assert.Equal(t, 2, strtab.Find(table, buf[5:]))
	assert.Equal(t, strtab.NotFound, strtab.Find(table, buf[5:5]))
}

func TestFindNamedTypes(t *testing.T) {
	t.Parallel()

	type token string
	type raw []byte
	type ordinal int16

	table := strtab.Must(scenario, 4)
	assert.Equal(t, ordinal(2), strtab.Lookup[ordinal](table, token("Bo")))
	assert.Equal(t, ordinal(-1), strtab.Lookup[ordinal](table, raw("Bob")))
}

func TestFindDoesNotAllocate(t *testing.T) {
	table := strtab.Must(scenario, 4)
	text := []byte("ABBA2")

	allocs := testing.AllocsPerRun(100, func() {
		strtab.Find(table, text)
		strtab.Lookup[int](table, "missing")
	})
	assert.Zero(t, allocs)
}

func FuzzFind(f *testing.F) {
	table := strtab.Must(
		"a\x00abba2\x00b\x00blockquote\x00body\x00h2\x00mbp:pagebreak\x00ul\x00\xc3\xa9\x00last\x00",
		10,
	)
	for _, entry := range table.All() {
		f.Add(entry)
		f.Add(strings.ToUpper(entry))
	}
	f.Add("")
	f.Add("Body ")

	f.Fuzz(func(t *testing.T, text string) {
		want := strtab.NotFound
		for n, entry := range table.All() {
			if n < table.Len()-1 && asciiEqualFold(entry, text) {
				want = n
				break
			}
		}

		assert.Equal(t, want, strtab.Lookup[int](table, text))
		if got := strtab.Find(table, text); got != want {
			// Only the terminal entry may differ.
			assert.Equal(t, table.Len()-1, got)
			assert.True(t, asciiEqualFold(strtab.Terminal, text))
		}
	})
}

func BenchmarkFind(b *testing.B) {
	table := strtab.Must(
		"a\x00b\x00blockquote\x00body\x00br\x00div\x00font\x00guide\x00h2\x00head\x00"+
			"html\x00i\x00img\x00li\x00mbp:pagebreak\x00ol\x00p\x00reference\x00span\x00"+
			"sup\x00table\x00td\x00tr\x00u\x00ul\x00last\x00",
		26,
	)
	inputs := [][]byte{[]byte("a"), []byte("SPAN"), []byte("ul"), []byte("section"), []byte("x")}

	b.ReportAllocs()
	for i := 0; b.Loop(); i++ {
		strtab.Find(table, inputs[i%len(inputs)])
	}
}

func asciiEqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range len(a) {
		x, y := a[i], b[i]
		if 'A' <= x && x <= 'Z' {
			x += 'a' - 'A'
		}
		if 'A' <= y && y <= 'Z' {
			y += 'a' - 'A'
		}
		if x != y {
			return false
		}
	}
	return true
}
