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

package strtab

import "golang.org/x/exp/constraints"

// Find searches t for text, ignoring ASCII case, and returns its ordinal, or
// [NotFound].
//
// Find is purely structural: searching for [Terminal] may return the ordinal
// of the terminal entry. Use [Lookup] to classify tokens.
func Find[S Text](t *Table, text S) int {
	if len(text) == 0 {
		return NotFound
	}

	table := t.packed
	first := toLower(text[0])
	cursor := 0
	for n := 0; ; n++ {
		// The cursor is at the start of an entry. Entries are sorted, so once
		// an entry starts with a greater byte than text does, no later entry
		// can match.
		if cursor >= len(table) || table[cursor] == Separator || table[cursor] > first {
			return NotFound
		}

		i := 0
		for i < len(text) && cursor < len(table) && table[cursor] != Separator {
			if toLower(text[i]) != table[cursor] {
				break
			}
			i++
			cursor++
		}
		if i == len(text) && cursor < len(table) && table[cursor] == Separator {
			return n
		}

		// Mismatch: skip the rest of this entry and its separator.
		for cursor < len(table) && table[cursor] != Separator {
			cursor++
		}
		cursor++
	}
}

// Lookup is like [Find], but converts the result to an ordinal type O and
// never returns the terminal entry, which is reported as [NotFound].
//
// This is the entry point used by generated per-vocabulary lookup functions.
func Lookup[O constraints.Signed, S Text](t *Table, text S) O {
	n := Find(t, text)
	if n == t.len-1 {
		return NotFound
	}
	return O(n)
}

func toLower(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
