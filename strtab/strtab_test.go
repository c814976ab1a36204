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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/tagtable/strtab"
)

const scenario = "a\x00abba2\x00bo\x00last\x00"

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, packed string
		len          int
		err          string
	}{
		{name: "scenario", packed: scenario, len: 4},
		{name: "terminal only", packed: "last\x00", len: 1},
		{name: "non-ascii", packed: "caf\xc3\xa9\x00last\x00", len: 2},

		{name: "empty", packed: "", err: "empty table"},
		{name: "unterminated", packed: "a\x00last", err: "does not end in a separator"},
		{name: "empty entry", packed: "a\x00\x00last\x00", err: "entry 1 is empty"},
		{name: "no terminal", packed: "a\x00b\x00", err: `does not end in "last"`},
		{name: "terminal first", packed: "last\x00a\x00", err: "follows the terminal entry"},
		{name: "unsorted", packed: "b\x00a\x00last\x00", err: `entry 1 ("a") is not sorted after "b"`},
		{name: "duplicate", packed: "a\x00a\x00last\x00", err: "is not sorted"},
		{name: "upper case", packed: "A\x00last\x00", err: "not lower case"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			table, err := strtab.New(test.packed)
			if test.err != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), test.err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.len, table.Len())
			assert.Equal(t, test.packed, table.Packed())
		})
	}
}

func TestMust(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { strtab.Must(scenario, 4) })
	assert.Panics(t, func() { strtab.Must(scenario, 3) })
	assert.Panics(t, func() { strtab.Must("b\x00a\x00last\x00", 3) })
}

func TestEntries(t *testing.T) {
	t.Parallel()

	table := strtab.Must(scenario, 4)
	var entries []string
	for n, entry := range table.All() {
		assert.Len(t, entries, n)
		entries = append(entries, entry)
	}
	assert.Equal(t, []string{"a", "abba2", "bo", "last"}, entries)
	assert.Equal(t, "abba2", table.Entry(1))
	assert.Equal(t, strtab.Terminal, table.Entry(3))
	assert.Empty(t, table.Entry(4))
	assert.Empty(t, table.Entry(-1))
}
