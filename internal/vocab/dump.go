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

package vocab

import (
	"io"
	"strconv"
	"strings"

	"github.com/rivo/uniseg"
)

// Dump writes a human-readable listing of t to w: one line per declaration,
// with the ordinal, identifier, and entry text in aligned columns, followed by
// the packed table as a quoted Go string.
func (t *Table) Dump(w io.Writer) error {
	decls := t.Decls()

	var ordWidth, identWidth int
	for _, d := range decls {
		ordWidth = max(ordWidth, len(strconv.Itoa(d.Ordinal)))
		identWidth = max(identWidth, uniseg.StringWidth(d.Ident))
	}

	var out strings.Builder
	for _, d := range decls {
		ord := strconv.Itoa(d.Ordinal)
		out.WriteString(strings.Repeat(" ", ordWidth-len(ord)))
		out.WriteString(ord)
		out.WriteString("  ")

		line := d.Ident + strings.Repeat(" ", identWidth-uniseg.StringWidth(d.Ident)) + "  " + d.Name
		out.WriteString(strings.TrimRight(line, " "))
		out.WriteByte('\n')
	}
	out.WriteString("packed: ")
	out.WriteString(strconv.Quote(t.Packed))
	out.WriteByte('\n')

	_, err := io.WriteString(w, out.String())
	return err
}

// String implements [fmt.Stringer].
func (t *Table) String() string {
	var out strings.Builder
	_ = t.Dump(&out)
	return out.String()
}
