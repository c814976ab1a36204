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

package textdiff_test

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/tagtable/internal/textdiff"
)

func TestUnified(t *testing.T) {
	t.Parallel()

	diff, err := textdiff.Unified("a", "x\ny\n", "b", "x\ny\n", 3)
	require.NoError(t, err)
	assert.Empty(t, diff)

	diff, err = textdiff.Unified("old.go", "x\ny\nz\n", "new.go", "x\nY\nz\n", 1)
	require.NoError(t, err)
	assert.Equal(t, `--- old.go
+++ new.go
@@ -1,3 +1,3 @@
 x
-y
+Y
 z
`, diff)
}

func TestColorize(t *testing.T) {
	// Not parallel: color.NoColor is global.
	prev := color.NoColor
	t.Cleanup(func() { color.NoColor = prev })

	diff := "--- a\n+++ b\n x\n-y\n+Y\n"

	color.NoColor = true
	assert.Equal(t, diff, textdiff.Colorize(diff))

	color.NoColor = false
	got := textdiff.Colorize(diff)
	assert.Contains(t, got, "\x1b[")
	assert.Contains(t, got, " x\n")
	assert.NotEqual(t, diff, got)
}
