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
	"strconv"

	"go.trai.ch/zerr"
)

var (
	// ErrEmptyVocabulary is returned when a vocabulary has no words.
	ErrEmptyVocabulary = zerr.New("vocabulary is empty")

	// ErrBadPrefix is returned when the identifier prefix is not a Go identifier.
	ErrBadPrefix = zerr.New("prefix is not a valid Go identifier")

	// ErrEmptyWord is returned when a vocabulary contains an empty word.
	ErrEmptyWord = zerr.New("word is empty")

	// ErrSeparator is returned when a word contains the table separator byte.
	ErrSeparator = zerr.New("word contains the table separator byte")

	// ErrReserved is returned when a word folds to the terminal entry.
	ErrReserved = zerr.New(`word is reserved for the terminal entry "last"`)

	// ErrDuplicate is returned when two words fold to the same text.
	ErrDuplicate = zerr.New("word appears more than once, ignoring case")

	// ErrBadIdent is returned when a word cannot be turned into a Go identifier.
	ErrBadIdent = zerr.New("word does not produce a valid Go identifier")

	// ErrIdentCollision is returned when two words, or a word and one of the
	// reserved identifiers, produce the same identifier.
	ErrIdentCollision = zerr.New("word produces the same identifier as another word")
)

func wordError(err error, word string) error {
	return zerr.With(zerr.Wrap(err, quote(word)), "word", word)
}

func quote(s string) string {
	return strconv.Quote(s)
}
