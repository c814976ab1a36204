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

package main

import (
	"fmt"
	"go/token"
	"math"
	"path/filepath"

	"github.com/spf13/afero"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/tagtable/internal/vocab"
)

var (
	ErrNotYAML        = zerr.New("config file must end in .yaml")
	ErrNoVocabularies = zerr.New("config file declares no vocabularies")
	ErrBadName        = zerr.New("vocabulary name is not a valid Go identifier")
	ErrBadType        = zerr.New("vocabulary type must be a signed integer type")
	ErrTooManyWords   = zerr.New("vocabulary does not fit in its type")
	ErrBadFind        = zerr.New("lookup function name is not a valid Go identifier")
	ErrDuplicateDecl  = zerr.New("declaration is generated more than once")
)

// maxOrdinal is the largest ordinal each supported underlying type can hold.
var maxOrdinal = map[string]int64{
	"int":   math.MaxInt32, // Portable across 32-bit platforms.
	"int8":  math.MaxInt8,
	"int16": math.MaxInt16,
	"int32": math.MaxInt32,
	"int64": math.MaxInt64,
}

// Vocabulary is one vocabulary to generate, as written in a .go.yaml config
// file.
type Vocabulary struct {
	Name   string `yaml:"name"`   // The name of the generated type.
	Prefix string `yaml:"prefix"` // Identifier prefix; defaults to Name.
	Type   string `yaml:"type"`   // The underlying type; defaults to int.
	Find   string `yaml:"find"`   // Lookup function name; defaults to "Find" + Name.
	Docs   string `yaml:"docs"`   // Documentation for the type.
	Words  string `yaml:"words"`  // Whitespace-separated words.

	Table *vocab.Table `yaml:"-"`
}

// Entries returns the entries of the vocabulary that are valid lookup
// results, i.e., everything but the terminal entry.
func (v *Vocabulary) Entries() []vocab.Entry {
	return v.Table.Entries[:v.Table.Len()-1]
}

// loadConfig reads a config file and builds every vocabulary in it.
func loadConfig(fs afero.Fs, path string) ([]*Vocabulary, error) {
	if filepath.Ext(path) != ".yaml" {
		return nil, zerr.With(zerr.Wrap(ErrNotYAML, path), "config", path)
	}

	text, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read config"), "config", path)
	}

	var vocabs []*Vocabulary
	if err := yaml.Unmarshal(text, &vocabs); err != nil {
		return nil, zerr.With(zerr.Wrap(err, path), "config", path)
	}
	if len(vocabs) == 0 {
		return nil, zerr.Wrap(ErrNoVocabularies, path)
	}

	decls := make(map[string]string)
	declare := func(ident, owner string) error {
		if prev, ok := decls[ident]; ok {
			err := zerr.With(zerr.Wrap(ErrDuplicateDecl, ident), "vocabulary", owner)
			return zerr.With(err, "previous", prev)
		}
		decls[ident] = owner
		return nil
	}

	for _, v := range vocabs {
		if err := v.build(); err != nil {
			return nil, zerr.With(err, "config", path)
		}

		if err := declare(v.Name, v.Name); err != nil {
			return nil, err
		}
		if err := declare(v.Find, v.Name); err != nil {
			return nil, err
		}
		for _, d := range v.Table.Decls() {
			if err := declare(d.Ident, v.Name); err != nil {
				return nil, err
			}
		}
	}

	return vocabs, nil
}

// build fills in defaults, validates v, and builds its table.
func (v *Vocabulary) build() error {
	if !token.IsIdentifier(v.Name) {
		return zerr.With(zerr.Wrap(ErrBadName, fmt.Sprintf("%q", v.Name)), "vocabulary", v.Name)
	}
	if v.Prefix == "" {
		v.Prefix = v.Name
	}
	if v.Type == "" {
		v.Type = "int"
	}
	if v.Find == "" {
		v.Find = "Find" + v.Name
	}
	if !token.IsIdentifier(v.Find) {
		return zerr.With(zerr.Wrap(ErrBadFind, fmt.Sprintf("%q", v.Find)), "vocabulary", v.Name)
	}

	limit, ok := maxOrdinal[v.Type]
	if !ok {
		return zerr.With(zerr.Wrap(ErrBadType, v.Type), "vocabulary", v.Name)
	}

	table, err := vocab.Build(vocab.Parse(v.Words), v.Prefix)
	if err != nil {
		return zerr.With(zerr.Wrap(err, v.Name), "vocabulary", v.Name)
	}
	if int64(table.Last().Ordinal) > limit {
		err := zerr.With(zerr.Wrap(ErrTooManyWords, v.Type), "vocabulary", v.Name)
		return zerr.With(err, "entries", table.Len())
	}

	v.Table = table
	return nil
}
