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
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"go/format"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"github.com/spf13/afero"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/bufbuild/tagtable/internal/textdiff"
)

// binary is the import path of this generator, as named in generated headers.
const binary = "github.com/bufbuild/tagtable/internal/vocabgen"

// ErrStale is returned in check mode when a generated file is out of date.
var ErrStale = zerr.New("generated file is out of date")

//go:embed vocabgen.go.tmpl
var tmplText string

var tmpl = template.Must(template.New("vocabgen.go.tmpl").Funcs(template.FuncMap{
	"makeDocs": makeDocs,
	"quote":    strconv.Quote,
}).Parse(tmplText))

// Generator generates Go source for vocabulary config files.
type Generator struct {
	Fs      afero.Fs
	Package string // Package clause of generated files.

	// If set, nothing is written; instead, generation fails if any output
	// file differs from what would be written.
	Check bool

	// If set, nothing is written; instead, a listing of each vocabulary is
	// printed to Stdout.
	Dump bool

	Stdout io.Writer
	Logger *slog.Logger
}

// Run processes every config file, concurrently.
//
// Returns one error per failed config file, joined with [errors.Join].
func (g *Generator) Run(ctx context.Context, configs []string) error {
	outputs := make([][]byte, len(configs))
	errs := make([]error, len(configs))

	eg, ctx := errgroup.WithContext(ctx)
	for i, config := range configs {
		eg.Go(func() error {
			// Failures are collected rather than returned, so that one bad
			// config does not cancel the others.
			outputs[i], errs[i] = g.generate(ctx, config)
			return nil
		})
	}
	_ = eg.Wait()

	if g.Dump {
		for _, out := range outputs {
			if _, err := g.Stdout.Write(out); err != nil {
				return zerr.Wrap(err, "failed to write dump")
			}
		}
	}

	return errors.Join(errs...)
}

// generate processes a single config file. In dump mode, it returns the text
// to print.
func (g *Generator) generate(ctx context.Context, config string) ([]byte, error) {
	logger := g.Logger.With("config", config)
	logger.DebugContext(ctx, "loading vocabularies")

	vocabs, err := loadConfig(g.Fs, config)
	if err != nil {
		return nil, err
	}
	for _, v := range vocabs {
		logger.DebugContext(ctx, "built vocabulary",
			"name", v.Name,
			"entries", v.Table.Len(),
			"bytes", len(v.Table.Packed),
		)
	}

	if g.Dump {
		var out bytes.Buffer
		for _, v := range vocabs {
			fmt.Fprintf(&out, "# %s: %s\n", config, v.Name)
			if err := v.Table.Dump(&out); err != nil {
				return nil, err
			}
		}
		return out.Bytes(), nil
	}

	src, err := render(Input{
		Binary:       binary,
		Package:      g.Package,
		Config:       filepath.Base(config),
		Vocabularies: vocabs,
	})
	if err != nil {
		return nil, zerr.With(err, "config", config)
	}

	path := strings.TrimSuffix(config, ".yaml")
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if g.Check {
		return nil, g.check(ctx, path, src)
	}

	if err := afero.WriteFile(g.Fs, path, src, 0o644); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to write generated file"), "path", path)
	}
	logger.InfoContext(ctx, "wrote generated file", "path", path)
	return nil, nil
}

// check compares src with the file at path.
func (g *Generator) check(ctx context.Context, path string, src []byte) error {
	have, err := afero.ReadFile(g.Fs, path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to read generated file"), "path", path)
	}
	if bytes.Equal(have, src) {
		g.Logger.DebugContext(ctx, "generated file is up to date", "path", path)
		return nil
	}

	diff, err := textdiff.Unified(path, string(have), path+" (generated)", string(src), 3)
	if err != nil {
		return err
	}
	fmt.Fprint(g.Stdout, textdiff.Colorize(diff))

	return zerr.With(zerr.Wrap(ErrStale, path), "path", path)
}

// Input is the data passed to the template.
type Input struct {
	Binary, Package, Config string
	Vocabularies            []*Vocabulary
}

// render executes the template and formats the result.
func render(input Input) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, input); err != nil {
		return nil, zerr.Wrap(err, "failed to execute template")
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, zerr.Wrap(err, "template produced invalid Go")
	}
	return src, nil
}

// makeDocs converts a block of text into line comments, each prefixed with
// indent.
func makeDocs(data, indent string) string {
	if data == "" {
		return ""
	}

	var out strings.Builder
	for _, line := range strings.Split(strings.TrimSpace(data), "\n") {
		out.WriteString(indent)
		if line == "" {
			out.WriteString("//\n")
			continue
		}
		out.WriteString("// ")
		out.WriteString(line)
		out.WriteString("\n")
	}
	return out.String()
}
