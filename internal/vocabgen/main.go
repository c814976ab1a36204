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

// vocabgen generates Go enums backed by packed, case-insensitive string
// tables.
//
// Each argument is a YAML file named <file>.go.yaml, listing one or more
// vocabularies:
//
//	- name: Tag
//	  prefix: Tag
//	  type: int
//	  find: FindTag
//	  docs: |
//	    Tag is a markup tag.
//	  words: a b blockquote body br
//
// The generated code is written to <file>.go, next to the config. It is
// intended to be invoked with go:generate, so the package clause defaults to
// $GOPACKAGE.
package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.trai.ch/zerr"
)

// ErrNoPackage is returned when neither --package nor $GOPACKAGE is set.
var ErrNoPackage = zerr.New("no package name: pass --package or run under go:generate")

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], afero.NewOsFs(), os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, fs afero.Fs, stdout, stderr io.Writer) int {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cmd := newCommand(fs, stdout, logger, level)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	// Report each failed config separately.
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		for _, err := range joined.Unwrap() {
			zerr.Log(ctx, logger, err)
		}
	} else {
		zerr.Log(ctx, logger, err)
	}
	return 1
}

func newCommand(fs afero.Fs, stdout io.Writer, logger *slog.Logger, level *slog.LevelVar) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("VOCABGEN")
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "vocabgen [flags] <config.go.yaml>...",
		Short:         "Generate Go enums backed by packed string tables",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if v.GetBool("verbose") {
				level.Set(slog.LevelDebug)
			}

			pkg := v.GetString("package")
			if pkg == "" {
				return ErrNoPackage
			}

			g := &Generator{
				Fs:      fs,
				Package: pkg,
				Check:   v.GetBool("check"),
				Dump:    v.GetBool("dump"),
				Stdout:  stdout,
				Logger:  logger,
			}
			return g.Run(cmd.Context(), args)
		},
	}

	flags := cmd.Flags()
	flags.String("package", "", "package clause for generated files (default $GOPACKAGE)")
	flags.Bool("check", false, "fail if any generated file is out of date, instead of writing it")
	flags.Bool("dump", false, "print each vocabulary's table instead of generating code")
	flags.BoolP("verbose", "v", false, "log at debug level")
	cmd.MarkFlagsMutuallyExclusive("check", "dump")

	cobra.CheckErr(v.BindPFlags(flags))
	cobra.CheckErr(v.BindEnv("package", "VOCABGEN_PACKAGE", "GOPACKAGE"))

	return cmd
}
