// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"io"
	"os"
	"strings"

	shellquote "github.com/kballard/go-shellquote"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newScriptCommand() *cobra.Command {
	var keepGoing bool
	cmd := &cobra.Command{
		Use:   "script [FILE]",
		Short: "Run axisplot commands read from a file",
		Long: `script reads axisplot command lines from FILE (default stdin) and runs
each one as if it were passed to axisplot. Lines are split with shell
quoting rules. Blank lines and lines starting with # are ignored.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := cmd.InOrStdin()
			name := "<stdin>"
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r, name = f, args[0]
			}
			return runScript(cmd, r, name, keepGoing)
		},
	}
	cmd.Flags().BoolVarP(&keepGoing, "keep-going", "k", false, "continue after a failing line")
	return cmd
}

// runScript runs each command line in r. Output goes to cmd's output.
func runScript(cmd *cobra.Command, r io.Reader, name string, keepGoing bool) error {
	var failed int
	sc := bufio.NewScanner(r)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		args, err := shellquote.Split(line)
		if err == nil && len(args) > 0 && args[0] == "axisplot" {
			args = args[1:]
		}
		if err == nil && len(args) > 0 && args[0] == "script" {
			err = errors.New("scripts cannot run scripts")
		}
		if err == nil {
			// Each line gets fresh flag state.
			sub := newRootCommand()
			sub.SetArgs(args)
			sub.SetIn(cmd.InOrStdin())
			sub.SetOut(cmd.OutOrStdout())
			sub.SetErr(cmd.ErrOrStderr())
			err = sub.Execute()
		}
		if err != nil {
			err = errors.Wrapf(err, "%s:%d", name, lineNo)
			if !keepGoing {
				return err
			}
			logrus.WithError(err).Error("script line failed")
			failed++
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	if failed > 0 {
		return errors.Errorf("%s: %d lines failed", name, failed)
	}
	return nil
}
