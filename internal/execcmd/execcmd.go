// -*- Mode: Go; indent-tabs-mode: t -*-

/*
 * Copyright (C) 2024 Canonical Ltd
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License version 3 as
 * published by the Free Software Foundation.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

// Package execcmd runs external system tools whose textual output is parsed
// by the rest of devinfo.
package execcmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/snapcore/snapd/logger"
	"github.com/snapcore/snapd/osutil"

	"golang.org/x/xerrors"
)

const (
	// DefaultTimeout is used when no timeout is supplied.
	DefaultTimeout = 30 * time.Second

	// NoTimeout makes the caller wait for the command to exit, however
	// long that takes.
	NoTimeout time.Duration = -1

	normalizedLang     = "en_US.UTF-8"
	normalizedLanguage = "en_US"
)

var (
	// ErrEmptyCommand is returned when no command name is supplied.
	ErrEmptyCommand = errors.New("no command specified")

	osEnviron = os.Environ
)

// Options controls how a command is executed.
type Options struct {
	// Dir is the working directory. If empty, the caller's working
	// directory is used.
	Dir string

	// Timeout bounds how long to wait for the command. Zero means
	// DefaultTimeout and NoTimeout disables the bound.
	Timeout time.Duration

	// KeepLocale disables forcing LANG and LANGUAGE to an English locale.
	// Most callers parse the output and so want it locale independent.
	KeepLocale bool
}

func (o *Options) timeout() time.Duration {
	if o.Timeout == 0 {
		return DefaultTimeout
	}
	return o.Timeout
}

// NormalizeLocaleEnv returns a copy of env with LANG set to en_US.UTF-8 and
// LANGUAGE set to en_US. Existing entries are replaced in place and missing
// ones are appended.
func NormalizeLocaleEnv(env []string) []string {
	out := make([]string, 0, len(env)+2)
	var hasLang, hasLanguage bool
	for _, e := range env {
		switch {
		case strings.HasPrefix(e, "LANG="):
			out = append(out, "LANG="+normalizedLang)
			hasLang = true
		case strings.HasPrefix(e, "LANGUAGE="):
			out = append(out, "LANGUAGE="+normalizedLanguage)
			hasLanguage = true
		default:
			out = append(out, e)
		}
	}
	if !hasLang {
		out = append(out, "LANG="+normalizedLang)
	}
	if !hasLanguage {
		out = append(out, "LANGUAGE="+normalizedLanguage)
	}
	return out
}

// OutputContext runs the named command and returns its standard output. An
// error is returned if the command cannot be started, exits with a non-zero
// status, is terminated by a signal or does not finish before the timeout
// or the context is done. Any output produced before such a failure is
// discarded.
func OutputContext(ctx context.Context, name string, args []string, opts *Options) ([]byte, error) {
	if name == "" {
		return nil, ErrEmptyCommand
	}
	if opts == nil {
		opts = new(Options)
	}

	if timeout := opts.timeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = opts.Dir
	if !opts.KeepLocale {
		cmd.Env = NormalizeLocaleEnv(osEnviron())
	}

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	logger.Debugf("executing %s %q", name, args)
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, xerrors.Errorf("cannot run %s: %w", name, ctx.Err())
		}
		return nil, xerrors.Errorf("cannot run %s: %w", name, osutil.OutputErr(stderr.Bytes(), err))
	}
	logger.Debugf("%s completed with %d bytes of output", name, stdout.Len())

	return stdout.Bytes(), nil
}

// Output is OutputContext with a background context.
func Output(name string, args []string, opts *Options) ([]byte, error) {
	return OutputContext(context.Background(), name, args, opts)
}

// RunContext runs the named command and returns its standard output. On
// any failure the error is logged and nil is returned, so callers must
// treat empty output as "unknown".
func RunContext(ctx context.Context, name string, args []string, opts *Options) []byte {
	out, err := OutputContext(ctx, name, args, opts)
	if err != nil {
		logger.Noticef("command failed: %v", err)
		return nil
	}
	return out
}

// Run is RunContext with a background context.
func Run(name string, args []string, opts *Options) []byte {
	return RunContext(context.Background(), name, args, opts)
}
