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

package devinfo

import (
	"time"

	"github.com/snapcore/devinfo/internal/execcmd"
)

const (
	// NoTimeout makes HostEnvironment.RunCommand wait for the command to
	// exit, however long that takes.
	NoTimeout = execcmd.NoTimeout

	// DefaultCommandTimeout is used by HostEnvironment.RunCommand when no
	// timeout is supplied.
	DefaultCommandTimeout = execcmd.DefaultTimeout
)

// HostEnvironment is an interface that abstracts out the sources of
// information about the host, so that consumers of the API can mock them.
// None of these report failures as errors that the vendor resolver acts
// on: missing information is simply absent.
type HostEnvironment interface {
	// RunCommand runs the named command and returns its standard output,
	// with LANG and LANGUAGE forced to an English locale. It returns
	// nil if the command cannot be started, exits with a non-zero status
	// or does not finish within timeout. A zero timeout selects the
	// environment's default and NoTimeout waits indefinitely.
	RunCommand(timeout time.Duration, name string, args ...string) []byte

	// ReadDeviceInfo returns the device information captured under the
	// supplied snapshot filename, eg "dmidecode_spn.txt", preferring the
	// live device info service. The second return value is false if no
	// source had it.
	ReadDeviceInfo(filename string) (string, bool)

	// ReadCPUInfo returns the contents of /proc/cpuinfo.
	ReadCPUInfo() (string, error)
}
