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
	"os"
	"time"

	"github.com/snapcore/devinfo/internal/deviceinfo"
	"github.com/snapcore/devinfo/internal/execcmd"
	"github.com/snapcore/devinfo/internal/paths"
)

var (
	execcmdRun = execcmd.Run
	osReadFile = os.ReadFile
)

type defaultEnvImpl struct {
	reader         *deviceinfo.Reader
	commandTimeout time.Duration
}

// RunCommand implements [HostEnvironment.RunCommand].
func (e *defaultEnvImpl) RunCommand(timeout time.Duration, name string, args ...string) []byte {
	if timeout == 0 {
		timeout = e.commandTimeout
	}
	return execcmdRun(name, args, &execcmd.Options{Timeout: timeout})
}

// ReadDeviceInfo implements [HostEnvironment.ReadDeviceInfo].
func (e *defaultEnvImpl) ReadDeviceInfo(filename string) (string, bool) {
	return e.reader.ReadInfo(filename)
}

// ReadCPUInfo implements [HostEnvironment.ReadCPUInfo].
func (*defaultEnvImpl) ReadCPUInfo() (string, error) {
	data, err := osReadFile(paths.CPUInfoPath)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// NewHostEnvironment returns a HostEnvironment for the host machine that
// reads device info snapshots from deviceInfoDir and applies
// commandTimeout to commands run without an explicit timeout. Empty or
// zero arguments select the defaults.
func NewHostEnvironment(deviceInfoDir string, commandTimeout time.Duration) HostEnvironment {
	if commandTimeout == 0 {
		commandTimeout = DefaultCommandTimeout
	}
	reader := deviceinfo.DefaultReader
	if deviceInfoDir != "" {
		reader = &deviceinfo.Reader{Service: deviceinfo.DefaultReader.Service, Dir: deviceInfoDir}
	}
	return &defaultEnvImpl{
		reader:         reader,
		commandTimeout: commandTimeout,
	}
}

// DefaultEnv corresponds to the environment associated with the host
// machine.
var DefaultEnv = NewHostEnvironment("", 0)
