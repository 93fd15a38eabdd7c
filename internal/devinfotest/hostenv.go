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

package devinfotest

import (
	"os"
	"strings"
	"time"
)

// MockCommandCall records one invocation of
// MockHostEnvironment.RunCommand.
type MockCommandCall struct {
	Timeout time.Duration
	Args    []string // includes the command name
}

// MockHostEnvironment provides a mock host environment. Commands are
// looked up by their full command line joined with spaces, eg
// "dmidecode -t 11". Unknown commands produce no output.
type MockHostEnvironment struct {
	Commands   map[string]string
	DeviceInfo map[string]string
	CPUInfo    string // an empty value means that /proc/cpuinfo doesn't exist

	CommandCalls    []MockCommandCall
	DeviceInfoCalls []string
	CPUInfoCalls    int
}

// NewMockHostEnvironment returns a new MockHostEnvironment.
func NewMockHostEnvironment(commands, deviceInfo map[string]string, cpuInfo string) *MockHostEnvironment {
	return &MockHostEnvironment{
		Commands:   commands,
		DeviceInfo: deviceInfo,
		CPUInfo:    cpuInfo}
}

// RunCommand implements [github.com/snapcore/devinfo.HostEnvironment.RunCommand].
func (e *MockHostEnvironment) RunCommand(timeout time.Duration, name string, args ...string) []byte {
	argv := append([]string{name}, args...)
	e.CommandCalls = append(e.CommandCalls, MockCommandCall{Timeout: timeout, Args: argv})

	out, ok := e.Commands[strings.Join(argv, " ")]
	if !ok {
		return nil
	}
	return []byte(out)
}

// ReadDeviceInfo implements [github.com/snapcore/devinfo.HostEnvironment.ReadDeviceInfo].
func (e *MockHostEnvironment) ReadDeviceInfo(filename string) (string, bool) {
	e.DeviceInfoCalls = append(e.DeviceInfoCalls, filename)
	info, ok := e.DeviceInfo[filename]
	return info, ok
}

// ReadCPUInfo implements [github.com/snapcore/devinfo.HostEnvironment.ReadCPUInfo].
func (e *MockHostEnvironment) ReadCPUInfo() (string, error) {
	e.CPUInfoCalls++
	if e.CPUInfo == "" {
		return "", &os.PathError{Op: "open", Path: "/proc/cpuinfo", Err: os.ErrNotExist}
	}
	return e.CPUInfo, nil
}

// CommandLines returns the command lines of all recorded RunCommand
// calls.
func (e *MockHostEnvironment) CommandLines() (out []string) {
	for _, call := range e.CommandCalls {
		out = append(out, strings.Join(call.Args, " "))
	}
	return out
}

// Probed indicates whether any source of information was consulted.
func (e *MockHostEnvironment) Probed() bool {
	return len(e.CommandCalls) > 0 || len(e.DeviceInfoCalls) > 0 || e.CPUInfoCalls > 0
}
