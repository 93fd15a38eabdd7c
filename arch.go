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
	"github.com/snapcore/snapd/logger"

	"golang.org/x/sys/unix"
)

var (
	unixUname = unix.Uname

	// storeArchitectures maps the kernel's machine hardware name to the
	// architecture name used by the package archive.
	storeArchitectures = map[string]string{
		"aarch64":     "arm64",
		"x86_64":      "amd64",
		"mips64":      "mips64el",
		"i386":        "i386",
		"sw_64":       "sw_64",
		"loongarch":   "loongarch",
		"loongarch64": "loongarch64",
	}
)

// Architecture returns the machine hardware name reported by the kernel,
// as printed by "uname -m". It returns an empty string if the kernel
// cannot be queried.
func Architecture() string {
	var buf unix.Utsname
	if err := unixUname(&buf); err != nil {
		logger.Debugf("cannot obtain machine hardware name: %v", err)
		return ""
	}
	return unix.ByteSliceToString(buf.Machine[:])
}

// ArchitectureStoreID returns the package archive name for the host
// architecture, eg "arm64" for "aarch64". It returns an empty string for
// architectures that have no mapping.
func ArchitectureStoreID() string {
	return storeArchitectures[Architecture()]
}
