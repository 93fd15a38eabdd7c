// -*- Mode: Go; indent-tabs-mode: t -*-

/*
 * Copyright (C) 2021 Canonical Ltd
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

package paths

import "path/filepath"

var (
	TmpDir  = "/tmp"
	ProcDir = "/proc"
	EtcDir  = "/etc"

	// DeviceInfoDir contains pre-captured snapshots of device queries,
	// one file per key, named <key>.txt.
	DeviceInfoDir = filepath.Join(TmpDir, "device-info")

	// CPUInfoPath is the kernel's textual CPU description.
	CPUInfoPath = filepath.Join(ProcDir, "cpuinfo")

	// ConfigPath is the default location of the configuration file.
	ConfigPath = filepath.Join(EtcDir, "devinfo", "devinfo.yaml")
)
