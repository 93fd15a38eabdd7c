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

// HostInfo is a summary of what devinfo knows about the host.
type HostInfo struct {
	Architecture      string      `yaml:"architecture"`
	StoreArchitecture string      `yaml:"store-architecture"`
	BoardVendor       BoardVendor `yaml:"board-vendor"`
	CPUVendor         string      `yaml:"cpu-vendor,omitempty"`
}

// GatherHostInfo collects a HostInfo, using the cached board vendor from
// the supplied resolver.
func GatherHostInfo(r *BoardVendorResolver) *HostInfo {
	return gatherHostInfo(r.BoardVendorType())
}

// RefreshHostInfo is like GatherHostInfo but probes the board vendor
// again.
func RefreshHostInfo(r *BoardVendorResolver) *HostInfo {
	return gatherHostInfo(r.CheckBoardVendor())
}

func gatherHostInfo(vendor BoardVendor) *HostInfo {
	return &HostInfo{
		Architecture:      Architecture(),
		StoreArchitecture: ArchitectureStoreID(),
		BoardVendor:       vendor,
		CPUVendor:         cpuVendorIdentificator(),
	}
}
