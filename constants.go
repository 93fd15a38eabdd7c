// -*- Mode: Go; indent-tabs-mode: t -*-

/*
 * Copyright (C) 2019 Canonical Ltd
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

import "fmt"

// BoardVendor identifies a manufacturer specific hardware platform that
// requires special handling. The empty value means that the host is not a
// special platform.
type BoardVendor string

const (
	BoardVendorNone BoardVendor = ""
	BoardVendorPGUW BoardVendor = "PGUW"
	BoardVendorKLVV BoardVendor = "KLVV"
	BoardVendorKLVU BoardVendor = "KLVU"
	BoardVendorPGUV BoardVendor = "PGUV"
	BoardVendorPGUX BoardVendor = "PGUX"
)

func (v BoardVendor) String() string {
	if v == BoardVendorNone {
		return "none"
	}
	return string(v)
}

// SpecialComputerType is an override code that, when set, determines the
// board vendor without probing the host.
type SpecialComputerType int

const (
	// SpecialComputerTypeUnset indicates that no override is set and the
	// host should be probed.
	SpecialComputerTypeUnset SpecialComputerType = -1

	// NormalComputer forces BoardVendorNone.
	NormalComputer SpecialComputerType = 0

	SpecialComputerPGUW SpecialComputerType = 1
	SpecialComputerKLVV SpecialComputerType = 2
	SpecialComputerKLVU SpecialComputerType = 3
	SpecialComputerPGUV SpecialComputerType = 4
	SpecialComputerPGUX SpecialComputerType = 5
)

var specialComputerTypeVendors = map[SpecialComputerType]BoardVendor{
	NormalComputer:      BoardVendorNone,
	SpecialComputerPGUW: BoardVendorPGUW,
	SpecialComputerKLVV: BoardVendorKLVV,
	SpecialComputerKLVU: BoardVendorKLVU,
	SpecialComputerPGUV: BoardVendorPGUV,
	SpecialComputerPGUX: BoardVendorPGUX,
}

// BoardVendor returns the board vendor forced by this override code. Codes
// without a mapping are treated as PGUW. The result for
// SpecialComputerTypeUnset is meaningless.
func (t SpecialComputerType) BoardVendor() BoardVendor {
	if vendor, ok := specialComputerTypeVendors[t]; ok {
		return vendor
	}
	return BoardVendorPGUW
}

func (t SpecialComputerType) String() string {
	switch t {
	case SpecialComputerTypeUnset:
		return "unset"
	case NormalComputer:
		return "normal"
	}
	if vendor, ok := specialComputerTypeVendors[t]; ok {
		return string(vendor)
	}
	return fmt.Sprintf("SpecialComputerType(%d)", int(t))
}
