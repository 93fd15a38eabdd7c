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
	"regexp"
	"strings"
	"sync"

	"github.com/snapcore/snapd/logger"
)

const (
	dmidecodeCmd = "dmidecode"

	// productNameSnapshot holds the output of
	// "dmidecode -s system-product-name" when the command can't be run.
	productNameSnapshot = "dmidecode_spn.txt"
)

var oemString4RE = regexp.MustCompile(`String 4: (.*)`)

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToUpper(s), strings.ToUpper(substr))
}

// oemString4 returns the trimmed value of the first "String 4:" line in the
// output of dmidecode run with the supplied arguments, or an empty string.
func oemString4(env HostEnvironment, args ...string) string {
	out := env.RunCommand(0, dmidecodeCmd, args...)
	if len(out) == 0 {
		return ""
	}
	m := oemString4RE.FindSubmatch(out)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(string(m[1]))
}

// boardVendorProbe carries the information gathered during one resolution
// pass.
type boardVendorProbe struct {
	env         HostEnvironment
	productName string
}

type boardVendorRule struct {
	vendor BoardVendor
	match  func(p *boardVendorProbe) bool
}

func productNameContains(markers ...string) func(*boardVendorProbe) bool {
	return func(p *boardVendorProbe) bool {
		for _, marker := range markers {
			if containsFold(p.productName, marker) {
				return true
			}
		}
		return false
	}
}

func oemString4Contains(marker string, args ...string) func(*boardVendorProbe) bool {
	return func(p *boardVendorProbe) bool {
		return containsFold(oemString4(p.env, args...), marker)
	}
}

// isPanguM900 detects a board that reports "Hardware : PANGU M900" in
// /proc/cpuinfo.
func isPanguM900(p *boardVendorProbe) bool {
	cpuInfo, err := p.env.ReadCPUInfo()
	if err != nil {
		logger.Debugf("cannot read CPU info: %v", err)
		return false
	}
	return strings.Contains(cpuInfo, "Hardware") && strings.Contains(cpuInfo, "PANGU M900")
}

// boardVendorRules are evaluated in order and the first match wins. Rules
// only run commands once the preceding rules have failed. The final two
// rules identify PGUW boards (W525 and M900 models) that don't report a
// product name marker.
var boardVendorRules = []boardVendorRule{
	{BoardVendorKLVV, productNameContains("KLVV", "L540")},
	{BoardVendorKLVU, productNameContains("KLVU")},
	{BoardVendorPGUV, productNameContains("PGUV", "W585")},
	{BoardVendorPGUW, productNameContains("PGUW")},
	{BoardVendorPGUX, oemString4Contains("PGUX", "-t", "11")},
	{BoardVendorPGUW, isPanguM900},
	{BoardVendorPGUW, oemString4Contains("PWC30")},
}

func probeBoardVendor(env HostEnvironment) BoardVendor {
	p := &boardVendorProbe{env: env}

	p.productName = string(env.RunCommand(NoTimeout, dmidecodeCmd, "-s", "system-product-name"))
	if p.productName == "" {
		info, found := env.ReadDeviceInfo(productNameSnapshot)
		if found {
			p.productName = info
		}
	}
	logger.Debugf("system product name: %q", strings.TrimSpace(p.productName))

	for _, rule := range boardVendorRules {
		if rule.match(p) {
			return rule.vendor
		}
	}
	return BoardVendorNone
}

// BoardVendorResolver determines and caches the board vendor of a host.
// It is safe to use from multiple goroutines.
type BoardVendorResolver struct {
	env HostEnvironment

	mu       sync.Mutex
	override SpecialComputerType
	resolved bool
	vendor   BoardVendor
}

// NewBoardVendorResolver returns a new resolver that probes the supplied
// environment, with no override set.
func NewBoardVendorResolver(env HostEnvironment) *BoardVendorResolver {
	return &BoardVendorResolver{
		env:      env,
		override: SpecialComputerTypeUnset,
	}
}

// SetSpecialComputerType sets the override code. Anything other than
// SpecialComputerTypeUnset makes resolution skip probing the host. Any
// previously cached result is discarded.
func (r *BoardVendorResolver) SetSpecialComputerType(t SpecialComputerType) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.override = t
	r.resolved = false
	r.vendor = BoardVendorNone
}

// SpecialComputerType returns the current override code.
func (r *BoardVendorResolver) SpecialComputerType() SpecialComputerType {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.override
}

func (r *BoardVendorResolver) checkLocked() BoardVendor {
	if r.override != SpecialComputerTypeUnset {
		r.vendor = r.override.BoardVendor()
		logger.Debugf("board vendor forced by special computer type %v", r.override)
	} else {
		r.vendor = probeBoardVendor(r.env)
	}
	r.resolved = true

	logger.Noticef("current board vendor is %q", r.vendor)
	return r.vendor
}

// CheckBoardVendor determines the board vendor, caches and returns it. It
// always probes the host again (unless an override is set), even if a
// result is already cached.
func (r *BoardVendorResolver) CheckBoardVendor() BoardVendor {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.checkLocked()
}

// BoardVendorType returns the cached board vendor, determining it with
// CheckBoardVendor first if this hasn't happened yet.
func (r *BoardVendorResolver) BoardVendorType() BoardVendor {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.resolved {
		return r.vendor
	}
	return r.checkLocked()
}

// DefaultResolver probes DefaultEnv.
var DefaultResolver = NewBoardVendorResolver(DefaultEnv)

// BoardVendorType calls [BoardVendorResolver.BoardVendorType] on
// DefaultResolver.
func BoardVendorType() BoardVendor {
	return DefaultResolver.BoardVendorType()
}

// CheckBoardVendor calls [BoardVendorResolver.CheckBoardVendor] on
// DefaultResolver.
func CheckBoardVendor() BoardVendor {
	return DefaultResolver.CheckBoardVendor()
}

// SetSpecialComputerType calls
// [BoardVendorResolver.SetSpecialComputerType] on DefaultResolver.
func SetSpecialComputerType(t SpecialComputerType) {
	DefaultResolver.SetSpecialComputerType(t)
}

// SpecialComputerTypeValue returns the override code of DefaultResolver.
func SpecialComputerTypeValue() SpecialComputerType {
	return DefaultResolver.SpecialComputerType()
}
