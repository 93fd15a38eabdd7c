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

package devinfo_test

import (
	"golang.org/x/sys/unix"
	"gopkg.in/yaml.v2"

	. "gopkg.in/check.v1"

	. "github.com/snapcore/devinfo"
	"github.com/snapcore/devinfo/internal/devinfotest"
)

type reportSuite struct {
	devinfoTestBase
}

var _ = Suite(&reportSuite{})

func (s *reportSuite) SetUpTest(c *C) {
	s.devinfoTestBase.SetUpTest(c)
	s.AddCleanup(MockUnixUname(func(buf *unix.Utsname) error {
		*buf = unix.Utsname{}
		copy(buf.Machine[:], "aarch64")
		return nil
	}))
}

func (s *reportSuite) TestGatherHostInfo(c *C) {
	s.AddCleanup(MockCPUVendorIdentificator(func() string { return "HiSilicon" }))

	env := devinfotest.NewMockHostEnvironment(map[string]string{"dmidecode -s system-product-name": "KLVU-WDU0"}, nil, "")
	info := GatherHostInfo(NewBoardVendorResolver(env))
	c.Check(info, DeepEquals, &HostInfo{
		Architecture:      "aarch64",
		StoreArchitecture: "arm64",
		BoardVendor:       BoardVendorKLVU,
		CPUVendor:         "HiSilicon",
	})
}

func (s *reportSuite) TestGatherHostInfoUsesCache(c *C) {
	s.AddCleanup(MockCPUVendorIdentificator(func() string { return "" }))

	env := devinfotest.NewMockHostEnvironment(map[string]string{"dmidecode -s system-product-name": "PGUW"}, nil, "")
	r := NewBoardVendorResolver(env)
	c.Check(r.CheckBoardVendor(), Equals, BoardVendorPGUW)

	info := GatherHostInfo(r)
	c.Check(info.BoardVendor, Equals, BoardVendorPGUW)
	c.Check(env.CommandCalls, HasLen, 1)
}

func (s *reportSuite) TestRefreshHostInfoProbesAgain(c *C) {
	s.AddCleanup(MockCPUVendorIdentificator(func() string { return "" }))

	env := devinfotest.NewMockHostEnvironment(map[string]string{"dmidecode -s system-product-name": "PGUW"}, nil, "")
	r := NewBoardVendorResolver(env)
	c.Check(r.BoardVendorType(), Equals, BoardVendorPGUW)

	info := RefreshHostInfo(r)
	c.Check(info.BoardVendor, Equals, BoardVendorPGUW)
	c.Check(env.CommandCalls, HasLen, 2)
}

func (s *reportSuite) TestHostInfoYAML(c *C) {
	s.AddCleanup(MockCPUVendorIdentificator(func() string { return "" }))

	r := NewBoardVendorResolver(devinfotest.NewMockHostEnvironment(nil, nil, ""))
	r.SetSpecialComputerType(SpecialComputerPGUX)

	data, err := yaml.Marshal(GatherHostInfo(r))
	c.Assert(err, IsNil)
	c.Check(string(data), Equals, `architecture: aarch64
store-architecture: arm64
board-vendor: PGUX
`)
}
