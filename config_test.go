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
	"io/ioutil"
	"path/filepath"
	"time"

	. "gopkg.in/check.v1"

	. "github.com/snapcore/devinfo"
	"github.com/snapcore/devinfo/internal/devinfotest"
	"github.com/snapcore/devinfo/internal/testutil"
)

type configSuite struct {
	devinfoTestBase
}

var _ = Suite(&configSuite{})

func (s *configSuite) writeConfig(c *C, data string) string {
	path := filepath.Join(c.MkDir(), "devinfo.yaml")
	c.Assert(ioutil.WriteFile(path, []byte(data), 0644), IsNil)
	return path
}

func (s *configSuite) TestLoadConfigMissing(c *C) {
	config, err := LoadConfig(filepath.Join(c.MkDir(), "devinfo.yaml"))
	c.Assert(err, IsNil)
	c.Check(config, DeepEquals, new(Config))
	c.Check(config.Timeout(), Equals, time.Duration(0))
	c.Check(config.HostEnvironment(), Equals, DefaultEnv)
}

func (s *configSuite) TestLoadConfig(c *C) {
	path := s.writeConfig(c, `special-computer-type: 2
device-info-dir: /var/lib/devinfo
command-timeout: 10s
`)

	config, err := LoadConfig(path)
	c.Assert(err, IsNil)
	c.Assert(config.SpecialComputerType, NotNil)
	c.Check(*config.SpecialComputerType, Equals, SpecialComputerKLVV)
	c.Check(config.DeviceInfoDir, Equals, "/var/lib/devinfo")
	c.Check(config.CommandTimeout, Equals, "10s")
	c.Check(config.Timeout(), Equals, 10*time.Second)
	c.Check(config.HostEnvironment(), Not(Equals), DefaultEnv)
}

func (s *configSuite) TestLoadConfigInvalidYAML(c *C) {
	path := s.writeConfig(c, "special-computer-type: [1\n")

	_, err := LoadConfig(path)
	c.Check(err, ErrorMatches, `cannot parse configuration .*/devinfo.yaml: yaml: .*`)
}

func (s *configSuite) TestLoadConfigUnknownField(c *C) {
	path := s.writeConfig(c, "board-vendor: KLVV\n")

	_, err := LoadConfig(path)
	c.Check(err, ErrorMatches, `(?s)cannot parse configuration .*/devinfo.yaml: .*field board-vendor not found.*`)
}

func (s *configSuite) TestLoadConfigInvalidTimeout(c *C) {
	path := s.writeConfig(c, "command-timeout: soon\n")

	_, err := LoadConfig(path)
	c.Check(err, ErrorMatches, `invalid command-timeout: time: invalid duration .*soon.*`)
}

func (s *configSuite) TestLoadConfigNegativeTimeout(c *C) {
	path := s.writeConfig(c, "command-timeout: -5s\n")

	_, err := LoadConfig(path)
	c.Check(err, ErrorMatches, `invalid command-timeout: -5s is not positive`)
}

func (s *configSuite) TestLoadConfigUnreadable(c *C) {
	_, err := LoadConfig(c.MkDir())
	c.Check(err, ErrorMatches, `cannot read configuration: read .*: is a directory`)
}

func (s *configSuite) TestApply(c *C) {
	path := s.writeConfig(c, "special-computer-type: 0\n")
	config, err := LoadConfig(path)
	c.Assert(err, IsNil)

	env := devinfotest.NewMockHostEnvironment(map[string]string{"dmidecode -s system-product-name": "KLVV"}, nil, "")
	r := NewBoardVendorResolver(env)
	config.Apply(r)
	c.Check(r.SpecialComputerType(), Equals, NormalComputer)
	c.Check(r.BoardVendorType(), Equals, BoardVendorNone)
	c.Check(env.Probed(), testutil.IsFalse)
}

func (s *configSuite) TestApplyNoOverride(c *C) {
	env := devinfotest.NewMockHostEnvironment(map[string]string{"dmidecode -s system-product-name": "KLVV"}, nil, "")
	r := NewBoardVendorResolver(env)
	new(Config).Apply(r)
	c.Check(r.SpecialComputerType(), Equals, SpecialComputerTypeUnset)
	c.Check(r.BoardVendorType(), Equals, BoardVendorKLVV)
}

func (s *configSuite) TestHostEnvironmentUsesDeviceInfoDir(c *C) {
	dir := c.MkDir()
	c.Assert(ioutil.WriteFile(filepath.Join(dir, "dmidecode_spn.txt"), []byte("PGUV"), 0644), IsNil)

	config := &Config{DeviceInfoDir: dir}
	info, found := config.HostEnvironment().ReadDeviceInfo("dmidecode_spn.txt")
	c.Check(found, testutil.IsTrue)
	c.Check(info, Equals, "PGUV")
}
