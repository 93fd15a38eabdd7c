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

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v2"
)

// Config corresponds to the devinfo configuration file.
type Config struct {
	// SpecialComputerType is an optional override code.
	SpecialComputerType *SpecialComputerType `yaml:"special-computer-type"`

	// DeviceInfoDir is the directory containing device info snapshots.
	DeviceInfoDir string `yaml:"device-info-dir"`

	// CommandTimeout is the default timeout for external commands, in the
	// format accepted by time.ParseDuration.
	CommandTimeout string `yaml:"command-timeout"`

	commandTimeout time.Duration
}

// LoadConfig reads the configuration file at the specified path. A missing
// file is not an error and results in an empty configuration.
func LoadConfig(path string) (*Config, error) {
	data, err := osReadFile(path)
	switch {
	case os.IsNotExist(err):
		return new(Config), nil
	case err != nil:
		return nil, xerrors.Errorf("cannot read configuration: %w", err)
	}

	config := new(Config)
	if err := yaml.UnmarshalStrict(data, config); err != nil {
		return nil, xerrors.Errorf("cannot parse configuration %s: %w", path, err)
	}

	if config.CommandTimeout != "" {
		timeout, err := time.ParseDuration(config.CommandTimeout)
		if err != nil {
			return nil, xerrors.Errorf("invalid command-timeout: %w", err)
		}
		if timeout <= 0 {
			return nil, xerrors.Errorf("invalid command-timeout: %v is not positive", timeout)
		}
		config.commandTimeout = timeout
	}

	return config, nil
}

// Timeout returns the configured default command timeout, or zero if none
// was configured.
func (c *Config) Timeout() time.Duration {
	return c.commandTimeout
}

// HostEnvironment returns the host environment described by this
// configuration.
func (c *Config) HostEnvironment() HostEnvironment {
	if c.DeviceInfoDir == "" && c.commandTimeout == 0 {
		return DefaultEnv
	}
	return NewHostEnvironment(c.DeviceInfoDir, c.commandTimeout)
}

// Apply applies the configured override code, if there is one, to the
// supplied resolver.
func (c *Config) Apply(r *BoardVendorResolver) {
	if c.SpecialComputerType == nil {
		return
	}
	r.SetSpecialComputerType(*c.SpecialComputerType)
}
