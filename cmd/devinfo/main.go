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

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/snapcore/snapd/logger"
	"gopkg.in/yaml.v2"

	"github.com/snapcore/devinfo"
	"github.com/snapcore/devinfo/internal/paths"
)

type options struct {
	Config              string `long:"config" description:"Path of the configuration file"`
	SpecialComputerType int    `long:"special-computer-type" default:"-1" description:"Force the board vendor with an override code instead of probing the host (0 for a normal computer)"`
	Refresh             bool   `long:"refresh" description:"Probe the board vendor again instead of using the cached result"`
	YAML                bool   `long:"yaml" description:"Print the report as YAML"`
	Debug               bool   `long:"debug" description:"Log every probe step to stderr"`
}

var opts options

func run() error {
	if _, err := flags.Parse(&opts); err != nil {
		return err
	}

	if opts.Debug {
		os.Setenv("SNAPD_DEBUG", "1")
	}
	if err := logger.SimpleSetup(); err != nil {
		return fmt.Errorf("cannot set up logging: %w", err)
	}

	configPath := opts.Config
	if configPath == "" {
		configPath = paths.ConfigPath
	}
	config, err := devinfo.LoadConfig(configPath)
	if err != nil {
		return err
	}

	r := devinfo.NewBoardVendorResolver(config.HostEnvironment())
	config.Apply(r)
	if t := devinfo.SpecialComputerType(opts.SpecialComputerType); t != devinfo.SpecialComputerTypeUnset {
		r.SetSpecialComputerType(t)
	}

	var info *devinfo.HostInfo
	if opts.Refresh {
		info = devinfo.RefreshHostInfo(r)
	} else {
		info = devinfo.GatherHostInfo(r)
	}

	return printReport(os.Stdout, info, opts.YAML)
}

func printReport(w io.Writer, info *devinfo.HostInfo, asYAML bool) error {
	if asYAML {
		data, err := yaml.Marshal(info)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	lines := []string{
		fmt.Sprintln("Architecture:      ", info.Architecture),
		fmt.Sprintln("Store architecture:", info.StoreArchitecture),
		fmt.Sprintln("Board vendor:      ", info.BoardVendor),
	}
	if info.CPUVendor != "" {
		lines = append(lines, fmt.Sprintln("CPU vendor:        ", info.CPUVendor))
	}
	for _, line := range lines {
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		switch e := err.(type) {
		case *flags.Error:
			// flags already prints this
			if e.Type != flags.ErrHelp {
				os.Exit(1)
			}
		default:
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
