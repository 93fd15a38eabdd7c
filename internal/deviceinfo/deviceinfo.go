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

// Package deviceinfo obtains device information from the device info
// service, falling back to snapshot files when the service is not available.
package deviceinfo

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/godbus/dbus"
	"github.com/snapcore/snapd/logger"

	"golang.org/x/xerrors"

	"github.com/snapcore/devinfo/internal/paths"
)

const (
	dbusServiceName = "org.deepin.DeviceInfo"
	dbusObjectPath  = dbus.ObjectPath("/org/deepin/DeviceInfo")
	dbusGetInfo     = dbusServiceName + ".getInfo"

	snapshotSuffix = ".txt"
)

var (
	// ErrNoService is returned from Service.Info when the device info
	// service cannot be reached.
	ErrNoService = errors.New("device info service is not available")

	dbusSystemBus = dbus.SystemBus
	osReadFile    = os.ReadFile
)

// Service provides live device information by key, eg "dmidecode_spn".
type Service interface {
	Info(key string) (string, error)
}

type dbusService struct {
	mu   sync.Mutex
	conn *dbus.Conn
}

// NewDBusService returns a Service that queries the device info daemon on
// the system bus. The bus connection is established on first use.
func NewDBusService() Service {
	return new(dbusService)
}

func (s *dbusService) connect() (*dbus.Conn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn != nil {
		return s.conn, nil
	}
	conn, err := dbusSystemBus()
	if err != nil {
		return nil, xerrors.Errorf("cannot connect to system bus (%v): %w", err, ErrNoService)
	}
	s.conn = conn
	return conn, nil
}

// Info implements [Service.Info].
func (s *dbusService) Info(key string) (string, error) {
	conn, err := s.connect()
	if err != nil {
		return "", err
	}

	var info string
	if err := conn.Object(dbusServiceName, dbusObjectPath).Call(dbusGetInfo, 0, key).Store(&info); err != nil {
		return "", xerrors.Errorf("cannot obtain %q from %s: %w", key, dbusServiceName, err)
	}
	return info, nil
}

// Reader obtains device information from a live Service, falling back to
// snapshot files captured earlier.
type Reader struct {
	// Service is queried first. It may be nil.
	Service Service

	// Dir contains the snapshot files. If empty, paths.DeviceInfoDir is
	// used.
	Dir string
}

func (r *Reader) dir() string {
	if r.Dir == "" {
		return paths.DeviceInfoDir
	}
	return r.Dir
}

// ReadInfo returns the device information associated with the supplied
// snapshot filename, eg "dmidecode_spn.txt". The service is asked for the
// key formed by removing the .txt suffix, and a non-empty answer is
// returned. Otherwise the snapshot file is read in full. The second return
// value is false only if neither source is available; an empty snapshot
// file still counts as found.
func (r *Reader) ReadInfo(filename string) (info string, found bool) {
	key := strings.TrimSuffix(filename, snapshotSuffix)

	if r.Service != nil {
		info, err := r.Service.Info(key)
		switch {
		case err != nil:
			logger.Debugf("cannot obtain %q from device info service: %v", key, err)
		case info != "":
			return info, true
		}
	}

	data, err := osReadFile(filepath.Join(r.dir(), filename))
	if err != nil {
		logger.Debugf("cannot read device info snapshot: %v", err)
		return "", false
	}
	return string(data), true
}

// DefaultReader queries the system bus service and falls back to
// paths.DeviceInfoDir.
var DefaultReader = &Reader{Service: NewDBusService()}
