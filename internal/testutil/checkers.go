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

package testutil

import (
	"reflect"

	. "gopkg.in/check.v1"
)

type hasKeyChecker struct {
	*CheckerInfo
}

// HasKey checks that a map contains the specified key.
var HasKey = &hasKeyChecker{
	&CheckerInfo{Name: "HasKey", Params: []string{"map", "key"}}}

func (checker *hasKeyChecker) Check(params []interface{}, names []string) (result bool, error string) {
	m := reflect.ValueOf(params[0])
	if m.Kind() != reflect.Map {
		return false, names[0] + " is not a map"
	}

	k := reflect.ValueOf(params[1])
	if k.Type() != m.Type().Key() {
		return false, names[1] + " has an unexpected type"
	}

	return m.MapIndex(k).IsValid(), ""
}

type isBoolChecker struct {
	*CheckerInfo
	expected bool
}

func (checker *isBoolChecker) Check(params []interface{}, names []string) (result bool, error string) {
	value := reflect.ValueOf(params[0])
	if value.Kind() != reflect.Bool {
		return false, names[0] + " is not a bool"
	}
	return value.Bool() == checker.expected, ""
}

// IsTrue checks that a bool is true.
var IsTrue Checker = &isBoolChecker{
	&CheckerInfo{Name: "IsTrue", Params: []string{"value"}}, true}

// IsFalse checks that a bool is false.
var IsFalse Checker = &isBoolChecker{
	&CheckerInfo{Name: "IsFalse", Params: []string{"value"}}, false}
