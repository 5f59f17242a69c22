/*
Copyright © 2023 the InMAP authors.
This file is part of InMAP.

InMAP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

InMAP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with InMAP.  If not, see <http://www.gnu.org/licenses/>.
*/

package crs

import (
	"strconv"

	errors "gopkg.in/src-d/go-errors.v1"
)

var (
	// ErrStructure is returned when an object lacks a required field or
	// child, or has an invalid number of values.
	ErrStructure = errors.NewKind("crs: %s")

	// ErrUnit is returned when a unit is not of the class required where
	// it is used.
	ErrUnit = errors.NewKind("crs: %s")

	// ErrNumber is returned when a numeric literal cannot be converted.
	ErrNumber = errors.NewKind("crs: invalid number %q for %s")
)

// ParseNumber converts a numeric literal taken from the input. what
// describes the value for error messages.
func ParseNumber(s, what string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrNumber.Wrap(err, s, what)
	}
	return v, nil
}
