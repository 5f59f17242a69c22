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

// Package wktproj converts coordinate reference systems written as OGC
// Well-Known Text, in either the WKT1 or the WKT2 dialect, into proj
// strings.
//
// The conversion is a pure function of its input: Convert parses the
// text into a crs tree, resolves the projection method and parameters
// through the mapping catalogs, and writes the tokens
//
//	+proj, parameters, +units or +to_meter, +a and +rf, +towgs84, flags, +pm
//
// in that order. A Converter adds caching and request deduplication on
// top of Convert for batch use.
package wktproj

import (
	"strings"

	"github.com/spatialmodel/wktproj/crs"
)

// Convert returns the proj string for the CRS described by the WKT text
// src.
func Convert(src string) (string, error) {
	n, err := crs.Parse(src)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if err := NewFormatter(&b).Format(n); err != nil {
		return "", err
	}
	return b.String(), nil
}
