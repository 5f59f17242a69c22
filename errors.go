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

package wktproj

import (
	"github.com/spatialmodel/wktproj/crs"
	"github.com/spatialmodel/wktproj/wkt"
	errors "gopkg.in/src-d/go-errors.v1"
)

// Error kinds returned by Convert and the Formatter. Use Kind.Is to
// tell them apart.
var (
	// ErrParse is returned for text that is not well-formed WKT.
	ErrParse = wkt.ErrSyntax

	// ErrStructure is returned when an object is missing a required
	// field or child.
	ErrStructure = crs.ErrStructure

	// ErrUnit is returned when a unit is of the wrong class for the
	// value it qualifies.
	ErrUnit = crs.ErrUnit

	// ErrNumber is returned for a numeric literal that cannot be
	// converted.
	ErrNumber = crs.ErrNumber

	// ErrNoMethodMapping is returned for a projection method with no proj
	// equivalent.
	ErrNoMethodMapping = errors.NewKind("wktproj: no projection mapping for method %q")

	// ErrUnsupportedCRS is returned when the root object is not a
	// geographic, geocentric, projected or compound CRS.
	ErrUnsupportedCRS = errors.NewKind("wktproj: cannot build output from this CRS kind (%s)")

	// ErrWrite is returned when the output cannot be written.
	ErrWrite = errors.NewKind("wktproj: writing output")
)
