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

// Package crs holds the typed model of a coordinate reference system
// and the Builder that assembles it from WKT1 or WKT2 text.
//
// Names and raw numeric values are kept as the text found in the
// input. Only unit factors are converted on construction; everything
// else is left to the consumer so that values which are never used
// for arithmetic are never parsed.
package crs

import "strings"

// Node is any value produced by the Builder.
type Node interface {
	node()
}

// Horizontal is the horizontal component of a compound CRS.
type Horizontal interface {
	Node
	horizontal()
}

// Authority is a reference to an external registry, e.g. EPSG:4326.
type Authority struct {
	Name string
	Code string
}

// IsEPSG reports whether a refers to the EPSG registry.
func (a *Authority) IsEPSG() bool {
	return a != nil && strings.EqualFold(a.Name, "EPSG")
}

// UnitType is the class of quantity a unit measures.
type UnitType int

// The unit types.
const (
	Unknown UnitType = iota
	Angular
	Linear
	Scale
)

func (t UnitType) String() string {
	switch t {
	case Angular:
		return "angular"
	case Linear:
		return "linear"
	case Scale:
		return "scale"
	}
	return "unknown"
}

// Unit is a unit of measure. Factor converts to the base unit of the
// unit type: radians, metres or unity.
type Unit struct {
	Name      string
	Factor    float64
	Type      UnitType
	Authority *Authority
}

// IsMetre reports whether u is the metre. An EPSG authority, when
// present, is trusted over the name.
func (u *Unit) IsMetre() bool {
	if u.Authority != nil {
		return u.Authority.IsEPSG() && u.Authority.Code == "9001"
	}
	if u.Type != Linear {
		return false
	}
	switch strings.ToLower(u.Name) {
	case "metre", "meter", "m":
		return true
	}
	return false
}

// IsDegree reports whether u is the degree. An EPSG authority, when
// present, is trusted over the name.
func (u *Unit) IsDegree() bool {
	if u.Authority != nil {
		return u.Authority.IsEPSG() && (u.Authority.Code == "9102" || u.Authority.Code == "9122")
	}
	if u.Type != Angular {
		return false
	}
	switch strings.ToLower(u.Name) {
	case "degree", "degrees":
		return true
	}
	return false
}

// Ellipsoid is the reference ellipsoid of a datum. A and Rf are the
// semi-major axis and inverse flattening as written in the input.
type Ellipsoid struct {
	Name string
	A    string
	Rf   string
	Unit *Unit
}

// ToWGS84 holds the 0, 3 or 7 Helmert parameters of a TOWGS84 clause.
type ToWGS84 []string

// Datum is a geodetic reference frame.
type Datum struct {
	Name      string
	Ellipsoid *Ellipsoid
	ToWGS84   ToWGS84
}

// PrimeMeridian is the origin of longitudes. Longitude is the text of
// the offset from Greenwich, in Unit or, if Unit is nil, in the angular
// unit of the enclosing CRS.
type PrimeMeridian struct {
	Name      string
	Longitude string
	Unit      *Unit
}

// Axis is a coordinate system axis.
type Axis struct {
	Name      string
	Direction string
	Unit      *Unit
}

// CoordinateSystem is a WKT2 CS clause.
type CoordinateSystem struct {
	Type      string
	Dimension string
}

// Geogcs is a geographic CRS. Unit, when present, is angular.
type Geogcs struct {
	Name          string
	Datum         *Datum
	PrimeMeridian *PrimeMeridian
	Unit          *Unit
}

// Geoccs is a geodetic CRS with a Cartesian (geocentric) coordinate
// system. Unit, when present, is linear.
type Geoccs struct {
	Name          string
	Datum         *Datum
	PrimeMeridian *PrimeMeridian
	Unit          *Unit
}

// Method is a map projection method.
type Method struct {
	Name      string
	Authority *Authority
}

// Parameter is a map projection parameter. Value is the text found
// in the input.
type Parameter struct {
	Name      string
	Value     string
	Unit      *Unit
	Authority *Authority
}

// Projection is a map projection: a method and its parameters.
type Projection struct {
	Name       string
	Method     *Method
	Parameters []*Parameter
	Authority  *Authority
}

// Projcs is a projected CRS. Unit, when present, is the linear unit of
// the projected axes.
type Projcs struct {
	Name       string
	Geogcs     *Geogcs
	Projection *Projection
	Unit       *Unit
}

// Verticalcrs is a vertical CRS. Only its name is kept.
type Verticalcrs struct {
	Name string
}

// Compoundcrs combines a horizontal and a vertical CRS.
type Compoundcrs struct {
	Name       string
	Horizontal Horizontal
	Vertical   *Verticalcrs
}

// Other is an object whose keyword is not translated. Its attributes
// are skipped.
type Other struct {
	Keyword string
}

func (*Authority) node()        {}
func (*Unit) node()             {}
func (*Ellipsoid) node()        {}
func (ToWGS84) node()           {}
func (*Datum) node()            {}
func (*PrimeMeridian) node()    {}
func (*Axis) node()             {}
func (*CoordinateSystem) node() {}
func (*Geogcs) node()           {}
func (*Geoccs) node()           {}
func (*Method) node()           {}
func (*Parameter) node()        {}
func (*Projection) node()       {}
func (*Projcs) node()           {}
func (*Verticalcrs) node()      {}
func (*Compoundcrs) node()      {}
func (*Other) node()            {}

func (*Geogcs) horizontal() {}
func (*Projcs) horizontal() {}
