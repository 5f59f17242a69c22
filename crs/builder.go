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
	"strings"

	"github.com/spatialmodel/wktproj/wkt"
)

type (
	attribute  = wkt.Attribute[Node]
	attributes = wkt.Attributes[Node]
)

// Builder assembles CRS nodes from WKT objects. It has no state, so a
// single Builder may be shared by concurrent parses.
//
// Every object kind is read the same way: the quoted string at
// position 0 is the name, numbers are taken from fixed positions, and
// nested objects are recognized by the type of node they produced,
// wherever they appear. A nested unit always fills the unit slot, a
// nested authority the authority slot, and parameters accumulate in
// order.
type Builder struct{}

// NewBuilder returns a new Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Parse parses WKT text into a node tree.
func Parse(src string) (Node, error) {
	return NewBuilder().Parse(src)
}

// Parse parses WKT text into a node tree.
func (b *Builder) Parse(src string) (Node, error) {
	return wkt.Parse[Node](src, b)
}

// Process implements wkt.Processor.
func (b *Builder) Process(key string, depth int, attrs *attributes) (Node, error) {
	switch k := NormalizeKeyword(key); k {
	case KeyAuthority:
		return b.authority(attrs)
	case KeyUnit, KeyLengthUnit, KeyAngleUnit, KeyScaleUnit:
		return b.unit(k, attrs)
	case KeyEllipsoid:
		return b.ellipsoid(attrs)
	case KeyToWGS84:
		return b.toWGS84(attrs)
	case KeyDatum:
		return b.datum(attrs)
	case KeyPrimeMeridian:
		return b.primeMeridian(attrs)
	case KeyAxis:
		return b.axis(attrs)
	case KeyCS:
		return b.coordinateSystem(attrs)
	case KeyGeogcs, KeyGeodcrs, KeyGeoccs:
		return b.geodetic(k, attrs)
	case KeyMethod:
		return b.method(attrs)
	case KeyParameter:
		return b.parameter(attrs)
	case KeyConversion:
		return b.projection(attrs)
	case KeyProjcs:
		return b.projcs(attrs)
	case KeyCompoundcrs:
		return b.compoundcrs(attrs)
	case KeyVerticalcrs:
		return b.verticalcrs(attrs)
	}
	// Untranslated objects are skipped; the parser drains their
	// attributes.
	return &Other{Keyword: key}, nil
}

func isName(i int, a attribute) bool { return i == 0 && a.Kind == wkt.Quoted }

func isNumber(i, pos int, a attribute) bool { return i == pos && a.Kind == wkt.Number }

func (b *Builder) authority(attrs *attributes) (*Authority, error) {
	var name, code string
	for i, a := range attrs.All() {
		switch {
		case isName(i, a):
			name = a.Text
		case i == 1 && (a.Kind == wkt.Number || a.Kind == wkt.Quoted):
			code = a.Text
		}
	}
	if name == "" {
		return nil, ErrStructure.New("missing AUTHORITY name")
	}
	if code == "" {
		return nil, ErrStructure.New("missing AUTHORITY code")
	}
	return &Authority{Name: name, Code: code}, nil
}

// unit parses the factor right away: it is needed to decide unit
// defaults while the enclosing objects are built.
func (b *Builder) unit(k Keyword, attrs *attributes) (*Unit, error) {
	u := &Unit{Type: k.unitType()}
	var factor string
	for i, a := range attrs.All() {
		switch {
		case isName(i, a):
			u.Name = a.Text
		case isNumber(i, 1, a):
			factor = a.Text
		case a.Kind == wkt.Keyword:
			if auth, ok := a.Value.(*Authority); ok {
				u.Authority = auth
			}
		}
	}
	if u.Name == "" {
		return nil, ErrStructure.New("missing UNIT name")
	}
	if factor == "" {
		return nil, ErrStructure.New("missing UNIT factor")
	}
	var err error
	if u.Factor, err = ParseNumber(factor, "UNIT factor"); err != nil {
		return nil, err
	}
	return u, nil
}

func (b *Builder) ellipsoid(attrs *attributes) (*Ellipsoid, error) {
	e := new(Ellipsoid)
	for i, a := range attrs.All() {
		switch {
		case isName(i, a):
			e.Name = a.Text
		case isNumber(i, 1, a):
			e.A = a.Text
		case isNumber(i, 2, a):
			e.Rf = a.Text
		case a.Kind == wkt.Keyword:
			if u, ok := a.Value.(*Unit); ok {
				e.Unit = u
			}
		}
	}
	switch {
	case e.Name == "":
		return nil, ErrStructure.New("missing ELLIPSOID name")
	case e.A == "":
		return nil, ErrStructure.New("missing ELLIPSOID semi-major axis")
	case e.Rf == "":
		return nil, ErrStructure.New("missing ELLIPSOID inverse flattening")
	}
	return e, nil
}

func (b *Builder) toWGS84(attrs *attributes) (ToWGS84, error) {
	v := ToWGS84{}
	for _, a := range attrs.All() {
		if a.Kind != wkt.Number {
			return nil, ErrStructure.New("expecting number in TOWGS84, not " + a.String())
		}
		v = append(v, a.Text)
	}
	switch len(v) {
	case 0, 3, 7:
		return v, nil
	}
	return nil, ErrStructure.New("wrong number of parameters for TOWGS84")
}

func (b *Builder) datum(attrs *attributes) (*Datum, error) {
	d := &Datum{ToWGS84: ToWGS84{}}
	for i, a := range attrs.All() {
		switch {
		case isName(i, a):
			d.Name = a.Text
		case a.Kind == wkt.Keyword:
			switch n := a.Value.(type) {
			case *Ellipsoid:
				d.Ellipsoid = n
			case ToWGS84:
				d.ToWGS84 = n
			}
		}
	}
	if d.Name == "" {
		return nil, ErrStructure.New("missing DATUM name")
	}
	if d.Ellipsoid == nil {
		return nil, ErrStructure.New("missing ellipsoid for DATUM " + d.Name)
	}
	return d, nil
}

func (b *Builder) primeMeridian(attrs *attributes) (*PrimeMeridian, error) {
	pm := new(PrimeMeridian)
	for i, a := range attrs.All() {
		switch {
		case isName(i, a):
			pm.Name = a.Text
		case isNumber(i, 1, a):
			pm.Longitude = a.Text
		case a.Kind == wkt.Keyword:
			if u, ok := a.Value.(*Unit); ok {
				pm.Unit = u
			}
		}
	}
	if pm.Name == "" {
		return nil, ErrStructure.New("missing PRIMEM name")
	}
	if pm.Longitude == "" {
		return nil, ErrStructure.New("missing PRIMEM longitude")
	}
	return pm, nil
}

func (b *Builder) axis(attrs *attributes) (*Axis, error) {
	ax := new(Axis)
	for i, a := range attrs.All() {
		switch {
		case isName(i, a):
			ax.Name = a.Text
		case i == 1 && a.Kind == wkt.Label:
			ax.Direction = a.Text
		case a.Kind == wkt.Keyword:
			if u, ok := a.Value.(*Unit); ok {
				ax.Unit = u
			}
		}
	}
	return ax, nil
}

func (b *Builder) coordinateSystem(attrs *attributes) (*CoordinateSystem, error) {
	cs := new(CoordinateSystem)
	for i, a := range attrs.All() {
		switch {
		case i == 0 && a.Kind == wkt.Label:
			cs.Type = a.Text
		case isNumber(i, 1, a):
			cs.Dimension = a.Text
		}
	}
	return cs, nil
}

// geodetic builds a geographic or geocentric CRS. WKT2 spells both
// GEODCRS and tells them apart by the coordinate system type.
func (b *Builder) geodetic(k Keyword, attrs *attributes) (Node, error) {
	var (
		name  string
		datum *Datum
		pm    *PrimeMeridian
		unit  *Unit
		axes  []*Axis
		cs    *CoordinateSystem
	)
	for i, a := range attrs.All() {
		switch {
		case isName(i, a):
			name = a.Text
		case a.Kind == wkt.Keyword:
			switch n := a.Value.(type) {
			case *Datum:
				datum = n
			case *PrimeMeridian:
				pm = n
			case *Unit:
				unit = n
			case *Axis:
				axes = append(axes, n)
			case *CoordinateSystem:
				cs = n
			}
		}
	}
	if unit == nil {
		unit = axisUnit(axes)
	}
	geocentric := k == KeyGeoccs ||
		(k == KeyGeodcrs && cs != nil && strings.EqualFold(cs.Type, "Cartesian"))
	if geocentric {
		return newGeoccs(name, datum, pm, unit)
	}
	return newGeogcs(name, datum, pm, unit)
}

// axisUnit returns the unit of the first axis that declares one.
func axisUnit(axes []*Axis) *Unit {
	for _, ax := range axes {
		if ax.Unit != nil {
			return ax.Unit
		}
	}
	return nil
}

// newGeogcs returns a geographic CRS. The unit of the result is never
// of Unknown type: a bare UNIT is angular in this position.
func newGeogcs(name string, datum *Datum, pm *PrimeMeridian, unit *Unit) (*Geogcs, error) {
	if datum == nil {
		return nil, ErrStructure.New("missing DATUM for geodetic CRS")
	}
	if unit != nil {
		switch unit.Type {
		case Unknown:
			unit.Type = Angular
		case Angular:
		default:
			return nil, ErrUnit.New("expecting angular unit for geodetic CRS, found " +
				unit.Type.String() + " unit " + unit.Name)
		}
	}
	return &Geogcs{Name: name, Datum: datum, PrimeMeridian: pm, Unit: unit}, nil
}

// newGeoccs returns a geocentric CRS. The unit of the result is never
// of Unknown type: a bare UNIT is linear in this position.
func newGeoccs(name string, datum *Datum, pm *PrimeMeridian, unit *Unit) (*Geoccs, error) {
	if datum == nil {
		return nil, ErrStructure.New("missing DATUM for geocentric CRS")
	}
	if err := backfillLinear(unit, "geocentric CRS"); err != nil {
		return nil, err
	}
	return &Geoccs{Name: name, Datum: datum, PrimeMeridian: pm, Unit: unit}, nil
}

func backfillLinear(unit *Unit, what string) error {
	if unit == nil {
		return nil
	}
	switch unit.Type {
	case Unknown:
		unit.Type = Linear
	case Linear:
	default:
		return ErrUnit.New("expecting linear unit for " + what + ", found " +
			unit.Type.String() + " unit " + unit.Name)
	}
	return nil
}

func (b *Builder) method(attrs *attributes) (*Method, error) {
	m := new(Method)
	for i, a := range attrs.All() {
		switch {
		case isName(i, a):
			m.Name = a.Text
		case a.Kind == wkt.Keyword:
			if auth, ok := a.Value.(*Authority); ok {
				m.Authority = auth
			}
		}
	}
	if m.Name == "" {
		return nil, ErrStructure.New("missing METHOD or PROJECTION name")
	}
	return m, nil
}

func (b *Builder) parameter(attrs *attributes) (*Parameter, error) {
	p := new(Parameter)
	for i, a := range attrs.All() {
		switch {
		case isName(i, a):
			p.Name = a.Text
		case isNumber(i, 1, a):
			p.Value = a.Text
		case a.Kind == wkt.Keyword:
			switch n := a.Value.(type) {
			case *Unit:
				p.Unit = n
			case *Authority:
				p.Authority = n
			}
		}
	}
	if p.Name == "" {
		return nil, ErrStructure.New("missing PARAMETER name")
	}
	if p.Value == "" {
		return nil, ErrStructure.New("missing value for PARAMETER " + p.Name)
	}
	return p, nil
}

// projection builds a WKT2 CONVERSION.
func (b *Builder) projection(attrs *attributes) (*Projection, error) {
	p := new(Projection)
	for i, a := range attrs.All() {
		switch {
		case isName(i, a):
			p.Name = a.Text
		case a.Kind == wkt.Keyword:
			switch n := a.Value.(type) {
			case *Method:
				p.Method = n
			case *Parameter:
				p.Parameters = append(p.Parameters, n)
			case *Authority:
				p.Authority = n
			}
		}
	}
	if p.Method == nil {
		return nil, ErrStructure.New("missing METHOD in CONVERSION " + p.Name)
	}
	return p, nil
}

// projcs builds a projected CRS. WKT2 wraps the method and parameters
// in a CONVERSION; WKT1 puts PROJECTION and PARAMETER directly in the
// PROJCS, in which case the projection is assembled here.
func (b *Builder) projcs(attrs *attributes) (*Projcs, error) {
	var (
		name       = "Unknown"
		geogcs     *Geogcs
		projection *Projection
		method     *Method
		params     []*Parameter
		unit       *Unit
		authority  *Authority
		axes       []*Axis
	)
	for i, a := range attrs.All() {
		switch {
		case isName(i, a):
			name = a.Text
		case a.Kind == wkt.Keyword:
			switch n := a.Value.(type) {
			case *Geogcs:
				geogcs = n
			case *Projection:
				projection = n
			case *Method:
				method = n
			case *Parameter:
				params = append(params, n)
			case *Unit:
				unit = n
			case *Authority:
				authority = n
			case *Axis:
				axes = append(axes, n)
			}
		}
	}
	if projection == nil {
		if method == nil {
			return nil, ErrStructure.New("no projection method defined")
		}
		projection = &Projection{
			Name:       "Unknown",
			Method:     method,
			Parameters: params,
			Authority:  authority,
		}
	}
	if geogcs == nil {
		return nil, ErrStructure.New("missing geographic CRS for projected CRS " + name)
	}
	if unit == nil {
		unit = axisUnit(axes)
	}
	if err := backfillLinear(unit, "projected CRS"); err != nil {
		return nil, err
	}
	return &Projcs{Name: name, Geogcs: geogcs, Projection: projection, Unit: unit}, nil
}

func (b *Builder) compoundcrs(attrs *attributes) (*Compoundcrs, error) {
	c := new(Compoundcrs)
	for i, a := range attrs.All() {
		switch {
		case isName(i, a):
			c.Name = a.Text
		case a.Kind == wkt.Keyword:
			switch n := a.Value.(type) {
			case Horizontal:
				if c.Horizontal != nil {
					return nil, ErrStructure.New("more than one horizontal CRS in compound CRS")
				}
				c.Horizontal = n
			case *Verticalcrs:
				if c.Vertical != nil {
					return nil, ErrStructure.New("more than one vertical CRS in compound CRS")
				}
				c.Vertical = n
			}
		}
	}
	switch {
	case c.Name == "":
		return nil, ErrStructure.New("missing compound CRS name")
	case c.Horizontal == nil:
		return nil, ErrStructure.New("missing horizontal CRS for compound CRS " + c.Name)
	case c.Vertical == nil:
		return nil, ErrStructure.New("missing vertical CRS for compound CRS " + c.Name)
	}
	return c, nil
}

func (b *Builder) verticalcrs(attrs *attributes) (*Verticalcrs, error) {
	v := new(Verticalcrs)
	for i, a := range attrs.All() {
		if isName(i, a) {
			v.Name = a.Text
		}
	}
	return v, nil
}
