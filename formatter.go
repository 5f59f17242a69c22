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
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/spatialmodel/wktproj/crs"
	"github.com/spatialmodel/wktproj/mapping"
)

// identityToWGS84 is written for datums without a TOWGS84 clause.
const identityToWGS84 = "0,0,0,0,0,0,0"

// Formatter writes proj strings for CRS trees.
type Formatter struct {
	w     io.Writer
	first bool
}

// NewFormatter returns a Formatter that writes to w.
func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{w: w}
}

// Format writes the proj string for n, which must be a geographic,
// geocentric, projected or compound CRS. Output may be partially
// written when an error is returned.
func (f *Formatter) Format(n crs.Node) error {
	f.first = true
	switch n := n.(type) {
	case *crs.Geogcs:
		return f.geogcs(n)
	case *crs.Geoccs:
		return f.geoccs(n)
	case *crs.Projcs:
		return f.projcs(n)
	case *crs.Compoundcrs:
		// The vertical component has no proj counterpart here.
		return f.Format(n.Horizontal)
	}
	return ErrUnsupportedCRS.New(kindName(n))
}

func kindName(n crs.Node) string {
	switch n := n.(type) {
	case nil:
		return "nil"
	case *crs.Other:
		return n.Keyword
	}
	name := fmt.Sprintf("%T", n)
	return strings.TrimPrefix(strings.TrimPrefix(name, "*"), "crs.")
}

func (f *Formatter) write(s string) error {
	if !f.first {
		s = " " + s
	}
	f.first = false
	if _, err := io.WriteString(f.w, s); err != nil {
		return ErrWrite.Wrap(err)
	}
	return nil
}

func (f *Formatter) token(key, value string) error {
	return f.write("+" + key + "=" + value)
}

func (f *Formatter) geogcs(g *crs.Geogcs) error {
	if err := f.token("proj", "longlat"); err != nil {
		return err
	}
	if err := f.datum(g.Datum); err != nil {
		return err
	}
	return f.primeMeridian(g.PrimeMeridian, g.Unit)
}

func (f *Formatter) geoccs(g *crs.Geoccs) error {
	if err := f.token("proj", "geocent"); err != nil {
		return err
	}
	if err := f.units(g.Unit); err != nil {
		return err
	}
	if err := f.datum(g.Datum); err != nil {
		return err
	}
	return f.primeMeridian(g.PrimeMeridian, nil)
}

func (f *Formatter) projcs(p *crs.Projcs) error {
	m := mapping.FindMethod(p.Projection.Method)
	if m == nil {
		return ErrNoMethodMapping.New(p.Projection.Method.Name)
	}
	if err := f.token("proj", m.Key); err != nil {
		return err
	}
	for _, param := range p.Projection.Parameters {
		c := m.FindParam(param)
		if c == nil {
			continue
		}
		v, err := paramValue(param, c, p.Unit, p.Geogcs.Unit)
		if err != nil {
			return err
		}
		if err := f.token(c.Key, v); err != nil {
			return err
		}
	}
	if err := f.units(p.Unit); err != nil {
		return err
	}
	if err := f.datum(p.Geogcs.Datum); err != nil {
		return err
	}
	if m.Aux != "" {
		if err := f.write(m.Aux); err != nil {
			return err
		}
	}
	return f.primeMeridian(p.Geogcs.PrimeMeridian, p.Geogcs.Unit)
}

// units writes the linear unit of the projected axes.
func (f *Formatter) units(u *crs.Unit) error {
	if u == nil || u.IsMetre() {
		return f.token("units", "m")
	}
	return f.token("to_meter", formatNumber(u.Factor))
}

func (f *Formatter) datum(d *crs.Datum) error {
	e := d.Ellipsoid
	a := e.A
	if e.Unit != nil {
		if e.Unit.Type != crs.Linear {
			return ErrUnit.New(fmt.Sprintf("expecting linear unit for ellipsoid %s, found %s unit %s",
				e.Name, e.Unit.Type, e.Unit.Name))
		}
		if !e.Unit.IsMetre() {
			v, err := crs.ParseNumber(e.A, "semi-major axis of "+e.Name)
			if err != nil {
				return err
			}
			a = formatNumber(v * e.Unit.Factor)
		}
	}
	rf, err := crs.ParseNumber(e.Rf, "inverse flattening of "+e.Name)
	if err != nil {
		return err
	}
	if err := f.token("a", a); err != nil {
		return err
	}
	if rf == 0 {
		// A sphere.
		err = f.token("b", a)
	} else {
		err = f.token("rf", e.Rf)
	}
	if err != nil {
		return err
	}
	towgs84 := identityToWGS84
	if len(d.ToWGS84) > 0 {
		towgs84 = strings.Join(d.ToWGS84, ",")
	}
	return f.token("towgs84", towgs84)
}

// primeMeridian writes a +pm token for a meridian other than
// Greenwich. ref is the angular unit of the enclosing CRS, used when the
// meridian has no unit of its own.
func (f *Formatter) primeMeridian(pm *crs.PrimeMeridian, ref *crs.Unit) error {
	if pm == nil {
		return nil
	}
	v, err := crs.ParseNumber(pm.Longitude, "longitude of prime meridian "+pm.Name)
	if err != nil {
		return err
	}
	if v == 0 {
		return nil
	}
	u := pm.Unit
	if u == nil {
		u = ref
	}
	lon := pm.Longitude
	if u != nil {
		if u.Type != crs.Angular && u.Type != crs.Unknown {
			return ErrUnit.New(fmt.Sprintf("expecting angular unit for prime meridian %s, found %s unit %s",
				pm.Name, u.Type, u.Name))
		}
		if !isDegree(u) {
			lon = formatNumber(toDegrees(v * u.Factor))
		}
	}
	return f.token("pm", lon)
}

// paramValue returns the value of p converted to the unit proj expects
// for c. linear and angular are the reference units of the projected
// and geographic CRS.
func paramValue(p *crs.Parameter, c *mapping.Param, linear, angular *crs.Unit) (string, error) {
	u := p.Unit
	if u == nil {
		switch c.Unit {
		case crs.Linear:
			u = linear
		case crs.Angular:
			u = angular
		}
	}
	if u == nil {
		return p.Value, nil
	}
	class := u.Type
	if class == crs.Unknown {
		class = c.Unit
	}
	if class != c.Unit {
		return "", ErrUnit.New(fmt.Sprintf("expecting %s unit for parameter %s, found %s unit %s",
			c.Unit, p.Name, u.Type, u.Name))
	}

	var convert func(float64) float64
	switch c.Unit {
	case crs.Linear:
		if !isMetre(u) {
			convert = func(v float64) float64 { return v * u.Factor }
		}
	case crs.Angular:
		if !isDegree(u) {
			convert = func(v float64) float64 { return toDegrees(v * u.Factor) }
		}
	case crs.Scale:
		if u.Factor != 1 {
			convert = func(v float64) float64 { return v * u.Factor }
		}
	}
	if convert == nil {
		return p.Value, nil
	}
	v, err := crs.ParseNumber(p.Value, "PARAMETER "+p.Name)
	if err != nil {
		return "", err
	}
	return formatNumber(convert(v)), nil
}

// isMetre and isDegree accept units whose class is only implied by
// where they are used.
func isMetre(u *crs.Unit) bool {
	if u.Type == crs.Unknown {
		c := *u
		c.Type = crs.Linear
		return c.IsMetre()
	}
	return u.IsMetre()
}

func isDegree(u *crs.Unit) bool {
	if u.Type == crs.Unknown {
		c := *u
		c.Type = crs.Angular
		return c.IsDegree()
	}
	return u.IsDegree()
}

func toDegrees(rad float64) float64 { return rad * 180 / math.Pi }

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
