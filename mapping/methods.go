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

// Package mapping holds the catalogs that translate WKT projection
// methods and parameters into proj keys.
//
// Lookups trust an EPSG authority code first: when a method or
// parameter carries an EPSG ID, only the code is compared. A non-EPSG
// authority never matches. Objects without an authority are matched by
// case-insensitive comparison against either the WKT2 or the WKT1
// name. Nothing matches an empty name.
package mapping

import (
	"strings"

	"github.com/spatialmodel/wktproj/crs"
)

// Method maps a projection method to a proj projection. Aux holds extra
// proj flags written after everything else, and Params lists the
// parameters the method accepts.
type Method struct {
	Key      string
	Aux      string
	WKT2Name string
	EPSGCode string
	WKT1Name string
	Params   []*Param
}

func method(n Name, wkt1, key, aux string, params []*Param) *Method {
	return &Method{Key: key, Aux: aux, WKT2Name: n.Name, EPSGCode: n.Code, WKT1Name: wkt1, Params: params}
}

var methods = []*Method{
	method(TransverseMercator, "Transverse_Mercator", "tmerc", "", natOriginScaleK),
	method(TransverseMercatorSouthOrientated, "Transverse_Mercator_South_Orientated", "tmerc", "+axis=wsu", natOriginScaleK),
	method(AlbersEqualArea, "Albers_Conic_Equal_Area", "aea", "", aea),
	method(LambertConicConformal1SP, "Lambert_Conformal_Conic_1SP", "lcc", "", lcc1SP),
	method(LambertConicConformal2SP, "Lambert_Conformal_Conic_2SP", "lcc", "", lcc2SP),
	// No WKT1 name.
	method(LambertConicConformal2SPMichigan, "", "lcc", "", lcc2SPMichigan),
	method(LambertConicConformal2SPBelgium, "Lambert_Conformal_Conic_2SP_Belgium", "lcc", "", lcc2SP),
	method(LambertAzimuthalEqualArea, "Lambert_Azimuthal_Equal_Area", "laea", "", laea),
	method(LambertAzimuthalEqualAreaSpherical, "Lambert_Azimuthal_Equal_Area", "laea", "+R_A", laea),
	method(MercatorVariantA, "Mercator_1SP", "merc", "", merc1SP),
	method(MercatorVariantB, "Mercator_2SP", "merc", "", merc2SP),
	method(PopularVisualisationPseudoMercator, "Popular_Visualisation_Pseudo_Mercator", "webmerc", "", natOrigin),
	method(Mollweide, "Mollweide", "moll", "", longNatOrigin),
	method(WagnerIV, "Wagner_IV", "wag4", "", longNatOrigin),
	method(WagnerV, "Wagner_V", "wag5", "", longNatOrigin),
	method(ObliqueStereographic, "Oblique_Stereographic", "sterea", "", obliqueStereo),
	method(PolarStereographicVariantA, "Polar_Stereographic", "stere", "", obliqueStereo),
	method(PolarStereographicVariantB, "Polar_Stereographic", "stere", "", polarStereo),
	method(Stereographic, "Stereographic", "stere", "", obliqueStereo),
}

// Methods returns the method catalog in lookup order.
func Methods() []*Method {
	return append([]*Method(nil), methods...)
}

// FindMethod returns the catalog entry for m, or nil if the method has
// no proj equivalent.
func FindMethod(m *crs.Method) *Method {
	if m == nil || m.Name == "" {
		return nil
	}
	for _, c := range methods {
		if match(m.Name, m.Authority, c.WKT2Name, c.WKT1Name, c.EPSGCode) {
			return c
		}
	}
	return nil
}

// FindParam returns the catalog entry for p among the parameters of m,
// or nil if the parameter is not used by proj.
func (m *Method) FindParam(p *crs.Parameter) *Param {
	if p == nil || p.Name == "" {
		return nil
	}
	for _, c := range m.Params {
		if c.Key == "" {
			continue
		}
		if match(p.Name, p.Authority, c.WKT2Name, c.WKT1Name, c.EPSGCode) {
			return c
		}
	}
	return nil
}

func match(name string, auth *crs.Authority, wkt2, wkt1, code string) bool {
	if auth != nil {
		return auth.IsEPSG() && code != "" && auth.Code == code
	}
	return equalName(name, wkt2) || equalName(name, wkt1)
}

func equalName(a, b string) bool {
	return b != "" && strings.EqualFold(a, b)
}
