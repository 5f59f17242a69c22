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

// Keyword is the concept behind a WKT keyword, independent of the
// dialect it was spelled in.
type Keyword int

// The recognized concepts.
const (
	KeyOther Keyword = iota
	KeyGeogcs
	KeyGeodcrs
	KeyGeoccs
	KeyProjcs
	KeyDatum
	KeyEllipsoid
	KeyPrimeMeridian
	KeyConversion
	KeyMethod
	KeyParameter
	KeyUnit
	KeyLengthUnit
	KeyAngleUnit
	KeyScaleUnit
	KeyAuthority
	KeyAxis
	KeyCS
	KeyToWGS84
	KeyCompoundcrs
	KeyVerticalcrs
)

// synonyms is the single table of keyword spellings. WKT1 spellings
// come first.
var synonyms = map[Keyword][]string{
	KeyGeogcs:        {"GEOGCS", "GEOGCRS", "GEOGRAPHICCRS", "BASEGEODCRS", "BASEGEOGCRS"},
	KeyGeodcrs:       {"GEODCRS", "GEODETICCRS"},
	KeyGeoccs:        {"GEOCCS"},
	KeyProjcs:        {"PROJCS", "PROJCRS", "PROJECTEDCRS"},
	KeyDatum:         {"DATUM", "GEODETICDATUM", "TRF", "ENSEMBLE"},
	KeyEllipsoid:     {"SPHEROID", "ELLIPSOID"},
	KeyPrimeMeridian: {"PRIMEM", "PRIMEMERIDIAN"},
	KeyConversion:    {"CONVERSION"},
	KeyMethod:        {"PROJECTION", "METHOD"},
	KeyParameter:     {"PARAMETER"},
	KeyUnit:          {"UNIT"},
	KeyLengthUnit:    {"LENGTHUNIT"},
	KeyAngleUnit:     {"ANGLEUNIT"},
	KeyScaleUnit:     {"SCALEUNIT"},
	KeyAuthority:     {"AUTHORITY", "ID"},
	KeyAxis:          {"AXIS"},
	KeyCS:            {"CS"},
	KeyToWGS84:       {"TOWGS84"},
	KeyCompoundcrs:   {"COMPD_CS", "COMPOUNDCRS"},
	KeyVerticalcrs:   {"VERT_CS", "VERTCRS", "VERTICALCRS"},
}

var keywords map[string]Keyword

func init() {
	keywords = make(map[string]Keyword)
	for k, spellings := range synonyms {
		for _, s := range spellings {
			keywords[s] = k
		}
	}
}

// NormalizeKeyword returns the concept spelled by key. Keywords are
// case sensitive; unknown keywords return KeyOther.
func NormalizeKeyword(key string) Keyword {
	return keywords[key]
}

// Synonyms returns the spellings recognized for k.
func (k Keyword) Synonyms() []string {
	return append([]string(nil), synonyms[k]...)
}

func (k Keyword) String() string {
	if s, ok := synonyms[k]; ok {
		return s[0]
	}
	return "OTHER"
}

// unitType returns the unit type implied by a unit keyword.
func (k Keyword) unitType() UnitType {
	switch k {
	case KeyAngleUnit:
		return Angular
	case KeyLengthUnit:
		return Linear
	case KeyScaleUnit:
		return Scale
	}
	return Unknown
}
