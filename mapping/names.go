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

package mapping

// Name is an ISO 19111 (WKT2) name with its EPSG code. Code is empty
// for objects that have no EPSG definition.
type Name struct {
	Name string
	Code string
}

// Parameter names.
var (
	ColatitudeConeAxis                 = Name{"Co-latitude of cone axis", "1036"}
	EllipsoidScaleFactor               = Name{"Ellipsoid scaling factor", "1038"}
	ProjectionPlaneOriginHeight        = Name{"Projection plane origin height", "1039"}
	LatitudeOfNaturalOrigin            = Name{"Latitude of natural origin", "8801"}
	LongitudeOfNaturalOrigin           = Name{"Longitude of natural origin", "8802"}
	ScaleFactorAtNaturalOrigin         = Name{"Scale factor at natural origin", "8805"}
	FalseEasting                       = Name{"False easting", "8806"}
	FalseNorthing                      = Name{"False northing", "8807"}
	LatitudeProjectionCentre           = Name{"Latitude of projection centre", "8811"}
	LongitudeProjectionCentre          = Name{"Longitude of projection centre", "8812"}
	AzimuthInitialLine                 = Name{"Azimuth of initial line", "8813"}
	AngleRectifiedToSkewGrid           = Name{"Angle from Rectified to Skew Grid", "8814"}
	ScaleFactorInitialLine             = Name{"Scale factor on initial line", "8815"}
	EastingProjectionCentre            = Name{"Easting at projection centre", "8816"}
	NorthingProjectionCentre           = Name{"Northing at projection centre", "8817"}
	LatitudePseudoStandardParallel     = Name{"Latitude of pseudo standard parallel", "8818"}
	ScaleFactorPseudoStandardParallel  = Name{"Scale factor on pseudo standard parallel", "8819"}
	LatitudeFalseOrigin                = Name{"Latitude of false origin", "8821"}
	LongitudeFalseOrigin               = Name{"Longitude of false origin", "8822"}
	Latitude1stStdParallel             = Name{"Latitude of 1st standard parallel", "8823"}
	Latitude2ndStdParallel             = Name{"Latitude of 2nd standard parallel", "8824"}
	EastingFalseOrigin                 = Name{"Easting at false origin", "8826"}
	NorthingFalseOrigin                = Name{"Northing at false origin", "8827"}
	LatitudeStdParallel                = Name{"Latitude of standard parallel", "8832"}
	LongitudeOfOrigin                  = Name{"Longitude of origin", "8833"}
	LatitudeTopocentricOrigin          = Name{"Latitude of topocentric origin", "8834"}
	LongitudeTopocentricOrigin         = Name{"Longitude of topocentric origin", "8835"}
	EllipsoidalHeightTopocentricOrigin = Name{"Ellipsoidal height of topocentric origin", "8836"}
	ViewpointHeight                    = Name{"Viewpoint height", "8840"}

	LatitudeFirstPoint   = Name{"Latitude of 1st point", ""}
	LongitudeFirstPoint  = Name{"Longitude of 1st point", ""}
	LatitudeSecondPoint  = Name{"Latitude of 2nd point", ""}
	LongitudeSecondPoint = Name{"Longitude of 2nd point", ""}
)

// Method names.
var (
	PopularVisualisationPseudoMercator = Name{"Popular Visualisation Pseudo Mercator", "1024"}
	LambertAzimuthalEqualAreaSpherical = Name{"Lambert Azimuthal Equal Area (Spherical)", "1027"}
	LambertConicConformal2SPMichigan   = Name{"Lambert Conic Conformal (2SP Michigan)", "1051"}
	LambertConicConformal1SP           = Name{"Lambert Conic Conformal (1SP)", "9801"}
	LambertConicConformal2SP           = Name{"Lambert Conic Conformal (2SP)", "9802"}
	LambertConicConformal2SPBelgium    = Name{"Lambert Conic Conformal (2SP Belgium)", "9803"}
	MercatorVariantA                   = Name{"Mercator (variant A)", "9804"}
	MercatorVariantB                   = Name{"Mercator (variant B)", "9805"}
	TransverseMercator                 = Name{"Transverse Mercator", "9807"}
	TransverseMercatorSouthOrientated  = Name{"Transverse Mercator (South Orientated)", "9808"}
	ObliqueStereographic               = Name{"Oblique Stereographic", "9809"}
	PolarStereographicVariantA         = Name{"Polar Stereographic (variant A)", "9810"}
	LambertAzimuthalEqualArea          = Name{"Lambert Azimuthal Equal Area", "9820"}
	AlbersEqualArea                    = Name{"Albers Equal Area", "9822"}
	PolarStereographicVariantB         = Name{"Polar Stereographic (variant B)", "9829"}

	Mollweide     = Name{"Mollweide", ""}
	WagnerIV      = Name{"Wagner IV", ""}
	WagnerV       = Name{"Wagner V", ""}
	Stereographic = Name{"Stereographic", ""}
)
