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

import "github.com/spatialmodel/wktproj/crs"

// Param maps a projection parameter to its proj key. Unit is the class
// of unit the value is expected in. A Param with an empty Key is known
// but has no proj counterpart.
type Param struct {
	Key      string
	WKT2Name string
	EPSGCode string
	WKT1Name string
	Unit     crs.UnitType
}

func param(n Name, wkt1 string, unit crs.UnitType, key string) *Param {
	return &Param{Key: key, WKT2Name: n.Name, EPSGCode: n.Code, WKT1Name: wkt1, Unit: unit}
}

// WKT1 parameter names.
const (
	wkt1LatitudeOfOrigin    = "latitude_of_origin"
	wkt1CentralMeridian     = "central_meridian"
	wkt1ScaleFactor         = "scale_factor"
	wkt1FalseEasting        = "false_easting"
	wkt1FalseNorthing       = "false_northing"
	wkt1StandardParallel1   = "standard_parallel_1"
	wkt1StandardParallel2   = "standard_parallel_2"
	wkt1LatitudeOfCenter    = "latitude_of_center"
	wkt1LongitudeOfCenter   = "longitude_of_center"
	wkt1Azimuth             = "azimuth"
	wkt1RectifiedGridAngle  = "rectified_grid_angle"
	wkt1PseudoStdParallel1  = "pseudo_standard_parallel_1"
	wkt1LatitudeOf1stPoint  = "Latitude_Of_1st_Point"
	wkt1LongitudeOf1stPoint = "Longitude_Of_1st_Point"
	wkt1LatitudeOf2ndPoint  = "Latitude_Of_2nd_Point"
	wkt1LongitudeOf2ndPoint = "Longitude_Of_2nd_Point"
)

const (
	angular = crs.Angular
	linear  = crs.Linear
	scale   = crs.Scale
)

// The parameter catalog, after the PROJ parameter mappings.
var (
	latitudeNatOrigin  = param(LatitudeOfNaturalOrigin, wkt1LatitudeOfOrigin, angular, "lat_0")
	longitudeNatOrigin = param(LongitudeOfNaturalOrigin, wkt1CentralMeridian, angular, "lon_0")
	scaleFactor        = param(ScaleFactorAtNaturalOrigin, wkt1ScaleFactor, scale, "k_0")
	scaleFactorK       = param(ScaleFactorAtNaturalOrigin, wkt1ScaleFactor, scale, "k")
	falseEasting       = param(FalseEasting, wkt1FalseEasting, linear, "x_0")
	falseNorthing      = param(FalseNorthing, wkt1FalseNorthing, linear, "y_0")

	latitudeFalseOrigin    = param(LatitudeFalseOrigin, wkt1LatitudeOfOrigin, angular, "lat_0")
	longitudeFalseOrigin   = param(LongitudeFalseOrigin, wkt1CentralMeridian, angular, "lon_0")
	falseEastingOrigin     = param(EastingFalseOrigin, wkt1FalseEasting, linear, "x_0")
	falseNorthingOrigin    = param(NorthingFalseOrigin, wkt1FalseNorthing, linear, "y_0")
	latitude1stStdParallel = param(Latitude1stStdParallel, wkt1StandardParallel1, angular, "lat_1")
	latitude2ndStdParallel = param(Latitude2ndStdParallel, wkt1StandardParallel2, angular, "lat_2")

	latFalseOriginLatOfCenter   = param(LatitudeFalseOrigin, wkt1LatitudeOfCenter, angular, "lat_0")
	longFalseOriginLongOfCenter = param(LongitudeFalseOrigin, wkt1LongitudeOfCenter, angular, "lon_0")

	latFirstPoint   = param(LatitudeFirstPoint, wkt1LatitudeOf1stPoint, angular, "lat_1")
	longFirstPoint  = param(LongitudeFirstPoint, wkt1LongitudeOf1stPoint, angular, "lon_1")
	latSecondPoint  = param(LatitudeSecondPoint, wkt1LatitudeOf2ndPoint, angular, "lat_2")
	longSecondPoint = param(LongitudeSecondPoint, wkt1LongitudeOf2ndPoint, angular, "lon_2")

	ellipsoidScaleFactor = param(EllipsoidScaleFactor, "", scale, "k_0")

	latNatLatCenter   = param(LatitudeOfNaturalOrigin, wkt1LatitudeOfCenter, angular, "lat_0")
	longNatLongCenter = param(LongitudeOfNaturalOrigin, wkt1LongitudeOfCenter, angular, "lon_0")
	latNatOriginLat1  = param(LatitudeOfNaturalOrigin, wkt1StandardParallel1, angular, "lat_1")
	lat1stParallelTS  = param(Latitude1stStdParallel, wkt1StandardParallel1, angular, "lat_ts")

	latCentreLatCenter     = param(LatitudeProjectionCentre, wkt1LatitudeOfCenter, angular, "lat_0")
	lonCentreLonCenterLonc = param(LongitudeProjectionCentre, wkt1LongitudeOfCenter, angular, "lonc")
	azimuth                = param(AzimuthInitialLine, wkt1Azimuth, angular, "alpha")
	angleToSkewGrid        = param(AngleRectifiedToSkewGrid, wkt1RectifiedGridAngle, angular, "gamma")
	scaleFactorInitialLine = param(ScaleFactorInitialLine, wkt1ScaleFactor, scale, "k")
	falseEastingCentre     = param(EastingProjectionCentre, wkt1FalseEasting, linear, "x_0")
	falseNorthingCentre    = param(NorthingProjectionCentre, wkt1FalseNorthing, linear, "y_0")

	latPoint1  = param(LatitudeFirstPoint, "latitude_of_point_1", angular, "lat_1")
	longPoint1 = param(LongitudeFirstPoint, "longitude_of_point_1", angular, "lon_1")
	latPoint2  = param(LatitudeSecondPoint, "latitude_of_point_2", angular, "lat_2")
	longPoint2 = param(LongitudeSecondPoint, "longitude_of_point_2", angular, "lon_2")

	longCentreLongCenter = param(LongitudeOfOrigin, wkt1LongitudeOfCenter, angular, "lon_0")
	// Ignored by proj.
	colatitudeConeAxis = param(ColatitudeConeAxis, wkt1Azimuth, angular, "alpha")

	latitudePseudoStdParallel    = param(LatitudePseudoStandardParallel, wkt1PseudoStdParallel1, angular, "")
	latLCC1SP                    = param(LatitudeOfNaturalOrigin, wkt1LatitudeOfOrigin, angular, "lat_1")
	scaleFactorPseudoStdParallel = param(ScaleFactorPseudoStandardParallel, wkt1ScaleFactor, scale, "k")
	// Always zero; never written to proj strings.
	latMerc1SP     = param(LatitudeOfNaturalOrigin, "", angular, "")
	latStdParallel = param(LatitudeStdParallel, wkt1LatitudeOfOrigin, angular, "lat_ts")
	longOrigin     = param(LongitudeOfOrigin, wkt1CentralMeridian, angular, "lon_0")
)

// Parameter lists shared by methods.
var (
	natOrigin       = []*Param{latitudeNatOrigin, longitudeNatOrigin, falseEasting, falseNorthing}
	longNatOrigin   = []*Param{longitudeNatOrigin, falseEasting, falseNorthing}
	natOriginScaleK = []*Param{latitudeNatOrigin, longitudeNatOrigin, scaleFactorK, falseEasting, falseNorthing}
	lcc1SP          = []*Param{latLCC1SP, longitudeNatOrigin, scaleFactor, falseEasting, falseNorthing}
	lcc2SP          = []*Param{latitudeFalseOrigin, longitudeFalseOrigin, latitude1stStdParallel,
		latitude2ndStdParallel, falseEastingOrigin, falseNorthingOrigin}
	lcc2SPMichigan = []*Param{latitudeFalseOrigin, longitudeFalseOrigin, latitude1stStdParallel,
		latitude2ndStdParallel, falseEastingOrigin, falseNorthingOrigin, ellipsoidScaleFactor}
	aea = []*Param{latFalseOriginLatOfCenter, longFalseOriginLongOfCenter, latitude1stStdParallel,
		latitude2ndStdParallel, falseEastingOrigin, falseNorthingOrigin}
	laea          = []*Param{latNatLatCenter, longNatLongCenter, falseEasting, falseNorthing}
	merc1SP       = []*Param{latMerc1SP, longitudeNatOrigin, scaleFactorK, falseEasting, falseNorthing}
	merc2SP       = []*Param{lat1stParallelTS, longitudeNatOrigin, falseEasting, falseNorthing}
	polarStereo   = []*Param{latStdParallel, longOrigin, falseEasting, falseNorthing}
	obliqueStereo = []*Param{latitudeNatOrigin, longitudeNatOrigin, scaleFactorK, falseEasting, falseNorthing}
)

// Params returns every parameter in the catalog, including those no
// method currently lists.
func Params() []*Param {
	return []*Param{
		latitudeNatOrigin, longitudeNatOrigin, scaleFactor, scaleFactorK, falseEasting, falseNorthing,
		latitudeFalseOrigin, longitudeFalseOrigin, falseEastingOrigin, falseNorthingOrigin,
		latitude1stStdParallel, latitude2ndStdParallel, latFalseOriginLatOfCenter, longFalseOriginLongOfCenter,
		latFirstPoint, longFirstPoint, latSecondPoint, longSecondPoint, ellipsoidScaleFactor,
		latNatLatCenter, longNatLongCenter, latNatOriginLat1, lat1stParallelTS,
		latCentreLatCenter, lonCentreLonCenterLonc, azimuth, angleToSkewGrid, scaleFactorInitialLine,
		falseEastingCentre, falseNorthingCentre, latPoint1, longPoint1, latPoint2, longPoint2,
		longCentreLongCenter, colatitudeConeAxis, latitudePseudoStdParallel, latLCC1SP,
		scaleFactorPseudoStdParallel, latMerc1SP, latStdParallel, longOrigin,
	}
}
