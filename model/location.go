// Copyright 2017-25 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package model

import "fmt"

// undefinedCoordinate is the sentinel stored in both fields of an empty
// Location. It mirrors the undefined-coordinate convention used throughout
// OSM tooling: a value outside the valid longitude/latitude range.
const undefinedCoordinate int32 = 1<<31 - 1

// Location is a longitude/latitude pair stored as a fixed-point integer at
// 1e-7 degree resolution, the precision OSM XML coordinates round-trip at.
// The zero value is not a valid location; use Location{} only through
// EmptyLocation, which sets both fields to the undefined sentinel.
type Location struct {
	lon int32
	lat int32
}

// EmptyLocation returns a Location whose coordinates are unknown.
func EmptyLocation() Location {
	return Location{lon: undefinedCoordinate, lat: undefinedCoordinate}
}

// NewLocation builds a Location from fixed-point, 1e-7-degree coordinates.
func NewLocation(lon, lat int32) Location {
	return Location{lon: lon, lat: lat}
}

// LocationFromDegrees builds a Location from floating-point degrees.
func LocationFromDegrees(lon, lat Degrees) Location {
	return Location{lon: lon.E7(), lat: lat.E7()}
}

// IsEmpty reports whether the location's coordinates are unknown.
func (l Location) IsEmpty() bool {
	return l.lon == undefinedCoordinate && l.lat == undefinedCoordinate
}

// LonE7 returns the longitude in ten-millionths of a degree.
func (l Location) LonE7() int32 { return l.lon }

// LatE7 returns the latitude in ten-millionths of a degree.
func (l Location) LatE7() int32 { return l.lat }

// Lon returns the longitude in decimal degrees.
func (l Location) Lon() Degrees { return Degrees(l.lon) / TenMillionths }

// Lat returns the latitude in decimal degrees.
func (l Location) Lat() Degrees { return Degrees(l.lat) / TenMillionths }

func (l Location) String() string {
	if l.IsEmpty() {
		return "(undefined)"
	}

	return fmt.Sprintf("(%s, %s)", ftoa(float64(l.Lon())), ftoa(float64(l.Lat())))
}

// Equal compares locations by coordinate, not identity. Two empty locations
// are equal to each other.
func (l Location) Equal(o Location) bool {
	return l.lon == o.lon && l.lat == o.lat
}
