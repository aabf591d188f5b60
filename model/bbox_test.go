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

package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osmcode/go-osmxml/model"
)

func TestInitialBoundingBox(t *testing.T) {
	initial := model.InitialBoundingBox()
	assert.Equal(t, initial.Top, model.MinLat)
	assert.Equal(t, initial.Bottom, model.MaxLat)
	assert.Equal(t, initial.Right, model.MinLon)
	assert.Equal(t, initial.Left, model.MaxLon)
}

func TestBoundingBoxEqualWithin(t *testing.T) {
	bbox1 := &model.BoundingBox{Top: 51.69344, Left: -0.511482, Bottom: 51.28554, Right: 0.335437}
	bbox2 := &model.BoundingBox{
		Top:    bbox1.Top + model.Degrees(model.E6),
		Left:   bbox1.Left + model.Degrees(model.E6),
		Bottom: bbox1.Bottom + model.Degrees(model.E6),
		Right:  bbox1.Right + model.Degrees(model.E6),
	}

	assert.True(t, bbox1.EqualWithin(bbox2, model.E5))
	assert.False(t, bbox1.EqualWithin(bbox2, model.E7))
}

func TestBoundingBoxContains(t *testing.T) {
	bbox1 := &model.BoundingBox{Top: 51.69344, Left: -0.511482, Bottom: 51.28554, Right: 0.335437}

	testCases := []struct {
		name     string
		lat      model.Degrees
		lng      model.Degrees
		expected bool
	}{
		{"bottom/left", bbox1.Bottom, bbox1.Left, true},
		{"top/left", bbox1.Top, bbox1.Left, true},
		{"top/right", bbox1.Top, bbox1.Right, true},
		{"bottom/right", bbox1.Bottom, bbox1.Right, true},

		{"bottom/left-E5", bbox1.Bottom, bbox1.Left - model.Degrees(model.E5), false},
		{"bottom-E5/left", bbox1.Bottom - model.Degrees(model.E5), bbox1.Left, false},
		{"bottom/left+E5", bbox1.Bottom, bbox1.Left + model.Degrees(model.E5), true},
		{"bottom+E5/left", bbox1.Bottom + model.Degrees(model.E5), bbox1.Left, true},

		{"top/right+E5", bbox1.Top, bbox1.Right + model.Degrees(model.E5), false},
		{"top+E5/right", bbox1.Top + model.Degrees(model.E5), bbox1.Right, false},
		{"top/right-E5", bbox1.Top, bbox1.Right - model.Degrees(model.E5), true},
		{"top-E5/right", bbox1.Top - model.Degrees(model.E5), bbox1.Right, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, bbox1.Contains(tc.lat, tc.lng))
		})
	}
}

func TestBoundingBoxExpandWithLatLng(t *testing.T) {
	bbox := model.InitialBoundingBox()
	bbox.ExpandWithLatLng(-45, 90)
	bbox.ExpandWithLatLng(45, -90)

	assert.True(t, bbox.Contains(-45, 90))
	assert.True(t, bbox.Contains(45, -90))
	assert.True(t, bbox.Contains(-45, -90))
	assert.True(t, bbox.Contains(45, 90))
}

func TestBoundingBoxExpandWithBoundingBox(t *testing.T) {
	bbox := model.InitialBoundingBox()
	bbox.ExpandWithBoundingBox(&model.BoundingBox{Top: 45.0, Left: 70.0, Bottom: 20.0, Right: 90.0})
	bbox.ExpandWithBoundingBox(&model.BoundingBox{Top: 20.0, Left: -20.0, Bottom: -20.0, Right: 20.0})
	bbox.ExpandWithBoundingBox(&model.BoundingBox{Top: -25.0, Left: -90.0, Bottom: -45.0, Right: -70.0})

	assert.True(t, bbox.Contains(-45, 90))
	assert.True(t, bbox.Contains(45, -90))
	assert.True(t, bbox.Contains(-45, -90))
	assert.True(t, bbox.Contains(45, 90))
}

func TestBoundingBoxExpandWithLocation(t *testing.T) {
	bbox := model.InitialBoundingBox()
	bbox.ExpandWithLocation(model.LocationFromDegrees(-0.1, 51.5))
	bbox.ExpandWithLocation(model.LocationFromDegrees(0.3, 51.2))

	assert.True(t, bbox.ContainsLocation(model.LocationFromDegrees(-0.1, 51.5)))
	assert.True(t, bbox.ContainsLocation(model.LocationFromDegrees(0.3, 51.2)))
	assert.False(t, bbox.ContainsLocation(model.LocationFromDegrees(10, 10)))
}

func TestBoundingBoxExpandWithLocationIgnoresEmptyLocation(t *testing.T) {
	bbox := model.InitialBoundingBox()
	before := *bbox

	bbox.ExpandWithLocation(model.EmptyLocation())

	assert.Equal(t, before, *bbox)
}

func TestBoundingBoxContainsLocationRejectsEmptyLocation(t *testing.T) {
	bbox := &model.BoundingBox{Top: 90, Left: -180, Bottom: -90, Right: 180}
	assert.False(t, bbox.ContainsLocation(model.EmptyLocation()))
}

func TestBoundingBoxString(t *testing.T) {
	bbox := &model.BoundingBox{Top: 51.69344, Left: -0.511482, Bottom: 51.28554, Right: 0.335437}
	assert.Equal(t, "[(51.69344, -0.511482) (51.28554, 0.335437)]", bbox.String())
}
