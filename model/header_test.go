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

func TestHeaderZeroValueHasNoBoxes(t *testing.T) {
	var h model.Header
	assert.Empty(t, h.Boxes)
	assert.False(t, h.HasMultipleObjectVersions)
}

func TestHeaderCarriesMultipleBoxes(t *testing.T) {
	h := model.Header{
		Generator: "osmium/1.14.0",
		Boxes: []model.BoundingBox{
			{Top: 1, Left: 1, Bottom: 0, Right: 0},
			{Top: 2, Left: 2, Bottom: 0, Right: 0},
		},
	}

	assert.Len(t, h.Boxes, 2)
	assert.Equal(t, "osmium/1.14.0", h.Generator)
}
