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

func TestEmptyLocationIsEmpty(t *testing.T) {
	assert.True(t, model.EmptyLocation().IsEmpty())
}

func TestNewLocationIsNotEmpty(t *testing.T) {
	loc := model.NewLocation(-1205749, 517450)
	assert.False(t, loc.IsEmpty())
	assert.Equal(t, int32(-1205749), loc.LonE7())
	assert.Equal(t, int32(517450), loc.LatE7())
}

func TestLocationFromDegrees(t *testing.T) {
	loc := model.LocationFromDegrees(model.Degrees(-0.1205749), model.Degrees(51.7450))
	assert.True(t, model.Degrees(-0.1205749).EqualWithin(loc.Lon(), model.E6))
	assert.True(t, model.Degrees(51.7450).EqualWithin(loc.Lat(), model.E6))
}

func TestLocationEqual(t *testing.T) {
	a := model.NewLocation(100, 200)
	b := model.NewLocation(100, 200)
	c := model.NewLocation(100, 201)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, model.EmptyLocation().Equal(model.EmptyLocation()))
}

func TestLocationString(t *testing.T) {
	assert.Equal(t, "(undefined)", model.EmptyLocation().String())

	loc := model.NewLocation(-1205749, 517450)
	assert.Equal(t, "(-0.1205749, 0.051745)", loc.String())
}
