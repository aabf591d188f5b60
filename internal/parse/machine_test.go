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

package parse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osmcode/go-osmxml/internal/batch"
	"github.com/osmcode/go-osmxml/model"
)

// runDoc drives doc through a fresh Machine and returns every primitive
// committed across every flushed batch, plus the published header.
func runDoc(t *testing.T, doc string, readTypes model.ReadTypeMask) ([]model.Entity, model.Header, error) {
	t.Helper()

	var (
		header     model.Header
		primitives []model.Entity
	)

	m := New(readTypes, true, 64*1024, func(h model.Header) { header = h }, func(b *batch.Batch) error {
		primitives = append(primitives, b.Primitives...)

		return nil
	})

	driver := NewDriver(strings.NewReader(doc), m)
	err := driver.Run()

	return primitives, header, err
}

func TestMachineParsesSingleNodeWithTags(t *testing.T) {
	doc := `<?xml version="1.0"?>
<osm version="0.6" generator="test">
  <node id="1" lat="51.5" lon="-0.1" version="3" changeset="42" uid="7" user="alice" timestamp="2020-01-02T03:04:05Z">
    <tag k="amenity" v="cafe"/>
    <tag k="name" v="Joe's"/>
  </node>
</osm>`

	primitives, header, err := runDoc(t, doc, model.All)
	require.NoError(t, err)
	require.Len(t, primitives, 1)

	node, ok := primitives[0].(model.Node)
	require.True(t, ok)

	assert.Equal(t, model.ID(1), node.ID)
	assert.Equal(t, int32(3), node.Info.Version)
	assert.Equal(t, int64(42), node.Info.Changeset)
	assert.Equal(t, model.UID(7), node.Info.UID)
	assert.Equal(t, "alice", node.Info.User)
	assert.True(t, node.Info.Visible)
	assert.Equal(t, []model.Tag{{Key: "amenity", Value: "cafe"}, {Key: "name", Value: "Joe's"}}, node.Tags)
	assert.False(t, node.Location.IsEmpty())
	assert.Equal(t, "0.6", header.Version)
	assert.Equal(t, "test", header.Generator)
}

func TestMachineParsesWayWithNodeRefs(t *testing.T) {
	doc := `<osm version="0.6">
  <way id="10" version="1">
    <nd ref="1"/>
    <nd ref="2"/>
    <nd ref="3"/>
    <tag k="highway" v="residential"/>
  </way>
</osm>`

	primitives, _, err := runDoc(t, doc, model.All)
	require.NoError(t, err)
	require.Len(t, primitives, 1)

	way, ok := primitives[0].(model.Way)
	require.True(t, ok)
	assert.Equal(t, model.ID(10), way.ID)
	require.Len(t, way.Nodes, 3)
	assert.Equal(t, model.ID(1), way.Nodes[0].ID)
	assert.Equal(t, model.ID(3), way.Nodes[2].ID)
	assert.Equal(t, []model.Tag{{Key: "highway", Value: "residential"}}, way.Tags)
}

func TestMachineParsesRelationMembersByFirstLetter(t *testing.T) {
	doc := `<osm version="0.6">
  <relation id="5" version="1">
    <member type="node" ref="1" role="stop"/>
    <member type="way" ref="2" role=""/>
    <member type="relation" ref="3" role="subarea"/>
  </relation>
</osm>`

	primitives, _, err := runDoc(t, doc, model.All)
	require.NoError(t, err)
	require.Len(t, primitives, 1)

	rel, ok := primitives[0].(model.Relation)
	require.True(t, ok)
	require.Len(t, rel.Members, 3)
	assert.Equal(t, model.MemberNode, rel.Members[0].Type)
	assert.Equal(t, "stop", rel.Members[0].Role)
	assert.Equal(t, model.MemberWay, rel.Members[1].Type)
	assert.Equal(t, model.MemberRelation, rel.Members[2].Type)
	assert.Equal(t, "subarea", rel.Members[2].Role)
}

func TestMachineRejectsRelationMemberWithZeroRef(t *testing.T) {
	doc := `<osm version="0.6">
  <relation id="5" version="1">
    <member type="node" ref="0" role="stop"/>
  </relation>
</osm>`

	_, _, err := runDoc(t, doc, model.All)
	require.Error(t, err)

	var structErr *model.StructuralError
	assert.ErrorAs(t, err, &structErr)
}

func TestMachineRejectsRelationMemberWithUnknownType(t *testing.T) {
	doc := `<osm version="0.6">
  <relation id="5" version="1">
    <member type="bogus" ref="1" role="stop"/>
  </relation>
</osm>`

	_, _, err := runDoc(t, doc, model.All)
	require.Error(t, err)

	var structErr *model.StructuralError
	assert.ErrorAs(t, err, &structErr)
}

func TestMachineParsesChangesetWithDiscussion(t *testing.T) {
	doc := `<osm version="0.6">
  <changeset id="99" created_at="2020-01-01T00:00:00Z" open="false" num_changes="3" comments_count="1" uid="1" user="bob"
             min_lon="-1.0" min_lat="-2.0" max_lon="1.0" max_lat="2.0">
    <tag k="comment" v="fixing roads"/>
    <discussion>
      <comment date="2020-01-02T00:00:00Z" uid="2" user="carol"><text>looks good</text></comment>
    </discussion>
  </changeset>
</osm>`

	primitives, _, err := runDoc(t, doc, model.All)
	require.NoError(t, err)
	require.Len(t, primitives, 1)

	cs, ok := primitives[0].(model.Changeset)
	require.True(t, ok)
	assert.Equal(t, model.ID(99), cs.ID)
	assert.False(t, cs.Open)
	assert.Equal(t, int32(3), cs.NumChanges)
	assert.Equal(t, int32(1), cs.CommentsCount)
	require.NotNil(t, cs.BoundingBox)
	assert.Equal(t, model.Degrees(-1.0), cs.BoundingBox.Left)
	assert.Equal(t, model.Degrees(2.0), cs.BoundingBox.Top)
	require.Len(t, cs.Comments, 1)
	assert.Equal(t, "carol", cs.Comments[0].User)
	assert.Equal(t, "looks good", cs.Comments[0].Text)
	assert.Nil(t, cs.GetInfo())
}

func TestMachineChangesetTolerateUnknownChildThenMoreChildren(t *testing.T) {
	doc := `<osm version="0.6">
  <changeset id="1" uid="1" user="bob">
    <unknown attr="ignored"/>
    <tag k="comment" v="fixing roads"/>
    <discussion>
      <comment date="2020-01-02T00:00:00Z" uid="2" user="carol"><text>looks good</text></comment>
    </discussion>
  </changeset>
</osm>`

	primitives, _, err := runDoc(t, doc, model.All)
	require.NoError(t, err)
	require.Len(t, primitives, 1)

	cs, ok := primitives[0].(model.Changeset)
	require.True(t, ok)
	assert.Equal(t, model.ID(1), cs.ID)
	assert.Equal(t, []model.Tag{{Key: "comment", Value: "fixing roads"}}, cs.Tags)
	require.Len(t, cs.Comments, 1)
	assert.Equal(t, "carol", cs.Comments[0].User)
}

func TestMachineOsmChangeDeleteSectionClearsVisible(t *testing.T) {
	doc := `<osmChange version="0.6">
  <delete>
    <node id="1" version="2" changeset="1"/>
  </delete>
</osmChange>`

	primitives, header, err := runDoc(t, doc, model.All)
	require.NoError(t, err)
	require.Len(t, primitives, 1)
	assert.True(t, header.HasMultipleObjectVersions)

	node := primitives[0].(model.Node)
	assert.False(t, node.Info.Visible)
}

func TestMachineExplicitVisibleOverridesDeleteSection(t *testing.T) {
	doc := `<osmChange version="0.6">
  <delete>
    <node id="1" version="2" changeset="1" visible="true"/>
  </delete>
</osmChange>`

	primitives, _, err := runDoc(t, doc, model.All)
	require.NoError(t, err)

	node := primitives[0].(model.Node)
	assert.True(t, node.Info.Visible)
}

func TestMachineReadTypeMaskExcludesKind(t *testing.T) {
	doc := `<osm version="0.6">
  <node id="1"/>
  <way id="2"/>
</osm>`

	primitives, _, err := runDoc(t, doc, model.ReadNodes)
	require.NoError(t, err)
	require.Len(t, primitives, 1)
	_, ok := primitives[0].(model.Node)
	assert.True(t, ok)
}

func TestMachineHeaderPublishedBeforeFirstPrimitive(t *testing.T) {
	doc := `<osm version="0.6" generator="test">
  <bounds minlon="-1" minlat="-2" maxlon="1" maxlat="2"/>
  <node id="1"/>
</osm>`

	_, header, err := runDoc(t, doc, model.All)
	require.NoError(t, err)
	require.Len(t, header.Boxes, 1)
	assert.Equal(t, model.Degrees(-1), header.Boxes[0].Left)
	assert.Equal(t, model.Degrees(2), header.Boxes[0].Top)
}

func TestMachineHeaderPublishedOnEmptyDocument(t *testing.T) {
	doc := `<osm version="0.6" generator="empty"></osm>`

	primitives, header, err := runDoc(t, doc, model.All)
	require.NoError(t, err)
	assert.Empty(t, primitives)
	assert.Equal(t, "0.6", header.Version)
	assert.Equal(t, "empty", header.Generator)
}

func TestMachineRejectsMissingVersion(t *testing.T) {
	doc := `<osm generator="test"><node id="1"/></osm>`

	_, _, err := runDoc(t, doc, model.All)
	require.Error(t, err)

	var verErr *model.FormatVersionError
	assert.ErrorAs(t, err, &verErr)
}

func TestMachineRejectsUnsupportedVersion(t *testing.T) {
	doc := `<osm version="0.5"><node id="1"/></osm>`

	_, _, err := runDoc(t, doc, model.All)
	require.Error(t, err)

	var verErr *model.FormatVersionError
	assert.ErrorAs(t, err, &verErr)
}

func TestMachineMalformedXMLReportsLine(t *testing.T) {
	doc := "<osm version=\"0.6\">\n  <node id=\"1\">\n</osm>"

	_, _, err := runDoc(t, doc, model.All)
	require.Error(t, err)

	var xmlErr *model.XMLError
	require.ErrorAs(t, err, &xmlErr)
	assert.Greater(t, xmlErr.Line, 0)
}

func TestMachineLenientNumbersTolerateTrailingGarbage(t *testing.T) {
	doc := `<osm version="0.6"><node id="1garbage" lat="51.5x" lon="-0.1y"/></osm>`

	var primitives []model.Entity

	m := New(model.All, false, 64*1024, func(model.Header) {}, func(b *batch.Batch) error {
		primitives = append(primitives, b.Primitives...)

		return nil
	})

	err := NewDriver(strings.NewReader(doc), m).Run()
	require.NoError(t, err)
	require.Len(t, primitives, 1)

	node := primitives[0].(model.Node)
	assert.Equal(t, model.ID(1), node.ID)
}

func TestMachineStrictNumbersRejectTrailingGarbage(t *testing.T) {
	doc := `<osm version="0.6"><node id="1garbage"/></osm>`

	_, _, err := runDoc(t, doc, model.All)
	assert.Error(t, err)
}
