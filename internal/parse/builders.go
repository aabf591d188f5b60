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
	"time"

	"github.com/osmcode/go-osmxml/internal/batch"
	"github.com/osmcode/go-osmxml/model"
)

// taggedTag adapts model.Tag to internal/batch.Sized so a primitive's tag
// list can be folded into its commit cost with batch.Sum.
type taggedTag model.Tag

func (t taggedTag) Size() int { return len(t.Key) + len(t.Value) + tagOverhead }

// taggedNodeRef and taggedMember do the same for Way and Relation children.
type taggedNodeRef model.NodeRef

func (taggedNodeRef) Size() int { return nodeRefOverhead }

type taggedMember model.Member

func (m taggedMember) Size() int { return len(m.Role) + memberOverhead }

// Per-field overhead estimates used only to decide when a Batch has grown
// large enough to flush; they do not need to match the wire size exactly,
// only to be in the right order of magnitude.
const (
	primitiveOverhead = 64
	tagOverhead       = 8
	nodeRefOverhead   = 16
	memberOverhead    = 16
)

func tagCosts(tags []model.Tag) []taggedTag {
	out := make([]taggedTag, len(tags))
	for i, t := range tags {
		out[i] = taggedTag(t)
	}

	return out
}

func nodeRefCosts(refs []model.NodeRef) []taggedNodeRef {
	out := make([]taggedNodeRef, len(refs))
	for i, r := range refs {
		out[i] = taggedNodeRef(r)
	}

	return out
}

func memberCosts(members []model.Member) []taggedMember {
	out := make([]taggedMember, len(members))
	for i, m := range members {
		out[i] = taggedMember(m)
	}

	return out
}

// nodeBuilder accumulates a Node's fields across the <node> ... </node>
// span, including any <tag> children.
type nodeBuilder struct {
	id   model.ID
	loc  model.Location
	info model.Info
	tags []model.Tag
}

func newNodeBuilder() *nodeBuilder {
	return &nodeBuilder{loc: model.EmptyLocation()}
}

func (b *nodeBuilder) build() model.Node {
	info := b.info

	return model.Node{ID: b.id, Tags: b.tags, Info: &info, Location: b.loc}
}

func (b *nodeBuilder) cost() int {
	return primitiveOverhead + len(b.info.User) + batch.Sum(tagCosts(b.tags))
}

// wayBuilder accumulates a Way's fields, including <tag> and <nd> children.
type wayBuilder struct {
	id    model.ID
	info  model.Info
	tags  []model.Tag
	nodes []model.NodeRef
}

func newWayBuilder() *wayBuilder { return &wayBuilder{} }

func (b *wayBuilder) build() model.Way {
	info := b.info

	return model.Way{ID: b.id, Tags: b.tags, Info: &info, Nodes: b.nodes}
}

func (b *wayBuilder) cost() int {
	return primitiveOverhead + len(b.info.User) +
		batch.Sum(tagCosts(b.tags)) + batch.Sum(nodeRefCosts(b.nodes))
}

// relationBuilder accumulates a Relation's fields, including <tag> and
// <member> children.
type relationBuilder struct {
	id      model.ID
	info    model.Info
	tags    []model.Tag
	members []model.Member
}

func newRelationBuilder() *relationBuilder { return &relationBuilder{} }

func (b *relationBuilder) build() model.Relation {
	info := b.info

	return model.Relation{ID: b.id, Tags: b.tags, Info: &info, Members: b.members}
}

func (b *relationBuilder) cost() int {
	return primitiveOverhead + len(b.info.User) +
		batch.Sum(tagCosts(b.tags)) + batch.Sum(memberCosts(b.members))
}

// changesetBuilder accumulates a Changeset's fields, including <tag> and
// <discussion>/<comment>/<text> children.
type changesetBuilder struct {
	id            model.ID
	uid           model.UID
	user          string
	createdAt     time.Time
	closedAt      time.Time
	open          bool
	numChanges    int32
	commentsCount int32
	tags          []model.Tag
	comments      []model.Comment
	boundingBox   *model.BoundingBox
}

func newChangesetBuilder() *changesetBuilder { return &changesetBuilder{} }

func (b *changesetBuilder) build() model.Changeset {
	return model.Changeset{
		ID:            b.id,
		Tags:          b.tags,
		UID:           b.uid,
		User:          b.user,
		CreatedAt:     b.createdAt,
		ClosedAt:      b.closedAt,
		Open:          b.open,
		NumChanges:    b.numChanges,
		CommentsCount: b.commentsCount,
		Comments:      b.comments,
		BoundingBox:   b.boundingBox,
	}
}

func (b *changesetBuilder) cost() int {
	total := primitiveOverhead + len(b.user) + batch.Sum(tagCosts(b.tags))
	for _, c := range b.comments {
		total += len(c.User) + len(c.Text) + tagOverhead
	}

	return total
}
