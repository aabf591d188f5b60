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
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/osmcode/go-osmxml/internal/batch"
	"github.com/osmcode/go-osmxml/model"
)

// Machine drives model.Entity construction from a stream of XML
// start/end/character events. It holds exactly one active context and, when
// that context is ctxInObject, the context to return to once the current
// child element closes.
type Machine struct {
	ReadTypes model.ReadTypeMask
	Strict    bool

	// PublishHeader is invoked exactly once, either when the first
	// primitive is about to be read or, if the document has none, when
	// the root element closes.
	PublishHeader func(model.Header)

	// Flush is invoked whenever the current batch has reached 90% of its
	// target size at a primitive boundary, and once more from Finish for a
	// non-empty final batch. The Machine starts a fresh batch immediately
	// after.
	Flush func(*batch.Batch) error

	ctx      context
	lastCtx  context
	inDelete bool

	header          model.Header
	headerPublished bool

	batch       *batch.Batch
	batchTarget int

	node      *nodeBuilder
	way       *wayBuilder
	relation  *relationBuilder
	changeset *changesetBuilder

	commentText strings.Builder
}

// New returns a Machine ready to consume the root element of a document.
func New(readTypes model.ReadTypeMask, strict bool, batchTarget int, publishHeader func(model.Header), flush func(*batch.Batch) error) *Machine {
	return &Machine{
		ReadTypes:     readTypes,
		Strict:        strict,
		PublishHeader: publishHeader,
		Flush:         flush,
		batch:         batch.New(batchTarget),
		batchTarget:   batchTarget,
	}
}

// Finish is called once the input stream is exhausted. It publishes the
// header if no primitive ever did, and flushes any partial final batch.
func (m *Machine) Finish() error {
	m.publishHeaderOnce()

	if !m.batch.Empty() {
		return m.flushBatch()
	}

	return nil
}

// EnsureHeaderPublished publishes the header immediately if nothing has
// published it yet. Driver.Run defers this on every exit path so a caller
// blocked on Header never hangs when the stream ends in error before any
// primitive or the root element triggered the usual publication.
func (m *Machine) EnsureHeaderPublished() {
	m.publishHeaderOnce()
}

func (m *Machine) publishHeaderOnce() {
	if !m.headerPublished {
		m.headerPublished = true
		m.PublishHeader(m.header)
	}
}

func (m *Machine) flushBatch() error {
	b := m.batch
	m.batch = batch.New(m.batchTarget)

	return m.Flush(b)
}

func (m *Machine) maybeFlush() error {
	if m.batch.ShouldFlush() {
		return m.flushBatch()
	}

	return nil
}

// StartElement advances the machine on an opening tag.
func (m *Machine) StartElement(el xml.StartElement) error {
	name := el.Name.Local
	attrs := attrSet(el.Attr)

	switch m.ctx {
	case ctxRoot:
		return m.startRoot(name, attrs)
	case ctxTop:
		return m.startTop(name, attrs)
	case ctxNode:
		return m.startNodeChild(name, attrs)
	case ctxWay:
		return m.startWayChild(name, attrs)
	case ctxRelation:
		return m.startRelationChild(name, attrs)
	case ctxChangeset:
		return m.startChangesetChild(name, attrs)
	case ctxDiscussion:
		return m.startDiscussionChild(name, attrs)
	case ctxComment:
		return m.startCommentChild(name)
	case ctxCommentText, ctxIgnoredNode, ctxIgnoredWay, ctxIgnoredRelation, ctxIgnoredChangeset, ctxInObject:
		return nil
	default:
		return nil
	}
}

// EndElement advances the machine on a closing tag.
func (m *Machine) EndElement(el xml.EndElement) error {
	name := el.Name.Local

	switch m.ctx {
	case ctxTop:
		switch name {
		case "osm", "osmChange":
			m.publishHeaderOnce()
			m.ctx = ctxRoot
		case "delete":
			m.inDelete = false
		}

		return nil
	case ctxNode:
		return m.endNode()
	case ctxWay:
		return m.endWay()
	case ctxRelation:
		return m.endRelation()
	case ctxChangeset:
		return m.endChangeset()
	case ctxDiscussion:
		if name == "discussion" {
			m.ctx = ctxChangeset
		}

		return nil
	case ctxComment:
		if name == "comment" {
			m.ctx = ctxDiscussion
		}

		return nil
	case ctxCommentText:
		if name == "text" {
			m.ctx = ctxComment
			m.setLastCommentText(m.commentText.String())
			m.commentText.Reset()
		}

		return nil
	case ctxInObject:
		m.ctx = m.lastCtx

		return nil
	case ctxIgnoredNode:
		if name == "node" {
			m.ctx = ctxTop
		}

		return nil
	case ctxIgnoredWay:
		if name == "way" {
			m.ctx = ctxTop
		}

		return nil
	case ctxIgnoredRelation:
		if name == "relation" {
			m.ctx = ctxTop
		}

		return nil
	case ctxIgnoredChangeset:
		if name == "changeset" {
			m.ctx = ctxTop
		}

		return nil
	default:
		return nil
	}
}

// CharData accumulates a <comment><text> body; everywhere else in the
// document character data is insignificant whitespace and is ignored.
func (m *Machine) CharData(text []byte) {
	if m.ctx == ctxCommentText {
		m.commentText.Write(text)
	}
}

func (m *Machine) setLastCommentText(text string) {
	if m.changeset == nil || len(m.changeset.comments) == 0 {
		return
	}

	m.changeset.comments[len(m.changeset.comments)-1].Text = text
}

func (m *Machine) startRoot(name string, attrs attrSet) error {
	if name != "osm" && name != "osmChange" {
		return &model.XMLError{Msg: fmt.Sprintf("unknown top-level element %q", name)}
	}

	m.header.HasMultipleObjectVersions = name == "osmChange"

	version, hasVersion := attrs.get("version")
	if !hasVersion {
		return &model.FormatVersionError{}
	}

	if version != "0.6" {
		return &model.FormatVersionError{Got: version}
	}

	m.header.Version = version

	if generator, ok := attrs.get("generator"); ok {
		m.header.Generator = generator
	}

	m.ctx = ctxTop

	return nil
}

func (m *Machine) startTop(name string, attrs attrSet) error {
	switch name {
	case "node":
		m.publishHeaderOnce()

		if !m.ReadTypes.Has(model.ReadNodes) {
			m.ctx = ctxIgnoredNode

			return nil
		}

		nb := newNodeBuilder()
		if err := m.initNode(nb, attrs); err != nil {
			return err
		}

		m.node = nb
		m.ctx = ctxNode

		return nil
	case "way":
		m.publishHeaderOnce()

		if !m.ReadTypes.Has(model.ReadWays) {
			m.ctx = ctxIgnoredWay

			return nil
		}

		wb := newWayBuilder()
		if err := m.initPrimitive(&wb.id, &wb.info, attrs); err != nil {
			return err
		}

		m.way = wb
		m.ctx = ctxWay

		return nil
	case "relation":
		m.publishHeaderOnce()

		if !m.ReadTypes.Has(model.ReadRelations) {
			m.ctx = ctxIgnoredRelation

			return nil
		}

		rb := newRelationBuilder()
		if err := m.initPrimitive(&rb.id, &rb.info, attrs); err != nil {
			return err
		}

		m.relation = rb
		m.ctx = ctxRelation

		return nil
	case "changeset":
		m.publishHeaderOnce()

		if !m.ReadTypes.Has(model.ReadChangesets) {
			m.ctx = ctxIgnoredChangeset

			return nil
		}

		cb := newChangesetBuilder()
		if err := m.initChangeset(cb, attrs); err != nil {
			return err
		}

		m.changeset = cb
		m.ctx = ctxChangeset

		return nil
	case "bounds":
		box, err := parseBounds(attrs)
		if err != nil {
			return err
		}

		m.header.Boxes = append(m.header.Boxes, box)

		return nil
	case "delete":
		m.inDelete = true

		return nil
	}

	return nil
}

func (m *Machine) startNodeChild(name string, attrs attrSet) error {
	m.lastCtx = ctxNode
	m.ctx = ctxInObject

	if name == "tag" {
		t, err := parseTag(attrs)
		if err != nil {
			return err
		}

		m.node.tags = append(m.node.tags, t)
	}

	return nil
}

func (m *Machine) startWayChild(name string, attrs attrSet) error {
	m.lastCtx = ctxWay
	m.ctx = ctxInObject

	switch name {
	case "nd":
		ref, err := parseNodeRef(attrs)
		if err != nil {
			return err
		}

		m.way.nodes = append(m.way.nodes, ref)
	case "tag":
		t, err := parseTag(attrs)
		if err != nil {
			return err
		}

		m.way.tags = append(m.way.tags, t)
	}

	return nil
}

func (m *Machine) startRelationChild(name string, attrs attrSet) error {
	m.lastCtx = ctxRelation
	m.ctx = ctxInObject

	switch name {
	case "member":
		mem, err := parseMember(attrs)
		if err != nil {
			return err
		}

		m.relation.members = append(m.relation.members, mem)
	case "tag":
		t, err := parseTag(attrs)
		if err != nil {
			return err
		}

		m.relation.tags = append(m.relation.tags, t)
	}

	return nil
}

func (m *Machine) startChangesetChild(name string, attrs attrSet) error {
	m.lastCtx = ctxChangeset
	m.ctx = ctxInObject

	switch name {
	case "discussion":
		m.ctx = ctxDiscussion
	case "tag":
		t, err := parseTag(attrs)
		if err != nil {
			return err
		}

		m.changeset.tags = append(m.changeset.tags, t)
	}

	return nil
}

func (m *Machine) startDiscussionChild(name string, attrs attrSet) error {
	if name != "comment" {
		return nil
	}

	m.ctx = ctxComment

	c, err := parseComment(attrs)
	if err != nil {
		return err
	}

	m.changeset.comments = append(m.changeset.comments, c)

	return nil
}

func (m *Machine) startCommentChild(name string) error {
	if name == "text" {
		m.ctx = ctxCommentText
	}

	return nil
}

func (m *Machine) endNode() error {
	n := m.node.build()
	cost := m.node.cost()
	m.node = nil
	m.ctx = ctxTop

	m.batch.Commit(n, cost)

	return m.maybeFlush()
}

func (m *Machine) endWay() error {
	w := m.way.build()
	cost := m.way.cost()
	m.way = nil
	m.ctx = ctxTop

	m.batch.Commit(w, cost)

	return m.maybeFlush()
}

func (m *Machine) endRelation() error {
	r := m.relation.build()
	cost := m.relation.cost()
	m.relation = nil
	m.ctx = ctxTop

	m.batch.Commit(r, cost)

	return m.maybeFlush()
}

func (m *Machine) endChangeset() error {
	c := m.changeset.build()
	cost := m.changeset.cost()
	m.changeset = nil
	m.ctx = ctxTop

	m.batch.Commit(c, cost)

	return m.maybeFlush()
}
