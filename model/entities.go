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

// Package model contains the shared data model decoded from OSM XML and
// osmChange documents.
package model

import "time"

// UID is the primary key for a user.
type UID int64

// ID is the primary key of a node, way, relation, or changeset.
type ID int64

// Tag is a single key/value pair. Tags are kept as an ordered slice rather
// than a map because a document may repeat a key, and readers are entitled
// to see tags in document order.
type Tag struct {
	Key   string
	Value string
}

// Info carries the version/changeset metadata common to Node, Way, and
// Relation.
type Info struct {
	Version   int32
	Changeset int64
	Timestamp time.Time
	UID       UID
	User      string
	Visible   bool
}

// Entity is implemented by every primitive a Reader can produce: Node, Way,
// Relation, and Changeset.
type Entity interface {
	isEntity() // prevents extensions

	GetID() ID

	GetTags() []Tag

	GetInfo() *Info
}

// Node represents a specific point on the earth's surface. A Node with an
// empty Location is valid in osmChange documents, where deleted nodes often
// omit coordinates.
type Node struct {
	ID       ID
	Tags     []Tag
	Info     *Info
	Location Location
}

var _ Entity = Node{}

func (n Node) isEntity() {}

func (n Node) GetID() ID { return n.ID }

func (n Node) GetTags() []Tag { return n.Tags }

func (n Node) GetInfo() *Info { return n.Info }

// NodeRef is a reference to a Node from within a Way, with room for the
// node's location (osmium's "reference node"). The XML parser reads only
// the ref attribute of <nd> and always leaves Location empty.
// Equality and ordering compare by ID only; use NodeRefLocationEqual to also
// compare the carried location.
type NodeRef struct {
	ID       ID
	Location Location
}

// Less orders NodeRefs by ID, ignoring any carried location.
func (r NodeRef) Less(o NodeRef) bool { return r.ID < o.ID }

// Equal compares NodeRefs by ID only, ignoring any carried location.
func (r NodeRef) Equal(o NodeRef) bool { return r.ID == o.ID }

// NodeRefLocationEqual compares two NodeRefs by their carried location
// rather than by ID, mirroring osmium's separate location_equal predicate.
func NodeRefLocationEqual(a, b NodeRef) bool { return a.Location.Equal(b.Location) }

// Way is an ordered list of node references that define a polyline or
// polygon boundary.
type Way struct {
	ID    ID
	Tags  []Tag
	Info  *Info
	Nodes []NodeRef
}

var _ Entity = Way{}

func (w Way) isEntity() {}

func (w Way) GetID() ID { return w.ID }

func (w Way) GetTags() []Tag { return w.Tags }

func (w Way) GetInfo() *Info { return w.Info }

// MemberKind is the type of entity a relation Member refers to.
type MemberKind int32

const (
	// MemberNode denotes that the member is a node.
	MemberNode MemberKind = iota

	// MemberWay denotes that the member is a way.
	MemberWay

	// MemberRelation denotes that the member is a relation.
	MemberRelation
)

func (k MemberKind) String() string {
	switch k {
	case MemberNode:
		return "node"
	case MemberWay:
		return "way"
	case MemberRelation:
		return "relation"
	default:
		return "unknown"
	}
}

// Member is one entry in a Relation's member list.
type Member struct {
	ID   ID
	Type MemberKind
	Role string
}

// Relation documents a relationship between two or more entities (nodes,
// ways, and/or other relations).
type Relation struct {
	ID      ID
	Tags    []Tag
	Info    *Info
	Members []Member
}

var _ Entity = Relation{}

func (r Relation) isEntity() {}

func (r Relation) GetID() ID { return r.ID }

func (r Relation) GetTags() []Tag { return r.Tags }

func (r Relation) GetInfo() *Info { return r.Info }

// Comment is a single discussion entry on a Changeset.
type Comment struct {
	Date time.Time
	UID  UID
	User string
	Text string
}

// Changeset groups together the edits made in a single editing session.
// Unlike Node, Way, and Relation, a Changeset carries its metadata directly
// rather than through an Info, since osmium never factors a changeset's
// version/visibility out into a shared struct.
type Changeset struct {
	ID            ID
	Tags          []Tag
	UID           UID
	User          string
	CreatedAt     time.Time
	ClosedAt      time.Time
	Open          bool
	NumChanges    int32
	CommentsCount int32
	Comments      []Comment
	BoundingBox   *BoundingBox
}

var _ Entity = Changeset{}

func (c Changeset) isEntity() {}

func (c Changeset) GetID() ID { return c.ID }

func (c Changeset) GetTags() []Tag { return c.Tags }

func (c Changeset) GetInfo() *Info { return nil }
