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
	"fmt"

	"github.com/osmcode/go-osmxml/model"
)

// initPrimitive reads the attributes common to node, way, and relation:
// id, version, changeset, timestamp, uid, user, visible. visible defaults
// to false inside a <delete> section and true outside it, unless the
// element carries an explicit visible attribute, which always wins.
func (m *Machine) initPrimitive(id *model.ID, info *model.Info, attrs attrSet) error {
	info.Visible = !m.inDelete

	for _, a := range attrs {
		switch a.Name.Local {
		case "id":
			v, err := parseInt64(a.Value, m.Strict)
			if err != nil {
				return fmt.Errorf("id attribute: %w", err)
			}

			*id = model.ID(v)
		case "version":
			v, err := parseInt32(a.Value, m.Strict)
			if err != nil {
				return fmt.Errorf("version attribute: %w", err)
			}

			info.Version = v
		case "changeset":
			v, err := parseInt64(a.Value, m.Strict)
			if err != nil {
				return fmt.Errorf("changeset attribute: %w", err)
			}

			info.Changeset = v
		case "timestamp":
			t, err := parseTimestamp(a.Value)
			if err != nil {
				return fmt.Errorf("timestamp attribute: %w", err)
			}

			info.Timestamp = t
		case "uid":
			v, err := parseInt64(a.Value, m.Strict)
			if err != nil {
				return fmt.Errorf("uid attribute: %w", err)
			}

			info.UID = model.UID(v)
		case "user":
			info.User = a.Value
		case "visible":
			v, err := parseBool(a.Value)
			if err != nil {
				return fmt.Errorf("visible attribute: %w", err)
			}

			info.Visible = v
		}
	}

	return nil
}

// initNode reads a node's common attributes plus its lon/lat pair, which
// osmChange delete entries often omit.
func (m *Machine) initNode(nb *nodeBuilder, attrs attrSet) error {
	if err := m.initPrimitive(&nb.id, &nb.info, attrs); err != nil {
		return err
	}

	var lon, lat int32

	haveLon, haveLat := false, false

	for _, a := range attrs {
		switch a.Name.Local {
		case "lon":
			v, err := parseLocationComponent(a.Value, m.Strict)
			if err != nil {
				return fmt.Errorf("lon attribute: %w", err)
			}

			lon, haveLon = v, true
		case "lat":
			v, err := parseLocationComponent(a.Value, m.Strict)
			if err != nil {
				return fmt.Errorf("lat attribute: %w", err)
			}

			lat, haveLat = v, true
		}
	}

	if haveLon && haveLat {
		nb.loc = model.NewLocation(lon, lat)
	}

	return nil
}

// initChangeset reads a changeset's attributes: id, created_at, closed_at,
// open, num_changes, comments_count, uid, user, and the min/max lon/lat
// pair that becomes its bounding box.
func (m *Machine) initChangeset(cb *changesetBuilder, attrs attrSet) error {
	var minLon, minLat, maxLon, maxLat model.Degrees

	haveBox := false

	for _, a := range attrs {
		switch a.Name.Local {
		case "id":
			v, err := parseInt64(a.Value, m.Strict)
			if err != nil {
				return fmt.Errorf("id attribute: %w", err)
			}

			cb.id = model.ID(v)
		case "uid":
			v, err := parseInt64(a.Value, m.Strict)
			if err != nil {
				return fmt.Errorf("uid attribute: %w", err)
			}

			cb.uid = model.UID(v)
		case "user":
			cb.user = a.Value
		case "created_at":
			t, err := parseTimestamp(a.Value)
			if err != nil {
				return fmt.Errorf("created_at attribute: %w", err)
			}

			cb.createdAt = t
		case "closed_at":
			t, err := parseTimestamp(a.Value)
			if err != nil {
				return fmt.Errorf("closed_at attribute: %w", err)
			}

			cb.closedAt = t
		case "open":
			v, err := parseBool(a.Value)
			if err != nil {
				return fmt.Errorf("open attribute: %w", err)
			}

			cb.open = v
		case "num_changes":
			v, err := parseInt32(a.Value, m.Strict)
			if err != nil {
				return fmt.Errorf("num_changes attribute: %w", err)
			}

			cb.numChanges = v
		case "comments_count":
			v, err := parseInt32(a.Value, m.Strict)
			if err != nil {
				return fmt.Errorf("comments_count attribute: %w", err)
			}

			cb.commentsCount = v
		case "min_lon":
			v, err := model.ParseDegrees(a.Value)
			if err != nil {
				return fmt.Errorf("min_lon attribute: %w", err)
			}

			minLon, haveBox = v, true
		case "min_lat":
			v, err := model.ParseDegrees(a.Value)
			if err != nil {
				return fmt.Errorf("min_lat attribute: %w", err)
			}

			minLat, haveBox = v, true
		case "max_lon":
			v, err := model.ParseDegrees(a.Value)
			if err != nil {
				return fmt.Errorf("max_lon attribute: %w", err)
			}

			maxLon, haveBox = v, true
		case "max_lat":
			v, err := model.ParseDegrees(a.Value)
			if err != nil {
				return fmt.Errorf("max_lat attribute: %w", err)
			}

			maxLat, haveBox = v, true
		}
	}

	if haveBox {
		cb.boundingBox = &model.BoundingBox{Top: maxLat, Bottom: minLat, Left: minLon, Right: maxLon}
	}

	return nil
}

// parseBounds reads the minlon/minlat/maxlon/maxlat attributes of a
// top-level <bounds> element. Unlike a changeset's min_lon/max_lon, the
// root bounds element's attribute names have no underscore.
func parseBounds(attrs attrSet) (model.BoundingBox, error) {
	var box model.BoundingBox

	for _, a := range attrs {
		switch a.Name.Local {
		case "minlon":
			v, err := model.ParseDegrees(a.Value)
			if err != nil {
				return box, fmt.Errorf("minlon attribute: %w", err)
			}

			box.Left = v
		case "minlat":
			v, err := model.ParseDegrees(a.Value)
			if err != nil {
				return box, fmt.Errorf("minlat attribute: %w", err)
			}

			box.Bottom = v
		case "maxlon":
			v, err := model.ParseDegrees(a.Value)
			if err != nil {
				return box, fmt.Errorf("maxlon attribute: %w", err)
			}

			box.Right = v
		case "maxlat":
			v, err := model.ParseDegrees(a.Value)
			if err != nil {
				return box, fmt.Errorf("maxlat attribute: %w", err)
			}

			box.Top = v
		}
	}

	return box, nil
}

func parseTag(attrs attrSet) (model.Tag, error) {
	k, _ := attrs.get("k")
	v, _ := attrs.get("v")

	return model.Tag{Key: k, Value: v}, nil
}

func parseNodeRef(attrs attrSet) (model.NodeRef, error) {
	ref, ok := attrs.get("ref")
	if !ok {
		return model.NodeRef{}, &model.StructuralError{Msg: "missing ref on nd"}
	}

	v, err := parseInt64(ref, true)
	if err != nil {
		return model.NodeRef{}, fmt.Errorf("ref attribute: %w", err)
	}

	return model.NodeRef{ID: model.ID(v), Location: model.EmptyLocation()}, nil
}

func parseMember(attrs attrSet) (model.Member, error) {
	typ, ok := attrs.get("type")
	if !ok || len(typ) == 0 {
		return model.Member{}, &model.StructuralError{Msg: "unknown type on relation member"}
	}

	var kind model.MemberKind

	switch typ[0] {
	case 'n':
		kind = model.MemberNode
	case 'w':
		kind = model.MemberWay
	case 'r':
		kind = model.MemberRelation
	default:
		return model.Member{}, &model.StructuralError{Msg: "unknown type on relation member"}
	}

	refStr, ok := attrs.get("ref")
	if !ok {
		return model.Member{}, &model.StructuralError{Msg: "missing ref on relation member"}
	}

	ref, err := parseInt64(refStr, true)
	if err != nil {
		return model.Member{}, fmt.Errorf("ref attribute: %w", err)
	}

	if ref == 0 {
		return model.Member{}, &model.StructuralError{Msg: "missing ref on relation member"}
	}

	role, _ := attrs.get("role")

	return model.Member{ID: model.ID(ref), Type: kind, Role: role}, nil
}

func parseComment(attrs attrSet) (model.Comment, error) {
	var c model.Comment

	if date, ok := attrs.get("date"); ok {
		t, err := parseTimestamp(date)
		if err != nil {
			return c, fmt.Errorf("date attribute: %w", err)
		}

		c.Date = t
	}

	if uid, ok := attrs.get("uid"); ok {
		v, err := parseInt64(uid, true)
		if err != nil {
			return c, fmt.Errorf("uid attribute: %w", err)
		}

		c.UID = model.UID(v)
	}

	c.User, _ = attrs.get("user")

	return c, nil
}
