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

// Package parse implements the SAX-style state machine that drives
// encoding/xml's token stream into model.Entity values.
package parse

// context is a node in the state machine the parser walks as it consumes
// start/end element events. There is exactly one active context at a time;
// in_object additionally remembers where to return via lastCtx, since
// <tag> is reachable from node, way, relation, and changeset alike.
type context int

const (
	ctxRoot context = iota
	ctxTop
	ctxNode
	ctxWay
	ctxRelation
	ctxChangeset
	ctxDiscussion
	ctxComment
	ctxCommentText
	ctxInObject

	// ctxIgnoredNode through ctxIgnoredChangeset mirror their non-ignored
	// counterparts but build nothing, taken when the caller's ReadTypeMask
	// excludes that primitive kind. Children are still walked so the
	// element/depth bookkeeping stays correct; no builder is ever
	// allocated for them.
	ctxIgnoredNode
	ctxIgnoredWay
	ctxIgnoredRelation
	ctxIgnoredChangeset
)
