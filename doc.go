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

// Package osmxml streams OpenStreetMap XML ("osm", version 0.6) and
// osmChange documents into typed Node, Way, Relation, and Changeset values
// without buffering the whole document in memory.
//
// A Reader runs two background goroutines — one decompressing the byte
// source, one driving the XML state machine — connected to the caller
// through bounded queues. Decode returns primitives one at a time; Header
// resolves once the document's root-level metadata is known, which happens
// either when the first primitive is about to be produced or, for a
// document with none, when the root element closes.
package osmxml
