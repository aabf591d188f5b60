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

package model

// Header is the document-level metadata of an OSM XML or osmChange
// document: the root element's attributes plus any <bounds> elements seen
// before the first primitive.
type Header struct {
	// Version is the root element's "version" attribute. It is "0.6" in
	// every Header of a document whose root element was accepted; when the
	// version is missing or unsupported, parsing fails and the Header that
	// is still published on that error path has an empty Version.
	Version string

	// Generator is the root element's "generator" attribute, e.g.
	// "osmium/1.14.0".
	Generator string

	// Boxes holds one BoundingBox per <bounds> child of the root element.
	// Most documents carry at most one.
	Boxes []BoundingBox

	// HasMultipleObjectVersions is true for osmChange documents, where the
	// same ID can appear more than once (successive edits in one diff).
	HasMultipleObjectVersions bool
}
