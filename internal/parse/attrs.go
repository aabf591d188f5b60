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
	"strconv"
	"time"

	"github.com/osmcode/go-osmxml/model"
)

// attrSet is a small linear-scan lookup over an element's attributes.
// OSM XML elements carry at most a handful of attributes, so a slice scan
// beats building a map per element.
type attrSet []xml.Attr

func (a attrSet) get(name string) (string, bool) {
	for _, at := range a {
		if at.Name.Local == name {
			return at.Value, true
		}
	}

	return "", false
}

// parseInt64 parses a required int64 attribute. Strict mode (the default)
// rejects trailing garbage; lenient mode accepts whatever strconv.ParseInt
// would reject only up to the point ParseInt itself gives up, mirroring
// older OSM tooling's tolerance of malformed producers.
func parseInt64(s string, strict bool) (int64, error) {
	if strict {
		return strconv.ParseInt(s, 10, 64)
	}

	return parseLeadingInt64(s)
}

// parseInt32 parses a required int32 attribute under the same strictness
// rule as parseInt64.
func parseInt32(s string, strict bool) (int32, error) {
	v, err := parseInt64(s, strict)
	if err != nil {
		return 0, err
	}

	return int32(v), nil
}

// parseLocationComponent parses a lon/lat attribute into fixed-point
// ten-millionths of a degree. Empty strings are always rejected, in both
// strictness modes; in lenient mode, trailing non-numeric garbage after a
// valid number is tolerated rather than rejected.
func parseLocationComponent(s string, strict bool) (int32, error) {
	if strict {
		d, err := model.ParseDegrees(s)
		if err != nil {
			return 0, err
		}

		return d.E7(), nil
	}

	f, err := parseLeadingFloat(s)
	if err != nil {
		return 0, err
	}

	return model.Degrees(f).E7(), nil
}

// parseLeadingFloat parses the longest valid floating-point prefix of s.
func parseLeadingFloat(s string) (float64, error) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}

	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}

		digitsStart := j
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}

		if j > digitsStart {
			i = j
		}
	}

	if i == start {
		return strconv.ParseFloat(s, 64)
	}

	return strconv.ParseFloat(s[:i], 64)
}

// parseLeadingInt64 parses the longest valid integer prefix of s, the way
// a permissive producer-tolerant parser does; it still rejects an empty or
// entirely non-numeric string.
func parseLeadingInt64(s string) (int64, error) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}

	if i == start {
		return strconv.ParseInt(s, 10, 64)
	}

	return strconv.ParseInt(s[:i], 10, 64)
}

// parseBool parses OSM XML's "true"/"false" boolean attributes.
func parseBool(s string) (bool, error) {
	return strconv.ParseBool(s)
}

// parseTimestamp parses an RFC3339 "timestamp" attribute, the only format
// OSM XML uses.
func parseTimestamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
