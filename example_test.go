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

package osmxml_test

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	osmxml "github.com/osmcode/go-osmxml"
	"github.com/osmcode/go-osmxml/model"
)

func Example() {
	doc := `<osm version="0.6" generator="example">
  <node id="1" lat="51.5" lon="-0.1"/>
  <node id="2" lat="51.6" lon="-0.2"/>
  <way id="10"><nd ref="1"/><nd ref="2"/></way>
  <relation id="100"><member type="way" ref="10" role="outer"/></relation>
</osm>`

	ctx := context.Background()
	r := osmxml.NewReader(ctx, io.NopCloser(strings.NewReader(doc)))
	defer r.Close()

	var nc, wc, rc uint64

	for {
		v, err := r.Decode(ctx)
		if err == io.EOF {
			break
		} else if err != nil {
			log.Fatal(err)
		}

		switch v.(type) {
		case model.Node:
			nc++
		case model.Way:
			wc++
		case model.Relation:
			rc++
		default:
			log.Fatalf("unknown type %T\n", v)
		}
	}

	fmt.Printf("Nodes: %d, Ways: %d, Relations: %d\n", nc, wc, rc)
	// Output:
	// Nodes: 2, Ways: 1, Relations: 1
}
