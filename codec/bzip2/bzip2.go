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

// Package bzip2 registers the "bzip2" codec, the common compression for
// OSM planet and extract dumps distributed as .osm.bz2. The standard
// library's compress/bzip2 only decodes; this codec's NewCompressor is nil,
// so codec.NewCompressor("bzip2", ...) returns a CodecError.
package bzip2

import (
	"bytes"
	"compress/bzip2"
	"io"

	"github.com/osmcode/go-osmxml/codec"
)

func init() {
	codec.Register("bzip2", codec.Factory{
		NewDecompressorReader: func(r io.ReadCloser) (codec.Decompressor, error) {
			return &decompressor{bzip2.NewReader(r), r}, nil
		},
		NewDecompressorBytes: func(buf []byte) (codec.Decompressor, error) {
			rc := codec.NopCloser(bytes.NewReader(buf))

			return &decompressor{bzip2.NewReader(rc), rc}, nil
		},
	})
}

type decompressor struct {
	io.Reader
	underlying io.Closer
}

func (d *decompressor) Close() error { return d.underlying.Close() }
