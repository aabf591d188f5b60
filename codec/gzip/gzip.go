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

// Package gzip registers the "gzip" codec with the codec registry, for the
// .osm.gz/.osc.gz files real OSM extracts and replication diffs are
// commonly distributed as. Importing this package for its side effect is
// enough to make the codec available to Reader.
package gzip

import (
	"bytes"
	"compress/gzip"
	"io"

	"github.com/osmcode/go-osmxml/codec"
)

func init() {
	codec.Register("gzip", codec.Factory{
		NewDecompressorReader: func(r io.ReadCloser) (codec.Decompressor, error) {
			zr, err := gzip.NewReader(r)
			if err != nil {
				return nil, err
			}

			return &decompressor{zr, r}, nil
		},
		NewDecompressorBytes: func(buf []byte) (codec.Decompressor, error) {
			rc := codec.NopCloser(bytes.NewReader(buf))

			zr, err := gzip.NewReader(rc)
			if err != nil {
				return nil, err
			}

			return &decompressor{zr, rc}, nil
		},
		NewCompressor: func(w io.WriteCloser) (codec.Compressor, error) {
			return &compressor{gzip.NewWriter(w), w}, nil
		},
	})
}

type decompressor struct {
	*gzip.Reader
	underlying io.Closer
}

func (d *decompressor) Close() error {
	err := d.Reader.Close()
	if cerr := d.underlying.Close(); err == nil {
		err = cerr
	}

	return err
}

type compressor struct {
	*gzip.Writer
	underlying io.Closer
}

func (c *compressor) Close() error {
	err := c.Writer.Close()
	if cerr := c.underlying.Close(); err == nil {
		err = cerr
	}

	return err
}
