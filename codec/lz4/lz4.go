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

// Package lz4 registers the "lz4" codec with the codec registry.
package lz4

import (
	"bytes"
	"io"

	"github.com/pierrec/lz4"

	"github.com/osmcode/go-osmxml/codec"
)

func init() {
	codec.Register("lz4", codec.Factory{
		NewDecompressorReader: func(r io.ReadCloser) (codec.Decompressor, error) {
			return &decompressor{lz4.NewReader(r), r}, nil
		},
		NewDecompressorBytes: func(buf []byte) (codec.Decompressor, error) {
			rc := codec.NopCloser(bytes.NewReader(buf))

			return &decompressor{lz4.NewReader(rc), rc}, nil
		},
		NewCompressor: func(w io.WriteCloser) (codec.Compressor, error) {
			return &compressor{lz4.NewWriter(w), w}, nil
		},
	})
}

type decompressor struct {
	*lz4.Reader
	underlying io.Closer
}

func (d *decompressor) Close() error { return d.underlying.Close() }

type compressor struct {
	*lz4.Writer
	underlying io.Closer
}

func (c *compressor) Close() error {
	err := c.Writer.Close()
	if cerr := c.underlying.Close(); err == nil {
		err = cerr
	}

	return err
}
