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

// Package zstd registers the "zstd" codec with the codec registry.
package zstd

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/osmcode/go-osmxml/codec"
)

func init() {
	codec.Register("zstd", codec.Factory{
		NewDecompressorReader: func(r io.ReadCloser) (codec.Decompressor, error) {
			zr, err := zstd.NewReader(r)
			if err != nil {
				return nil, err
			}

			return &decompressor{zr, r}, nil
		},
		NewDecompressorBytes: func(buf []byte) (codec.Decompressor, error) {
			rc := codec.NopCloser(bytes.NewReader(buf))

			zr, err := zstd.NewReader(rc)
			if err != nil {
				return nil, err
			}

			return &decompressor{zr, rc}, nil
		},
		NewCompressor: func(w io.WriteCloser) (codec.Compressor, error) {
			zw, err := zstd.NewWriter(w)
			if err != nil {
				return nil, err
			}

			return &compressor{zw, w}, nil
		},
	})
}

type decompressor struct {
	*zstd.Decoder
	underlying io.Closer
}

func (d *decompressor) Close() error {
	d.Decoder.Close()

	return d.underlying.Close()
}

type compressor struct {
	*zstd.Encoder
	underlying io.Closer
}

func (c *compressor) Close() error {
	err := c.Encoder.Close()
	if cerr := c.underlying.Close(); err == nil {
		err = cerr
	}

	return err
}
