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

// Package xz registers the "lzma" codec with the codec registry.
package xz

import (
	"bytes"
	"io"

	"github.com/ulikunitz/xz/lzma"

	"github.com/osmcode/go-osmxml/codec"
)

func init() {
	codec.Register("lzma", codec.Factory{
		NewDecompressorReader: func(r io.ReadCloser) (codec.Decompressor, error) {
			lr, err := lzma.NewReader(r)
			if err != nil {
				return nil, err
			}

			return &decompressor{lr, r}, nil
		},
		NewDecompressorBytes: func(buf []byte) (codec.Decompressor, error) {
			rc := codec.NopCloser(bytes.NewReader(buf))

			lr, err := lzma.NewReader(rc)
			if err != nil {
				return nil, err
			}

			return &decompressor{lr, rc}, nil
		},
		NewCompressor: func(w io.WriteCloser) (codec.Compressor, error) {
			lw, err := lzma.NewWriter(w)
			if err != nil {
				return nil, err
			}

			return &compressor{lw, w}, nil
		},
	})
}

type decompressor struct {
	io.Reader
	underlying io.Closer
}

func (d *decompressor) Close() error { return d.underlying.Close() }

type compressor struct {
	*lzma.Writer
	underlying io.Closer
}

func (c *compressor) Close() error {
	err := c.Writer.Close()
	if cerr := c.underlying.Close(); err == nil {
		err = cerr
	}

	return err
}
