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

// Package codec provides a process-wide registry of compression codecs
// that Reader uses to wrap the raw byte source. Registration is safe for
// concurrent use, and registering a name again replaces the earlier
// factory; codecs register themselves from an init
// function in their own subpackage (see codec/gzip, codec/zstd, codec/lz4,
// codec/xz, codec/bzip2), the same way each of osmium's concrete
// compression.hpp implementations self-registers with CompressionFactory.
// Only the identity codec, named "none", is registered unconditionally by
// this package; every other codec is an optional import.
package codec

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// NopCloser adapts an io.Reader to io.ReadCloser whose Close does nothing,
// for codecs whose NewDecompressorBytes has no real descriptor to close.
func NopCloser(r io.Reader) io.ReadCloser { return nopCloser{r} }

type nopCloser struct {
	io.Reader
}

func (nopCloser) Close() error { return nil }

// Decompressor reads uncompressed bytes from a compressed source.
type Decompressor interface {
	io.Reader
	io.Closer
}

// Compressor writes bytes, compressing them to an underlying sink.
type Compressor interface {
	io.Writer
	io.Closer
}

// Factory constructs Compressors and Decompressors for one codec. A codec
// that cannot support writing (compress/bzip2 has no encoder in the
// standard library) leaves NewCompressor nil; Get still returns the
// factory, but NewCompressor returns a CodecError when called.
type Factory struct {
	// NewDecompressorReader wraps an already-open reader.
	NewDecompressorReader func(io.ReadCloser) (Decompressor, error)

	// NewDecompressorBytes wraps an in-memory buffer, for callers that
	// already hold the whole compressed blob and have no reader to close.
	NewDecompressorBytes func([]byte) (Decompressor, error)

	// NewCompressor wraps an already-open writer. Nil if this codec
	// cannot compress.
	NewCompressor func(io.WriteCloser) (Compressor, error)
}

// CodecError reports a codec name unknown to the registry, or a codec that
// does not support the requested operation.
type CodecError struct {
	Codec string
	Msg   string
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("codec %q: %s", e.Codec, e.Msg)
}

var (
	mu       sync.RWMutex
	registry = map[string]Factory{}
)

// Register adds a codec under name, overwriting any previous registration
// under the same name. Called from the registering codec's init function.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	registry[name] = f
}

// Get returns the factory registered under name.
func Get(name string) (Factory, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := registry[name]
	if !ok {
		return Factory{}, &CodecError{Codec: name, Msg: "support not compiled in"}
	}

	return f, nil
}

// NewDecompressorReader wraps r with the named codec.
func NewDecompressorReader(name string, r io.ReadCloser) (Decompressor, error) {
	f, err := Get(name)
	if err != nil {
		return nil, err
	}

	return f.NewDecompressorReader(r)
}

// NewDecompressorBytes wraps buf with the named codec.
func NewDecompressorBytes(name string, buf []byte) (Decompressor, error) {
	f, err := Get(name)
	if err != nil {
		return nil, err
	}

	return f.NewDecompressorBytes(buf)
}

// NewCompressor wraps w with the named codec.
func NewCompressor(name string, w io.WriteCloser) (Compressor, error) {
	f, err := Get(name)
	if err != nil {
		return nil, err
	}

	if f.NewCompressor == nil {
		return nil, &CodecError{Codec: name, Msg: "does not support compression"}
	}

	return f.NewCompressor(w)
}

func init() {
	Register("none", Factory{
		NewDecompressorReader: func(r io.ReadCloser) (Decompressor, error) {
			return &identityDecompressor{r}, nil
		},
		NewDecompressorBytes: func(buf []byte) (Decompressor, error) {
			return &identityDecompressor{NopCloser(bytes.NewReader(buf))}, nil
		},
		NewCompressor: func(w io.WriteCloser) (Compressor, error) {
			return &identityCompressor{w}, nil
		},
	})
}

// identityDecompressor passes bytes through unchanged; it is the mandatory
// codec this registry always carries, matching osmium's NoDecompressor.
type identityDecompressor struct {
	io.ReadCloser
}

type identityCompressor struct {
	io.WriteCloser
}
