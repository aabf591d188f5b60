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

package osmxml

import (
	"github.com/osmcode/go-osmxml/internal/batch"
	"github.com/osmcode/go-osmxml/model"
)

const (
	// DefaultCodec names the identity codec; plain, uncompressed OSM XML.
	DefaultCodec = "none"

	defaultChunkSize  = 64 * 1024
	defaultQueueDepth = 4
)

// readerOptions holds a Reader's configuration, built up by ReaderOptions
// and defaulted by defaultReaderConfig.
type readerOptions struct {
	codec       string
	readTypes   model.ReadTypeMask
	batchTarget int
	strict      bool
	chunkSize   int
	queueDepth  int
}

// ReaderOption configures how we set up a Reader.
type ReaderOption func(*readerOptions)

// WithCodec selects the compression codec wrapping the underlying byte
// source, by the name under which it was registered (see package codec).
// The default is DefaultCodec, the identity codec.
func WithCodec(name string) ReaderOption {
	return func(o *readerOptions) {
		o.codec = name
	}
}

// WithReadTypes restricts which primitive kinds Decode ever yields. Objects
// of excluded kinds are still walked by the parser, to keep the state
// machine and header detection correct, but never allocate a builder. The
// default is model.All.
func WithReadTypes(mask model.ReadTypeMask) ReaderOption {
	return func(o *readerOptions) {
		o.readTypes = mask
	}
}

// WithBatchTargetSize sets the approximate byte budget, per internal/batch,
// at which the parser hands its accumulated primitives to the output queue
// and starts a fresh batch. The default is batch.TargetSize.
func WithBatchTargetSize(n int) ReaderOption {
	return func(o *readerOptions) {
		o.batchTarget = n
	}
}

// WithChunkSize sets the size, in bytes, of each read from the
// (decompressed) byte source before it is handed to the XML tokenizer. The
// default is 64KiB.
func WithChunkSize(n int) ReaderOption {
	return func(o *readerOptions) {
		if n > 0 {
			o.chunkSize = n
		}
	}
}

// WithQueueDepth sets how many chunks, and how many finished batches, may be
// buffered between the Reader's background goroutines and the caller before
// a producer blocks. The default is 4.
func WithQueueDepth(n int) ReaderOption {
	return func(o *readerOptions) {
		if n > 0 {
			o.queueDepth = n
		}
	}
}

// WithLenientNumbers relaxes numeric attribute parsing (id, version,
// changeset, uid, lon, lat) to accept the longest valid numeric prefix of an
// attribute's value instead of rejecting any trailing garbage, matching the
// tolerance some older OSM XML producers relied on. The default is strict.
func WithLenientNumbers() ReaderOption {
	return func(o *readerOptions) {
		o.strict = false
	}
}

// defaultReaderConfig provides a default configuration for Readers.
var defaultReaderConfig = readerOptions{
	codec:       DefaultCodec,
	readTypes:   model.All,
	batchTarget: batch.TargetSize,
	strict:      true,
	chunkSize:   defaultChunkSize,
	queueDepth:  defaultQueueDepth,
}
