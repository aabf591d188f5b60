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
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/destel/rill"
	humanize "github.com/dustin/go-humanize"

	"github.com/osmcode/go-osmxml/codec"
	"github.com/osmcode/go-osmxml/internal/batch"
	"github.com/osmcode/go-osmxml/internal/parse"
	"github.com/osmcode/go-osmxml/model"
)

// Reader streams Node, Way, Relation, and Changeset values out of an OSM XML
// or osmChange document. It runs two background goroutines for the lifetime
// of the Reader: one pulls bytes from src through the configured codec, the
// other drives the XML state machine over those bytes and hands finished
// batches to Decode. Both stop once Close is called or src is exhausted.
type Reader struct {
	ctx    context.Context
	cancel context.CancelFunc
	src    io.ReadCloser
	cfg    readerOptions

	headerFut *headerFuture
	output    <-chan rill.Try[*batch.Batch]

	readErrMu sync.Mutex
	readErr   error

	pending []model.Entity
	pendIdx int

	wg        sync.WaitGroup
	closeOnce sync.Once
	closeErr  error
}

// NewReader returns a Reader that consumes src, which it takes ownership of
// and closes on Close. The returned Reader's background goroutines start
// immediately; canceling ctx (or calling Close) stops them.
func NewReader(ctx context.Context, src io.ReadCloser, opts ...ReaderOption) *Reader {
	cfg := defaultReaderConfig

	for _, opt := range opts {
		opt(&cfg)
	}

	runCtx, cancel := context.WithCancel(ctx)

	// src is closed from two places: readChunks's decompressor closes it on
	// reaching EOF normally, and Close closes it to unblock a goroutine
	// stuck in a blocking Read. onceCloser makes whichever happens first
	// the one that actually runs, so a real descriptor is never closed
	// twice.
	r := &Reader{
		ctx:       runCtx,
		cancel:    cancel,
		src:       newOnceCloser(src),
		cfg:       cfg,
		headerFut: newHeaderFuture(),
	}

	chunks := make(chan []byte, cfg.queueDepth)
	output := make(chan rill.Try[*batch.Batch], cfg.queueDepth)
	r.output = output

	r.wg.Add(2)

	go r.readChunks(chunks)
	go r.runMachine(chunks, output)

	return r
}

// Header returns the document's root-level metadata, blocking until the
// parser has determined it: either when the first primitive was about to be
// produced, or, for a document with none, when the root element closed.
func (r *Reader) Header(ctx context.Context) (model.Header, error) {
	return r.headerFut.Wait(ctx)
}

// Decode returns the next primitive in document order. It returns io.EOF
// once the underlying document is exhausted.
func (r *Reader) Decode(ctx context.Context) (model.Entity, error) {
	for r.pendIdx >= len(r.pending) {
		select {
		case t, ok := <-r.output:
			if !ok {
				return nil, io.EOF
			}

			if t.Error != nil {
				return nil, t.Error
			}

			r.pending = t.Value.Primitives
			r.pendIdx = 0
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	e := r.pending[r.pendIdx]
	r.pendIdx++

	return e, nil
}

// Close cancels the background pipeline, closes the underlying source, and
// waits for both goroutines to exit. It is safe to call more than once.
func (r *Reader) Close() error {
	r.closeOnce.Do(func() {
		r.cancel()
		r.closeErr = r.src.Close()
		r.wg.Wait()
	})

	return r.closeErr
}

// onceCloser wraps an io.ReadCloser so Close only ever runs once,
// regardless of how many callers race to call it. readChunks's decompressor
// and Reader.Close both close the same underlying source; without this, a
// source that rejects a second Close (a real *os.File or net.Conn, unlike
// io.NopCloser) would surface a spurious error after a successful decode.
type onceCloser struct {
	io.Reader
	closer io.Closer
	once   sync.Once
	err    error
}

func newOnceCloser(rc io.ReadCloser) *onceCloser {
	return &onceCloser{Reader: rc, closer: rc}
}

func (o *onceCloser) Close() error {
	o.once.Do(func() { o.err = o.closer.Close() })

	return o.err
}

func (r *Reader) setReadErr(err error) {
	r.readErrMu.Lock()
	defer r.readErrMu.Unlock()

	if r.readErr == nil {
		r.readErr = err
	}
}

func (r *Reader) getReadErr() error {
	r.readErrMu.Lock()
	defer r.readErrMu.Unlock()

	return r.readErr
}

// readChunks decompresses src and hands off fixed-size chunks for the XML
// tokenizer to consume, independent of how fast the tokenizer drains them.
func (r *Reader) readChunks(chunks chan<- []byte) {
	defer close(chunks)
	defer r.wg.Done()

	dec, err := codec.NewDecompressorReader(r.cfg.codec, r.src)
	if err != nil {
		r.setReadErr(err)

		return
	}
	defer dec.Close()

	buf := make([]byte, r.cfg.chunkSize)

	for {
		select {
		case <-r.ctx.Done():
			r.setReadErr(r.ctx.Err())

			return
		default:
		}

		n, err := dec.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])

			select {
			case chunks <- chunk:
			case <-r.ctx.Done():
				r.setReadErr(r.ctx.Err())

				return
			}
		}

		if err != nil {
			if err != io.EOF {
				r.setReadErr(err)
			}

			return
		}
	}
}

// runMachine drives the XML state machine over chunks, streaming finished
// batches to output as the parser's flush watermark is crossed.
func (r *Reader) runMachine(chunks <-chan []byte, output chan<- rill.Try[*batch.Batch]) {
	defer close(output)
	defer r.wg.Done()

	machine := parse.New(r.cfg.readTypes, r.cfg.strict, r.cfg.batchTarget, r.headerFut.publish, func(b *batch.Batch) error {
		slog.Debug("flushing batch", "primitives", b.Len(), "bytes", humanize.Bytes(uint64(b.Size())))

		select {
		case output <- rill.Try[*batch.Batch]{Value: b}:
			return nil
		case <-r.ctx.Done():
			return r.ctx.Err()
		}
	})

	driver := parse.NewDriver(parse.NewChunkReader(chunks), machine)

	if err := driver.Run(); err != nil {
		select {
		case output <- rill.Try[*batch.Batch]{Error: err}:
		case <-r.ctx.Done():
		}

		return
	}

	if err := r.getReadErr(); err != nil {
		select {
		case output <- rill.Try[*batch.Batch]{Error: err}:
		case <-r.ctx.Done():
		}
	}
}
