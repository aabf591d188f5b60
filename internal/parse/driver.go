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
	"io"

	"github.com/osmcode/go-osmxml/model"
)

// ChunkReader adapts a channel of byte chunks to an io.Reader, the same
// shape the input queue's consumer side needs to feed encoding/xml.Decoder.
// A closed channel, or a received chunk of length zero, both signal
// end-of-stream, the two conventions used across the pack's example
// readers for "no more data is coming."
type ChunkReader struct {
	chunks <-chan []byte
	cur    []byte
	done   bool
}

// NewChunkReader returns a ChunkReader pulling from chunks.
func NewChunkReader(chunks <-chan []byte) *ChunkReader {
	return &ChunkReader{chunks: chunks}
}

func (r *ChunkReader) Read(p []byte) (int, error) {
	for len(r.cur) == 0 {
		if r.done {
			return 0, io.EOF
		}

		chunk, ok := <-r.chunks
		if !ok || len(chunk) == 0 {
			r.done = true

			return 0, io.EOF
		}

		r.cur = chunk
	}

	n := copy(p, r.cur)
	r.cur = r.cur[n:]

	return n, nil
}

// Driver runs an xml.Decoder over r, feeding every token to machine until
// the input is exhausted or machine (or the decoder) reports an error.
type Driver struct {
	dec     *xml.Decoder
	machine *Machine
}

// NewDriver returns a Driver that reads from r.
func NewDriver(r io.Reader, machine *Machine) *Driver {
	return &Driver{dec: xml.NewDecoder(r), machine: machine}
}

// Run consumes tokens until EOF, returning the first error encountered.
func (d *Driver) Run() error {
	defer d.machine.EnsureHeaderPublished()

	for {
		tok, err := d.dec.Token()
		if err == io.EOF {
			break
		}

		if err != nil {
			return translateDecodeError(err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if err := d.machine.StartElement(t); err != nil {
				return err
			}
		case xml.EndElement:
			if err := d.machine.EndElement(t); err != nil {
				return err
			}
		case xml.CharData:
			d.machine.CharData(t)
		}
	}

	return d.machine.Finish()
}

func translateDecodeError(err error) error {
	if se, ok := err.(*xml.SyntaxError); ok {
		return &model.XMLError{Line: se.Line, Msg: se.Msg, Err: se}
	}

	return &model.XMLError{Msg: err.Error(), Err: err}
}
