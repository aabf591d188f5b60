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

package codec_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osmcode/go-osmxml/codec"
	_ "github.com/osmcode/go-osmxml/codec/gzip"
)

func TestIdentityRoundTrip(t *testing.T) {
	const payload = "<osm version=\"0.6\"></osm>"

	var buf bytes.Buffer

	c, err := codec.NewCompressor("none", nopWriteCloser{&buf})
	require.NoError(t, err)

	_, err = io.WriteString(c, payload)
	require.NoError(t, err)
	require.NoError(t, c.Close())

	d, err := codec.NewDecompressorBytes("none", buf.Bytes())
	require.NoError(t, err)

	got, err := io.ReadAll(d)
	require.NoError(t, err)
	assert.Equal(t, payload, string(got))
	assert.NoError(t, d.Close())
}

func TestGzipRoundTrip(t *testing.T) {
	const payload = "<osm version=\"0.6\"><node id=\"1\" lat=\"1.0\" lon=\"2.0\"/></osm>"

	var buf bytes.Buffer

	c, err := codec.NewCompressor("gzip", nopWriteCloser{&buf})
	require.NoError(t, err)

	_, err = io.WriteString(c, payload)
	require.NoError(t, err)
	require.NoError(t, c.Close())

	d, err := codec.NewDecompressorBytes("gzip", buf.Bytes())
	require.NoError(t, err)

	got, err := io.ReadAll(d)
	require.NoError(t, err)
	assert.Equal(t, payload, string(got))
	assert.NoError(t, d.Close())
}

func TestGetUnknownCodec(t *testing.T) {
	_, err := codec.Get("does-not-exist")
	require.Error(t, err)

	var cerr *codec.CodecError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "does-not-exist", cerr.Codec)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
