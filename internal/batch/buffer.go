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

// Package batch implements the commit discipline the parser uses to turn
// a stream of primitives into bounded Batches for the output queue.
//
// Go's garbage collector makes osmium's append-only memory::Buffer (with
// separate written/committed/read byte offsets into one arena) unnecessary:
// a primitive is built entirely in local variables and only becomes visible
// to the Batch when it is appended, so "commit" and "append" are the same
// operation and there is no way to observe a half-built primitive. What
// does carry over is the size-based flush trigger, so batches stay within a
// predictable memory footprint regardless of how many primitives they hold.
package batch

import (
	"golang.org/x/exp/constraints"

	"github.com/osmcode/go-osmxml/model"
)

// TargetSize is the default byte budget a Batch tries to stay under before
// the parser flushes it, mirroring osmium's 2,000,000-byte input buffer.
const TargetSize = 2 * 1000 * 1000

// flushFraction is the fraction of TargetSize at which a Batch is flushed,
// matching xml_input_format.hpp's buffer_size/10*9 watermark: leaving
// headroom means the primitive that crosses the watermark still finishes
// inside the same batch instead of forcing a mid-object split.
const flushFraction = 0.9

// Batch is an ordered run of primitives the parser has committed, along
// with an approximation of how many bytes they would occupy on the wire.
// The approximation, not an exact count, is what decides when to flush;
// spec-level code never inspects it directly.
type Batch struct {
	Primitives []model.Entity

	size   int
	target int
}

// minTarget and maxTarget bound what a caller can configure as a batch's
// target size, so a misconfigured ReaderOption can't produce a Batch that
// never flushes or flushes on every primitive.
const (
	minTarget = 64 * 1024
	maxTarget = 256 * 1000 * 1000
)

// New returns an empty Batch with the given target size in bytes, clamped
// to a sane range.
func New(target int) *Batch {
	if target <= 0 {
		target = TargetSize
	}

	return &Batch{target: clamp(target, minTarget, maxTarget)}
}

// clamp restricts v to [lo, hi].
func clamp[T constraints.Integer](v, lo, hi T) T {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}

// Commit appends p to the batch, accounting cost bytes toward the flush
// watermark. cost is an estimate (see Sum), not the primitive's exact
// marshaled size.
func (b *Batch) Commit(p model.Entity, cost int) {
	b.Primitives = append(b.Primitives, p)
	b.size += cost
}

// ShouldFlush reports whether the batch has crossed 90% of its target size.
func (b *Batch) ShouldFlush() bool {
	return float64(b.size) >= float64(b.target)*flushFraction
}

// Len reports how many primitives are committed.
func (b *Batch) Len() int { return len(b.Primitives) }

// Size reports the accumulated byte-cost estimate backing ShouldFlush.
func (b *Batch) Size() int { return b.size }

// Empty reports whether no primitive has been committed.
func (b *Batch) Empty() bool { return len(b.Primitives) == 0 }

// Sum adds a slice of per-field byte costs, for estimating a primitive's
// total cost from its tags, members, or node references in one call.
func Sum[T Sized](items []T) int {
	var total int

	for _, it := range items {
		total += it.Size()
	}

	return total
}

// Sized is implemented by anything internal/parse wants to fold into a
// Commit cost via Sum.
type Sized interface {
	Size() int
}
