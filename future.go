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
	"sync"

	"github.com/osmcode/go-osmxml/model"
)

// headerFuture resolves exactly once, whenever the parser has determined
// the document's Header, and lets any number of callers block on it.
type headerFuture struct {
	once  sync.Once
	ready chan struct{}
	val   model.Header
}

func newHeaderFuture() *headerFuture {
	return &headerFuture{ready: make(chan struct{})}
}

// publish resolves the future with h. Only the first call has any effect.
func (f *headerFuture) publish(h model.Header) {
	f.once.Do(func() {
		f.val = h
		close(f.ready)
	})
}

// Wait blocks until the future resolves or ctx is done.
func (f *headerFuture) Wait(ctx context.Context) (model.Header, error) {
	select {
	case <-f.ready:
		return f.val, nil
	case <-ctx.Done():
		return model.Header{}, ctx.Err()
	}
}
