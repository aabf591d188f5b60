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
	"github.com/osmcode/go-osmxml/codec"
	"github.com/osmcode/go-osmxml/model"
)

// XMLError, FormatVersionError, and StructuralError are aliased here so
// callers doing errors.As against this package's documented error
// taxonomy don't also need to import model directly.
type (
	XMLError           = model.XMLError
	FormatVersionError = model.FormatVersionError
	StructuralError    = model.StructuralError
	CodecError         = codec.CodecError
)
