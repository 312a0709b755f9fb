// Copyright 2025 the enhanced-word-live authors
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

// Package store is the document persistence seam. The engine never performs
// I/O itself: a Store is invoked once before and once after a batch of
// paragraph operations, never interleaved per paragraph. Implementations are
// a .docx file on disk or an in-memory snapshot exchange, as used by relays
// that mirror a document to an externally hosted editor; the engine is
// agnostic to which.
package store

import (
	"context"

	"gitlab.com/tozd/go/errors"

	"github.com/ildunari/enhanced-word-live/pkg/docx"
)

// ErrDocumentUnwritable means the destination cannot be written (typically
// the document is open in another program or permissions deny it).
var ErrDocumentUnwritable = errors.Base("document is not writable")

// 💾 Store loads and saves one document.
type Store interface {
	// Load reads and parses the document.
	Load(ctx context.Context) (*docx.File, error)
	// Save writes the document back.
	Save(ctx context.Context, f *docx.File) error
}
