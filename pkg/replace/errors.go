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

package replace

import (
	"fmt"

	"gitlab.com/tozd/go/errors"
)

var (
	// ErrInvalidPattern means the search pattern could not be compiled. It is
	// fatal for the whole call and is raised before any paragraph is touched.
	ErrInvalidPattern = errors.Base("invalid search pattern")

	// ErrInvalidRequest means the request failed field validation.
	ErrInvalidRequest = errors.Base("invalid replace request")

	// ErrRebuildFailed means a paragraph's new run sequence could not be
	// safely realized. The paragraph is left in its pre-swap state; the
	// failure is recorded per paragraph and does not stop the walk.
	ErrRebuildFailed = errors.Base("paragraph rebuild failed")
)

// ⚠️ ParagraphFailure records a rebuild failure for one paragraph. The
// paragraph keeps its original runs; the rest of the document is still
// processed.
type ParagraphFailure struct {
	// Paragraph is the index in document order (body first, then table
	// cells, recursing into nested tables).
	Paragraph int
	Err       error
}

func (f ParagraphFailure) Error() string {
	return fmt.Sprintf("paragraph %d: %v", f.Paragraph, f.Err)
}

func (f ParagraphFailure) Unwrap() error {
	return f.Err
}
