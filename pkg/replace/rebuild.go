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
	"strings"

	"gitlab.com/tozd/go/errors"

	"github.com/ildunari/enhanced-word-live/pkg/docx"
)

// rebuildParagraph swaps the paragraph's children for the segment list's
// realization. The complete new child list is computed and checked before
// anything is mutated: if the rebuilt projection does not equal the expected
// transformed text, the paragraph keeps its original children and the error
// is reported for this paragraph only.
func rebuildParagraph(p *docx.Paragraph, ri *runIndex, segs []segment, expected string) error {
	children := realize(p, ri, segs)

	var projection strings.Builder
	for _, c := range children {
		if r, ok := c.(*docx.Run); ok {
			projection.WriteString(r.Text)
		}
	}
	if projection.String() != expected {
		return errors.Errorf("%w: rebuilt text %q does not match expected %q",
			ErrRebuildFailed, projection.String(), expected)
	}

	// Atomic swap: the only mutation of the paragraph.
	p.Children = children
	return nil
}
