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
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/ildunari/enhanced-word-live/pkg/docx"
)

// 🚶 Execute drives the pipeline over every paragraph in the document: body
// paragraphs first, then table cell paragraphs, recursing into nested
// tables, in document order.
//
// The pattern is validated and compiled once, before any paragraph is
// touched; an invalid pattern fails the whole call with no partial
// application. A rebuild failure on one paragraph is rolled back, recorded
// in the result, and does not stop the walk — one malformed paragraph must
// not silently erase a whole document's edits.
//
// Cancellation takes effect between paragraphs, never mid-paragraph: one
// paragraph's build and swap always runs to completion or not at all.
func Execute(ctx context.Context, doc *docx.Document, req *Request) (*Result, error) {
	logger := zerolog.Ctx(ctx)

	if err := req.Validate(); err != nil {
		return nil, err
	}
	matcher, err := NewMatcher(req.Pattern, req.MatchOptions())
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for i, p := range doc.Paragraphs() {
		if err := ctx.Err(); err != nil {
			return nil, errors.Errorf("walk canceled at paragraph %d: %w", i, err)
		}

		text := p.Text()
		matches := matcher.FindAll(text)
		if len(matches) == 0 {
			// Untouched: no run churn, the paragraph stays byte-identical.
			continue
		}

		ri := newRunIndex(p)
		segs := buildSegments(ri, matches, matcher, req, text)
		expected := transformedText(text, matches, matcher, req)

		if err := rebuildParagraph(p, ri, segs, expected); err != nil {
			logger.Warn().Int("paragraph", i).Err(err).Msg("paragraph rebuild rolled back")
			result.Failures = append(result.Failures, ParagraphFailure{Paragraph: i, Err: err})
			continue
		}

		result.Replacements += len(matches)
		if req.ReportLocations {
			for _, match := range matches {
				result.Locations = append(result.Locations, Location{
					Paragraph: i,
					Start:     match.Start,
					End:       match.End,
					Text:      match.Text,
				})
			}
		}
		logger.Debug().
			Int("paragraph", i).
			Int("matches", len(matches)).
			Msg("paragraph rebuilt")
	}

	logger.Debug().
		Int("replacements", result.Replacements).
		Int("failures", len(result.Failures)).
		Msg("document walk complete")
	return result, nil
}
