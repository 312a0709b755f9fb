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
	"regexp"

	"gitlab.com/tozd/go/errors"
)

// 🔍 Match is one occurrence of the pattern in a paragraph's plain-text
// projection. Offsets are byte offsets into the projection, half-open.
type Match struct {
	Start int
	End   int
	Text  string

	// submatches is the full index pair list from the regexp engine, kept
	// for capture-group expansion.
	submatches []int
}

// 🔧 MatchOptions controls how a pattern is interpreted.
type MatchOptions struct {
	Regex      bool // pattern is a regular expression, not a literal
	MatchCase  bool // case-sensitive comparison
	WholeWords bool // literal mode only: require word boundaries on both sides
}

// 🎯 Matcher finds ordered, non-overlapping matches left to right. It is
// compiled once per call and carries no state between paragraphs.
type Matcher struct {
	re    *regexp.Regexp
	regex bool
}

// NewMatcher compiles the pattern. Literal patterns are quoted before
// compilation, so both modes share one scanning path. An invalid regular
// expression fails here, before any paragraph is touched.
func NewMatcher(pattern string, opts MatchOptions) (*Matcher, error) {
	expr := pattern
	if !opts.Regex {
		expr = regexp.QuoteMeta(pattern)
		if opts.WholeWords {
			expr = `\b` + expr + `\b`
		}
	}
	if !opts.MatchCase {
		expr = "(?i)" + expr
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.Errorf("%w: %q: %w", ErrInvalidPattern, pattern, err)
	}
	return &Matcher{re: re, regex: opts.Regex}, nil
}

// FindAll returns the ordered, non-overlapping matches in text. Zero-width
// matches are dropped: they are not replacements, and skipping them
// guarantees the scan terminates.
func (m *Matcher) FindAll(text string) []Match {
	raw := m.re.FindAllStringSubmatchIndex(text, -1)
	if raw == nil {
		return nil
	}
	matches := make([]Match, 0, len(raw))
	for _, idx := range raw {
		if idx[0] == idx[1] {
			continue
		}
		matches = append(matches, Match{
			Start:      idx[0],
			End:        idx[1],
			Text:       text[idx[0]:idx[1]],
			submatches: idx,
		})
	}
	return matches
}

// Expand produces the replacement text for one match. In regex mode the
// template may reference capture groups with $1-style back-references; in
// literal mode the template is inserted verbatim.
func (m *Matcher) Expand(text, template string, match Match) string {
	if !m.regex {
		return template
	}
	return string(m.re.ExpandString(nil, template, text, match.submatches))
}
