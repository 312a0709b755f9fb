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

	"github.com/go-playground/validator/v10"
	"gitlab.com/tozd/go/errors"

	"github.com/ildunari/enhanced-word-live/pkg/docx"
)

// requestValidate is the shared validator instance for requests.
var requestValidate *validator.Validate

func init() {
	requestValidate = validator.New()
	_ = requestValidate.RegisterValidation("docxcolor", validateColor)
}

// validateColor accepts an empty value, a known color name, or #RRGGBB hex.
func validateColor(fl validator.FieldLevel) bool {
	color := fl.Field().String()
	if color == "" {
		return true
	}
	if _, ok := namedColors[strings.ToLower(color)]; ok {
		return true
	}
	return hexColorRe.MatchString(color)
}

// 📨 Request describes one search-and-replace pass over a document.
type Request struct {
	// Pattern is the text or regular expression to search for.
	Pattern string `json:"pattern" yaml:"pattern" validate:"required"`
	// IsRegex enables regular expression matching. The replacement may then
	// reference capture groups with $1-style back-references.
	IsRegex bool `json:"is_regex" yaml:"is_regex"`
	// Replacement is the replacement template. Empty means delete the match.
	Replacement string `json:"replacement" yaml:"replacement"`
	// MatchCase requires case-sensitive comparison.
	MatchCase bool `json:"match_case" yaml:"match_case"`
	// WholeWordsOnly requires a non-word character or string boundary on
	// both sides of a literal match.
	WholeWordsOnly bool `json:"whole_words_only" yaml:"whole_words_only"`

	// ApplyFormatting enables the formatting overrides below for replaced
	// spans. When false replaced text keeps the base run's formatting.
	ApplyFormatting bool   `json:"apply_formatting" yaml:"apply_formatting"`
	Bold            *bool  `json:"bold,omitempty" yaml:"bold,omitempty"`
	Italic          *bool  `json:"italic,omitempty" yaml:"italic,omitempty"`
	Underline       *bool  `json:"underline,omitempty" yaml:"underline,omitempty"`
	Color           string `json:"color,omitempty" yaml:"color,omitempty" validate:"docxcolor"`
	FontName        string `json:"font_name,omitempty" yaml:"font_name,omitempty"`
	// FontSize is in points.
	FontSize int `json:"font_size,omitempty" yaml:"font_size,omitempty" validate:"gte=0,lte=1638"`

	// ReportLocations collects per-paragraph match locations in the result.
	ReportLocations bool `json:"report_locations,omitempty" yaml:"report_locations,omitempty"`
}

// Validate checks the request fields. It does not compile the pattern; that
// happens in NewMatcher so pattern errors carry ErrInvalidPattern.
func (r *Request) Validate() error {
	if err := requestValidate.Struct(r); err != nil {
		return errors.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return nil
}

// MatchOptions derives the matcher configuration from the request flags.
func (r *Request) MatchOptions() MatchOptions {
	return MatchOptions{
		Regex:      r.IsRegex,
		MatchCase:  r.MatchCase,
		WholeWords: r.WholeWordsOnly,
	}
}

// overrides builds the formatting override set from the request. Fields the
// caller left unset pass the base formatting through unchanged.
func (r *Request) overrides() docx.Formatting {
	if !r.ApplyFormatting {
		return docx.Formatting{}
	}
	f := docx.Formatting{
		Bold:      r.Bold,
		Italic:    r.Italic,
		Underline: r.Underline,
		FontName:  r.FontName,
	}
	if r.Color != "" {
		f.Color = ResolveColor(r.Color)
	}
	if r.FontSize > 0 {
		f.Size = r.FontSize * 2 // w:sz is half-points
	}
	return f
}

// 📊 Result aggregates one pass over a whole document.
type Result struct {
	// Replacements is the total number of matches replaced.
	Replacements int
	// Failures lists paragraphs whose rebuild failed and were rolled back.
	Failures []ParagraphFailure
	// Locations holds per-paragraph match positions when the request asked
	// for them.
	Locations []Location
}

// 📍 Location is one match position for reporting.
type Location struct {
	// Paragraph is the index in document order.
	Paragraph int
	Start     int
	End       int
	Text      string
}
