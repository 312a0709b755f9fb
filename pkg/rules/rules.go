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

// Package rules loads replacement rule files. A rule file bundles several
// search-and-replace requests so a whole vocabulary can be reformatted in
// one batch run.
package rules

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/ildunari/enhanced-word-live/pkg/replace"
)

// 🔄 Rule is one replacement in a rule set. Fields mirror the replace
// request; match_case defaults to true when omitted, matching the request
// surface's documented default.
type Rule struct {
	Find            string `json:"find" yaml:"find" hcl:"find"`
	Replace         string `json:"replace" yaml:"replace" hcl:"replace"`
	Regex           bool   `json:"regex,omitempty" yaml:"regex,omitempty" hcl:"regex,optional"`
	MatchCase       *bool  `json:"match_case,omitempty" yaml:"match_case,omitempty" hcl:"match_case,optional"`
	WholeWordsOnly  bool   `json:"whole_words_only,omitempty" yaml:"whole_words_only,omitempty" hcl:"whole_words_only,optional"`
	ApplyFormatting bool   `json:"apply_formatting,omitempty" yaml:"apply_formatting,omitempty" hcl:"apply_formatting,optional"`
	Bold            *bool  `json:"bold,omitempty" yaml:"bold,omitempty" hcl:"bold,optional"`
	Italic          *bool  `json:"italic,omitempty" yaml:"italic,omitempty" hcl:"italic,optional"`
	Underline       *bool  `json:"underline,omitempty" yaml:"underline,omitempty" hcl:"underline,optional"`
	Color           string `json:"color,omitempty" yaml:"color,omitempty" hcl:"color,optional"`
	FontName        string `json:"font_name,omitempty" yaml:"font_name,omitempty" hcl:"font_name,optional"`
	FontSize        int    `json:"font_size,omitempty" yaml:"font_size,omitempty" hcl:"font_size,optional"`
}

// 📚 RuleSet is a parsed rule file.
type RuleSet struct {
	Rules []Rule `json:"rules" yaml:"rules" hcl:"rule,block"`
}

// Request converts the rule into an engine request. Setting any formatting
// field implies apply_formatting, the same inference the CLI flags make, so
// a rule that says bold: true never silently applies nothing.
func (r Rule) Request() *replace.Request {
	matchCase := true
	if r.MatchCase != nil {
		matchCase = *r.MatchCase
	}
	applyFormatting := r.ApplyFormatting ||
		r.Bold != nil || r.Italic != nil || r.Underline != nil ||
		r.Color != "" || r.FontName != "" || r.FontSize != 0
	return &replace.Request{
		Pattern:         r.Find,
		IsRegex:         r.Regex,
		Replacement:     r.Replace,
		MatchCase:       matchCase,
		WholeWordsOnly:  r.WholeWordsOnly,
		ApplyFormatting: applyFormatting,
		Bold:            r.Bold,
		Italic:          r.Italic,
		Underline:       r.Underline,
		Color:           r.Color,
		FontName:        r.FontName,
		FontSize:        r.FontSize,
	}
}

// Validate checks every rule through the engine's request validation and
// compiles every pattern, so a bad rule aborts a batch before any document
// is touched.
func (rs *RuleSet) Validate(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)
	if len(rs.Rules) == 0 {
		return errors.New("rule set contains no rules")
	}
	for i, rule := range rs.Rules {
		req := rule.Request()
		if err := req.Validate(); err != nil {
			return errors.Errorf("rule %d: %w", i, err)
		}
		if _, err := replace.NewMatcher(req.Pattern, req.MatchOptions()); err != nil {
			return errors.Errorf("rule %d: %w", i, err)
		}
	}
	logger.Debug().Int("rules", len(rs.Rules)).Msg("rule set validated")
	return nil
}
