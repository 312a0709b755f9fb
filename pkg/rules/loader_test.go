package rules

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"

	"github.com/ildunari/enhanced-word-live/pkg/replace"
)

func testCtx(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.TestWriter{T: t}).With().Timestamp().Logger()
	return logger.WithContext(context.Background())
}

func writeRuleFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeRuleFile(t, "rules.yaml", `
rules:
  - find: "old term"
    replace: "new term"
  - find: '\{[^}]+\}'
    replace: "$0"
    regex: true
    apply_formatting: true
    bold: true
    color: blue
`)

	rs, err := Load(testCtx(t), path)
	require.NoError(t, err)
	require.Len(t, rs.Rules, 2)

	first := rs.Rules[0].Request()
	assert.Equal(t, "old term", first.Pattern)
	assert.Equal(t, "new term", first.Replacement)
	assert.True(t, first.MatchCase, "match_case defaults to true")
	assert.False(t, first.IsRegex)

	second := rs.Rules[1].Request()
	assert.True(t, second.IsRegex)
	assert.True(t, second.ApplyFormatting)
	require.NotNil(t, second.Bold)
	assert.True(t, *second.Bold)
	assert.Equal(t, "blue", second.Color)
}

func TestLoad_JSON(t *testing.T) {
	path := writeRuleFile(t, "rules.json", `{
  "rules": [
    {"find": "alpha", "replace": "beta", "match_case": false, "whole_words_only": true}
  ]
}`)

	rs, err := Load(testCtx(t), path)
	require.NoError(t, err)
	require.Len(t, rs.Rules, 1)

	req := rs.Rules[0].Request()
	assert.False(t, req.MatchCase)
	assert.True(t, req.WholeWordsOnly)
}

func TestLoad_HCL(t *testing.T) {
	path := writeRuleFile(t, "rules.hcl", `
rule {
  find    = "dolutegravir"
  replace = "dolutegravir"

  apply_formatting = true
  bold             = true
  color            = "blue"
  whole_words_only = true
}

rule {
  find    = "p < 0.05"
  replace = "p < 0.05"

  apply_formatting = true
  italic           = true
}
`)

	rs, err := Load(testCtx(t), path)
	require.NoError(t, err)
	require.Len(t, rs.Rules, 2)
	assert.Equal(t, "dolutegravir", rs.Rules[0].Find)
	require.NotNil(t, rs.Rules[1].Italic)
	assert.True(t, *rs.Rules[1].Italic)
}

func TestRule_FormattingImpliesApply(t *testing.T) {
	// A rule that sets a formatting field but omits apply_formatting still
	// applies it — the same inference the CLI flags make, so rule files and
	// flags behave consistently.
	on := true
	tests := []struct {
		name string
		rule Rule
		want bool
	}{
		{name: "no_formatting", rule: Rule{Find: "a", Replace: "b"}, want: false},
		{name: "bold_implies", rule: Rule{Find: "a", Replace: "b", Bold: &on}, want: true},
		{name: "italic_implies", rule: Rule{Find: "a", Replace: "b", Italic: &on}, want: true},
		{name: "underline_implies", rule: Rule{Find: "a", Replace: "b", Underline: &on}, want: true},
		{name: "color_implies", rule: Rule{Find: "a", Replace: "b", Color: "red"}, want: true},
		{name: "font_name_implies", rule: Rule{Find: "a", Replace: "b", FontName: "Arial"}, want: true},
		{name: "font_size_implies", rule: Rule{Find: "a", Replace: "b", FontSize: 12}, want: true},
		{name: "explicit_flag", rule: Rule{Find: "a", Replace: "b", ApplyFormatting: true}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.Request().ApplyFormatting)
		})
	}
}

func TestLoad_FormattingRuleWithoutApplyFlag(t *testing.T) {
	path := writeRuleFile(t, "rules.yaml", `
rules:
  - find: "DTG"
    replace: "DTG"
    bold: true
    color: blue
`)

	rs, err := Load(testCtx(t), path)
	require.NoError(t, err)
	require.Len(t, rs.Rules, 1)
	assert.True(t, rs.Rules[0].Request().ApplyFormatting)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  string
		wantIs   error
		wantMsg  string
	}{
		{
			name:     "invalid_regex_aborts_whole_file",
			filename: "rules.yaml",
			content: `
rules:
  - find: "fine"
    replace: "ok"
  - find: "(unbalanced"
    replace: "x"
    regex: true
`,
			wantIs:  replace.ErrInvalidPattern,
			wantMsg: "rule 1",
		},
		{
			name:     "empty_rule_set",
			filename: "rules.yaml",
			content:  `rules: []`,
			wantMsg:  "no rules",
		},
		{
			name:     "missing_pattern",
			filename: "rules.yaml",
			content: `
rules:
  - replace: "x"
`,
			wantIs: replace.ErrInvalidRequest,
		},
		{
			name:     "unknown_field_rejected",
			filename: "rules.yaml",
			content: `
rules:
  - find: "a"
    replace: "b"
    fnt_size: 12
`,
			wantMsg: "parsing YAML",
		},
		{
			name:     "unsupported_extension",
			filename: "rules.toml",
			content:  `whatever`,
			wantMsg:  "unsupported rule file extension",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeRuleFile(t, tt.filename, tt.content)
			_, err := Load(testCtx(t), path)
			require.Error(t, err)
			if tt.wantIs != nil {
				assert.True(t, errors.Is(err, tt.wantIs), "got: %v", err)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(testCtx(t), filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
