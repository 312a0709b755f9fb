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
	"strings"

	"github.com/ildunari/enhanced-word-live/pkg/docx"
)

// MergeFormatting applies the set fields of override on top of base and
// returns the result. Neither input is mutated. Fields absent from both stay
// inherited; a run with no explicit value for a base attribute simply passes
// inheritance through, never an error.
func MergeFormatting(base, override docx.Formatting) docx.Formatting {
	out := base
	if override.Bold != nil {
		v := *override.Bold
		out.Bold = &v
	}
	if override.Italic != nil {
		v := *override.Italic
		out.Italic = &v
	}
	if override.Underline != nil {
		v := *override.Underline
		out.Underline = &v
	}
	if override.Color != "" {
		out.Color = override.Color
	}
	if override.FontName != "" {
		out.FontName = override.FontName
	}
	if override.Size != 0 {
		out.Size = override.Size
	}
	return out
}

// namedColors maps the color names the request surface accepts to RRGGBB.
var namedColors = map[string]string{
	"red":     "FF0000",
	"blue":    "0000FF",
	"green":   "008000",
	"yellow":  "FFFF00",
	"black":   "000000",
	"gray":    "808080",
	"white":   "FFFFFF",
	"purple":  "800080",
	"orange":  "FFA500",
	"brown":   "A52A2A",
	"pink":    "FFC0CB",
	"cyan":    "00FFFF",
	"magenta": "FF00FF",
	"lime":    "00FF00",
	"navy":    "000080",
	"maroon":  "800000",
	"olive":   "808000",
	"teal":    "008080",
}

var hexColorRe = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// ResolveColor turns a caller-supplied color (a known name or "#RRGGBB")
// into RRGGBB hex. Unrecognized values fall back to black rather than
// failing the call.
func ResolveColor(color string) string {
	if hex, ok := namedColors[strings.ToLower(color)]; ok {
		return hex
	}
	if hexColorRe.MatchString(color) {
		return strings.ToUpper(strings.TrimPrefix(color, "#"))
	}
	return "000000"
}
