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

package docx

import (
	"fmt"
	"strings"
)

// 🎨 Formatting is the run attribute set the engine understands. Every field
// is independently present-or-inherited: a nil pointer or zero value means
// the attribute is not set on the run and is inherited from the style chain.
type Formatting struct {
	Bold      *bool  // w:b
	Italic    *bool  // w:i
	Underline *bool  // w:u (true = single, false = none)
	Color     string // w:color val, RRGGBB hex, "" = inherited
	FontName  string // w:rFonts ascii, "" = inherited
	Size      int    // w:sz val in half-points, 0 = inherited
}

// IsZero reports whether no attribute is set.
func (f Formatting) IsZero() bool {
	return f.Bold == nil && f.Italic == nil && f.Underline == nil &&
		f.Color == "" && f.FontName == "" && f.Size == 0
}

// RenderRunProps serializes the set attributes as a w:rPr element, or returns
// an empty string when nothing is set. Element order follows the
// WordprocessingML schema sequence.
func (f Formatting) RenderRunProps() string {
	if f.IsZero() {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("<w:rPr>")
	if f.FontName != "" {
		fmt.Fprintf(&sb, `<w:rFonts w:ascii="%s" w:hAnsi="%s"/>`,
			escapeAttr(f.FontName), escapeAttr(f.FontName))
	}
	if f.Bold != nil {
		sb.WriteString(onOffTag("w:b", *f.Bold))
	}
	if f.Italic != nil {
		sb.WriteString(onOffTag("w:i", *f.Italic))
	}
	if f.Color != "" {
		fmt.Fprintf(&sb, `<w:color w:val="%s"/>`, escapeAttr(f.Color))
	}
	if f.Size != 0 {
		fmt.Fprintf(&sb, `<w:sz w:val="%d"/><w:szCs w:val="%d"/>`, f.Size, f.Size)
	}
	if f.Underline != nil {
		if *f.Underline {
			sb.WriteString(`<w:u w:val="single"/>`)
		} else {
			sb.WriteString(`<w:u w:val="none"/>`)
		}
	}
	sb.WriteString("</w:rPr>")
	return sb.String()
}

func onOffTag(name string, on bool) string {
	if on {
		return "<" + name + "/>"
	}
	return "<" + name + ` w:val="0"/>`
}

// onOffValue interprets the OOXML on/off attribute convention: an element
// present without a value means "on".
func onOffValue(val string) bool {
	switch strings.ToLower(val) {
	case "0", "false", "off", "none":
		return false
	default:
		return true
	}
}
