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
	"encoding/xml"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 📝 Paragraph is one block of text: ordered children, where text lives in
// runs and everything else (hyperlinks, bookmarks, proofing marks) is carried
// as raw XML pinned to its position between runs.
type Paragraph struct {
	// Attrs preserves the w:p element attributes (revision ids and the like).
	Attrs []xml.Attr
	// Props is the verbatim w:pPr element, empty if the paragraph has none.
	Props    string
	Children []ParagraphChild
}

func (*Paragraph) isBlock() {}

// ParagraphChild is *Run or *RawXML.
type ParagraphChild interface {
	isParagraphChild()
}

// ✏️ Run is a contiguous span of text sharing one attribute set. Tabs and
// line breaks inside the run are folded into Text as \t and \n; the writer
// splits them back out into w:tab and w:br elements.
type Run struct {
	// Attrs preserves the w:r element attributes.
	Attrs []xml.Attr
	Text  string
	// Format holds the attributes parsed from the run properties.
	Format Formatting
	// RawProps is the verbatim w:rPr element. It is the source of truth when
	// writing the run back, so attributes the model does not understand
	// survive a rebuild untouched.
	RawProps string
}

func (*Run) isParagraphChild() {}

// Runs returns the paragraph's run children in order.
func (p *Paragraph) Runs() []*Run {
	var runs []*Run
	for _, c := range p.Children {
		if r, ok := c.(*Run); ok {
			runs = append(runs, r)
		}
	}
	return runs
}

// Text is the paragraph's plain-text projection: the concatenation of its
// runs' text in order. Raw children contribute nothing.
func (p *Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.Runs() {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// parseParagraph consumes a w:p element.
func parseParagraph(d *xml.Decoder, start xml.StartElement) (*Paragraph, error) {
	p := &Paragraph{Attrs: start.Attr}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "pPr":
				raw, err := captureRaw(d, t)
				if err != nil {
					return nil, errors.Errorf("capturing pPr: %w", err)
				}
				p.Props = raw
			case "r":
				child, err := parseRun(d, t)
				if err != nil {
					return nil, errors.Errorf("parsing run: %w", err)
				}
				p.Children = append(p.Children, child)
			default:
				raw, err := captureRaw(d, t)
				if err != nil {
					return nil, errors.Errorf("capturing %s: %w", t.Name.Local, err)
				}
				p.Children = append(p.Children, &RawXML{Content: raw})
			}
		case xml.EndElement:
			if t.Name.Local == "p" {
				return p, nil
			}
		}
	}
}

// parseRun consumes a w:r element. Runs whose content is anything beyond
// text, tabs, and breaks (drawings, fields, footnote references) are opaque:
// they come back as RawXML so a rebuild cannot drop content the model does
// not represent. Opaque runs are excluded from the plain-text projection and
// therefore never matched.
func parseRun(d *xml.Decoder, start xml.StartElement) (ParagraphChild, error) {
	run := &Run{Attrs: start.Attr}
	opaque := false

	raw := &rawWriter{}
	raw.writeStart(start)

	var text strings.Builder
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "rPr":
				format, rawProps, err := parseRunProperties(d, t)
				if err != nil {
					return nil, err
				}
				run.Format = format
				run.RawProps = rawProps
				raw.sb.WriteString(rawProps)
			case "t":
				content, rawT, err := captureText(d, t)
				if err != nil {
					return nil, err
				}
				text.WriteString(content)
				raw.sb.WriteString(rawT)
			case "tab":
				text.WriteString("\t")
				if err := appendRawChild(d, t, raw); err != nil {
					return nil, err
				}
			case "br", "cr":
				text.WriteString("\n")
				if err := appendRawChild(d, t, raw); err != nil {
					return nil, err
				}
			default:
				opaque = true
				if err := appendRawChild(d, t, raw); err != nil {
					return nil, err
				}
			}
		case xml.EndElement:
			if t.Name.Local == "r" {
				raw.writeEnd(t)
				if opaque {
					return &RawXML{Content: raw.String()}, nil
				}
				run.Text = text.String()
				return run, nil
			}
		}
	}
}

// appendRawChild captures one child element verbatim into the run's raw form.
func appendRawChild(d *xml.Decoder, start xml.StartElement, raw *rawWriter) error {
	content, err := captureRaw(d, start)
	if err != nil {
		return err
	}
	raw.sb.WriteString(content)
	return nil
}

// captureText consumes a w:t element, returning its character content and
// its verbatim XML.
func captureText(d *xml.Decoder, start xml.StartElement) (string, string, error) {
	raw := &rawWriter{}
	raw.writeStart(start)
	var content strings.Builder
	for {
		tok, err := d.Token()
		if err != nil {
			return "", "", err
		}
		switch t := tok.(type) {
		case xml.CharData:
			content.Write(t)
			raw.writeCharData(t)
		case xml.EndElement:
			raw.writeEnd(t)
			return content.String(), raw.String(), nil
		case xml.StartElement:
			// w:t has no element children; skip defensively.
			if err := d.Skip(); err != nil {
				return "", "", err
			}
		}
	}
}

// parseRunProperties consumes a w:rPr element, extracting the attributes the
// merge policy understands while keeping the verbatim XML for write-back.
func parseRunProperties(d *xml.Decoder, start xml.StartElement) (Formatting, string, error) {
	var f Formatting
	raw := &rawWriter{}
	raw.writeStart(start)

	depth := 1
	for depth > 0 {
		tok, err := d.Token()
		if err != nil {
			return f, "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 1 {
				val := attrValue(t.Attr, "val")
				switch t.Name.Local {
				case "b":
					on := val == "" || onOffValue(val)
					f.Bold = &on
				case "i":
					on := val == "" || onOffValue(val)
					f.Italic = &on
				case "u":
					on := onOffValue(val)
					f.Underline = &on
				case "color":
					f.Color = val
				case "sz":
					f.Size = atoiOrZero(val)
				case "rFonts":
					f.FontName = attrValue(t.Attr, "ascii")
				}
			}
			depth++
			raw.writeStart(t)
		case xml.EndElement:
			depth--
			raw.writeEnd(t)
		case xml.CharData:
			raw.writeCharData(t)
		}
	}
	return f, raw.String(), nil
}

func attrValue(attrs []xml.Attr, local string) string {
	for _, a := range attrs {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

func atoiOrZero(s string) int {
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0
		}
		n = n*10 + int(c-'0')
	}
	return n
}
