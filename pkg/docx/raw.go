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
)

// nsPrefix maps a namespace URI back to its conventional prefix. Go's XML
// decoder resolves prefixes to URIs, so raw capture has to reconstruct them.
func nsPrefix(uri string) string {
	prefixes := map[string]string{
		"http://schemas.openxmlformats.org/wordprocessingml/2006/main":           "w",
		"http://schemas.openxmlformats.org/officeDocument/2006/relationships":    "r",
		"http://schemas.openxmlformats.org/officeDocument/2006/math":             "m",
		"http://www.w3.org/XML/1998/namespace":                                   "xml",
		"http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing": "wp",
		"http://schemas.openxmlformats.org/drawingml/2006/main":                  "a",
		"http://schemas.openxmlformats.org/drawingml/2006/picture":               "pic",
		"http://schemas.openxmlformats.org/markup-compatibility/2006":            "mc",
		"urn:schemas-microsoft-com:vml":                                          "v",
		"urn:schemas-microsoft-com:office:office":                                "o",
		"urn:schemas-microsoft-com:office:word":                                  "w10",
		"http://schemas.microsoft.com/office/word/2010/wordml":                   "w14",
		"http://schemas.microsoft.com/office/word/2012/wordml":                   "w15",
		"http://schemas.microsoft.com/office/word/2010/wordprocessingShape":      "wps",
		"http://schemas.microsoft.com/office/word/2010/wordprocessingGroup":      "wpg",
		"http://schemas.microsoft.com/office/word/2010/wordprocessingDrawing":    "wp14",
	}
	if p, ok := prefixes[uri]; ok {
		return p
	}
	return uri
}

// rawWriter rebuilds XML text from decoder tokens, restoring namespace
// prefixes the decoder expanded.
type rawWriter struct {
	sb strings.Builder
}

func (w *rawWriter) writeName(name xml.Name) {
	if name.Space != "" {
		w.sb.WriteString(nsPrefix(name.Space))
		w.sb.WriteString(":")
	}
	w.sb.WriteString(name.Local)
}

func (w *rawWriter) writeStart(t xml.StartElement) {
	w.sb.WriteString("<")
	w.writeName(t.Name)
	for _, attr := range t.Attr {
		w.sb.WriteString(" ")
		w.writeName(attr.Name)
		w.sb.WriteString(`="`)
		w.sb.WriteString(escapeAttr(attr.Value))
		w.sb.WriteString(`"`)
	}
	w.sb.WriteString(">")
}

func (w *rawWriter) writeEnd(t xml.EndElement) {
	w.sb.WriteString("</")
	w.writeName(t.Name)
	w.sb.WriteString(">")
}

func (w *rawWriter) writeCharData(data []byte) {
	w.sb.WriteString(escapeText(string(data)))
}

func (w *rawWriter) String() string {
	return w.sb.String()
}

// captureRaw consumes the element opened by start and returns its complete
// outer XML. The decoder is left positioned just past the matching end tag.
func captureRaw(d *xml.Decoder, start xml.StartElement) (string, error) {
	w := &rawWriter{}
	w.writeStart(start)

	depth := 1
	for depth > 0 {
		tok, err := d.Token()
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			w.writeStart(t)
		case xml.EndElement:
			depth--
			w.writeEnd(t)
		case xml.CharData:
			w.writeCharData(t)
		}
	}
	return w.String(), nil
}

func escapeText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

func escapeAttr(s string) string {
	s = escapeText(s)
	s = strings.ReplaceAll(s, `"`, "&quot;")
	return s
}
